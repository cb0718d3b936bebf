package texlist

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/metroxylon/kho-bwa-core-voc/wordlist"
)

// ============================================================================
// TEXLIST — Comparative wordlist as LaTeX
// ============================================================================
// Renders the raw lexeme table as the three appendix artifacts the paper
// includes: a three-column running wordlist, a landscape longtable, and a
// compact inline list. Cognacy classes color the cells (\colorbox{rbN}) so
// cognate sets are visible at a glance; class 0 stands for "no judgement".
// ============================================================================

var ErrNoLexemes = errors.New("texlist: wordlist has no lexeme forms (plain layout sheet?)")

// File names written by WriteAll.
const (
	ColumnsFile = "wordlistcolumns.tex"
	TableFile   = "wordlisttable.tex"
	ListFile    = "wordlistlist.tex"
)

// WriteAll renders all three artifacts into dir, creating it if needed.
func WriteAll(w *wordlist.Wordlist, dir string) error {
	if len(w.Lexemes) == 0 {
		return ErrNoLexemes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("texlist: create output dir: %w", err)
	}

	stamp := time.Now().Format(time.ANSIC)
	outputs := map[string]string{
		ColumnsFile: BuildColumns(w, stamp),
		TableFile:   BuildTable(w, stamp),
		ListFile:    BuildList(w, stamp),
	}
	for name, content := range outputs {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("texlist: write %s: %w", path, err)
		}
	}
	return nil
}

// BuildColumns renders the three-column running wordlist: one block per
// gloss, one line per language.
func BuildColumns(w *wordlist.Wordlist, stamp string) string {
	var sb strings.Builder
	sb.WriteString("%!TEX root = ../main.tex\n")
	fmt.Fprintf(&sb, "[Word list created on: %s]\\\\\n", stamp)
	sb.WriteString("\\footnotesize\n")
	sb.WriteString("\\begin{multicols}{3}\n")
	sb.WriteString("\\noindent")

	abbrs := abbreviations(w.Languages)
	for j, gloss := range w.Glosses {
		fmt.Fprintf(&sb, "\\textbf{\\textsc{%s}}\\hfill [%s]\\\\\n",
			gloss, membership(w.Tag(j)))
		for i := range w.Languages {
			cls := class(w, i, j)
			fmt.Fprintf(&sb, "\\enskip\\textbf{%s}\\tabto{0.5cm}", abbrs[i])
			fmt.Fprintf(&sb, "\\colorbox{rb%d}{\\begin{minipage}{3cm}%s\\end{minipage}}",
				cls, normalizeIPA(lexeme(w, i, j)))
			if cls != 0 {
				fmt.Fprintf(&sb, "\\tabto{4cm}(%d)", cls)
			}
			sb.WriteString("\\\\\n")
		}
		sb.WriteString("\\\\\n")
	}
	sb.WriteString("\\end{multicols}\n")
	return sb.String()
}

// BuildTable renders the landscape longtable: one row per gloss, one column
// per language, repeated language headers top and bottom.
func BuildTable(w *wordlist.Wordlist, stamp string) string {
	var sb strings.Builder
	sb.WriteString("%!TEX root = ../khobwa.tex\n")
	fmt.Fprintf(&sb, "Word list created on: %s\\\\\n", stamp)
	sb.WriteString("\\newgeometry{margin=0.3cm}\n")
	sb.WriteString("\\begin{landscape}\n")
	sb.WriteString("\\thispagestyle{empty}\n")
	sb.WriteString("\\tiny\n")
	fmt.Fprintf(&sb, "\\begin{longtable}{%s%s}\n",
		strings.Repeat("p{0.525cm}", len(w.Languages)), "p{1.2cm}")

	header := func() {
		for _, lang := range w.Languages {
			sb.WriteString("&" + lang)
		}
	}
	sb.WriteString("\\toprule\n")
	header()
	sb.WriteString("\\\\\\endhead\n")
	header()
	sb.WriteString("\\\\\\endfoot\n")
	sb.WriteString("\\midrule\n")

	for j, gloss := range w.Glosses {
		fmt.Fprintf(&sb, "\\textsc{%s}", gloss)
		for i := range w.Languages {
			cls := class(w, i, j)
			fmt.Fprintf(&sb, "&\\cellcolor{rb%d}{%s ", cls, normalizeIPA(lexeme(w, i, j)))
			if cls != 0 {
				fmt.Fprintf(&sb, "\\textsuperscript{(%d)}", cls)
			}
			sb.WriteString("}")
		}
		sb.WriteString("\\\\\n")
	}

	sb.WriteString("\\bottomrule\n")
	sb.WriteString("\\end{longtable}\n")
	sb.WriteString("\\end{landscape}")
	sb.WriteString("\\restoregeometry")
	return sb.String()
}

// BuildList renders the compact inline list: one line per gloss, every
// language's form tagged with its abbreviation and class.
func BuildList(w *wordlist.Wordlist, stamp string) string {
	var sb strings.Builder
	sb.WriteString("%!TEX root = ../khobwa.tex\n")
	fmt.Fprintf(&sb, "Word list created on: %s\\\\\n", stamp)
	sb.WriteString("\\footnotesize\n")

	abbrs := abbreviations(w.Languages)
	for j, gloss := range w.Glosses {
		fmt.Fprintf(&sb, "\\textbf{\\textsc{%s}}\n", gloss)
		for i := range w.Languages {
			cls := class(w, i, j)
			fmt.Fprintf(&sb, "\\colorbox{rb%d}{%s", cls, normalizeIPA(lexeme(w, i, j)))
			if cls == 0 {
				fmt.Fprintf(&sb, "\\textsubscript{%s}", abbrs[i])
			} else {
				fmt.Fprintf(&sb, "\\textsubscript{%s(%d)}", abbrs[i], cls)
			}
			sb.WriteString("} ")
		}
		sb.WriteString("\\\\\n")
	}
	return sb.String()
}

// ── Helpers ──────────────────────────────────────────────────────────────

// membership expands a wordlist-membership tag to the label the appendix
// prints: Leipzig-Jakarta, Swadesh-100, both, or not recorded.
func membership(tag string) string {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "L":
		return "LJ"
	case "S":
		return "S100"
	case "LS", "SL":
		return "LJ, S100"
	default:
		return "NA"
	}
}

// class returns the cognacy class as an int, 0 for missing.
func class(w *wordlist.Wordlist, i, j int) int {
	v := w.Cognacy[i][j]
	if math.IsNaN(v) {
		return 0
	}
	return int(v)
}

func lexeme(w *wordlist.Wordlist, i, j int) string {
	l := w.Lexemes[i][j]
	if l == "" {
		return "NA"
	}
	return l
}

// abbreviations derives short unique tags from language names: the
// lowercased first letters, extended on collision.
func abbreviations(names []string) []string {
	out := make([]string, len(names))
	seen := make(map[string]bool)
	for i, name := range names {
		base := strings.ToLower(name)
		n := 2
		if n > len(base) {
			n = len(base)
		}
		ab := base[:n]
		for seen[ab] && n < len(base) {
			n++
			ab = base[:n]
		}
		seen[ab] = true
		out[i] = ab
	}
	return out
}
