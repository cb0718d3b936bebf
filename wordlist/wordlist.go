package wordlist

import (
	"fmt"
	"math"
)

// ============================================================================
// WORDLIST — In-memory model of a comparative cognacy spreadsheet
// ============================================================================
// The sheet has languages as rows and glosses (concepts) as columns. In the
// paired layout every gloss occupies two columns: the lexeme as entered in
// the field notes, and the integer cognacy class assigned to that lexeme.
// Roots judged cognate carry the same class number. Anything that does not
// parse as an integer ("NA", "n.a.", "?", empty) is missing data.
// ============================================================================

// Missing marks a cognacy cell with no usable judgement.
// Stored as NaN so arithmetic propagates it, mirroring how the matrix math
// treats unavailable comparisons.
var Missing = math.NaN()

// Wordlist is a parsed cognacy spreadsheet.
type Wordlist struct {
	// Languages in sheet row order (comment and spacer rows removed).
	Languages []string

	// Glosses (concept names) in sheet column order.
	Glosses []string

	// Cognacy holds one row per language and one column per gloss.
	// Cells are integer cognacy classes stored as float64, or NaN for
	// missing data.
	Cognacy [][]float64

	// Lexemes holds the raw word forms, same shape as Cognacy. Empty when
	// the sheet uses the plain (cognacy-only) layout.
	Lexemes [][]string

	// Comments holds skipped comment rows keyed by their row name (the
	// leading "#" stripped, e.g. "POS", "list"). Values are the remaining
	// cells of the row. The texlist package reads the "list" row for
	// wordlist-membership tags.
	Comments map[string][]string
}

// NumLanguages returns the number of language rows.
func (w *Wordlist) NumLanguages() int { return len(w.Languages) }

// NumGlosses returns the number of gloss columns.
func (w *Wordlist) NumGlosses() int { return len(w.Glosses) }

// IsMissing reports whether the cognacy judgement for language i, gloss j
// is unavailable.
func (w *Wordlist) IsMissing(i, j int) bool {
	return math.IsNaN(w.Cognacy[i][j])
}

// Subset returns a wordlist restricted to the first n languages. Used for
// the partial plot (the Kho-Bwa-only figure). n is clamped to the full set.
func (w *Wordlist) Subset(n int) *Wordlist {
	if n <= 0 || n > len(w.Languages) {
		n = len(w.Languages)
	}
	sub := &Wordlist{
		Languages: w.Languages[:n],
		Glosses:   w.Glosses,
		Cognacy:   w.Cognacy[:n],
		Comments:  w.Comments,
	}
	if len(w.Lexemes) >= n {
		sub.Lexemes = w.Lexemes[:n]
	}
	return sub
}

// Tag returns the wordlist-membership tag for gloss j ("L", "S", "LS", ...)
// from the "#list" comment row, or "" if the sheet has none.
func (w *Wordlist) Tag(j int) string {
	row, ok := w.Comments["list"]
	if !ok || j < 0 || j >= len(row) {
		return ""
	}
	return row[j]
}

// validate checks basic tabular well-formedness after parsing.
func (w *Wordlist) validate() error {
	if len(w.Languages) == 0 {
		return fmt.Errorf("%w: no language rows", ErrEmptySheet)
	}
	if len(w.Glosses) == 0 {
		return fmt.Errorf("%w: no gloss columns", ErrEmptySheet)
	}
	for i, row := range w.Cognacy {
		if len(row) != len(w.Glosses) {
			return fmt.Errorf("language %q: %d cognacy cells, want %d",
				w.Languages[i], len(row), len(w.Glosses))
		}
	}
	return nil
}
