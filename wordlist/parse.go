package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ============================================================================
// PARSER — CSV spreadsheet → Wordlist
// ============================================================================
// The sheet may contain comment rows (name starts with "#") anywhere and
// empty rows used for visually grouping languages during data entry. Both
// are excluded from the analysis; comment rows are retained on the Wordlist
// for downstream use (LaTeX wordlist tags, part-of-speech annotations).
// ============================================================================

// Sentinel errors for callers that want to distinguish failure modes.
var (
	ErrEmptySheet = errors.New("wordlist: empty spreadsheet")
	ErrBadHeader  = errors.New("wordlist: unusable header row")
	ErrNoCognacy  = errors.New("wordlist: no cognacy columns detected")
)

// Parse reads a cognacy spreadsheet CSV into a Wordlist.
// The column layout (paired word/cognacy vs plain cognacy-only) is detected
// automatically; use ParseLayout to force one.
func Parse(data []byte) (*Wordlist, error) {
	layout, err := Inspect(data)
	if err != nil {
		return nil, err
	}
	return ParseLayout(data, layout.Kind)
}

// ParseLayout reads a cognacy spreadsheet CSV using a known column layout.
func ParseLayout(data []byte, kind LayoutKind) (*Wordlist, error) {
	header, rows, comments, err := readSheet(data)
	if err != nil {
		return nil, err
	}

	w := &Wordlist{Comments: comments}

	switch kind {
	case LayoutPaired:
		// Odd columns (1, 3, 5, ...) are glosses; the column to the right
		// of each holds the cognacy class.
		for c := 1; c < len(header); c += 2 {
			w.Glosses = append(w.Glosses, strings.TrimSpace(header[c]))
		}
		// Comment rows annotate the gloss (lexeme) columns; realign them
		// to gloss indices so Tag(j) works for either layout.
		for name, row := range w.Comments {
			aligned := make([]string, 0, len(w.Glosses))
			for c := 0; c < len(row); c += 2 {
				aligned = append(aligned, row[c])
			}
			w.Comments[name] = aligned
		}
		for _, row := range rows {
			w.Languages = append(w.Languages, row[0])
			cog := make([]float64, 0, len(w.Glosses))
			lex := make([]string, 0, len(w.Glosses))
			for c := 1; c < len(header); c += 2 {
				lex = append(lex, cell(row, c))
				cog = append(cog, parseCognacy(cell(row, c+1)))
			}
			w.Cognacy = append(w.Cognacy, cog)
			w.Lexemes = append(w.Lexemes, lex)
		}

	case LayoutPlain:
		// Every column after the language name is a cognacy class.
		for c := 1; c < len(header); c++ {
			w.Glosses = append(w.Glosses, strings.TrimSpace(header[c]))
		}
		for _, row := range rows {
			w.Languages = append(w.Languages, row[0])
			cog := make([]float64, 0, len(w.Glosses))
			for c := 1; c < len(header); c++ {
				cog = append(cog, parseCognacy(cell(row, c)))
			}
			w.Cognacy = append(w.Cognacy, cog)
		}

	default:
		return nil, fmt.Errorf("wordlist: unknown layout %v", kind)
	}

	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// readSheet splits the CSV into header, data rows, and comment rows.
// Data rows are rows with a non-empty, non-"#" first cell and at least one
// non-empty remaining cell. Ragged rows are tolerated (csv.FieldsPerRecord
// is disabled) because hand-maintained sheets routinely drop trailing cells.
func readSheet(data []byte) (header []string, rows [][]string, comments map[string][]string, err error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	header, err = reader.Read()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrEmptySheet, err)
	}
	if len(header) < 2 {
		return nil, nil, nil, fmt.Errorf("%w: %d columns", ErrBadHeader, len(header))
	}

	comments = make(map[string][]string)
	for {
		row, rerr := reader.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			continue // skip malformed rows
		}
		name := strings.TrimSpace(row[0])

		if strings.HasPrefix(name, "#") {
			comments[strings.TrimPrefix(name, "#")] = padTo(row[1:], len(header)-1)
			continue
		}
		if name == "" || allEmpty(row) {
			continue // visual spacer row
		}
		row[0] = name
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no data rows", ErrEmptySheet)
	}
	return header, rows, comments, nil
}

// parseCognacy coerces a cell to a cognacy class. Anything that is not an
// integer ("NA", "n.a.", "?", "", stray text) is missing data.
func parseCognacy(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return Missing
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Missing
	}
	return float64(n)
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func allEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func padTo(row []string, n int) []string {
	for len(row) < n {
		row = append(row, "")
	}
	return row
}
