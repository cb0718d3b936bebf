package wordlist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ============================================================================
// LAYOUT DISCOVERY — Heuristic column classification
// ============================================================================
// Inspects raw CSV and decides how the sheet encodes cognacy judgements.
// No configuration needed for well-formed sheets.
//
// Classification pipeline per column:
//   1. Sample data cells → numeric ratio (comment/spacer rows excluded)
//   2. Alternating text/numeric pattern from column 1 on → paired layout
//   3. All-numeric body → plain layout
// ============================================================================

// LayoutKind identifies how gloss columns encode cognacy.
type LayoutKind int

const (
	// LayoutPaired alternates lexeme and cognacy columns (field-notes
	// export: HAND, cognacy, ASH, cognacy, ...).
	LayoutPaired LayoutKind = iota
	// LayoutPlain has one integer cognacy column per gloss.
	LayoutPlain
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutPaired:
		return "paired"
	case LayoutPlain:
		return "plain"
	default:
		return fmt.Sprintf("LayoutKind(%d)", int(k))
	}
}

// Layout is the result of inspecting a sheet.
type Layout struct {
	Kind        LayoutKind
	Columns     []ColumnInfo // one per sheet column, including column 0
	DataRows    int
	CommentRows int
	SpacerRows  int
}

// ColumnInfo is the per-column classification evidence.
type ColumnInfo struct {
	Header       string
	Index        int
	NumericRatio float64 // share of non-empty data cells parsing as integers
	Role         string  // "language", "lexeme", "cognacy"
}

// numericColumnThreshold is the share of non-empty cells that must parse as
// integers for a column to count as a cognacy column. Sheets carry "NA" and
// typos, so exact 1.0 would misclassify real data.
const numericColumnThreshold = 0.6

// Inspect reads the CSV and classifies its column layout.
func Inspect(data []byte) (*Layout, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptySheet, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: %d columns", ErrBadHeader, len(header))
	}

	lay := &Layout{}

	// Tally numeric vs text cells per column over the data rows.
	nonEmpty := make([]int, len(header))
	numeric := make([]int, len(header))
	for {
		row, rerr := reader.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			continue
		}
		name := strings.TrimSpace(row[0])
		if strings.HasPrefix(name, "#") {
			lay.CommentRows++
			continue
		}
		if name == "" || allEmpty(row) {
			lay.SpacerRows++
			continue
		}
		lay.DataRows++
		for c := 1; c < len(header) && c < len(row); c++ {
			v := strings.TrimSpace(row[c])
			if v == "" {
				continue
			}
			nonEmpty[c]++
			if _, err := strconv.Atoi(v); err == nil {
				numeric[c]++
			}
		}
	}

	if lay.DataRows == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrEmptySheet)
	}

	ratios := make([]float64, len(header))
	anyNumeric := false
	for c := 1; c < len(header); c++ {
		if nonEmpty[c] > 0 {
			ratios[c] = float64(numeric[c]) / float64(nonEmpty[c])
		}
		if ratios[c] >= numericColumnThreshold {
			anyNumeric = true
		}
	}
	if !anyNumeric {
		return nil, fmt.Errorf("%w in %d columns", ErrNoCognacy, len(header)-1)
	}

	lay.Kind = classifyLayout(ratios)
	lay.Columns = buildColumnInfo(header, ratios, lay.Kind)
	return lay, nil
}

// classifyLayout decides paired vs plain from per-column numeric ratios.
// Paired sheets show a strict alternation: text, numeric, text, numeric...
// An empty lexeme column (all cells blank, ratio 0) still fits the pattern.
func classifyLayout(ratios []float64) LayoutKind {
	pairedVotes, plainVotes := 0, 0
	for c := 1; c < len(ratios); c++ {
		isNumeric := ratios[c] >= numericColumnThreshold
		if isNumeric {
			plainVotes++
		}
		// In the paired layout even sheet columns (2, 4, ...) hold cognacy.
		wantNumeric := c%2 == 0
		if isNumeric == wantNumeric {
			pairedVotes++
		}
	}
	// Plain wins only when essentially every column is numeric; otherwise
	// an alternating pattern is the better explanation.
	if plainVotes == len(ratios)-1 {
		return LayoutPlain
	}
	if pairedVotes >= (len(ratios)-1)*4/5 {
		return LayoutPaired
	}
	return LayoutPlain
}

func buildColumnInfo(header []string, ratios []float64, kind LayoutKind) []ColumnInfo {
	cols := make([]ColumnInfo, len(header))
	for c := range header {
		info := ColumnInfo{
			Header:       strings.TrimSpace(header[c]),
			Index:        c,
			NumericRatio: ratios[c],
		}
		switch {
		case c == 0:
			info.Role = "language"
		case kind == LayoutPlain:
			info.Role = "cognacy"
		case c%2 == 1:
			info.Role = "lexeme"
		default:
			info.Role = "cognacy"
		}
		cols[c] = info
	}
	return cols
}
