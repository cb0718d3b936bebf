package cluster

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/metroxylon/kho-bwa-core-voc/wordlist"
)

// ============================================================================
// SIMILARITY — Pairwise-complete Hamming similarity between languages
// ============================================================================
// Two languages agree on a gloss when their cognacy classes are equal.
// Glosses where either language lacks data are excluded from BOTH the
// numerator and the denominator: the cognacy percentage is computed on the
// words actually available for comparison, not on the whole list. (The
// textbook Hamming metric would count a missing cell as a mismatch, which
// silently punishes poorly attested languages.)
// ============================================================================

var (
	ErrTooFewLanguages = errors.New("cluster: need at least two languages")
	ErrNoOverlap       = errors.New("cluster: language pair shares no data")
)

// Matrix is a symmetric language-by-language similarity matrix in percent.
// The diagonal is 100 (every language is fully cognate with itself).
type Matrix struct {
	Labels  []string
	Percent *mat.SymDense
}

// N returns the number of languages.
func (m *Matrix) N() int { return len(m.Labels) }

// At returns the cognacy percentage between languages i and j.
func (m *Matrix) At(i, j int) float64 { return m.Percent.At(i, j) }

// Clone returns a deep copy. Simulations perturb copies so the base matrix
// stays untouched across iterations.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{Labels: append([]string(nil), m.Labels...)}
	c.Percent = mat.NewSymDense(m.N(), nil)
	c.Percent.CopySym(m.Percent)
	return c
}

// Subset returns the similarity matrix of the first n languages.
// n is clamped to the full set.
func (m *Matrix) Subset(n int) *Matrix {
	if n <= 0 || n > m.N() {
		n = m.N()
	}
	s := &Matrix{Labels: m.Labels[:n], Percent: mat.NewSymDense(n, nil)}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.Percent.SetSym(i, j, m.Percent.At(i, j))
		}
	}
	return s
}

// Similarity computes the pairwise-complete Hamming similarity matrix for a
// parsed wordlist, scaled to percent.
//
// For the worked example
//
//	           gloss1  gloss2  gloss3  gloss4
//	Language1       1       1       1     NaN
//	Language2       1     NaN       2       1
//	Language3       2       2       3       1
//
// the overlaps are 2, 3 and 3 glosses and the percentages 50, 0 and 33.3.
func Similarity(w *wordlist.Wordlist) (*Matrix, error) {
	n := w.NumLanguages()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewLanguages, n)
	}

	m := &Matrix{
		Labels:  append([]string(nil), w.Languages...),
		Percent: mat.NewSymDense(n, nil),
	}

	var firstGap error
	for i := 0; i < n; i++ {
		m.Percent.SetSym(i, i, 100)
		for j := i + 1; j < n; j++ {
			cognates, comparisons := 0, 0
			for g := 0; g < w.NumGlosses(); g++ {
				a, b := w.Cognacy[i][g], w.Cognacy[j][g]
				if math.IsNaN(a) || math.IsNaN(b) {
					continue
				}
				comparisons++
				if a == b {
					cognates++
				}
			}
			if comparisons == 0 {
				// No shared attestation. Zero similarity keeps the matrix
				// well formed; the caller is warned via the error and can
				// still use the rest of the matrix.
				m.Percent.SetSym(i, j, 0)
				if firstGap == nil {
					firstGap = fmt.Errorf("%w: %s and %s",
						ErrNoOverlap, w.Languages[i], w.Languages[j])
				}
				continue
			}
			m.Percent.SetSym(i, j, 100*float64(cognates)/float64(comparisons))
		}
	}
	return m, firstGap
}

// Condensed returns the upper-triangle distances (100 − percent) in
// row-major order, the form the linkage step consumes.
func (m *Matrix) Condensed() []float64 {
	n := m.N()
	d := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d = append(d, 100-m.Percent.At(i, j))
		}
	}
	return d
}
