package simulate

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/metroxylon/kho-bwa-core-voc/cluster"
)

// ============================================================================
// NOISE — Random perturbation of a similarity matrix
// ============================================================================
// The simulation asks: would slightly different cognacy decisions change the
// subgrouping? A symmetric random matrix is added to the cognacy-percent
// matrix, the result clamped back into [0, 100], and the whole plotting
// pipeline re-run. The mean shifts the noise to mimic systematically
// stricter (negative) or more speculative (positive) judgements; the spread
// bounds how far a single cell can move.
// ============================================================================

// Distr selects the noise distribution.
type Distr int

const (
	// Uniform draws integer offsets uniformly from [-spread, spread).
	Uniform Distr = iota
	// Binomial draws binomial(2·spread, 0.5) − spread, concentrating the
	// noise near zero while keeping the same range.
	Binomial
)

var ErrUnknownDistr = errors.New("simulate: unknown distribution")

// ParseDistr maps a CLI string to a Distr.
func ParseDistr(s string) (Distr, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "":
		return Uniform, nil
	case "binomial":
		return Binomial, nil
	default:
		return Uniform, fmt.Errorf("%w: %q (want uniform or binomial)", ErrUnknownDistr, s)
	}
}

func (d Distr) String() string {
	switch d {
	case Uniform:
		return "uniform"
	case Binomial:
		return "binomial"
	default:
		return fmt.Sprintf("Distr(%d)", int(d))
	}
}

// noiseMatrix builds an n×n symmetric matrix of random offsets. Raw draws
// land on integers; symmetrizing via (R+Rᵀ)/2 leaves halves, like the
// original procedure.
func noiseMatrix(distr Distr, mean, spread, n int, src rand.Source) [][]float64 {
	draw := makeDraw(distr, mean, spread, src)

	raw := make([][]float64, n)
	for i := range raw {
		raw[i] = make([]float64, n)
		for j := range raw[i] {
			raw[i][j] = draw()
		}
	}

	sym := make([][]float64, n)
	for i := range sym {
		sym[i] = make([]float64, n)
		for j := range sym[i] {
			sym[i][j] = (raw[i][j] + raw[j][i]) / 2
		}
	}
	return sym
}

func makeDraw(distr Distr, mean, spread int, src rand.Source) func() float64 {
	switch distr {
	case Binomial:
		b := distuv.Binomial{N: float64(2 * spread), P: 0.5, Src: src}
		return func() float64 { return b.Rand() - float64(spread) + float64(mean) }
	default:
		rng := rand.New(src)
		return func() float64 {
			if spread <= 0 {
				return float64(mean)
			}
			return float64(rng.Intn(2*spread)-spread) + float64(mean)
		}
	}
}

// Perturb returns a copy of the similarity matrix with noise added.
// Percentages are clamped (above 100 → 99, below 0 → 0) and the diagonal is
// forced back to 100: a language stays fully cognate with itself no matter
// how noisy the judgements get.
func Perturb(base *cluster.Matrix, distr Distr, mean, spread int, src rand.Source) *cluster.Matrix {
	n := base.N()
	noise := noiseMatrix(distr, mean, spread, n, src)

	out := base.Clone()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := base.At(i, j) + noise[i][j]
			switch {
			case i == j:
				v = 100
			case v > 100:
				v = 99
			case v < 0:
				v = 0
			}
			out.Percent.SetSym(i, j, v)
		}
	}
	return out
}
