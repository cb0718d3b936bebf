package simulate

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/metroxylon/kho-bwa-core-voc/cluster"
)

// ============================================================================
// SIMULATION TESTS
// ============================================================================

func baseMatrix() *cluster.Matrix {
	labels := []string{"Duhumbi", "Khispi", "Rupa", "Shergaon"}
	m := &cluster.Matrix{Labels: labels, Percent: mat.NewSymDense(4, nil)}
	vals := map[[2]int]float64{
		{0, 1}: 95, {0, 2}: 40, {0, 3}: 42,
		{1, 2}: 38, {1, 3}: 41, {2, 3}: 88,
	}
	for i := 0; i < 4; i++ {
		m.Percent.SetSym(i, i, 100)
	}
	for ij, v := range vals {
		m.Percent.SetSym(ij[0], ij[1], v)
	}
	return m
}

func TestPerturbInvariants(t *testing.T) {
	base := baseMatrix()
	for _, distr := range []Distr{Uniform, Binomial} {
		p := Perturb(base, distr, 0, 20, rand.NewSource(7))
		for i := 0; i < p.N(); i++ {
			assert.Equal(t, 100.0, p.At(i, i), "diagonal stays 100")
			for j := 0; j < p.N(); j++ {
				v := p.At(i, j)
				assert.Equal(t, v, p.At(j, i), "perturbed matrix stays symmetric")
				assert.LessOrEqual(t, v, 100.0)
				assert.GreaterOrEqual(t, v, 0.0)
			}
		}
	}
}

func TestPerturbClamping(t *testing.T) {
	base := baseMatrix()
	// Huge positive shift: everything off-diagonal pins at 99.
	p := Perturb(base, Uniform, 500, 1, rand.NewSource(1))
	assert.Equal(t, 99.0, p.At(0, 1))
	assert.Equal(t, 100.0, p.At(0, 0))

	// Huge negative shift: everything off-diagonal pins at 0.
	p = Perturb(base, Uniform, -500, 1, rand.NewSource(1))
	assert.Equal(t, 0.0, p.At(0, 1))
	assert.Equal(t, 100.0, p.At(2, 2))
}

func TestPerturbDoesNotMutateBase(t *testing.T) {
	base := baseMatrix()
	before := base.Clone()
	_ = Perturb(base, Binomial, 0, 20, rand.NewSource(3))
	for i := 0; i < base.N(); i++ {
		for j := 0; j < base.N(); j++ {
			assert.Equal(t, before.At(i, j), base.At(i, j))
		}
	}
}

func TestPerturbSeedDeterminism(t *testing.T) {
	base := baseMatrix()
	a := Perturb(base, Binomial, 0, 10, rand.NewSource(42))
	b := Perturb(base, Binomial, 0, 10, rand.NewSource(42))
	for i := 0; i < base.N(); i++ {
		for j := 0; j < base.N(); j++ {
			assert.Equal(t, a.At(i, j), b.At(i, j), "same seed must give the same figure")
		}
	}
}

func TestParseDistr(t *testing.T) {
	d, err := ParseDistr("binomial")
	require.NoError(t, err)
	assert.Equal(t, Binomial, d)

	d, err = ParseDistr("")
	require.NoError(t, err)
	assert.Equal(t, Uniform, d)

	_, err = ParseDistr("gaussian")
	assert.ErrorIs(t, err, ErrUnknownDistr)
}

func TestRunNamesAndCount(t *testing.T) {
	base := baseMatrix()
	var paths []string
	render := func(m *cluster.Matrix, path string) error {
		require.Equal(t, base.N(), m.N())
		paths = append(paths, path)
		return nil
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	opts := Options{Count: 3, Spread: 20, Distr: Uniform, Seed: 9, OutDir: "simulations"}
	require.NoError(t, Run(base, opts, render, logger))

	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join("simulations", "simulation_uniform_20_1.png"), paths[0])
	assert.Equal(t, filepath.Join("simulations", "simulation_uniform_20_3.png"), paths[2])
}
