package simulate

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/exp/rand"

	"github.com/metroxylon/kho-bwa-core-voc/cluster"
)

// ============================================================================
// RUN — The simulation loop
// ============================================================================

// Options parameterize a simulation run.
type Options struct {
	Count  int    // number of perturbed figures to produce
	Spread int    // maximum offset added to a cell
	Mean   int    // systematic shift of the noise
	Distr  Distr  // noise distribution
	Seed   uint64 // 0 = non-deterministic seed
	OutDir string // where the figures land
}

// RenderFunc renders one perturbed matrix to the given path. The runner
// stays renderer-agnostic so tests can count calls without producing PNGs.
type RenderFunc func(m *cluster.Matrix, path string) error

// Run produces Count perturbed copies of the base matrix and renders each
// one. Figures are named simulation_<distr>_<spread>_<i>.png, numbered from
// 1. The base matrix is never modified.
func Run(base *cluster.Matrix, opts Options, render RenderFunc, logger *slog.Logger) error {
	if opts.Count <= 0 {
		opts.Count = 1
	}
	src := rand.NewSource(opts.Seed)
	if opts.Seed == 0 {
		src = rand.NewSource(rand.Uint64())
	}

	for i := 1; i <= opts.Count; i++ {
		perturbed := Perturb(base, opts.Distr, opts.Mean, opts.Spread, src)
		name := fmt.Sprintf("simulation_%s_%d_%d.png", opts.Distr, opts.Spread, i)
		path := filepath.Join(opts.OutDir, name)
		if err := render(perturbed, path); err != nil {
			return fmt.Errorf("simulation %d: %w", i, err)
		}
		logger.Info("wrote simulation figure", "path", path, "iteration", i)
	}
	return nil
}
