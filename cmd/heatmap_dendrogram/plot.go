package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/metroxylon/kho-bwa-core-voc/cluster"
	"github.com/metroxylon/kho-bwa-core-voc/render"
)

var (
	plotOutdir    string
	plotAllName   string
	plotPartName  string
	plotPartRange int
	plotLinkage   bool
	plotMethod    string
)

var plotCmd = &cobra.Command{
	Use:   "plot [flags] <data.csv>",
	Short: "Create heatmap and dendrogram plots",
	Long: `Create heatmap and dendrogram plots.

Produces two figures for the given data: one for the whole data set
(Kho-Bwa and the Tibeto-Burman reference languages) and one for only the
first --part-range languages (by default only Kho-Bwa). Output is written
to the --outdir directory, created if missing. --linkage prints the merge
table for the full figure to stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().StringVar(&plotOutdir, "outdir", "plots", "output directory")
	plotCmd.Flags().StringVar(&plotAllName, "plot-all", "tbkhobwa", "name of the whole-data figure")
	plotCmd.Flags().StringVar(&plotPartName, "plot-part", "khobwa", "name of the partial figure")
	plotCmd.Flags().IntVar(&plotPartRange, "part-range", 22, "number of languages in the partial figure")
	plotCmd.Flags().BoolVar(&plotLinkage, "linkage", false, "print the linkage merge table")
	plotCmd.Flags().StringVar(&plotMethod, "method", "average", "linkage method: average, single or complete")
}

func runPlot(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	method, err := cluster.ParseMethod(plotMethod)
	if err != nil {
		return err
	}
	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	m, _, err := loadSimilarity(infileArg(args), logger)
	if err != nil {
		return err
	}

	// Whole data set, then the leading subset (the matrix is already in
	// sheet order, so the subset is a plain leading submatrix).
	if err := plotOne(renderer, m, method,
		filepath.Join(plotOutdir, plotAllName+".png"), plotLinkage, logger); err != nil {
		return err
	}
	return plotOne(renderer, m.Subset(plotPartRange), method,
		filepath.Join(plotOutdir, plotPartName+".png"), false, logger)
}

// plotOne clusters one matrix and renders its clustermap.
func plotOne(r *render.Renderer, m *cluster.Matrix, method cluster.Method,
	path string, printLinkage bool, logger *slog.Logger) error {

	merges, err := cluster.Linkage(m, method)
	if err != nil {
		return err
	}
	if printLinkage {
		fmt.Fprint(os.Stderr, cluster.FormatMerges(merges))
	}
	den := cluster.BuildDendrogram(merges, m.Labels)
	if err := r.Clustermap(m, den, path); err != nil {
		return err
	}
	logger.Info("wrote figure", "path", path, "languages", m.N(), "method", method.String())
	return nil
}
