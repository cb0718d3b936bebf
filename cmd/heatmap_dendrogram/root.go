package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/metroxylon/kho-bwa-core-voc/cluster"
	"github.com/metroxylon/kho-bwa-core-voc/logging"
	"github.com/metroxylon/kho-bwa-core-voc/render"
	"github.com/metroxylon/kho-bwa-core-voc/wordlist"
)

const version = "0.1.0"

// defaultInfile matches the repository layout used while preparing the
// paper; any sheet path can be given as the positional argument.
const defaultInfile = "data/dataset_khobwa.csv"

var (
	flagVerbose bool
	flagStyle   string
)

var rootCmd = &cobra.Command{
	Use:     "heatmap_dendrogram",
	Version: version,
	Short:   "Plot a comparative word list as heatmap and dendrogram",
	Long: `Tool for plotting a comparative word list as heatmap and dendrogram.

Input is a csv spreadsheet with languages as rows. Gloss columns come in
pairs: the lexeme, and an integer cognacy statement saying which roots are
cognate. Rows starting with "#" are comments and are excluded from the
analysis (use them for part of speech, wordlist membership and similar
annotations).

e.g.

  Concept  , 1SG , cognacy , HAND, cognacy
  #POS     , prn ,         ,   n ,
  Duhumbi  , ga  , 1       , hut ,       1
  Khispi   , ga  , 1       , hut ,       1
  Rupa     , gu  , 1       , ʔik ,       2
  Shergaon , gu  , 1       , ʔik ,       2`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagStyle, "style", "",
		"YAML file overriding the default figure style")
	rootCmd.AddCommand(plotCmd, simulateCmd, wordlistCmd)
}

func newLogger() *slog.Logger {
	return logging.New(logging.Config{Verbose: flagVerbose})
}

func newRenderer() (*render.Renderer, error) {
	if flagStyle == "" {
		return render.New()
	}
	s, err := render.LoadStyle(flagStyle)
	if err != nil {
		return nil, err
	}
	return render.New(render.WithStyle(s))
}

// infileArg resolves the positional spreadsheet argument.
func infileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultInfile
}

// loadSimilarity reads and parses the spreadsheet and computes the cognacy
// percentage matrix. A no-overlap pair is reported but not fatal: the rest
// of the matrix is still meaningful.
func loadSimilarity(path string, logger *slog.Logger) (*cluster.Matrix, *wordlist.Wordlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	w, err := wordlist.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("parsed spreadsheet",
		"path", path, "languages", w.NumLanguages(), "glosses", w.NumGlosses())

	m, err := cluster.Similarity(w)
	if err != nil {
		if !errors.Is(err, cluster.ErrNoOverlap) {
			return nil, nil, err
		}
		logger.Warn("language pair with no shared data scores zero", "detail", err)
	}
	return m, w, nil
}
