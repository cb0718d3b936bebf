package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/metroxylon/kho-bwa-core-voc/texlist"
	"github.com/metroxylon/kho-bwa-core-voc/wordlist"
)

var wordlistOutdir string

var wordlistCmd = &cobra.Command{
	Use:   "wordlist [flags] <data.csv>",
	Short: "Typeset the comparative wordlist as LaTeX",
	Long: `Typeset the comparative wordlist as LaTeX.

Writes the three appendix artifacts (three-column wordlist, landscape
longtable, inline list) into the --outdir directory. Needs a sheet in the
paired layout, since the plain layout carries no lexeme forms to typeset.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWordlist,
}

func init() {
	wordlistCmd.Flags().StringVar(&wordlistOutdir, "outdir", "data", "output directory for the .tex files")
}

func runWordlist(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	path := infileArg(args)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	w, err := wordlist.Parse(data)
	if err != nil {
		return err
	}
	if err := texlist.WriteAll(w, wordlistOutdir); err != nil {
		return err
	}
	logger.Info("wrote LaTeX wordlist",
		"outdir", wordlistOutdir, "glosses", w.NumGlosses(), "languages", w.NumLanguages())
	return nil
}
