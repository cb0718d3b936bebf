package main

import "os"

// ============================================================================
// HEATMAP_DENDROGRAM CLI — Lexicostatistical figures for the Kho-Bwa study
// ============================================================================

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
