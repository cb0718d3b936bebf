// Package khobwa computes and renders the lexicostatistical figures for the
// Kho-Bwa core-vocabulary subgrouping study.
//
// Usage:
//
//	import "github.com/metroxylon/kho-bwa-core-voc/cluster"
//
//	sim, err := cluster.Similarity(wl)
//	merges, err := cluster.Linkage(sim, cluster.Average)
//	den := cluster.BuildDendrogram(merges, sim.Labels)
//
// The pipeline is: read a cognacy spreadsheet (wordlist package), compute the
// pairwise-complete Hamming similarity matrix and its hierarchical clustering
// (cluster package), and render an annotated heatmap with marginal
// dendrograms to PNG (render package). The simulate package perturbs the
// similarity matrix with random noise to probe how stable the clustering is.
//
// All computation is local — nothing here calls an external service.
package khobwa
