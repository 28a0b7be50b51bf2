// Package neighbors implements the degenerate "neighbor report" mode from
// spec.md §6: the predecessor tool's behavior, subsumed by but independent
// of the clustering engine. It shares only the raw-distance half of the
// edit-distance kernel (component A) — no similarity matrix, no priority
// queue, no cluster store.
package neighbors

import (
	"fmt"
	"io"
	"sort"

	"github.com/baditaflorin/go_cluster_words/internal/core/domain"
	"github.com/baditaflorin/go_cluster_words/internal/core/edit"
)

// Default thresholds from spec.md §6.
const (
	DefaultDelta            = 3
	DefaultClusterThreshold = 3
)

// Config controls the neighbor report's thresholds.
type Config struct {
	Delta            int
	ClusterThreshold int
}

// DefaultConfig returns spec.md's canonical defaults.
func DefaultConfig() Config {
	return Config{Delta: DefaultDelta, ClusterThreshold: DefaultClusterThreshold}
}

// Report computes, for each word with at least Config.ClusterThreshold
// other words at raw edit distance strictly below Config.Delta, a line
// `<word>: <n1> <n2> ...` naming those neighbors. Words below the
// threshold are omitted entirely. Uses the raw distance kernel, not
// normalized similarity.
func Report(words []*domain.Word, cfg Config) []string {
	n := len(words)
	neighbors := make([][]int, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if edit.Distance(words[i].Bytes, words[j].Bytes) < cfg.Delta {
				neighbors[i] = append(neighbors[i], j)
			}
		}
	}

	var lines []string
	for i, ns := range neighbors {
		if len(ns) < cfg.ClusterThreshold {
			continue
		}
		sort.Ints(ns)
		line := fmt.Sprintf("%s:", words[i].Bytes)
		for _, j := range ns {
			line += fmt.Sprintf(" %s", words[j].Bytes)
		}
		lines = append(lines, line)
	}
	return lines
}

// Write computes the report and writes it to w, one line per qualifying
// word, in word-table order.
func Write(w io.Writer, words []*domain.Word, cfg Config) error {
	for _, line := range Report(words, cfg) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
