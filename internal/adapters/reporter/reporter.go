// Package reporter implements the final walk over the cluster store,
// writing one line per cluster to an io.Writer. Grounded on the teacher's
// plain fmt.Fprintf-based outputResult formatting (examples/CLI_TOOL), kept
// to byte-exact pass-through per spec.md §4.F (no JSON encoding here — see
// internal/httpserver and cmd/clusterwords' --output json for the JSON
// variants).
package reporter

import (
	"fmt"
	"io"

	"github.com/baditaflorin/go_cluster_words/internal/core/domain"
)

// Write walks clusters in their native (store) order and writes one line
// per cluster in the form:
//
//	Cluster <k>: [<word0>] [<word1>] ... [<wordm>]
//
// with a trailing space before the newline, matching the reference tool.
func Write(w io.Writer, clusters []*domain.Cluster) error {
	for k, c := range clusters {
		if _, err := fmt.Fprintf(w, "Cluster %d: ", k); err != nil {
			return err
		}
		for _, word := range c.Members {
			if _, err := fmt.Fprintf(w, "[%s] ", word.Bytes); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
