// Command clusterwords is the CLI front end for the word-clustering
// library: "cluster" runs the full engine over a file, "neighbors" runs
// the degenerate neighbor-report mode, "serve" starts the HTTP façade.
// Grounded on ehrlich-b-wingthing's cobra-based command tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "clusterwords",
		Short:         "Cluster words in a text file by edit-distance similarity",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Float64("epsilon", 0, "complete-linkage merge threshold (0 = use default)")
	root.PersistentFlags().Int("ignore-size", -1, "drop tokens with length <= this (-1 = use default)")
	root.PersistentFlags().String("separators", "", "token separator byte set (empty = use default)")
	root.PersistentFlags().String("config", "", "path to a YAML config file")
	root.PersistentFlags().String("log-file", "", "log file path (empty = stdout)")
	root.PersistentFlags().String("output", "text", "output format: text|json")

	root.AddCommand(newClusterCmd())
	root.AddCommand(newNeighborsCmd())
	root.AddCommand(newServeCmd())
	return root
}
