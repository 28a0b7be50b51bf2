package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_cluster_words/internal/adapters/reporter"
	libcluster "github.com/baditaflorin/go_cluster_words/pkg/cluster"
)

func newClusterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cluster <file>",
		Short: "Cluster the words in <file> by edit-distance similarity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			log, err := resolveLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Close()

			c := libcluster.New(
				libcluster.WithEpsilon(cfg.Epsilon),
				libcluster.WithIgnoreSize(cfg.IgnoreSize),
				libcluster.WithSeparators(cfg.Separators),
				libcluster.WithLogger(log),
			)

			report, err := c.ClusterFile(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("cluster %s: %w", args[0], err)
			}

			format, _ := cmd.Flags().GetString("output")
			if format == "json" {
				return writeJSONReport(os.Stdout, report)
			}
			return reporter.Write(os.Stdout, report.Clusters)
		},
	}
}

type jsonCluster struct {
	ID      int      `json:"id"`
	Members []string `json:"members"`
}

func writeJSONReport(w *os.File, report *libcluster.Report) error {
	out := make([]jsonCluster, len(report.Clusters))
	for i, c := range report.Clusters {
		members := make([]string, len(c.Members))
		for j, m := range c.Members {
			members[j] = m.String()
		}
		out[i] = jsonCluster{ID: c.ID, Members: members}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
