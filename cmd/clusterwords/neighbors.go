package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_cluster_words/internal/adapters/token"
	"github.com/baditaflorin/go_cluster_words/internal/core/domain"
	"github.com/baditaflorin/go_cluster_words/internal/neighbors"
)

func newNeighborsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighbors <file>",
		Short: "Report words with many close neighbors by raw edit distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			delta, _ := cmd.Flags().GetInt("delta")
			if delta == 0 {
				delta = cfg.Neighbors.Delta
			}
			threshold, _ := cmd.Flags().GetInt("cluster-threshold")
			if threshold == 0 {
				threshold = cfg.Neighbors.ClusterThreshold
			}

			src, err := token.Open(args[0], cfg.Separators)
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer src.Close()

			var words []*domain.Word
			for {
				tok, ok, err := src.Next()
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				if len(tok) <= cfg.IgnoreSize {
					continue
				}
				words = append(words, &domain.Word{Bytes: tok, Idx: len(words)})
			}

			return neighbors.Write(os.Stdout, words, neighbors.Config{Delta: delta, ClusterThreshold: threshold})
		},
	}
	cmd.Flags().Int("delta", 0, "raw edit-distance threshold (0 = use default)")
	cmd.Flags().Int("cluster-threshold", 0, "minimum neighbor count to report a word (0 = use default)")
	return cmd
}
