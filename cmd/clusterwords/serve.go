package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_cluster_words/internal/httpserver"
	"github.com/baditaflorin/go_cluster_words/internal/warmup"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP façade over the clustering pipeline",
		Args:  cobra.NoArgs,
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

			port, _ := cmd.Flags().GetInt("port")
			delta, _ := cmd.Flags().GetInt("delta")
			if delta == 0 {
				delta = cfg.Neighbors.Delta
			}
			threshold, _ := cmd.Flags().GetInt("cluster-threshold")
			if threshold == 0 {
				threshold = cfg.Neighbors.ClusterThreshold
			}

			warmUp, _ := cmd.Flags().GetBool("warm-up")
			if warmUp {
				warmup.Run(log, warmup.DefaultConfig())
			}

			srv := httpserver.New(httpserver.Config{
				Port:             port,
				ReadTimeout:      httpserver.DefaultReadTimeout,
				WriteTimeout:     httpserver.DefaultWriteTimeout,
				MaxRequestSize:   httpserver.DefaultMaxRequestSize,
				Concurrency:      httpserver.DefaultConcurrency,
				Epsilon:          cfg.Epsilon,
				IgnoreSize:       cfg.IgnoreSize,
				Separators:       cfg.Separators,
				Delta:            delta,
				ClusterThreshold: threshold,
			}, log)

			return srv.ListenAndServe(context.Background())
		},
	}
	cmd.Flags().Int("port", httpserver.DefaultPort, "HTTP server port")
	cmd.Flags().Int("delta", 0, "neighbor-report raw edit-distance threshold (0 = use default)")
	cmd.Flags().Int("cluster-threshold", 0, "neighbor-report minimum neighbor count (0 = use default)")
	cmd.Flags().Bool("warm-up", true, "warm up the edit-distance kernel before accepting requests")
	return cmd
}
