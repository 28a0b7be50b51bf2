package main

import (
	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_cluster_words/internal/adapters/logger"
	"github.com/baditaflorin/go_cluster_words/internal/config"
	"github.com/baditaflorin/go_cluster_words/internal/ports"
)

// resolveConfig loads the optional --config file, then overlays any
// explicitly-set persistent flags on top of it. A flag set to its
// "use default" value (0, -1 or empty) is not overlaid. Flags always win
// over the config file, and the config file always wins over the built-in
// defaults.
func resolveConfig(cmd *cobra.Command) (config.File, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if v, _ := cmd.Flags().GetFloat64("epsilon"); cmd.Flags().Changed("epsilon") && v != 0 {
		cfg.Epsilon = v
	}
	if v, _ := cmd.Flags().GetInt("ignore-size"); cmd.Flags().Changed("ignore-size") && v != -1 {
		cfg.IgnoreSize = v
	}
	if v, _ := cmd.Flags().GetString("separators"); cmd.Flags().Changed("separators") && v != "" {
		cfg.Separators = v
	}
	return cfg, nil
}

// resolveLogger builds the logger described by --log-file, defaulting to
// stdout.
func resolveLogger(cmd *cobra.Command) (ports.Logger, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		return logger.NewStdLogger()
	}
	f, err := openLogFile(path)
	if err != nil {
		return nil, err
	}
	return logger.NewStdLoggerTo(f)
}
