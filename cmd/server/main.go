// Command server is the standalone flag-based entry point for the HTTP
// façade, kept alongside "clusterwords serve" (the cobra subcommand) in
// the teacher's own style: the teacher shipped both a flag-based
// cmd/server and a separate CLI tool example side by side.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/baditaflorin/go_cluster_words/internal/adapters/logger"
	"github.com/baditaflorin/go_cluster_words/internal/core/cluster"
	"github.com/baditaflorin/go_cluster_words/internal/httpserver"
	"github.com/baditaflorin/go_cluster_words/internal/neighbors"
	"github.com/baditaflorin/go_cluster_words/internal/ports"
	"github.com/baditaflorin/go_cluster_words/internal/warmup"
)

func main() {
	port := flag.Int("port", httpserver.DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", httpserver.DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", httpserver.DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", httpserver.DefaultMaxRequestSize, "maximum request size in bytes")
	concurrency := flag.Int("concurrency", httpserver.DefaultConcurrency, "maximum concurrent connections (0 = fasthttp's default)")
	warmUp := flag.Bool("warm-up", true, "warm up the edit-distance kernel on startup")
	logFile := flag.String("log-file", "", "log file path (empty = stdout)")
	epsilon := flag.Float64("epsilon", cluster.DefaultEpsilon, "complete-linkage merge threshold")
	ignoreSize := flag.Int("ignore-size", cluster.DefaultIgnoreSize, "drop tokens with length <= this")
	separators := flag.String("separators", " \r\n\t", "token separator byte set")
	delta := flag.Int("delta", neighbors.DefaultDelta, "neighbor-report raw edit-distance threshold")
	clusterThreshold := flag.Int("cluster-threshold", neighbors.DefaultClusterThreshold, "neighbor-report minimum neighbor count")
	flag.Parse()

	var (
		log ports.Logger
		err error
	)
	if *logFile == "" {
		log, err = logger.NewStdLogger()
	} else {
		var f *os.File
		f, err = os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log, err = logger.NewStdLoggerTo(f)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("starting clusterwords HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
	)

	if *warmUp {
		warmup.Run(log, warmup.DefaultConfig())
	}

	srv := httpserver.New(httpserver.Config{
		Port:             *port,
		ReadTimeout:      *readTimeout,
		WriteTimeout:     *writeTimeout,
		MaxRequestSize:   *maxRequestSize,
		Concurrency:      *concurrency,
		Epsilon:          *epsilon,
		IgnoreSize:       *ignoreSize,
		Separators:       *separators,
		Delta:            *delta,
		ClusterThreshold: *clusterThreshold,
	}, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.ListenAndServe(ctx); err != nil {
		log.Error("server error", "error", err)
	}
	log.Info("server stopped")
}
