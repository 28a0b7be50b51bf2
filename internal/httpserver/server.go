// Package httpserver is the HTTP façade over pkg/cluster: POST /cluster,
// POST /neighbors and GET /health, exposed by both cmd/server and
// clusterwords serve. Grounded directly on the teacher's cmd/server/main.go
// fasthttp.Server wiring (graceful shutdown via signal.Notify, JSON
// request/response helpers), repointed from the three similarity
// calculators it exposed at /length, /character and /streaming to the
// single clustering pipeline.
package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_cluster_words/internal/core/domain"
	"github.com/baditaflorin/go_cluster_words/internal/neighbors"
	"github.com/baditaflorin/go_cluster_words/internal/ports"
	libcluster "github.com/baditaflorin/go_cluster_words/pkg/cluster"
)

// Default server tunables, carried over from the teacher's cmd/server.
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024
	DefaultConcurrency    = 0
)

// Config controls the HTTP server's listener and the clustering pipeline's
// thresholds.
type Config struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int
	Concurrency    int

	Epsilon          float64
	IgnoreSize       int
	Separators       string
	Delta            int
	ClusterThreshold int
}

// Server is the HTTP façade. It holds no per-request state beyond the
// configured Clusterer, so handlers are safe for concurrent use.
type Server struct {
	cfg       Config
	logger    ports.Logger
	clusterer *libcluster.Clusterer
	inner     *fasthttp.Server
}

// New constructs a Server ready to ListenAndServe.
func New(cfg Config, logger ports.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		clusterer: libcluster.New(
			libcluster.WithEpsilon(cfg.Epsilon),
			libcluster.WithIgnoreSize(cfg.IgnoreSize),
			libcluster.WithSeparators(cfg.Separators),
			libcluster.WithLogger(logger),
		),
	}
	s.inner = &fasthttp.Server{
		Handler:               s.handle,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		Concurrency:           cfg.Concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks until ctx is cancelled, then shuts the server down
// gracefully. It also installs its own SIGINT/SIGTERM handler so a direct
// Ctrl-C works without the caller wiring one up.
func (s *Server) ListenAndServe(ctx context.Context) error {
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		select {
		case <-sigint:
		case <-ctx.Done():
		}
		s.logger.Info("shutting down server")
		if err := s.inner.Shutdown(); err != nil {
			s.logger.Error("error during shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("server listening", "address", addr)
	err := s.inner.ListenAndServe(addr)
	<-idleConnsClosed
	return err
}

func (s *Server) handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "clusterwords")

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealth(ctx)
	case "/cluster":
		s.handleCluster(ctx)
	case "/neighbors":
		s.handleNeighbors(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "not found")
	}

	s.logger.Info("request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(start),
	)
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// clusterRequest is the JSON body accepted by POST /cluster and
// POST /neighbors: a raw text blob to tokenize and analyze.
type clusterRequest struct {
	Text string `json:"text"`
}

type clusterMember struct {
	ID      int      `json:"id"`
	Members []string `json:"members"`
}

type clusterResponse struct {
	WordCount int             `json:"word_count"`
	Clusters  []clusterMember `json:"clusters"`
}

func (s *Server) handleCluster(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "method not allowed")
		return
	}

	var req clusterRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "invalid request: "+err.Error())
		return
	}
	if req.Text == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "text is required")
		return
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := s.clusterer.ClusterText(reqCtx, []byte(req.Text))
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, err.Error())
		return
	}

	resp := clusterResponse{WordCount: len(report.Words)}
	for _, c := range report.Clusters {
		members := make([]string, len(c.Members))
		for i, m := range c.Members {
			members[i] = m.String()
		}
		resp.Clusters = append(resp.Clusters, clusterMember{ID: c.ID, Members: members})
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, resp)
}

type neighborsResponse struct {
	Lines []string `json:"lines"`
}

func (s *Server) handleNeighbors(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "method not allowed")
		return
	}

	var req clusterRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "invalid request: "+err.Error())
		return
	}
	if req.Text == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "text is required")
		return
	}

	words := tokenizeInMemory([]byte(req.Text), s.cfg.Separators, s.cfg.IgnoreSize)
	lines := neighbors.Report(words, neighbors.Config{Delta: s.cfg.Delta, ClusterThreshold: s.cfg.ClusterThreshold})

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, neighborsResponse{Lines: lines})
}

func tokenizeInMemory(data []byte, separators string, ignoreSize int) []*domain.Word {
	seps := make(map[byte]bool, len(separators))
	for i := 0; i < len(separators); i++ {
		seps[separators[i]] = true
	}

	var words []*domain.Word
	i := 0
	for i < len(data) {
		for i < len(data) && seps[data[i]] {
			i++
		}
		start := i
		for i < len(data) && !seps[data[i]] {
			i++
		}
		if i > start && i-start > ignoreSize {
			tok := make([]byte, i-start)
			copy(tok, data[start:i])
			words = append(words, &domain.Word{Bytes: tok, Idx: len(words)})
		}
	}
	return words
}

func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":"internal server error"}`)
		return
	}
	ctx.SetBody(body)
}

func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	body, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		ctx.SetBodyString(`{"error":"internal server error"}`)
		return
	}
	ctx.SetBody(body)
}
