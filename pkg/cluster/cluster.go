// Package cluster is the public driver (component G): it wires the token
// source, the similarity matrix/queue, the clustering engine and the
// cluster store into a single call per input, the way the teacher's
// pkg/word.LengthSimilarity wires its normalizer and calculator behind a
// functional-options constructor.
package cluster

import (
	"bytes"
	"context"

	"github.com/baditaflorin/go_cluster_words/internal/adapters/queue"
	"github.com/baditaflorin/go_cluster_words/internal/adapters/store"
	"github.com/baditaflorin/go_cluster_words/internal/adapters/token"
	"github.com/baditaflorin/go_cluster_words/internal/core/cluster"
	"github.com/baditaflorin/go_cluster_words/internal/core/domain"
	"github.com/baditaflorin/go_cluster_words/internal/ports"
)

// Config mirrors internal/core/cluster.Config plus the token source's
// separator set, so callers outside internal/ never import internal/core
// directly.
type Config struct {
	Epsilon    float64
	IgnoreSize int
	Separators string
}

// Option configures a Clusterer. Named after the teacher's
// word.LengthSimilarityOption pattern.
type Option func(*Clusterer)

// WithEpsilon overrides the complete-linkage merge threshold.
func WithEpsilon(e float64) Option {
	return func(c *Clusterer) { c.cfg.Epsilon = e }
}

// WithIgnoreSize overrides the minimum token length that survives
// filtering (tokens of length <= IgnoreSize are dropped before
// clustering).
func WithIgnoreSize(n int) Option {
	return func(c *Clusterer) { c.cfg.IgnoreSize = n }
}

// WithSeparators overrides the token source's separator byte set.
func WithSeparators(seps string) Option {
	return func(c *Clusterer) { c.cfg.Separators = seps }
}

// WithLogger attaches a structured logger, propagated to the clustering
// engine for its per-run summary line.
func WithLogger(logger ports.Logger) Option {
	return func(c *Clusterer) { c.logger = logger }
}

// Clusterer runs the full pipeline over a token source. It holds no
// per-run state; New is cheap and a single Clusterer may be reused across
// calls to ClusterFile and ClusterText.
type Clusterer struct {
	cfg    Config
	logger ports.Logger
}

// New constructs a Clusterer with spec.md's canonical defaults, then
// applies opts.
func New(opts ...Option) *Clusterer {
	c := &Clusterer{
		cfg: Config{
			Epsilon:    cluster.DefaultEpsilon,
			IgnoreSize: cluster.DefaultIgnoreSize,
			Separators: token.DefaultSeparators,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Report is the outcome of a clustering run: the filtered, densely
// reindexed word table and the clusters the engine produced over it.
type Report struct {
	Words    []*domain.Word
	Clusters []*domain.Cluster
}

// ClusterFile opens path, tokenizes it with the configured separator set,
// filters tokens of length <= IgnoreSize, and runs the clustering engine
// to completion.
func (c *Clusterer) ClusterFile(ctx context.Context, path string) (*Report, error) {
	src, err := token.Open(path, c.cfg.Separators)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return c.clusterSource(ctx, src)
}

// ClusterText runs the same pipeline over an in-memory byte slice, for
// callers (tests, the HTTP façade) that already hold the input in memory
// rather than as a file path.
func (c *Clusterer) ClusterText(ctx context.Context, text []byte) (*Report, error) {
	return c.clusterSource(ctx, newSliceSource(text, c.cfg.Separators))
}

func (c *Clusterer) clusterSource(ctx context.Context, src ports.TokenSource) (*Report, error) {
	var words []*domain.Word
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, ok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if len(tok) <= c.cfg.IgnoreSize {
			continue
		}
		words = append(words, &domain.Word{Bytes: tok, Idx: len(words)})
	}

	q := queue.New(len(words) * len(words))
	matrix := cluster.BuildSimilarityMatrix(words, q)
	st := store.New()
	engineCfg := cluster.Config{Epsilon: c.cfg.Epsilon, IgnoreSize: c.cfg.IgnoreSize}
	eng := cluster.New(engineCfg, words, matrix, q, st, c.logger)
	eng.Run()

	return &Report{Words: words, Clusters: st.Clusters()}, nil
}

// sliceSource is a ports.TokenSource over an in-memory buffer, used by
// ClusterText and by the HTTP façade's request body.
type sliceSource struct {
	data []byte
	pos  int
	seps map[byte]bool
}

func newSliceSource(data []byte, separators string) *sliceSource {
	seps := make(map[byte]bool, len(separators))
	for i := 0; i < len(separators); i++ {
		seps[separators[i]] = true
	}
	return &sliceSource{data: data, seps: seps}
}

func (s *sliceSource) Next() ([]byte, bool, error) {
	for s.pos < len(s.data) && s.seps[s.data[s.pos]] {
		s.pos++
	}
	if s.pos >= len(s.data) {
		return nil, false, nil
	}
	start := s.pos
	for s.pos < len(s.data) && !s.seps[s.data[s.pos]] {
		s.pos++
	}
	return bytes.Clone(s.data[start:s.pos]), true, nil
}

func (s *sliceSource) Close() error { return nil }
