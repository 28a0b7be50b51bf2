// Package cluster implements the greedy best-first clustering engine:
// component E from spec.md §4.E. It drives the merge protocol over a word
// table, a precomputed similarity matrix and a priority queue, applying the
// five merge rules and the complete-linkage guard. Grounded directly on
// original_source/src/cluster_words.c's process_file loop, translated from
// its null-cluster-pointer checks into Go's explicit ClusterRef field.
package cluster

import (
	"github.com/baditaflorin/go_cluster_words/internal/core/domain"
	"github.com/baditaflorin/go_cluster_words/internal/core/edit"
	"github.com/baditaflorin/go_cluster_words/internal/ports"
)

// Default constants from spec.md §4.E.
const (
	DefaultEpsilon    = 0.4
	DefaultIgnoreSize = 4
)

// Config controls the engine's thresholds. Exposed so the CLI/config layer
// can override the spec.md defaults without altering core semantics, per
// spec.md §6's explicit allowance.
type Config struct {
	Epsilon    float64
	IgnoreSize int
}

// DefaultConfig returns spec.md's canonical constants.
func DefaultConfig() Config {
	return Config{Epsilon: DefaultEpsilon, IgnoreSize: DefaultIgnoreSize}
}

// Engine drives the clustering main loop over a fixed word table, matrix
// and queue. It is single-use: construct one per run via New.
type Engine struct {
	cfg    Config
	words  []*domain.Word
	matrix *domain.Matrix
	queue  ports.PriorityQueue
	store  ports.ClusterStore
	logger ports.Logger
}

// New constructs an Engine ready to run. words, matrix and queue must
// already be populated by the driver (component G): one similarity record
// per unordered pair (i,j), i<j, pushed into queue, and matrix fully
// computed including the diagonal.
func New(cfg Config, words []*domain.Word, matrix *domain.Matrix, queue ports.PriorityQueue, store ports.ClusterStore, logger ports.Logger) *Engine {
	return &Engine{cfg: cfg, words: words, matrix: matrix, queue: queue, store: store, logger: logger}
}

// BuildSimilarityMatrix computes the full symmetric matrix and returns the
// priority queue pre-loaded with every (i,j,s) record for i<j, per spec.md
// §3 and §4.E's setup step. Shared between the CLI/server driver and tests.
func BuildSimilarityMatrix(words []*domain.Word, queue ports.PriorityQueue) *domain.Matrix {
	n := len(words)
	matrix := domain.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := edit.NormalizedSimilarity(words[i].Bytes, words[j].Bytes)
			matrix.Set(i, j, s)
			queue.Push(domain.SimilarityRecord{I: i, J: j, S: s})
		}
	}
	return matrix
}

// Run drains the priority queue, applying the five merge rules from
// spec.md §4.E until it is empty.
func (e *Engine) Run() {
	for {
		rec, ok := e.queue.Pop()
		if !ok {
			break
		}
		e.apply(rec)
	}
	if e.logger != nil {
		e.logger.Info("clustering complete", "clusters", len(e.store.Clusters()))
	}
}

// apply dispatches a popped record to the first matching rule. Rules 1 and
// 2 are never gated on EPSILON, only rule 4 is — this asymmetry is
// intentional per spec.md §4.E's rationale.
func (e *Engine) apply(rec domain.SimilarityRecord) {
	a := e.words[rec.I]
	b := e.words[rec.J]
	ca, cb := a.ClusterRef, b.ClusterRef

	switch {
	case ca == nil && cb == nil:
		// Rule 1: seed a new cluster unconditionally.
		c := &domain.Cluster{}
		c.Append(a)
		c.Append(b)
		e.store.Append(c)

	case ca == nil && cb != nil:
		// Rule 2: attach the unassigned word, unconditionally.
		cb.Append(a)

	case ca != nil && cb == nil:
		// Rule 2, symmetric case.
		ca.Append(b)

	case ca == cb:
		// Rule 3: already in the same cluster, no-op.

	case rec.S > e.cfg.Epsilon:
		// Rule 4: attempt a complete-linkage merge of two distinct clusters.
		e.tryMerge(ca, cb)

	default:
		// Rule 5: different clusters, similarity at or below EPSILON; no
		// subsequent lower-similarity record can justify merging this
		// pair, but the loop continues since other records may still
		// trigger rules 1-2 for still-unclustered words.
	}
}

// tryMerge enforces the complete-linkage guard: every cross-pair between
// Ca's and Cb's members must already be at or above EPSILON, or the merge
// is abandoned and both clusters remain intact.
func (e *Engine) tryMerge(ca, cb *domain.Cluster) {
	for _, x := range ca.Members {
		for _, y := range cb.Members {
			if e.matrix.Get(x.Idx, y.Idx) < e.cfg.Epsilon {
				return
			}
		}
	}

	for _, w := range cb.Members {
		ca.Append(w)
	}
	e.store.Remove(cb)
}
