// Package ports defines the narrow interfaces the clustering core consumes
// from its collaborators (logging, the priority queue, the cluster store,
// the token source) without depending on their concrete implementations —
// the same hexagonal split the teacher codebase uses between
// internal/core and internal/adapters.
package ports

import (
	"github.com/baditaflorin/go_cluster_words/internal/core/domain"
)

// Logger is the narrow logging surface the core and driver depend on. It is
// satisfied by the l.Logger adapter in internal/adapters/logger, but core
// code never imports the l package directly.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Close() error
}

// PriorityQueue is a max-heap over similarity records, ordered by S
// descending. Ties are broken by the implementation; the clustering engine
// must not depend on tie order beyond what spec.md documents.
type PriorityQueue interface {
	Push(rec domain.SimilarityRecord)
	Pop() (domain.SimilarityRecord, bool)
	Len() int
}

// ClusterStore is the set of currently live clusters, in stable
// (insertion-order-of-survivors) iteration order.
type ClusterStore interface {
	Append(c *domain.Cluster)
	Remove(c *domain.Cluster)
	Clusters() []*domain.Cluster
}

// TokenSource yields the sequence of tokens (byte slices) from a file,
// delimited by any byte in a separator set. Reports I/O failure distinctly
// from end-of-stream via the returned error / ok pair.
type TokenSource interface {
	// Next returns the next token, or ok=false at end of stream. err is
	// non-nil only on a genuine read failure, distinct from end-of-stream.
	Next() (token []byte, ok bool, err error)
	Close() error
}
