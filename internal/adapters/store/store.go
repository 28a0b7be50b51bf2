// Package store implements the cluster store: the set of currently live
// clusters, in stable insertion order. Grounded on the id-rewrite merge
// approach in vmikk-goclust's single-linkage clusterer, adapted from its
// map-of-labels representation to pointer-identity clusters per spec.md
// §9's "index-keyed arenas" guidance.
package store

import "github.com/baditaflorin/go_cluster_words/internal/core/domain"

// ClusterStore is a ports.ClusterStore backed by a plain slice. Remove is
// O(n), acceptable per spec.md §4.D.
type ClusterStore struct {
	clusters []*domain.Cluster
	nextID   int
}

// New creates an empty cluster store.
func New() *ClusterStore {
	return &ClusterStore{}
}

// Append adds a cluster to the store, assigning it the next sequential
// creation-order ID. Append is called exactly once per newly formed
// cluster (rule 1 in the engine); a cluster is never re-appended.
func (s *ClusterStore) Append(c *domain.Cluster) {
	c.ID = s.nextID
	s.nextID++
	s.clusters = append(s.clusters, c)
}

// Remove deletes a cluster from the store by pointer identity.
func (s *ClusterStore) Remove(c *domain.Cluster) {
	for i, existing := range s.clusters {
		if existing == c {
			s.clusters = append(s.clusters[:i], s.clusters[i+1:]...)
			return
		}
	}
}

// Clusters returns the live clusters in insertion order of survivors.
func (s *ClusterStore) Clusters() []*domain.Cluster {
	return s.clusters
}
