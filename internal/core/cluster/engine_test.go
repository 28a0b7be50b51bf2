package cluster

import (
	"testing"

	"github.com/baditaflorin/go_cluster_words/internal/adapters/queue"
	"github.com/baditaflorin/go_cluster_words/internal/adapters/store"
	"github.com/baditaflorin/go_cluster_words/internal/core/domain"
)

func newWords(tokens ...string) []*domain.Word {
	words := make([]*domain.Word, len(tokens))
	for i, tok := range tokens {
		words[i] = &domain.Word{Bytes: []byte(tok), Idx: i}
	}
	return words
}

func runEngine(t *testing.T, tokens ...string) ([]*domain.Word, []*domain.Cluster) {
	t.Helper()
	words := newWords(tokens...)
	q := queue.New(len(words) * len(words))
	matrix := BuildSimilarityMatrix(words, q)
	st := store.New()
	e := New(DefaultConfig(), words, matrix, q, st, nil)
	e.Run()
	return words, st.Clusters()
}

func clusterTexts(c *domain.Cluster) []string {
	out := make([]string, len(c.Members))
	for i, w := range c.Members {
		out[i] = string(w.Bytes)
	}
	return out
}

func containsAll(got []string, want ...string) bool {
	set := make(map[string]bool, len(got))
	for _, g := range got {
		set[g] = true
	}
	for _, w := range want {
		if !set[w] {
			return false
		}
	}
	return true
}

func TestFourIdenticalTokensFormOneCluster(t *testing.T) {
	_, clusters := runEngine(t, "hello", "hello", "hello", "hello")
	if len(clusters) != 1 {
		t.Fatalf("want 1 cluster, got %d", len(clusters))
	}
	if len(clusters[0].Members) != 4 {
		t.Fatalf("want 4 members, got %d", len(clusters[0].Members))
	}
}

func TestTwoZeroSimilarityWordsStillSeedOneCluster(t *testing.T) {
	// Rule 1 seeds unconditionally regardless of EPSILON.
	_, clusters := runEngine(t, "abcdefg", "zzzzzzz")
	if len(clusters) != 1 {
		t.Fatalf("want 1 cluster, got %d", len(clusters))
	}
	if len(clusters[0].Members) != 2 {
		t.Fatalf("want 2 members, got %d", len(clusters[0].Members))
	}
}

func TestTwoHighSimilarityPairsDoNotCrossMerge(t *testing.T) {
	_, clusters := runEngine(t, "abcdefg", "abcdefh", "xyzxyzx", "xyzxyzy")
	if len(clusters) != 2 {
		t.Fatalf("want 2 clusters, got %d", len(clusters))
	}
	for _, c := range clusters {
		texts := clusterTexts(c)
		if !(containsAll(texts, "abcdefg", "abcdefh") || containsAll(texts, "xyzxyzx", "xyzxyzy")) {
			t.Fatalf("unexpected cluster membership: %v", texts)
		}
		if len(texts) != 2 {
			t.Fatalf("expected clusters of size 2, got %v", texts)
		}
	}
}

func TestSingleWordAfterFilterProducesNoClusters(t *testing.T) {
	_, clusters := runEngine(t, "onlyoneword")
	if len(clusters) != 0 {
		t.Fatalf("want 0 clusters for N=1, got %d", len(clusters))
	}
}

func TestEmptyWordTableProducesNoClusters(t *testing.T) {
	_, clusters := runEngine(t)
	if len(clusters) != 0 {
		t.Fatalf("want 0 clusters for N=0, got %d", len(clusters))
	}
}

// TestAttachIsUnconditionalAcrossLowCrossSimilarity reproduces spec.md §8
// scenario 5: a three-word chain where rule 2 attaches w2 to {w0,w1} even
// though sim(w0,w2) would fall below EPSILON, because attach is never
// EPSILON-gated.
func TestAttachIsUnconditionalAcrossLowCrossSimilarity(t *testing.T) {
	words := newWords("aaaaaaaaaa", "aaaaaaaaab", "bbbbbbbbbb")
	q := queue.New(16)
	matrix := domain.NewMatrix(3)
	// Craft similarities directly rather than relying on the kernel, so the
	// chain shape from spec.md §8 scenario 5 is exact: high, high, low.
	matrix.Set(0, 1, 0.9)
	matrix.Set(1, 2, 0.9)
	matrix.Set(0, 2, 0.3)
	q.Push(domain.SimilarityRecord{I: 0, J: 1, S: 0.9})
	q.Push(domain.SimilarityRecord{I: 1, J: 2, S: 0.9})
	q.Push(domain.SimilarityRecord{I: 0, J: 2, S: 0.3})

	st := store.New()
	e := New(DefaultConfig(), words, matrix, q, st, nil)
	e.Run()

	clusters := st.Clusters()
	if len(clusters) != 1 {
		t.Fatalf("want 1 cluster, got %d", len(clusters))
	}
	if len(clusters[0].Members) != 3 {
		t.Fatalf("want 3 members, got %d", len(clusters[0].Members))
	}
}

// TestCompleteLinkageGuardBlocksMerge reproduces spec.md §8 scenario 6: two
// pre-formed clusters where one cross-pair falls below EPSILON must not
// merge even when the triggering record itself is above EPSILON.
func TestCompleteLinkageGuardBlocksMerge(t *testing.T) {
	words := newWords("a0", "a1", "b0", "b1")
	matrix := domain.NewMatrix(4)
	matrix.Set(0, 1, 0.9) // seeds cluster A = {a0,a1}
	matrix.Set(2, 3, 0.9) // seeds cluster B = {b0,b1}
	matrix.Set(0, 2, 0.7) // triggers rule 4
	matrix.Set(0, 3, 0.6)
	matrix.Set(1, 2, 0.6)
	matrix.Set(1, 3, 0.35) // below EPSILON: blocks the merge

	q := queue.New(16)
	q.Push(domain.SimilarityRecord{I: 0, J: 1, S: 0.9})
	q.Push(domain.SimilarityRecord{I: 2, J: 3, S: 0.9})
	q.Push(domain.SimilarityRecord{I: 0, J: 2, S: 0.7})

	st := store.New()
	e := New(DefaultConfig(), words, matrix, q, st, nil)
	e.Run()

	clusters := st.Clusters()
	if len(clusters) != 2 {
		t.Fatalf("want 2 clusters (merge must be blocked), got %d", len(clusters))
	}
}

func TestMatrixSymmetryAndDiagonal(t *testing.T) {
	words := newWords("alpha", "beta", "gamma")
	q := queue.New(16)
	matrix := BuildSimilarityMatrix(words, q)
	n := matrix.N()
	for i := 0; i < n; i++ {
		if matrix.Get(i, i) != 1.0 {
			t.Errorf("M[%d][%d] = %v, want 1.0", i, i, matrix.Get(i, i))
		}
		for j := 0; j < n; j++ {
			if matrix.Get(i, j) != matrix.Get(j, i) {
				t.Errorf("M[%d][%d] != M[%d][%d]", i, j, j, i)
			}
		}
	}
}

func TestQueuePopsNonIncreasing(t *testing.T) {
	words := newWords("saturday", "sunday", "sunny", "happy", "snowy")
	q := queue.New(32)
	BuildSimilarityMatrix(words, q)

	last := 1.1
	for q.Len() > 0 {
		rec, _ := q.Pop()
		if rec.S > last {
			t.Fatalf("queue popped increasing similarity: %v after %v", rec.S, last)
		}
		last = rec.S
	}
}

func TestClusterMembershipInvariant(t *testing.T) {
	words, clusters := runEngine(t, "saturday", "sunday", "sunny", "happy")
	for _, w := range words {
		if w.ClusterRef == nil {
			continue
		}
		found := false
		for _, m := range w.ClusterRef.Members {
			if m == w {
				found = true
			}
		}
		if !found {
			t.Errorf("word %q not found in its own ClusterRef.Members", w.Bytes)
		}
	}
	// Pairwise disjointness.
	for i, c1 := range clusters {
		for j, c2 := range clusters {
			if i == j {
				continue
			}
			for _, m1 := range c1.Members {
				for _, m2 := range c2.Members {
					if m1 == m2 {
						t.Errorf("clusters %d and %d share member %q", i, j, m1.Bytes)
					}
				}
			}
		}
	}
}
