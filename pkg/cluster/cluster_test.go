package cluster

import (
	"context"
	"testing"
)

func TestClusterTextGroupsSimilarWords(t *testing.T) {
	c := New(WithIgnoreSize(0))
	report, err := c.ClusterText(context.Background(), []byte("saturday sunday sunny happy"))
	if err != nil {
		t.Fatalf("ClusterText: %v", err)
	}
	if len(report.Words) != 4 {
		t.Fatalf("want 4 words, got %d", len(report.Words))
	}
	saturday, sunday := report.Words[0], report.Words[1]
	if saturday.ClusterRef == nil || saturday.ClusterRef != sunday.ClusterRef {
		t.Fatalf("want saturday and sunday in the same cluster")
	}
}

func TestClusterTextRespectsIgnoreSize(t *testing.T) {
	c := New(WithIgnoreSize(4))
	report, err := c.ClusterText(context.Background(), []byte("a bb ccc dddd eeeee"))
	if err != nil {
		t.Fatalf("ClusterText: %v", err)
	}
	// Only "eeeee" (len 5) survives the len <= 4 filter.
	if len(report.Words) != 1 {
		t.Fatalf("want 1 surviving word, got %d: %v", len(report.Words), report.Words)
	}
}

func TestClusterTextEmptyInputProducesNoWords(t *testing.T) {
	c := New()
	report, err := c.ClusterText(context.Background(), []byte("   \t\n "))
	if err != nil {
		t.Fatalf("ClusterText: %v", err)
	}
	if len(report.Words) != 0 {
		t.Fatalf("want 0 words, got %d", len(report.Words))
	}
	if len(report.Clusters) != 0 {
		t.Fatalf("want 0 clusters, got %d", len(report.Clusters))
	}
}

func TestWithEpsilonOverridesDefault(t *testing.T) {
	c := New(WithEpsilon(0.99), WithIgnoreSize(0))
	report, err := c.ClusterText(context.Background(), []byte("abcdefg abcdefh"))
	if err != nil {
		t.Fatalf("ClusterText: %v", err)
	}
	// Rule 1 always seeds the first pair regardless of EPSILON.
	if len(report.Clusters) != 1 {
		t.Fatalf("want 1 cluster, got %d", len(report.Clusters))
	}
}
