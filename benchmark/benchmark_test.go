// Package benchmark holds standalone performance benchmarks for the
// edit-distance kernel and the clustering engine, kept out of the
// package-level _test.go files the way the teacher separates its
// benchmark suite from its unit tests.
package benchmark

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/baditaflorin/go_cluster_words/internal/core/edit"
	libcluster "github.com/baditaflorin/go_cluster_words/pkg/cluster"
)

// generateWords creates n space-separated pseudo-words of the given
// length, drawn from a fixed seed so benchmark runs are repeatable.
func generateWords(n, wordLen int) string {
	r := rand.New(rand.NewSource(42))
	alphabet := "abcdefghijklmnopqrstuvwxyz"
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		for j := 0; j < wordLen; j++ {
			sb.WriteByte(alphabet[r.Intn(len(alphabet))])
		}
	}
	return sb.String()
}

// BenchmarkDistance measures the raw Wagner-Fischer kernel across a range
// of word lengths.
func BenchmarkDistance(b *testing.B) {
	sizes := []int{4, 8, 16, 32, 64}
	for _, size := range sizes {
		a := []byte(strings.Repeat("a", size))
		bb := []byte(strings.Repeat("a", size-1) + "b")
		b.Run(fmt.Sprintf("len=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				edit.Distance(a, bb)
			}
		})
	}
}

// BenchmarkNormalizedSimilarity measures the combined distance-plus-
// backtrack path that the clustering engine calls for every pair.
func BenchmarkNormalizedSimilarity(b *testing.B) {
	a := []byte("saturday")
	bb := []byte("sunday")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		edit.NormalizedSimilarity(a, bb)
	}
}

// BenchmarkClusterText measures the end-to-end pipeline (tokenize, build
// the O(N^2) similarity matrix, drain the priority queue) across word
// table sizes.
func BenchmarkClusterText(b *testing.B) {
	sizes := []int{50, 100, 200}
	for _, n := range sizes {
		text := generateWords(n, 8)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			c := libcluster.New(libcluster.WithIgnoreSize(0))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := c.ClusterText(context.Background(), []byte(text)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
