// Package edit implements the Levenshtein edit-distance kernel: raw
// distance and a normalized similarity score derived from a backtracked
// aligned-length estimate. This is the O(l1*l2) dynamic-programming core
// the clustering engine and the neighbor-report mode both sit on top of.
package edit

import (
	"math"

	"github.com/baditaflorin/go_cluster_words/internal/pool"
)

var rowPool = pool.NewIntRowPool()

// foldByte applies ASCII-only lowercase folding; bytes outside A-Z pass
// through unchanged. No locale or multibyte handling, per spec.
func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Distance computes the raw Levenshtein edit distance between a and b with
// unit insertion/deletion/substitution costs and ASCII case folding.
func Distance(a, b []byte) int {
	m, row, stride := buildMatrix(a, b)
	defer rowPool.Put(row)
	return m[len(a)*stride+len(b)]
}

// NormalizedSimilarity computes the normalized similarity score in [0,1]:
// (Z - distance) / Z, where Z is the backtracked aligned-length estimate.
func NormalizedSimilarity(a, b []byte) float64 {
	_, sim := DistanceAndSimilarity(a, b)
	return sim
}

// DistanceAndSimilarity computes both the raw distance and the normalized
// similarity in one pass, sharing the DP matrix allocation between them.
// NormalizedSimilarity, which the clustering engine calls for every pair,
// is built on it and discards the distance.
func DistanceAndSimilarity(a, b []byte) (int, float64) {
	l1, l2 := len(a), len(b)
	if l1 == 0 && l2 == 0 {
		return 0, 1.0
	}

	m, row, stride := buildMatrix(a, b)
	defer rowPool.Put(row)

	distance := m[l1*stride+l2]
	if distance == 0 {
		return 0, 1.0
	}

	z := backtrackAlignedLength(m, stride, a, b)
	sim := (float64(z) - float64(distance)) / float64(z)
	return distance, clamp01(sim)
}

// buildMatrix fills the (|a|+1) x (|b|+1) Wagner-Fischer DP matrix, returning
// it flattened row-major together with the pooled backing row (caller must
// return it via rowPool.Put) and the row stride (|b|+1).
func buildMatrix(a, b []byte) ([]int, *[]int, int) {
	l1, l2 := len(a), len(b)
	stride := l2 + 1
	row := rowPool.Get(l1*stride + stride)
	m := *row

	for j := 0; j <= l2; j++ {
		m[j] = j
	}
	for i := 1; i <= l1; i++ {
		m[i*stride] = i
	}

	for i := 1; i <= l1; i++ {
		fa := foldByte(a[i-1])
		for j := 1; j <= l2; j++ {
			cost := 1
			if fa == foldByte(b[j-1]) {
				cost = 0
			}
			del := m[(i-1)*stride+j] + 1
			ins := m[i*stride+(j-1)] + 1
			sub := m[(i-1)*stride+(j-1)] + cost
			m[i*stride+j] = min3(del, ins, sub)
		}
	}

	return m, row, stride
}

// backtrackAlignedLength recovers Z per the spec's traceback rule: walk from
// (l1,l2) to (0,0) preferring diagonal, then up, then left; once either
// index hits zero, drain the remaining steps in the other dimension. The
// final Z = k - 1 off-by-one is deliberate (see DESIGN.md Open Questions).
func backtrackAlignedLength(m []int, stride int, a, b []byte) int {
	i, j := len(a), len(b)
	k := 0
	for i > 0 && j > 0 {
		cost := 1
		if foldByte(a[i-1]) == foldByte(b[j-1]) {
			cost = 0
		}
		switch {
		case m[i*stride+j] == m[(i-1)*stride+(j-1)]+cost:
			i--
			j--
		case m[i*stride+j] == m[(i-1)*stride+j]+1:
			i--
		default:
			j--
		}
		k++
	}
	for i > 0 {
		i--
		k++
	}
	for j > 0 {
		j--
		k++
	}
	return k - 1
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
