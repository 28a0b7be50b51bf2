// Package warmup runs the edit-distance kernel across a few goroutines
// before the HTTP façade starts accepting traffic, so the first real
// request doesn't pay for cold sync.Pool allocations. Adapted from the
// teacher's internal/warmup/warmup.Manager, which warmed up similarity
// calculators the same way; here there is exactly one kernel to warm
// instead of a registry of pluggable calculators, so the Manager collapses
// to a single function rather than keeping the registration API that no
// longer has more than one caller.
package warmup

import (
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_cluster_words/internal/core/edit"
	"github.com/baditaflorin/go_cluster_words/internal/ports"
)

// Config controls the warmup run.
type Config struct {
	Concurrency int
	Iterations  int
}

// DefaultConfig mirrors the teacher's defaults, scaled down: the kernel is
// cheap per call, so fewer iterations suffice to populate the pools.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  200,
	}
}

// Run exercises edit.DistanceAndSimilarity across Concurrency goroutines so
// the pooled DP rows it allocates are sized and warm by the time real
// traffic arrives.
func Run(logger ports.Logger, cfg Config) {
	start := time.Now()
	if logger != nil {
		logger.Info("warming up edit-distance kernel", "concurrency", cfg.Concurrency, "iterations", cfg.Iterations)
	}

	samples := [][2]string{
		{"saturday", "sunday"},
		{"abcdefg", "abcdefh"},
		{"xyzxyzx", "xyzxyzy"},
		{"hello world", "hello word"},
	}

	var wg sync.WaitGroup
	for i := 0; i < cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < cfg.Iterations; j++ {
				s := samples[j%len(samples)]
				_, _ = edit.DistanceAndSimilarity([]byte(s[0]), []byte(s[1]))
			}
		}()
	}
	wg.Wait()

	if logger != nil {
		logger.Info("warmup complete", "duration", time.Since(start))
	}
}
