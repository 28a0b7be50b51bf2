// Package config loads the optional YAML knob-exposure file described in
// SPEC_FULL.md §6. It never alters core semantics, only the default
// constants the engine and neighbor-report mode use; grounded on
// gopkg.in/yaml.v3, the config format used elsewhere in the retrieved pack
// (fulmenhq-gofulmen, fiddeb-otlp_cardinality_checker).
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baditaflorin/go_cluster_words/internal/core/cluster"
	"github.com/baditaflorin/go_cluster_words/internal/neighbors"
)

// File is the on-disk shape of the optional config file.
type File struct {
	Epsilon    float64          `yaml:"epsilon"`
	IgnoreSize int              `yaml:"ignore_size"`
	Separators string           `yaml:"separators"`
	Neighbors  NeighborsSection `yaml:"neighbors"`
}

// NeighborsSection configures the degenerate neighbor-report mode.
type NeighborsSection struct {
	Delta            int `yaml:"delta"`
	ClusterThreshold int `yaml:"cluster_threshold"`
}

// Default returns a File populated with spec.md's canonical defaults.
func Default() File {
	return File{
		Epsilon:    cluster.DefaultEpsilon,
		IgnoreSize: cluster.DefaultIgnoreSize,
		Separators: " \r\n\t",
		Neighbors: NeighborsSection{
			Delta:            neighbors.DefaultDelta,
			ClusterThreshold: neighbors.DefaultClusterThreshold,
		},
	}
}

// Load reads and parses a YAML config file, starting from Default() so
// fields the file omits keep their canonical values.
func Load(path string) (File, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ClusterConfig projects the clustering engine's slice of the config.
func (f File) ClusterConfig() cluster.Config {
	return cluster.Config{Epsilon: f.Epsilon, IgnoreSize: f.IgnoreSize}
}

// NeighborsConfig projects the neighbor-report mode's slice of the config.
func (f File) NeighborsConfig() neighbors.Config {
	return neighbors.Config{Delta: f.Neighbors.Delta, ClusterThreshold: f.Neighbors.ClusterThreshold}
}
