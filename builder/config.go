// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// config.go — builderConfig and its default resolution.
//
// Contract:
//   • builderConfig is passed BY VALUE to every Constructor closure, so a
//     config resolved once in BuildGraph is safe to reuse across constructors
//     without aliasing surprises.
//   • newBuilderConfig applies BuilderOptions in order (later wins) over a
//     set of deterministic defaults, then resolves "use defaults" sentinels
//     (empty partition prefixes) before returning.

package builder

import (
	"math/rand"
)

// defaultLeftPrefix and defaultRightPrefix name the two sides of
// CompleteBipartite when WithPartitionPrefix is not given (or given empty).
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig holds the resolved, immutable parameters a Constructor reads.
type builderConfig struct {
	rng      *rand.Rand // optional RNG; nil means deterministic behavior
	idFn     IDFn       // function to generate vertex IDs from indices
	weightFn WeightFn   // function to generate edge weights

	leftPrefix, rightPrefix string // CompleteBipartite side labels

	amplitude, frequency float64 // reserved tuning knobs for future generators
	trendK, noiseSigma   float64
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each BuilderOption in order (later options override earlier ones).
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
