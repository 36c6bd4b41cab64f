// SPDX-License-Identifier: MIT

package pqueue

import "math"

// MaxCapacity is the default storage ceiling. Storage doubles on growth, so a
// single request may not exceed MaxCapacity/2.
const MaxCapacity = math.MaxInt32 - 8

// DefaultCapacity is a reasonable capacity hint when the caller has none.
const DefaultCapacity = 16

// Option configures a HeapArray at construction time.
type Option func(*heapConfig)

type heapConfig struct {
	maxCapacity int
}

// WithMaxCapacity lowers the storage ceiling. Values <= 0 or above
// MaxCapacity are ignored.
func WithMaxCapacity(n int) Option {
	return func(c *heapConfig) {
		if n > 0 && n <= MaxCapacity {
			c.maxCapacity = n
		}
	}
}

func newHeapConfig(opts ...Option) heapConfig {
	cfg := heapConfig{maxCapacity: MaxCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
