// SPDX-License-Identifier: MIT
package pqueue_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/usun/usunplanning/pqueue"
)

var benchSizes = []int{1 << 8, 1 << 12, 1 << 16}

// sinks to defeat dead-code elimination
var sinkKey int

func randomKeys(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Int()
	}

	return keys
}

func BenchmarkPushPoll(b *testing.B) {
	for _, n := range benchSizes {
		keys := randomKeys(n, 1337)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				h, err := pqueue.NewOrdered[int, struct{}](16)
				if err != nil {
					b.Fatal(err)
				}
				for _, k := range keys {
					if err = h.Push(k, struct{}{}); err != nil {
						b.Fatal(err)
					}
				}
				for !h.IsEmpty() {
					sinkKey, _ = h.PollKey()
				}
			}
		})
	}
}

func BenchmarkRemoveAt(b *testing.B) {
	const n = 1 << 12
	keys := randomKeys(n, 4242)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h, _ := pqueue.NewOrdered[int, struct{}](n)
		for _, k := range keys {
			_ = h.Push(k, struct{}{})
		}
		b.StartTimer()
		for !h.IsEmpty() {
			node, _ := h.RemoveAt(h.Size() / 2)
			sinkKey = node.Key
		}
	}
}
