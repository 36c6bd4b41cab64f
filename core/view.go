// SPDX-License-Identifier: MIT
// File: view.go
// Role: Debug rendering of the graph internals.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the key header, one matrix row per line followed by its key,
// and the key→position index in position order. Debug output only; the
// format is not stable.
//
//	A,B
//	0,1 A
//	1,0 B
//	index: A=0 B=1
func (g *Graph[K, V]) String() string {
	var sb strings.Builder
	n := len(g.vertices)
	var i, j int
	for i = 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, g.vertices[i].Key)
	}
	sb.WriteByte('\n')
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(g.adj.Get(i, j)))
		}
		fmt.Fprintf(&sb, " %v\n", g.vertices[i].Key)
	}
	sb.WriteString("index:")
	for i = 0; i < n; i++ {
		fmt.Fprintf(&sb, " %v=%d", g.vertices[i].Key, g.index[g.vertices[i].Key])
	}

	return sb.String()
}
