// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/usun/usunplanning/matrix"
)

// ExampleTransitiveClosure shows reachability through a chain 0→1→2.
func ExampleTransitiveClosure() {
	m, _ := matrix.NewSquare(4)
	for i := 0; i < 3; i++ {
		m.Grow()
	}
	_ = m.Set(0, 1, 5)
	_ = m.Set(1, 2, 9)

	closure, _ := matrix.TransitiveClosure(m)
	fmt.Print(closure)

	// Output:
	// 0,1,1
	// 0,0,1
	// 0,0,0
}

// ExampleSquare_Drop removes vertex 1 and shifts the later row and column down.
func ExampleSquare_Drop() {
	m, _ := matrix.NewSquare(3)
	for i := 0; i < 3; i++ {
		m.Grow()
	}
	_ = m.Set(0, 2, 7)
	_ = m.Set(2, 0, 4)

	_ = m.Drop(1)
	fmt.Print(m.Order(), "\n", m)

	// Output:
	// 2
	// 0,7
	// 4,0
}
