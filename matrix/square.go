// SPDX-License-Identifier: MIT
// File: square.go
// Role: Square integer matrix with paired row/column growth and removal.
// Policy:
//   - Shape is always n×n; Grow and Drop are the only shape-changing operations.
//   - Each row slice is allocated with capacity max(n, hint) so appending a
//     column stays amortized O(1) until the hint is exceeded (grow-to-fit).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Square is an n×n matrix of int values stored as one slice per row.
//
// Rows are kept as separate slices (not one flat buffer) because Grow and Drop
// change the row length; a flat buffer would need an O(n²) repack on each call.
type Square struct {
	hint int     // expected maximum order; used for row capacity
	rows [][]int // rows[i][j] is the cell (i, j); len(rows) == len(rows[i]) == n
}

// NewSquare creates an empty 0×0 matrix that expects to grow up to hint.
//
// Errors:
//   - ErrBadShape: hint <= 0.
//
// Complexity: O(1) time, O(hint) space for the row directory.
func NewSquare(hint int) (*Square, error) {
	if hint <= 0 {
		return nil, fmt.Errorf("NewSquare(%d): %w", hint, ErrBadShape)
	}

	return &Square{hint: hint, rows: make([][]int, 0, hint)}, nil
}

// Order returns n, the number of rows (== columns).
// Complexity: O(1).
func (m *Square) Order() int {
	return len(m.rows)
}

// Hint returns the capacity hint the matrix was created with.
func (m *Square) Hint() int {
	return m.hint
}

// At retrieves the cell (i, j).
// Complexity: O(1).
func (m *Square) At(i, j int) (int, error) {
	if err := validateCell("At", i, j, len(m.rows)); err != nil {
		return 0, err
	}

	return m.rows[i][j], nil
}

// Set assigns v to the cell (i, j).
// Complexity: O(1).
func (m *Square) Set(i, j, v int) error {
	if err := validateCell("Set", i, j, len(m.rows)); err != nil {
		return err
	}
	m.rows[i][j] = v

	return nil
}

// Get is the unchecked hot-path accessor used by graph algorithms that already
// hold validated indices. An out-of-range index is a programming error and panics.
func (m *Square) Get(i, j int) int {
	return m.rows[i][j]
}

// Put is the unchecked counterpart of Set.
func (m *Square) Put(i, j, v int) {
	m.rows[i][j] = v
}

// Row returns a copy of row i.
// Complexity: O(n).
func (m *Square) Row(i int) ([]int, error) {
	if err := validateIndex("Row", i, len(m.rows)); err != nil {
		return nil, err
	}
	out := make([]int, len(m.rows[i]))
	copy(out, m.rows[i])

	return out, nil
}

// Grow appends one zero column to every row and one zero row at the bottom,
// returning the index of the new row/column.
//
// Complexity: O(n) amortized while n < hint; O(n²) when rows must be reallocated.
func (m *Square) Grow() int {
	n := len(m.rows)
	var i int
	for i = 0; i < n; i++ {
		m.rows[i] = append(m.rows[i], 0)
	}
	m.rows = append(m.rows, make([]int, n+1, m.rowCap(n+1)))

	return n
}

// Drop removes row i and column i. Every later row/column shifts down by one.
//
// Errors:
//   - ErrOutOfRange: i outside [0, n).
//
// Complexity: O(n²) worst case (column shift in every row).
func (m *Square) Drop(i int) error {
	n := len(m.rows)
	if err := validateIndex("Drop", i, n); err != nil {
		return err
	}
	// Remove the row; the tail is shifted left and the vacated slot released.
	copy(m.rows[i:], m.rows[i+1:])
	m.rows[n-1] = nil
	m.rows = m.rows[:n-1]
	// Remove the column from every remaining row.
	var r int
	for r = range m.rows {
		row := m.rows[r]
		copy(row[i:], row[i+1:])
		m.rows[r] = row[:len(row)-1]
	}

	return nil
}

// Clone returns a deep copy with the same hint.
// Complexity: O(n²).
func (m *Square) Clone() *Square {
	n := len(m.rows)
	out := &Square{hint: m.hint, rows: make([][]int, n, m.rowCap(n))}
	var i int
	for i = 0; i < n; i++ {
		row := make([]int, n, m.rowCap(n))
		copy(row, m.rows[i])
		out.rows[i] = row
	}

	return out
}

// Equal reports whether both matrices have the same order and cells.
func (m *Square) Equal(o *Square) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.rows) != len(o.rows) {
		return false
	}
	var i, j int
	for i = range m.rows {
		for j = range m.rows[i] {
			if m.rows[i][j] != o.rows[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders one comma-separated row per line. Debug only.
func (m *Square) String() string {
	var sb strings.Builder
	var i, j int
	for i = range m.rows {
		for j = range m.rows[i] {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(m.rows[i][j]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// rowCap is the capacity used for a row of length n.
func (m *Square) rowCap(n int) int {
	return max(n, m.hint)
}
