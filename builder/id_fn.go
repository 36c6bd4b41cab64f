// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its key. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn maps [0,25] to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// AlphanumericIDFn renders idx in base 36: 10→"a", 36→"10". Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	mustNonNegative("AlphanumericIDFn", idx)
	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn renders spreadsheet column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	mustNonNegative("ExcelColumnIDFn", idx)
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// HexIDFn renders idx in lowercase hexadecimal. Panics if idx < 0.
func HexIDFn(idx int) string {
	mustNonNegative("HexIDFn", idx)
	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns an IDFn producing prefix+decimal: "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		mustNonNegative("SymbolNumberIDFn", idx)
		return prefix + strconv.Itoa(idx)
	}
}

func mustNonNegative(fn string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("%s: idx must be ≥ 0, got %d", fn, idx))
	}
}

// WithDefaultIDs selects DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithHexIDs selects HexIDFn.
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDFn) }

// WithAlphanumericIDs selects AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }

// WithSymbNumb selects SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
