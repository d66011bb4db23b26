// Package builder provides ID schemes for graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero‐based index.
// It must be pure: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
