// Package lazuli is a compact toolkit for grid and combinatorics problems —
// the kind that show up in puzzle solvers, map analysis, and olympiad-style
// batch programs.
//
// 🚀 What is lazuli?
//
//	A small, focused library that brings together:
//		• Lazy integer ranges: loop over [left,right) without the boilerplate
//		• Base-N digit decomposition: peel digits off an integer lazily
//		• Permutation enumeration: all n! arrangements in lexicographic-successor order
//		• Grid: a 2-D character matrix with flood fill, connected-component
//		  sizing, pattern search, and text round-trip I/O
//
// ✨ Why choose lazuli?
//
//   - Terse call sites – one-liners where a hand-rolled loop would go
//   - Deterministic – fixed neighbor order, reproducible traversal traces
//   - Safe – sentinel errors instead of out-of-bounds reads
//   - Pure Go core – the library itself has no runtime dependencies
//
// Everything is organized under two subpackages plus command-line tooling:
//
//	seq/  — Range, BaseN, Permut generators and Factorial
//	grid/ — the Grid matrix, Cell handles, Walk, ConnArea, Next, Stat
//	cmd/  — gridstat (batch component statistics), gridshell (interactive explorer)
//
// Quick ASCII example:
//
//	    AAB
//	    ABB
//
//	holds two 4-connected regions of size 3 each.
//
// Dive into the per-package docs for full examples and complexity notes.
//
//	go get github.com/katalvlaran/lazuli
package lazuli
