// Package tilemap is an in-memory toolkit for addressing and transforming
// contiguous 1-D buffers as 2-D grids — raw pixel data, game tilemaps,
// heightfields — without forcing a copy.
//
// 🚀 What is tilemap?
//
//	A small, pure-Go library that brings together:
//		• Geometry primitives: integer points and rectangles with clipping
//		• Grid contracts: one capability interface, two implementations
//		• View: zero-copy 2-D access over caller-owned memory
//		• Dense: owning, resizable storage with literal/fill/copy constructors
//		• Transforms: flip, 90° rotation, clipped sub-region transfer
//		• Rasterization: incremental line walking with a visitor callback
//		• Flood fill: breadth-first region growing bounded by a predicate
//
// ✨ Why choose tilemap?
//
//   - Zero-copy first – wrap existing image or map data, mutate it in place
//   - Forgiving by contract – out-of-range access clamps or no-ops, never errors
//   - Pure Go – no cgo, no hidden deps
//   - Generic – any value type works as a cell; mix view and owning grids freely
//
// Under the hood, everything is organized under two subpackages:
//
//	geom/ — Point and Rect value types with intersection/clipping
//	grid/ — Grid and Resizable contracts, View and Dense storage, algorithms
//
// Quick ASCII example:
//
//	. # # .
//	. . # .
//
//	a 4×2 grid: flood-fill from (0,0) with rule v == '.' reaches every
//	'.' left of the '#' wall and none beyond it.
//
// Dive into README.md for full examples and the feature matrix.
//
//	go get github.com/katalvlaran/tilemap/grid
package tilemap
