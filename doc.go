// Package spacing turns a piecewise-linear "spacing versus position"
// function into a non-uniform distribution of N points on [0,1].
//
// 🚀 What is spacing?
//
//	A small, deterministic numerical library for one-dimensional grid
//	generation: you describe how dense the points should be at each
//	position, and the library places them. It brings together:
//		• Knot primitives: validated (position, spacing) control points
//		• Normalization: sorting, endpoint forcing, spacing floors
//		• Closed-form integration of 1/F(s) over each linear segment
//		• Exact rescaling to unit parametric length
//		• Per-point closed-form inversion back to physical positions
//
// ✨ Why choose spacing?
//
//   - Deterministic – closed-form math, no iteration, no tolerance tuning
//   - Rock-solid guarantees – pure functions, typed sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Safe near singularities – asymptotic branches where the exact
//     formulas become 0/0 indeterminate
//
// Under the hood, everything is organized under two subpackages:
//
//	knot/       — Knot and Sequence types, validation & normalization
//	distribute/ — integration, rescaling, inversion, and the Distribute pipeline
//
// Quick ASCII example:
//
//	F(s)  1.0 ┤●─────╮                 ╭─────●
//	          │      ╰───╮         ╭───╯
//	      0.2 ┤          ╰────●────╯
//	          └┬─────────────┬─────────────┬
//	           0            0.5            1
//
//	a dip in F around s=0.5 clusters the output points there.
//
// Dive into the package docs of knot and distribute for contracts,
// formulas, and complexity notes.
//
//	go get github.com/aeronauty/spacing
package spacing
