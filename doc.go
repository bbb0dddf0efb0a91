// Package densematrix is a small, dependency-light home for a dense
// two-dimensional float64 container with value semantics.
//
// Under the hood, everything lives in one subpackage:
//
//	matrix/   — Dense: construction, Resize, Size, Row/At/Set, Equal, Add, Scale
//	examples/ — a runnable walk-through of the public surface
//
// Quick example:
//
//	a, _ := matrix.NewDense(2, 3, 1)
//	b, _ := matrix.NewDense(2, 3, 2)
//	sum, _ := matrix.Add(a, b)     // 2×3 of 3s
//	six, _ := matrix.Scale(sum, 2) // 2×3 of 6s
//
//	go get github.com/katalvlaran/densematrix
package densematrix
