// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides fixed-rank numeric arrays for the minnet toolkit.
//
// # Overview
//
// A Tensor[T, R] stores its elements in one flat row-major buffer. The
// element type T is any Numeric type and the rank is fixed by the marker
// type R (R1 to R4), so a matrix is a Tensor[float64, R2].
//
// # Basic Usage
//
//	a, _ := tensor.FromSlice[float64, tensor.R2]([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	b, _ := tensor.Full[float64, tensor.R2](10, 2, 3)
//
//	c, _ := a.Add(b)              // [[11 12 13] [14 15 16]]
//	t, _ := tensor.Transpose2D(a) // [3, 2]
//	p, _ := tensor.MatMul(a, t)   // [2, 2]
//
// # Broadcasting
//
// Elementwise operations accept operands of the same rank whose axis sizes
// either match or are 1 on one side:
//
//	[2, 3] + [1, 3] -> [2, 3]
//	[2, 1] * [1, 4] -> [2, 4]
//	[2, 3] + [4, 3] -> ErrIncompatibleShapes
//
// # Errors
//
// Every failure wraps one of the Err* sentinels of this package; test with
// errors.Is.
package tensor
