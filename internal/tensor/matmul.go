package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// MatMul computes the batched matrix product of a and b.
//
// The last axis of a is contracted against the second-to-last axis of b. For
// rank > 2 every leading axis is a batch axis and must match between the
// operands. The result has a's shape with its last axis replaced by b's.
//
//	[m, k] @ [k, n]       → [m, n]
//	[B, m, k] @ [B, k, n] → [B, m, n]
//
// float32 and float64 storage goes through gonum's BLAS GEMM per batch;
// other element types use a naive triple loop. Accumulation happens in T.
func MatMul[T Numeric, R Rank](a, b *Tensor[T, R]) (*Tensor[T, R], error) {
	rank := len(a.shape)
	if rank < 2 {
		return nil, fmt.Errorf("matmul: %w: need at least 2 dimensions, got %d", ErrInvalidRank, rank)
	}

	for i := 0; i < rank-2; i++ {
		if a.shape[i] != b.shape[i] {
			return nil, fmt.Errorf("matmul: %w: %v @ %v (axis %d: %d vs %d)",
				ErrBatchMismatch, a.shape, b.shape, i, a.shape[i], b.shape[i])
		}
	}

	m, k := a.shape[rank-2], a.shape[rank-1]
	kAlt, n := b.shape[rank-2], b.shape[rank-1]
	if k != kAlt {
		return nil, fmt.Errorf("matmul: %w: %v @ %v (contracted %d vs %d)", ErrIncompatibleShapes, a.shape, b.shape, k, kAlt)
	}

	outShape := a.shape.Clone()
	outShape[rank-1] = n
	out := zeros[T, R](outShape)

	batches := a.shape[:rank-2].NumElements()
	if m == 0 || n == 0 || batches == 0 {
		return out, nil
	}

	for bi := 0; bi < batches; bi++ {
		as := a.data[bi*m*k : (bi+1)*m*k]
		bs := b.data[bi*k*n : (bi+1)*k*n]
		cs := out.data[bi*m*n : (bi+1)*m*n]
		gemm(cs, as, bs, m, k, n)
	}
	return out, nil
}

// MatMul is the method form of MatMul.
func (t *Tensor[T, R]) MatMul(other *Tensor[T, R]) (*Tensor[T, R], error) {
	return MatMul(t, other)
}

// gemm computes C = A·B for row-major A [m, k], B [k, n], C [m, n].
func gemm[T Numeric](c, a, b []T, m, k, n int) {
	if k == 0 {
		return
	}

	switch cd := any(c).(type) {
	case []float64:
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: m, Cols: k, Stride: k, Data: any(a).([]float64)},
			blas64.General{Rows: k, Cols: n, Stride: n, Data: any(b).([]float64)},
			0,
			blas64.General{Rows: m, Cols: n, Stride: n, Data: cd})
	case []float32:
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas32.General{Rows: m, Cols: k, Stride: k, Data: any(a).([]float32)},
			blas32.General{Rows: k, Cols: n, Stride: n, Data: any(b).([]float32)},
			0,
			blas32.General{Rows: m, Cols: n, Stride: n, Data: cd})
	default:
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var sum T
				for kIdx := 0; kIdx < k; kIdx++ {
					sum += a[i*k+kIdx] * b[kIdx*n+j]
				}
				c[i*n+j] = sum
			}
		}
	}
}
