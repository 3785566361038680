package tensor

import "fmt"

// Transpose2D swaps the two trailing axes; leading axes are carried through,
// so a [B, m, n] tensor becomes [B, n, m].
//
// Returns ErrInvalidRank for rank < 2.
func Transpose2D[T Numeric, R Rank](t *Tensor[T, R]) (*Tensor[T, R], error) {
	rank := len(t.shape)
	if rank < 2 {
		return nil, fmt.Errorf("transpose: %w: need at least 2 dimensions, got %d", ErrInvalidRank, rank)
	}

	rows, cols := t.shape[rank-2], t.shape[rank-1]
	outShape := t.shape.Clone()
	outShape[rank-2], outShape[rank-1] = cols, rows
	out := zeros[T, R](outShape)

	block := rows * cols
	if block == 0 {
		return out, nil
	}
	batches := len(t.data) / block
	for bi := 0; bi < batches; bi++ {
		src := t.data[bi*block : (bi+1)*block]
		dst := out.data[bi*block : (bi+1)*block]
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				dst[j*rows+i] = src[i*cols+j]
			}
		}
	}
	return out, nil
}

// Transpose is the method form of Transpose2D.
func (t *Tensor[T, R]) Transpose() (*Tensor[T, R], error) {
	return Transpose2D(t)
}
