package tensor

import "slices"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
// A shape containing a zero dimension has no elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative. Zero-size dimensions are legal.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return InvalidArgumentf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return append(Shape{}, s...)
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * max(s[i+1], 1)
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting rules over any number of shapes.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(1, 5) + (3, 5) + (5) → (3, 5)
//	(3, 0) + (1, 1) → (3, 0)
//	(3, 4) + (3, 5) → Error
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	rank := 0
	for _, s := range shapes {
		rank = max(rank, len(s))
	}

	result := make(Shape, rank)
	for i := range result {
		result[i] = 1
	}
	for _, s := range shapes {
		for i := 0; i < len(s); i++ {
			dim := s[len(s)-1-i]
			pos := rank - 1 - i
			switch {
			case dim == result[pos]:
			case result[pos] == 1:
				result[pos] = dim
			case dim == 1:
			default:
				return nil, InvalidArgumentf("shapes not compatible for broadcasting: %v (dimension %d: %d vs %d)",
					shapes, pos, result[pos], dim)
			}
		}
	}
	return result, nil
}

// WrapDim normalizes a possibly negative dimension index into [0, rank).
// Zero-dimensional tensors accept -1 and 0 and map both to 0.
func WrapDim(dim, rank int) (int, error) {
	r := max(rank, 1)
	if dim < -r || dim >= r {
		return 0, InvalidArgumentf("dimension out of range (expected to be in range of [%d, %d], but got %d)", -r, r-1, dim)
	}
	if dim < 0 {
		dim += r
	}
	return dim, nil
}

// ReduceShape returns the shape left after reducing dim.
// The reduced dimension becomes 1 with keepDim and is removed otherwise.
// Zero-dimensional shapes reduce to themselves.
func (s Shape) ReduceShape(dim int, keepDim bool) Shape {
	if len(s) == 0 {
		return Shape{}
	}
	if keepDim {
		out := s.Clone()
		out[dim] = 1
		return out
	}
	return slices.Delete(s.Clone(), dim, dim+1)
}
