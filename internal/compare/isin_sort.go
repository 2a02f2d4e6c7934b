package compare

import (
	"cmp"
	"slices"

	"github.com/born-ml/compare/internal/dispatch"
	"github.com/born-ml/compare/internal/tensor"
)

// sortable is the set of element types isin accepts.
type sortable interface {
	uint8 | int8 | int16 | int32 | int64 | float32 | float64
}

// isInSorting finds matches by stable sorting elements followed by test elements:
// an element matches when its successor in sorted order is equal. Stability keeps
// every element ahead of the equal test elements, so a match is never hidden.
func isInSorting(elements, testElements *tensor.RawTensor, assumeUnique, invert bool, out *tensor.RawTensor) error {
	var (
		mask []bool
		err  error
	)
	switch elements.DType() {
	case tensor.Uint8:
		mask, err = sortedMembership[uint8](elements, testElements, assumeUnique, invert)
	case tensor.Int8:
		mask, err = sortedMembership[int8](elements, testElements, assumeUnique, invert)
	case tensor.Int16:
		mask, err = sortedMembership[int16](elements, testElements, assumeUnique, invert)
	case tensor.Int32:
		mask, err = sortedMembership[int32](elements, testElements, assumeUnique, invert)
	case tensor.Int64:
		mask, err = sortedMembership[int64](elements, testElements, assumeUnique, invert)
	case tensor.Float32:
		mask, err = sortedMembership[float32](elements, testElements, assumeUnique, invert)
	case tensor.Float64:
		mask, err = sortedMembership[float64](elements, testElements, assumeUnique, invert)
	default:
		return tensor.TypeErrorf("unsupported input type encountered for isin(): %s", elements.DType())
	}
	if err != nil {
		return err
	}
	copy(out.AsBool(), mask)
	return nil
}

func sortedMembership[T sortable](elements, testElements *tensor.RawTensor, assumeUnique, invert bool) ([]bool, error) {
	el, test := tensor.Data[T](elements), tensor.Data[T](testElements)
	var inverse []int
	if !assumeUnique {
		el, inverse = unique(el)
		test, _ = unique(test)
	}

	all := slices.Concat(el, test)
	order := make([]int, len(all))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return cmp.Compare(all[i], all[j])
	})
	sorted := make([]T, len(all))
	for k, i := range order {
		sorted[k] = all[i]
	}

	matches, err := adjacentMatches(sorted, invert, elements.Device())
	if err != nil {
		return nil, err
	}
	mask := make([]bool, len(all))
	for k, i := range order {
		mask[i] = matches[k]
	}
	mask = mask[:len(el)]

	if inverse == nil {
		return mask, nil
	}
	expanded := make([]bool, len(inverse))
	for i, u := range inverse {
		expanded[i] = mask[u]
	}
	return expanded, nil
}

// unique returns the distinct values of s in order of first occurrence, and for
// every position of s the index of its value in the result.
func unique[T sortable](s []T) (values []T, inverse []int) {
	position := make(map[T]int, len(s))
	inverse = make([]int, len(s))
	for i, v := range s {
		p, ok := position[v]
		if !ok {
			p = len(values)
			position[v] = p
			values = append(values, v)
		}
		inverse[i] = p
	}
	return values, inverse
}

// adjacentMatches compares every sorted value with its successor: equal marks a match,
// or unequal with invert. The last value has no successor and is set to invert.
func adjacentMatches[T sortable](sorted []T, invert bool, device tensor.Device) ([]bool, error) {
	n := len(sorted)
	matches := make([]bool, n)
	if n == 0 {
		return matches, nil
	}
	matches[n-1] = invert
	if n == 1 {
		return matches, nil
	}

	next, err := tensor.FromSliceOn(sorted[1:], tensor.Shape{n - 1}, device)
	if err != nil {
		return nil, err
	}
	cur, err := tensor.FromSliceOn(sorted[:n-1], tensor.Shape{n - 1}, device)
	if err != nil {
		return nil, err
	}
	stub := dispatch.Eq
	if invert {
		stub = dispatch.Ne
	}
	pairs, err := predicate("isin", stub, nil, next, cur)
	if err != nil {
		return nil, err
	}
	copy(matches, pairs.AsBool())
	return matches, nil
}
