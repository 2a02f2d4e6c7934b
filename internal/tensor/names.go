package tensor

import "slices"

// SetNames labels r's dimensions. Empty strings leave a dimension unnamed,
// and calling it with no names clears every label.
func (r *RawTensor) SetNames(names ...string) error {
	if len(names) == 0 {
		r.names = nil
		return nil
	}
	if len(names) != r.Dim() {
		return InvalidArgumentf("number of names (%d) must match the number of dimensions (%d)", len(names), r.Dim())
	}
	for i, name := range names {
		if name != "" && slices.Contains(names[:i], name) {
			return InvalidArgumentf("duplicate dimension name %q", name)
		}
	}
	r.names = slices.Clone(names)
	return nil
}

// Names returns the dimension labels, or nil when r carries none.
func (r *RawTensor) Names() []string {
	return r.names
}

// HasNames reports whether any dimension of r is labelled.
func (r *RawTensor) HasNames() bool {
	return slices.ContainsFunc(r.names, func(n string) bool { return n != "" })
}

// DimIndex resolves a dimension label to its position.
func (r *RawTensor) DimIndex(name string) (int, error) {
	if name != "" {
		if i := slices.Index(r.names, name); i >= 0 {
			return i, nil
		}
	}
	return 0, InvalidArgumentf("name '%s' not found in %v", name, r.names)
}

// PropagateNamesForReduction copies src's labels onto result after reducing dim.
// Nothing happens when src is unnamed.
func PropagateNamesForReduction(result, src *RawTensor, dim int, keepDim bool) {
	if result == nil || !src.HasNames() || src.Dim() == 0 {
		return
	}
	names := slices.Clone(src.names)
	if !keepDim {
		names = slices.Delete(names, dim, dim+1)
	}
	if len(names) == result.Dim() {
		result.names = names
	}
}
