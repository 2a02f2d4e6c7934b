package compare

import (
	"math"

	"k8s.io/klog/v2"

	"github.com/born-ml/compare/internal/dispatch"
	"github.com/born-ml/compare/internal/tensor"
)

// IsIn reports, for every element of elements, whether it occurs in testElements.
// The result is a Bool tensor shaped like elements. With invert the answers are negated.
//
// assumeUnique promises that both operands hold distinct values, which skips
// deduplication when the sort based algorithm is chosen. The result is unspecified
// if the promise does not hold.
//
// Example:
//
//	elements, _ := tensor.FromSlice([]int64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	test, _ := tensor.FromSlice([]int64{2, 3}, tensor.Shape{2})
//	mask, err := compare.IsIn(elements, test, false, false)
//	// mask = [[false, true], [true, false]]
func IsIn(elements, testElements *tensor.RawTensor, assumeUnique, invert bool) (*tensor.RawTensor, error) {
	return isIn("isin", elements, testElements, assumeUnique, invert, nil)
}

// IsInOut is IsIn writing into a Bool out.
func IsInOut(elements, testElements *tensor.RawTensor, assumeUnique, invert bool, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return isIn("isin", elements, testElements, assumeUnique, invert, out)
}

// IsInScalar compares every element of elements against a single test element.
func IsInScalar(elements *tensor.RawTensor, testElement tensor.Scalar, assumeUnique, invert bool) (*tensor.RawTensor, error) {
	return isInScalar("isin", elements, testElement, invert, nil)
}

// IsInScalarOut is IsInScalar writing into a Bool out.
func IsInScalarOut(elements *tensor.RawTensor, testElement tensor.Scalar, assumeUnique, invert bool, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return isInScalar("isin", elements, testElement, invert, out)
}

// ScalarIsIn reports whether element occurs in testElements, as a 0-d Bool tensor.
func ScalarIsIn(element tensor.Scalar, testElements *tensor.RawTensor, assumeUnique, invert bool) (*tensor.RawTensor, error) {
	return isIn("isin", tensor.WrappedScalar(element, testElements.Device()), testElements, assumeUnique, invert, nil)
}

// ScalarIsInOut is ScalarIsIn writing into a Bool out.
func ScalarIsInOut(element tensor.Scalar, testElements *tensor.RawTensor, assumeUnique, invert bool, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return isIn("isin", tensor.WrappedScalar(element, testElements.Device()), testElements, assumeUnique, invert, out)
}

// checkIsInDType rejects types without a total order to sort by.
func checkIsInDType(op string, dt tensor.DataType) error {
	if dt == tensor.Bool || dt.IsHalf() || dt.IsComplex() {
		return tensor.TypeErrorf("%s: unsupported input type encountered for isin(): %s", op, dt)
	}
	return nil
}

func planIsIn(op string, elements, testElements, out *tensor.RawTensor) (OutputDescriptor, error) {
	for _, r := range []*tensor.RawTensor{elements, testElements} {
		if err := checkIsInDType(op, r.DType()); err != nil {
			return OutputDescriptor{}, err
		}
	}
	if elements.Device() != testElements.Device() {
		return OutputDescriptor{}, tensor.InvalidArgumentf("%s: expected elements and test elements on the same device, got %s and %s",
			op, elements.Device(), testElements.Device())
	}
	desc := describe(elements.Shape(), tensor.Bool, elements.Device())
	if err := desc.check(op, out); err != nil {
		return OutputDescriptor{}, err
	}
	return desc, nil
}

// useBruteForce reports whether comparing every pair is expected to beat sorting,
// for n elements and m test elements.
func useBruteForce(n, m int) bool {
	return m < int(10*math.Pow(float64(n), 0.145))
}

func isIn(op string, elements, testElements *tensor.RawTensor, assumeUnique, invert bool, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	desc, err := planIsIn(op, elements, testElements, out)
	if err != nil {
		return nil, err
	}
	out = desc.allocate(out)
	n, m := elements.NumElements(), testElements.NumElements()
	if n == 0 {
		return out, nil
	}

	common := tensor.ResultType(elements, testElements)
	elements, testElements = tensor.Cast(elements, common), tensor.Cast(testElements, common)
	if useBruteForce(n, m) {
		klog.V(2).Infof("%s: comparing all pairs of %d elements and %d test elements", op, n, m)
		isInBruteForce(elements, testElements, invert, out)
		return out, nil
	}
	klog.V(2).Infof("%s: sorting %d elements and %d test elements", op, n, m)
	if err := isInSorting(elements, testElements, assumeUnique, invert, out); err != nil {
		return nil, wrapOp(op, err)
	}
	return out, nil
}

// isInBruteForce runs the pairwise kernel. Operands share a dtype.
func isInBruteForce(elements, testElements *tensor.RawTensor, invert bool, out *tensor.RawTensor) {
	dispatch.IsInDefault.Get(elements.Device())(elements, testElements, invert, out)
}

// isInScalar is a plain equality test, or inequality with invert.
func isInScalar(op string, elements *tensor.RawTensor, testElement tensor.Scalar, invert bool, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkIsInDType(op, elements.DType()); err != nil {
		return nil, err
	}
	if err := checkIsInDType(op, testElement.DType()); err != nil {
		return nil, err
	}
	desc := describe(elements.Shape(), tensor.Bool, elements.Device())
	if err := desc.check(op, out); err != nil {
		return nil, err
	}
	test := tensor.WrappedScalar(testElement, elements.Device())
	if invert {
		return ne(op, elements, test, out)
	}
	return eq(op, elements, test, out)
}
