package tensor

import "github.com/pkg/errors"

// Error kinds reported by validation. Test with errors.Is.
var (
	// ErrInvalidArgument reports a missing operand, a bad tolerance, an empty
	// reduction dimension, or an output that does not match its input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrType reports an element type the operation does not accept.
	ErrType = errors.New("type error")

	// ErrUnsupportedDevice reports a device or layout without an implementation.
	ErrUnsupportedDevice = errors.New("unsupported device")
)

// InvalidArgumentf returns an error wrapping ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// TypeErrorf returns an error wrapping ErrType.
func TypeErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrType, format, args...)
}

// UnsupportedDevicef returns an error wrapping ErrUnsupportedDevice.
func UnsupportedDevicef(format string, args ...any) error {
	return errors.Wrapf(ErrUnsupportedDevice, format, args...)
}
