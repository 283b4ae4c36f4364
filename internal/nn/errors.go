package nn

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned when a network is built from a
	// non-positive dimension, epoch count, learning rate or init scale.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDimensionMismatch is returned when a sample, label or delta does not
	// match the shape the network was configured with.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

func mismatch(what string, want, got int) error {
	return errors.Wrapf(ErrDimensionMismatch, "%s: expected length %d, got %d", what, want, got)
}
