package dataset

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidSplit is returned for a split ratio outside (0, 1).
var ErrInvalidSplit = errors.New("invalid split ratio")

// Split partitions d into a leading training part and a trailing held-out
// part.
//
// The training part holds ceil(Len*ratio) samples. Order is preserved and
// nothing is shuffled, so the same dataset always splits the same way. The
// returned datasets share backing rows with d.
func (d *Dataset) Split(ratio float64) (train, test *Dataset, err error) {
	if !(ratio > 0 && ratio < 1) {
		return nil, nil, errors.Wrapf(ErrInvalidSplit, "ratio must be in (0, 1), got %v", ratio)
	}
	n := int(math.Ceil(float64(d.Len()) * ratio))
	if n > d.Len() {
		n = d.Len()
	}
	train = &Dataset{Features: d.Features[:n:n], Labels: d.Labels[:n:n]}
	test = &Dataset{Features: d.Features[n:], Labels: d.Labels[n:]}
	return train, test, nil
}
