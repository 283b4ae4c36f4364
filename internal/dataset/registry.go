package dataset

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrUnknownClass is returned when encoding a label that is not registered.
var ErrUnknownClass = errors.New("unknown class")

// Order selects how class indices are assigned.
type Order int

const (
	// InsertionOrder numbers classes by first appearance.
	InsertionOrder Order = iota
	// SortedOrder numbers classes alphabetically.
	SortedOrder
)

// ParseOrder maps "insertion" or "sorted" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "insertion":
		return InsertionOrder, nil
	case "sorted":
		return SortedOrder, nil
	default:
		return InsertionOrder, errors.Errorf("unknown class order %q (want insertion or sorted)", s)
	}
}

// Registry is a fixed bijection between class names and indices 0..Len()-1.
//
// It is built once from the complete list of labels, before any label is
// encoded.
type Registry struct {
	names []string
	index map[string]int
}

// NewRegistry collects the distinct names in labels and numbers them.
func NewRegistry(labels []string, order Order) *Registry {
	names := lo.Uniq(labels)
	if order == SortedOrder {
		sort.Strings(names)
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return &Registry{names: names, index: index}
}

// Len returns the number of classes.
func (r *Registry) Len() int {
	return len(r.names)
}

// Index returns the index of name.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Name returns the class name for index i.
func (r *Registry) Name(i int) string {
	if i < 0 || i >= len(r.names) {
		return ""
	}
	return r.names[i]
}

// Names returns the class names in index order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// OneHot encodes name as a vector of length Len() with a single 1.
func (r *Registry) OneHot(name string) ([]float64, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownClass, "%q", name)
	}
	v := make([]float64, len(r.names))
	v[i] = 1
	return v, nil
}

// Encode one-hot encodes every label.
func (r *Registry) Encode(labels []string) ([][]float64, error) {
	out := make([][]float64, len(labels))
	for i, name := range labels {
		v, err := r.OneHot(name)
		if err != nil {
			return nil, errors.Wrapf(err, "label %d", i)
		}
		out[i] = v
	}
	return out, nil
}
