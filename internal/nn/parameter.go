package nn

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Parameters holds every learnable value of the two-layer network.
//
// Shapes:
//   - W1: [input_dim, hidden_dim]
//   - B1: [hidden_dim]
//   - W2: [hidden_dim, output_dim]
//   - B2: [output_dim]
//
// Parameters are mutated in place by ApplyDelta and have exactly one writer
// while training runs. After training they are only read.
type Parameters struct {
	W1 *mat.Dense
	B1 *mat.VecDense
	W2 *mat.Dense
	B2 *mat.VecDense
}

// InitParameters allocates a fresh parameter set.
//
// Weights are drawn from U[0, scale) using rng, W1 first and then W2, each in
// row-major order. Biases start at zero.
//
// Returns ErrInvalidConfiguration if any dimension is not positive, if scale
// is not positive or if rng is nil.
func InitParameters(inputDim, hiddenDim, outputDim int, scale float64, rng Source) (*Parameters, error) {
	if inputDim <= 0 || hiddenDim <= 0 || outputDim <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration,
			"dimensions must be positive, got input=%d hidden=%d output=%d", inputDim, hiddenDim, outputDim)
	}
	if !(scale > 0) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "init scale must be positive, got %v", scale)
	}
	if rng == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "random source is required")
	}

	w1 := Uniform(inputDim, hiddenDim, scale, rng)
	w2 := Uniform(hiddenDim, outputDim, scale, rng)

	return &Parameters{
		W1: w1,
		B1: Zeros(hiddenDim),
		W2: w2,
		B2: Zeros(outputDim),
	}, nil
}

// Dims returns the input, hidden and output widths.
func (p *Parameters) Dims() (input, hidden, output int) {
	input, hidden = p.W1.Dims()
	_, output = p.W2.Dims()
	return input, hidden, output
}

// validate checks the shape invariants between the four tensors.
func (p *Parameters) validate() error {
	if p == nil || p.W1 == nil || p.B1 == nil || p.W2 == nil || p.B2 == nil {
		return errors.Wrap(ErrInvalidConfiguration, "parameters are incomplete")
	}
	_, hidden := p.W1.Dims()
	if p.B1.Len() != hidden {
		return mismatch("b1", hidden, p.B1.Len())
	}
	rows, output := p.W2.Dims()
	if rows != hidden {
		return mismatch("w2 rows", hidden, rows)
	}
	if p.B2.Len() != output {
		return mismatch("b2", output, p.B2.Len())
	}
	return nil
}

// ApplyDelta subtracts g from the parameters element-wise, in place.
//
// The deltas already include the learning rate (see Backward). If any delta
// is missing or has the wrong shape, ErrDimensionMismatch is returned and
// nothing is modified.
func (p *Parameters) ApplyDelta(g *Gradients) error {
	if p == nil {
		return errors.Wrap(ErrDimensionMismatch, "nil parameters")
	}
	if g == nil || g.DW1 == nil || g.DB1 == nil || g.DW2 == nil || g.DB2 == nil {
		return errors.Wrap(ErrDimensionMismatch, "gradients are incomplete")
	}
	if err := p.validate(); err != nil {
		return err
	}
	if err := sameShape("dW1", p.W1, g.DW1); err != nil {
		return err
	}
	if err := sameShape("dW2", p.W2, g.DW2); err != nil {
		return err
	}
	if g.DB1.Len() != p.B1.Len() {
		return mismatch("db1", p.B1.Len(), g.DB1.Len())
	}
	if g.DB2.Len() != p.B2.Len() {
		return mismatch("db2", p.B2.Len(), g.DB2.Len())
	}

	p.W2.Sub(p.W2, g.DW2)
	p.B2.SubVec(p.B2, g.DB2)
	p.W1.Sub(p.W1, g.DW1)
	p.B1.SubVec(p.B1, g.DB1)
	return nil
}

func sameShape(name string, want, got mat.Matrix) error {
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	if wr != gr || wc != gc {
		return errors.Wrapf(ErrDimensionMismatch, "%s: expected shape [%d, %d], got [%d, %d]", name, wr, wc, gr, gc)
	}
	return nil
}

// Clone returns a deep copy.
func (p *Parameters) Clone() *Parameters {
	return &Parameters{
		W1: mat.DenseCopyOf(p.W1),
		B1: mat.VecDenseCopyOf(p.B1),
		W2: mat.DenseCopyOf(p.W2),
		B2: mat.VecDenseCopyOf(p.B2),
	}
}

// Equal reports whether p and other are bit-for-bit identical.
func (p *Parameters) Equal(other *Parameters) bool {
	if p == nil || other == nil {
		return p == other
	}
	return sameDims(p.W1, other.W1) && mat.Equal(p.W1, other.W1) &&
		sameDims(p.W2, other.W2) && mat.Equal(p.W2, other.W2) &&
		p.B1.Len() == other.B1.Len() && mat.Equal(p.B1, other.B1) &&
		p.B2.Len() == other.B2.Len() && mat.Equal(p.B2, other.B2)
}

func sameDims(a, b mat.Matrix) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}
