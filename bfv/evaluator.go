package bfv

import (
	"errors"
	"fmt"

	"github.com/fhelab/bfvcore/ring"
	"github.com/fhelab/bfvcore/utils/wideint"
)

// ErrRelinearizationNotImplemented is returned by Evaluator.Relinearize
// together with the truncated ciphertext: no key switching is performed, so
// the output must not be used for further homomorphic operations.
var ErrRelinearizationNotImplemented = errors.New("relinearization is not implemented: output is the raw degree-1 truncation")

// Evaluator computes homomorphic tensor products of ciphertexts for a fixed
// parameter set. An Evaluator is stateless beyond its immutable parameters:
// every call allocates its own accumulators, so concurrent calls on the same
// Evaluator are independent.
type Evaluator struct {
	params Parameters
}

// NewEvaluator creates a new Evaluator for the given parameters. The
// parameters must have been created with NewParameters.
func NewEvaluator(params Parameters) (*Evaluator, error) {
	if params.ringQ == nil {
		return nil, fmt.Errorf("%w: parameters were not created with NewParameters", ring.ErrInvalidParameter)
	}
	return &Evaluator{params: params}, nil
}

// Parameters returns the parameter set of the Evaluator.
func (eval *Evaluator) Parameters() Parameters {
	return eval.params
}

// MulNew multiplies ct0 by ct1 and returns the un-relinearized degree-2
// product (d0, d1, d2) = (scale(c1_0 (*) c2_0),
// scale(c1_0 (*) c2_1) + scale(c1_1 (*) c2_0), scale(c1_1 (*) c2_1)), where
// (*) is the exact negacyclic convolution and scale is the t/q
// round-to-nearest rescaling.
//
// The convolutions are evaluated by direct double summation rather than
// through the NTT so that the full intermediate precision is retained until
// after the rescaling.
func (eval *Evaluator) MulNew(ct0, ct1 *Ciphertext) (*Ciphertext, error) {

	if ct0.Degree() != 1 || ct1.Degree() != 1 {
		return nil, fmt.Errorf("%w: input ciphertexts must have degree 1, got %d and %d", ring.ErrShapeMismatch, ct0.Degree(), ct1.Degree())
	}

	N := eval.params.N()
	for _, ct := range []*Ciphertext{ct0, ct1} {
		for i := range ct.Value {
			if ct.Value[i].N() != N {
				return nil, fmt.Errorf("%w: ciphertext polynomial has %d coefficients, ring degree is %d", ring.ErrShapeMismatch, ct.Value[i].N(), N)
			}
		}
	}

	q := eval.params.q

	d0 := eval.tensorScale(ct0.Value[0].Coeffs, ct1.Value[0].Coeffs)
	d1a := eval.tensorScale(ct0.Value[0].Coeffs, ct1.Value[1].Coeffs)
	d1b := eval.tensorScale(ct0.Value[1].Coeffs, ct1.Value[0].Coeffs)
	d2 := eval.tensorScale(ct0.Value[1].Coeffs, ct1.Value[1].Coeffs)

	d1 := make([]uint64, N)
	for i := range d1 {
		d1[i] = ring.ModAdd(d1a[i], d1b[i], q)
	}

	return &Ciphertext{Value: []ring.Poly{
		{Coeffs: d0},
		{Coeffs: d1},
		{Coeffs: d2},
	}}, nil
}

// tensorScale computes the negacyclic convolution of a and b with exact
// 128-bit accumulation, then rescales every raw coefficient by t/q with
// round-to-nearest.
//
// The unwrapped slots (i+j < N) and the wrapped slots (i+j >= N, which carry
// a sign flip from X^N = -1) are accumulated in two separate 128-bit running
// sums and combined by a single signed subtraction only after the full
// summation: reducing modulo q term by term would lose the sign of
// wraparound terms before cancellation.
func (eval *Evaluator) tensorScale(a, b []uint64) []uint64 {

	N := eval.params.N()
	q := eval.params.q
	t := eval.params.t
	qHalf := q >> 1

	acc := make([]wideint.Uint128, 2*N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			acc[i+j] = wideint.Add128(acc[i+j], wideint.Mul64(a[i], b[j]))
		}
	}

	res := make([]uint64, N)
	for i := 0; i < N; i++ {

		plus, minus := acc[i], acc[N+i]

		var raw wideint.Uint128
		var negative bool
		if wideint.Cmp128(plus, minus) >= 0 {
			raw = wideint.Sub128(plus, minus)
		} else {
			raw = wideint.Sub128(minus, plus)
			negative = true
		}

		// scaled = floor((|raw|*t + q/2) / q) mod q, i.e. round-to-nearest
		// of |raw|*t/q with halves rounding up.
		numerator := wideint.Add192Scalar(wideint.Mul128x64(raw, t), qHalf)
		scaled := wideint.Div192ModQ(numerator, q)

		if negative && scaled != 0 {
			scaled = q - scaled
		}

		res[i] = scaled
	}

	return res
}

// Relinearize is the key-switching hook that a complete implementation would
// use to fold d2 back into a degree-1 ciphertext. The current implementation
// is an explicit stub: it discards d2, returns the pair (d0, d1) unmodified
// and always reports ErrRelinearizationNotImplemented so that callers cannot
// mistake the result for a noise-correct relinearized ciphertext.
func (eval *Evaluator) Relinearize(ct *Ciphertext, rlk *RelinearizationKey) (*Ciphertext, error) {

	if ct.Degree() != 2 {
		return nil, fmt.Errorf("%w: relinearization expects a degree-2 ciphertext, got degree %d", ring.ErrShapeMismatch, ct.Degree())
	}

	_ = rlk

	out := &Ciphertext{Value: []ring.Poly{
		ct.Value[0].CopyNew(),
		ct.Value[1].CopyNew(),
	}}

	return out, ErrRelinearizationNotImplemented
}
