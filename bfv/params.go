// Package bfv implements the ciphertext-multiplication core of a BFV-style
// homomorphic encryption scheme: the degree-2 tensor product of two
// ciphertexts computed with exact extended-precision accumulation and
// rescaled from the plaintext modulus t to the ciphertext modulus q.
//
// Key generation, encryption, decryption and real relinearization are
// external collaborators and are not implemented here.
package bfv

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fhelab/bfvcore/ring"
)

// ErrPrecisionOverflow is returned at construction when the chosen (N, q, t)
// could make an intermediate tensoring value exceed the guaranteed 128/192-bit
// accumulator widths.
var ErrPrecisionOverflow = errors.New("parameters exceed extended-precision accumulator widths")

// Parameters holds a validated BFV parameter set.
type Parameters struct {
	logN int

	q, t  uint64
	delta uint64

	ringQ *ring.Ring
}

// NewParameters creates a new validated parameter set from the ring degree N,
// the ciphertext modulus q and the plaintext modulus t.
//
// It constructs the underlying NTT ring, which validates that N is a power of
// two and that q is an NTT-friendly prime (q = 1 mod 2N), and rejects with
// ErrPrecisionOverflow any (N, q, t) for which the convolution accumulators
// could overflow: each of the N products of a raw convolution slot is at most
// (q-1)^2, so N*(q-1)^2 must fit in 128 bits, and the rescaling numerator
// raw*t + q/2 must fit in 192 bits.
func NewParameters(N int, q, t uint64) (p Parameters, err error) {

	ringQ, err := ring.NewRing(N, q)
	if err != nil {
		return Parameters{}, err
	}

	if !ringQ.IsValid() {
		// Sanity check, NewRing returned without error.
		panic("bfv: NewRing produced an invalid ring")
	}

	if t < 2 || t >= q {
		return Parameters{}, fmt.Errorf("%w: plaintext modulus t = %d must satisfy 2 <= t < q = %d", ring.ErrInvalidParameter, t, q)
	}

	// maxRaw = N * (q-1)^2, the largest magnitude of a raw convolution
	// accumulator half.
	qMinusOne := new(big.Int).SetUint64(q - 1)
	maxRaw := new(big.Int).Mul(qMinusOne, qMinusOne)
	maxRaw.Mul(maxRaw, big.NewInt(int64(N)))

	if maxRaw.BitLen() > 128 {
		return Parameters{}, fmt.Errorf("%w: N*(q-1)^2 needs %d bits > 128", ErrPrecisionOverflow, maxRaw.BitLen())
	}

	// The rescaling numerator maxRaw*t + q/2 must fit in 192 bits.
	numerator := new(big.Int).Mul(maxRaw, new(big.Int).SetUint64(t))
	numerator.Add(numerator, new(big.Int).SetUint64(q>>1))

	if numerator.BitLen() > 192 {
		return Parameters{}, fmt.Errorf("%w: N*(q-1)^2*t + q/2 needs %d bits > 192", ErrPrecisionOverflow, numerator.BitLen())
	}

	logN := 0
	for 1<<logN < N {
		logN++
	}

	return Parameters{
		logN:  logN,
		q:     q,
		t:     t,
		delta: q / t,
		ringQ: ringQ,
	}, nil
}

// N returns the ring degree.
func (p Parameters) N() int {
	return 1 << p.logN
}

// LogN returns log2 of the ring degree.
func (p Parameters) LogN() int {
	return p.logN
}

// Q returns the ciphertext modulus.
func (p Parameters) Q() uint64 {
	return p.q
}

// T returns the plaintext modulus.
func (p Parameters) T() uint64 {
	return p.t
}

// Delta returns the plaintext scaling factor floor(q/t).
func (p Parameters) Delta() uint64 {
	return p.delta
}

// RingQ returns the underlying NTT ring.
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}
