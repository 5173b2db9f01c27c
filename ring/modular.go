package ring

import (
	"fmt"
	"math/bits"
)

// This file implements scalar arithmetic modulo q. All operands are expected
// to be canonical residues in [0, q) unless stated otherwise, and q must be
// strictly smaller than 2^62 so that a single conditional correction never
// overflows.

// CRed returns a mod q, where a is required to be in the range [0, 2q-1].
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

// ModAdd returns a + b mod q.
func ModAdd(a, b, q uint64) uint64 {
	return CRed(a+b, q)
}

// ModSub returns a - b mod q.
func ModSub(a, b, q uint64) uint64 {
	return CRed(a+q-b, q)
}

// ModMul returns a * b mod q, reducing the full 128-bit product.
func ModMul(a, b, q uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, q)
	return rem
}

// ModExp performs the modular exponentiation base^exp mod q by square and multiply.
func ModExp(base, exp, q uint64) (r uint64) {
	base %= q
	r = 1
	for exp > 0 {
		if exp&1 == 1 {
			r = ModMul(r, base, q)
		}
		base = ModMul(base, base, q)
		exp >>= 1
	}
	return
}

// ModInv returns x such that a * x = 1 mod q, using the iterative extended
// Euclidean algorithm. It returns an error if gcd(a, q) != 1, which cannot
// happen for prime q and a != 0 mod q.
func ModInv(a, q uint64) (uint64, error) {

	a %= q
	if a == 0 {
		return 0, fmt.Errorf("%w: 0 has no inverse mod %d", ErrInvalidParameter, q)
	}

	// Invariants: r0 = s0*a mod q and r1 = s1*a mod q.
	r0, r1 := int64(a), int64(q)
	s0, s1 := int64(1), int64(0)

	for r1 != 0 {
		k := r0 / r1
		r0, r1 = r1, r0-k*r1
		s0, s1 = s1, s0-k*s1
	}

	if r0 != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d != 1", ErrInvalidParameter, a, q, r0)
	}

	if s0 < 0 {
		s0 += int64(q)
	}

	return uint64(s0), nil
}
