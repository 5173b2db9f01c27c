// Package ring implements arithmetic in the ring Z_q[X]/(X^N+1), with a
// negacyclic Number-Theoretic Transform for O(N log N) polynomial
// multiplication.
package ring

import (
	"fmt"
	"math/bits"
)

// MaxModulusBits is the largest supported bit-size for the modulus q,
// chosen so that a conditional add/sub reduction never overflows a uint64.
const MaxModulusBits = 61

// Ring is a structure storing the precomputed root-of-unity tables required
// to evaluate the negacyclic NTT for a given degree N and modulus q.
//
// A Ring is immutable once constructed: all operations only read the tables,
// so a constructed Ring is safe for concurrent use.
type Ring struct {

	// Ring degree, a power of two.
	N int

	// Modulus, a prime equal to 1 mod 2N.
	Modulus uint64

	// Primitive 2N-th root of unity mod Modulus and its inverse.
	Psi, PsiInv uint64

	// Primitive N-th root of unity Omega = Psi^2 mod Modulus and its inverse.
	Omega, OmegaInv uint64

	// N^-1 mod Modulus.
	NInv uint64

	// Successive powers Psi^i, Psi^-i, Omega^i, Omega^-i for i in [0, N).
	PsiPowers, PsiInvPowers     []uint64
	OmegaPowers, OmegaInvPowers []uint64

	logN int
}

// NewRing creates a new Ring of degree N and modulus q and precomputes its
// root-of-unity tables. It returns an error wrapping ErrInvalidParameter if N
// is not a power of two, q is not prime, q != 1 mod 2N, q exceeds
// MaxModulusBits bits, or no primitive 2N-th root of unity exists mod q.
func NewRing(N int, q uint64) (r *Ring, err error) {

	if N < 1 || N&(N-1) != 0 {
		return nil, fmt.Errorf("%w: ring degree %d is not a power of two", ErrInvalidParameter, N)
	}

	if bits.Len64(q) > MaxModulusBits {
		return nil, fmt.Errorf("%w: modulus %d exceeds %d bits", ErrInvalidParameter, q, MaxModulusBits)
	}

	if !IsPrime(q) {
		return nil, fmt.Errorf("%w: modulus %d is not prime", ErrInvalidParameter, q)
	}

	nthRoot := 2 * uint64(N)

	if (q-1)%nthRoot != 0 {
		return nil, fmt.Errorf("%w: modulus %d != 1 mod 2N = %d", ErrInvalidParameter, q, nthRoot)
	}

	r = &Ring{
		N:       N,
		Modulus: q,
		logN:    bits.Len64(uint64(N)) - 1,
	}

	if r.Psi, err = PrimitiveRoot(q, nthRoot); err != nil {
		return nil, err
	}

	if r.PsiInv, err = ModInv(r.Psi, q); err != nil {
		return nil, err
	}

	r.Omega = ModMul(r.Psi, r.Psi, q)

	if r.OmegaInv, err = ModInv(r.Omega, q); err != nil {
		return nil, err
	}

	if r.NInv, err = ModInv(uint64(N), q); err != nil {
		return nil, err
	}

	r.PsiPowers = genPowers(r.Psi, N, q)
	r.PsiInvPowers = genPowers(r.PsiInv, N, q)
	r.OmegaPowers = genPowers(r.Omega, N, q)
	r.OmegaInvPowers = genPowers(r.OmegaInv, N, q)

	return r, nil
}

// genPowers returns the table {1, x, x^2, ..., x^(n-1)} mod q.
func genPowers(x uint64, n int, q uint64) (powers []uint64) {
	powers = make([]uint64, n)
	powers[0] = 1
	for i := 1; i < n; i++ {
		powers[i] = ModMul(powers[i-1], x, q)
	}
	return
}

// IsValid returns true if the Ring holds a usable precomputation. Dependents
// should treat a false result as a fatal construction failure.
func (r *Ring) IsValid() bool {
	return r != nil && r.Psi != 0 && r.N > 0
}

// checkShape returns ErrShapeMismatch if any of the given polynomials does
// not have exactly N coefficients.
func (r *Ring) checkShape(polys ...Poly) error {
	for i := range polys {
		if len(polys[i].Coeffs) != r.N {
			return fmt.Errorf("%w: got %d coefficients, ring degree is %d", ErrShapeMismatch, len(polys[i].Coeffs), r.N)
		}
	}
	return nil
}
