package ring

import (
	"github.com/fhelab/bfvcore/utils"
)

// Forward evaluates in place the forward negacyclic NTT of p.
//
// The coefficients are first twisted by the powers of Psi, which folds the
// negacyclic wraparound X^N = -1 into a standard cyclic transform, then a
// bit-reversal permutation and an iterative Cooley-Tukey butterfly over the
// Omega table are applied. O(N log N).
func (r *Ring) Forward(p Poly) error {

	if err := r.checkShape(p); err != nil {
		return err
	}

	q := r.Modulus
	coeffs := p.Coeffs

	for i := 0; i < r.N; i++ {
		coeffs[i] = ModMul(coeffs[i], r.PsiPowers[i], q)
	}

	r.butterflies(coeffs, r.OmegaPowers)

	return nil
}

// Backward evaluates in place the inverse negacyclic NTT of p: the butterfly
// network over the OmegaInv table, followed by the scaling by N^-1 and the
// untwisting by the powers of PsiInv.
func (r *Ring) Backward(p Poly) error {

	if err := r.checkShape(p); err != nil {
		return err
	}

	q := r.Modulus
	coeffs := p.Coeffs

	r.butterflies(coeffs, r.OmegaInvPowers)

	for i := 0; i < r.N; i++ {
		coeffs[i] = ModMul(ModMul(coeffs[i], r.NInv, q), r.PsiInvPowers[i], q)
	}

	return nil
}

// butterflies applies the bit-reversal permutation followed by the iterative
// Cooley-Tukey butterfly network, reading twiddle factors from the given
// root-of-unity power table with stride N/m at stage m.
func (r *Ring) butterflies(coeffs []uint64, roots []uint64) {

	N := r.N
	q := r.Modulus

	bitReverseInPlace(coeffs, uint64(r.logN))

	for m := 2; m <= N; m <<= 1 {

		half := m >> 1
		rootStep := N / m

		for k := 0; k < N; k += m {
			for j := 0; j < half; j++ {

				w := roots[j*rootStep]

				u := coeffs[k+j]
				v := ModMul(w, coeffs[k+j+half], q)

				coeffs[k+j] = ModAdd(u, v, q)
				coeffs[k+j+half] = ModSub(u, v, q)
			}
		}
	}
}

// bitReverseInPlace applies the bit-reversal permutation on coeffs.
func bitReverseInPlace(coeffs []uint64, bitLen uint64) {
	for i := range coeffs {
		if j := utils.BitReverse64(uint64(i), bitLen); uint64(i) < j {
			coeffs[i], coeffs[j] = coeffs[j], coeffs[i]
		}
	}
}
