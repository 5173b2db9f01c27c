package ring

// Add adds p1 to p2 coefficient wise and applies a modular reduction,
// returning the result on p3.
func (r *Ring) Add(p1, p2, p3 Poly) error {

	if err := r.checkShape(p1, p2, p3); err != nil {
		return err
	}

	q := r.Modulus
	for i := 0; i < r.N; i++ {
		p3.Coeffs[i] = CRed(p1.Coeffs[i]+p2.Coeffs[i], q)
	}

	return nil
}

// Sub subtracts p2 from p1 coefficient wise and applies a modular reduction,
// returning the result on p3.
func (r *Ring) Sub(p1, p2, p3 Poly) error {

	if err := r.checkShape(p1, p2, p3); err != nil {
		return err
	}

	q := r.Modulus
	for i := 0; i < r.N; i++ {
		p3.Coeffs[i] = CRed(p1.Coeffs[i]+q-p2.Coeffs[i], q)
	}

	return nil
}

// MulScalar multiplies each coefficient of p1 by scalar and applies a modular
// reduction, returning the result on p2.
func (r *Ring) MulScalar(p1 Poly, scalar uint64, p2 Poly) error {

	if err := r.checkShape(p1, p2); err != nil {
		return err
	}

	q := r.Modulus
	for i := 0; i < r.N; i++ {
		p2.Coeffs[i] = ModMul(p1.Coeffs[i], scalar, q)
	}

	return nil
}

// MulCoeffs multiplies p1 by p2 coefficient wise with a modular reduction,
// returning the result on p3.
func (r *Ring) MulCoeffs(p1, p2, p3 Poly) error {

	if err := r.checkShape(p1, p2, p3); err != nil {
		return err
	}

	q := r.Modulus
	for i := 0; i < r.N; i++ {
		p3.Coeffs[i] = ModMul(p1.Coeffs[i], p2.Coeffs[i], q)
	}

	return nil
}

// MulPoly multiplies p1 by p2 in Z_q[X]/(X^N+1) and returns the result on a
// new polynomial. The product is computed by forward-transforming copies of
// the operands, multiplying pointwise and inverse-transforming, which yields
// the exact negacyclic ring product in O(N log N).
func (r *Ring) MulPoly(p1, p2 Poly) (p3 Poly, err error) {

	if err = r.checkShape(p1, p2); err != nil {
		return
	}

	a := p1.CopyNew()
	b := p2.CopyNew()

	if err = r.Forward(a); err != nil {
		return
	}
	if err = r.Forward(b); err != nil {
		return
	}

	p3 = NewPoly(r.N)
	if err = r.MulCoeffs(a, b, p3); err != nil {
		return
	}

	err = r.Backward(p3)
	return
}

// MulPolyNaive multiplies p1 by p2 with a direct negacyclic convolution,
// returning the result on a new polynomial. O(N^2); used as a reference
// oracle for MulPoly.
func (r *Ring) MulPolyNaive(p1, p2 Poly) (p3 Poly, err error) {

	if err = r.checkShape(p1, p2); err != nil {
		return
	}

	q := r.Modulus
	N := r.N
	p3 = NewPoly(N)

	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {

			prod := ModMul(p1.Coeffs[i], p2.Coeffs[j], q)

			if i+j < N {
				p3.Coeffs[i+j] = ModAdd(p3.Coeffs[i+j], prod, q)
			} else {
				// X^N = -1
				p3.Coeffs[i+j-N] = ModSub(p3.Coeffs[i+j-N], prod, q)
			}
		}
	}

	return
}
