package ring

// Poly is a polynomial of Z_q[X]/(X^N+1) stored as N canonical coefficients
// in [0, q).
type Poly struct {
	Coeffs []uint64
}

// NewPoly creates a new zero polynomial of degree N.
func NewPoly(N int) Poly {
	return Poly{Coeffs: make([]uint64, N)}
}

// N returns the number of coefficients of the polynomial.
func (pol Poly) N() int {
	return len(pol.Coeffs)
}

// CopyNew creates an exact copy of the target polynomial.
func (pol Poly) CopyNew() Poly {
	coeffs := make([]uint64, len(pol.Coeffs))
	copy(coeffs, pol.Coeffs)
	return Poly{Coeffs: coeffs}
}

// Copy copies the coefficients of p1 on the target polynomial.
// Both polynomials must have the same degree.
func (pol *Poly) Copy(p1 Poly) {
	copy(pol.Coeffs, p1.Coeffs)
}

// Equal returns true if the two polynomials are identical.
func (pol Poly) Equal(other Poly) bool {

	if len(pol.Coeffs) != len(other.Coeffs) {
		return false
	}

	for i := range pol.Coeffs {
		if pol.Coeffs[i] != other.Coeffs[i] {
			return false
		}
	}

	return true
}
