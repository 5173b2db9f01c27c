package bfv

import (
	"github.com/fhelab/bfvcore/ring"
)

// Ciphertext is an RLWE ciphertext: a list of degree+1 ring elements.
// A fresh encryption is the degree-1 pair (c0, c1); the output of a
// multiplication is the degree-2 triple (d0, d1, d2) representing
// d0 + d1*s + d2*s^2 for the secret key s. The core never inspects the
// encryption semantics.
type Ciphertext struct {
	Value []ring.Poly
}

// NewCiphertext creates a new zero ciphertext of the given degree.
func NewCiphertext(params Parameters, degree int) *Ciphertext {
	ct := &Ciphertext{Value: make([]ring.Poly, degree+1)}
	for i := range ct.Value {
		ct.Value[i] = ring.NewPoly(params.N())
	}
	return ct
}

// Degree returns the degree of the ciphertext.
func (ct *Ciphertext) Degree() int {
	return len(ct.Value) - 1
}

// CopyNew creates a deep copy of the ciphertext.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	cp := &Ciphertext{Value: make([]ring.Poly, len(ct.Value))}
	for i := range ct.Value {
		cp.Value[i] = ct.Value[i].CopyNew()
	}
	return cp
}

// RelinearizationKey is the key-switching key that a complete relinearization
// would use to fold the degree-2 term back onto a degree-1 ciphertext. It is
// expected to be supplied by an external key-management layer; the current
// Evaluator.Relinearize does not consume it.
type RelinearizationKey struct {
	Value []ring.Poly
}
