package ring

import (
	"errors"
)

// ErrInvalidParameter is returned when ring parameters cannot support a
// negacyclic NTT: N not a power of two, q not prime, q != 1 mod 2N, or no
// primitive 2N-th root of unity modulo q.
var ErrInvalidParameter = errors.New("invalid ring parameter")

// ErrShapeMismatch is returned when a caller-supplied polynomial does not have
// exactly N coefficients.
var ErrShapeMismatch = errors.New("polynomial degree does not match ring degree")
