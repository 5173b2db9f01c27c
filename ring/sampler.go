package ring

import (
	"encoding/binary"
	"math/bits"

	"github.com/fhelab/bfvcore/utils/sampling"
)

// UniformSampler wraps a sampling.PRNG and samples polynomials with
// coefficients uniform in [0, q).
type UniformSampler struct {
	prng     sampling.PRNG
	baseRing *Ring
	mask     uint64
	buff     []byte
	ptr      int
}

// NewUniformSampler creates a new instance of UniformSampler from a PRNG and
// a ring definition.
func NewUniformSampler(prng sampling.PRNG, baseRing *Ring) (u *UniformSampler) {
	return &UniformSampler{
		prng:     prng,
		baseRing: baseRing,
		mask:     (1 << uint64(bits.Len64(baseRing.Modulus-1))) - 1,
		buff:     make([]byte, 1024),
		ptr:      1024,
	}
}

// Read samples a polynomial with coefficients uniform in [0, q) on pol.
func (u *UniformSampler) Read(pol Poly) error {

	if err := u.baseRing.checkShape(pol); err != nil {
		return err
	}

	q := u.baseRing.Modulus

	for i := range pol.Coeffs {
		// Rejection sampling on the masked draw.
		for {
			c := u.next() & u.mask
			if c < q {
				pol.Coeffs[i] = c
				break
			}
		}
	}

	return nil
}

// ReadNew samples a new polynomial with coefficients uniform in [0, q).
func (u *UniformSampler) ReadNew() (Poly, error) {
	pol := NewPoly(u.baseRing.N)
	err := u.Read(pol)
	return pol, err
}

// next returns the next uint64 from the PRNG stream, refilling the internal
// buffer when it runs empty.
func (u *UniformSampler) next() uint64 {
	if u.ptr == len(u.buff) {
		if _, err := u.prng.Read(u.buff); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		u.ptr = 0
	}
	c := binary.LittleEndian.Uint64(u.buff[u.ptr:])
	u.ptr += 8
	return c
}
