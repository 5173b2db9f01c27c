package ring

import (
	"fmt"
	"math/big"

	"github.com/fhelab/bfvcore/utils"
)

// IsPrime applies the Baillie-PSW test, which is 100% accurate for numbers below 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// Factorize returns the sorted distinct prime factors of m by trial division.
func Factorize(m uint64) (factors []uint64) {

	set := map[uint64]bool{}

	for m&1 == 0 {
		set[2] = true
		m >>= 1
	}

	for p := uint64(3); p*p <= m; p += 2 {
		for m%p == 0 {
			set[p] = true
			m /= p
		}
	}

	if m > 1 {
		set[m] = true
	}

	return utils.GetSortedKeys(set)
}

// PrimitiveRoot returns the smallest element of Z_q of multiplicative order
// exactly `order`, for prime q with order dividing q-1. Candidates g = 2, 3, ...
// are raised to the power (q-1)/order, which yields an element whose order
// divides `order`; the order is exactly `order` iff no proper power
// g^((q-1)/p) with p a prime factor of `order` equals 1. Exhausting all
// candidates is an explicit error, never a zero sentinel.
func PrimitiveRoot(q, order uint64) (uint64, error) {

	if order == 0 || (q-1)%order != 0 {
		return 0, fmt.Errorf("%w: order %d does not divide q-1 = %d", ErrInvalidParameter, order, q-1)
	}

	factors := Factorize(order)

	for g := uint64(2); g < q; g++ {

		root := ModExp(g, (q-1)/order, q)

		isPrimitive := root != 0
		for _, p := range factors {
			if ModExp(root, order/p, q) == 1 {
				isPrimitive = false
				break
			}
		}

		if isPrimitive {
			return root, nil
		}
	}

	return 0, fmt.Errorf("%w: no primitive %d-th root of unity mod %d", ErrInvalidParameter, order, q)
}
