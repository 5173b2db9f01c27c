// Package wideint implements exact fixed-width 128-bit and 192-bit unsigned
// integer arithmetic on top of 64-bit limbs. All operations are carried out in
// software limb arithmetic through math/bits, so results are bit-exact on every
// platform regardless of the available hardware wide-multiply support.
package wideint

import (
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer stored as two 64-bit limbs.
type Uint128 struct {
	Hi, Lo uint64
}

// Uint192 is an unsigned 192-bit integer stored as three 64-bit limbs.
type Uint192 struct {
	Hi, Mid, Lo uint64
}

// Add128 returns a + b mod 2^128.
func Add128(a, b Uint128) (c Uint128) {
	var carry uint64
	c.Lo, carry = bits.Add64(a.Lo, b.Lo, 0)
	c.Hi, _ = bits.Add64(a.Hi, b.Hi, carry)
	return
}

// Sub128 returns a - b mod 2^128.
func Sub128(a, b Uint128) (c Uint128) {
	var borrow uint64
	c.Lo, borrow = bits.Sub64(a.Lo, b.Lo, 0)
	c.Hi, _ = bits.Sub64(a.Hi, b.Hi, borrow)
	return
}

// Cmp128 returns -1, 0 or 1 depending on whether a < b, a == b or a > b.
func Cmp128(a, b Uint128) int {
	switch {
	case a.Hi < b.Hi:
		return -1
	case a.Hi > b.Hi:
		return 1
	case a.Lo < b.Lo:
		return -1
	case a.Lo > b.Lo:
		return 1
	default:
		return 0
	}
}

// IsZero returns true if a == 0.
func (a Uint128) IsZero() bool {
	return a.Hi == 0 && a.Lo == 0
}

// Mul64 returns the full 128-bit product a * b.
func Mul64(a, b uint64) (c Uint128) {
	c.Hi, c.Lo = bits.Mul64(a, b)
	return
}

// Mul128x64 returns the full 192-bit product a * b.
func Mul128x64(a Uint128, b uint64) (c Uint192) {
	pLoHi, pLoLo := bits.Mul64(a.Lo, b)
	pHiHi, pHiLo := bits.Mul64(a.Hi, b)

	var carry uint64
	c.Lo = pLoLo
	c.Mid, carry = bits.Add64(pLoHi, pHiLo, 0)
	c.Hi = pHiHi + carry
	return
}

// Add192Scalar returns a + b mod 2^192, propagating the carry through all three limbs.
func Add192Scalar(a Uint192, b uint64) (c Uint192) {
	var carry uint64
	c.Lo, carry = bits.Add64(a.Lo, b, 0)
	c.Mid, carry = bits.Add64(a.Mid, 0, carry)
	c.Hi, _ = bits.Add64(a.Hi, 0, carry)
	return
}

// Div192ModQ returns floor(n / q) mod q.
//
// The numerator is divided limb by limb from the most-significant limb down,
// carrying remainders forward, which yields the quotient as three limb
// contributions quotHi*2^128 + quotMid*2^64 + quotLo without ever
// materializing a value wider than a native word. The contributions are then
// recombined modulo q through 2^64 mod q. Exact for any n and any q > 1.
func Div192ModQ(n Uint192, q uint64) uint64 {

	quotHi := n.Hi / q
	remHi := n.Hi % q

	quotMid, remMid := bits.Div64(remHi, n.Mid, q)
	quotLo, _ := bits.Div64(remMid, n.Lo, q)

	// radix = 2^64 mod q
	_, radix := bits.Div64(1, 0, q)

	r := mulMod(quotHi%q, mulMod(radix, radix, q), q)
	r = addMod(r, mulMod(quotMid%q, radix, q), q)
	r = addMod(r, quotLo%q, q)

	return r
}

// mulMod returns a * b mod q for a, b < q.
func mulMod(a, b, q uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, q)
	return rem
}

// addMod returns a + b mod q for a, b < q.
func addMod(a, b, q uint64) uint64 {
	r := a + b
	if r >= q {
		r -= q
	}
	return r
}
