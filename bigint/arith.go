//
// arith.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"fmt"
)

// Add computes x + y.
func Add(x, y *BigInt) *BigInt {
	if len(x.words) < len(y.words) {
		x, y = y, x
	}
	words := make([]uint32, len(x.words)+1)
	var carry uint64
	for i := 0; i < len(x.words); i++ {
		t := uint64(x.words[i]) + carry
		if i < len(y.words) {
			t += uint64(y.words[i])
		}
		words[i] = uint32(t)
		carry = t >> 32
	}
	words[len(x.words)] = uint32(carry)
	return &BigInt{
		words: trim(words),
	}
}

// Sub computes x - y. It fails with ErrUnderflow if x < y.
func Sub(x, y *BigInt) (*BigInt, error) {
	if x.Cmp(y) < 0 {
		return nil, ErrUnderflow
	}
	words := make([]uint32, len(x.words))
	var borrow uint64
	for i := 0; i < len(x.words); i++ {
		t := uint64(x.words[i]) - borrow
		if i < len(y.words) {
			t -= uint64(y.words[i])
		}
		words[i] = uint32(t)
		borrow = t >> 32 & 1
	}
	return &BigInt{
		words: trim(words),
	}, nil
}

// Mul computes x * y with the schoolbook word-by-word algorithm.
func Mul(x, y *BigInt) *BigInt {
	if x.IsZero() || y.IsZero() {
		return New(0)
	}
	words := make([]uint32, len(x.words)+len(y.words))
	for i, xw := range x.words {
		var carry uint64
		for j, yw := range y.words {
			t := uint64(xw)*uint64(yw) + uint64(words[i+j]) + carry
			words[i+j] = uint32(t)
			carry = t >> 32
		}
		words[i+len(y.words)] = uint32(carry)
	}
	return &BigInt{
		words: trim(words),
	}
}

// DivMod computes the quotient and remainder of x / y so that
// x = q*y + r and 0 <= r < y. It fails with ErrDivisionByZero if y is
// zero. The function verifies its own result and panics on any
// violation of the division invariant: such a failure is a defect in
// this package, not a caller error.
func DivMod(x, y *BigInt) (*BigInt, *BigInt, error) {
	if y.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	var q, r *BigInt

	switch {
	case x.Cmp(y) < 0:
		q = New(0)
		r = x.Clone()

	case len(y.words) == 1:
		words := make([]uint32, len(x.words))
		copy(words, x.words)
		rem := divWordInPlace(words, y.words[0])
		q = &BigInt{
			words: trim(words),
		}
		r = New(uint64(rem))

	default:
		// Binary long division, most-significant bit first.
		qw := make([]uint32, len(x.words))
		r = &BigInt{
			words: make([]uint32, 1, len(y.words)+1),
		}
		for i := x.BitLen() - 1; i >= 0; i-- {
			r.shl1InPlace()
			r.words[0] |= uint32(x.Bit(i))
			if r.Cmp(y) >= 0 {
				r.subInPlace(y)
				qw[i/32] |= 1 << uint(i%32)
			}
		}
		q = &BigInt{
			words: trim(qw),
		}
	}

	check := Add(Mul(q, y), r)
	if !check.Equal(x) || r.Cmp(y) >= 0 {
		panic(fmt.Sprintf(
			"bigint: division invariant violation: %v / %v => %v, %v",
			x, y, q, r))
	}
	return q, r, nil
}

// Mod computes x mod y.
func Mod(x, y *BigInt) (*BigInt, error) {
	_, r, err := DivMod(x, y)
	return r, err
}

// Shl computes x << count. It fails with ErrShiftRange if count is
// negative or greater than MaxShift.
func Shl(x *BigInt, count int) (*BigInt, error) {
	if count < 0 || count > MaxShift {
		return nil, fmt.Errorf("%w: %d", ErrShiftRange, count)
	}
	if count == 0 || x.IsZero() {
		return x.Clone(), nil
	}
	wordShift := count / 32
	bitShift := uint(count % 32)

	words := make([]uint32, len(x.words)+wordShift+1)
	for i, w := range x.words {
		words[i+wordShift] |= w << bitShift
		if bitShift > 0 {
			words[i+wordShift+1] |= w >> (32 - bitShift)
		}
	}
	return &BigInt{
		words: trim(words),
	}, nil
}

// Shr computes x >> count. It fails with ErrShiftRange if count is
// negative or greater than MaxShift.
func Shr(x *BigInt, count int) (*BigInt, error) {
	if count < 0 || count > MaxShift {
		return nil, fmt.Errorf("%w: %d", ErrShiftRange, count)
	}
	if count == 0 {
		return x.Clone(), nil
	}
	if count >= x.BitLen() {
		return New(0), nil
	}
	wordShift := count / 32
	bitShift := uint(count % 32)

	words := make([]uint32, len(x.words)-wordShift)
	for i := range words {
		words[i] = x.words[i+wordShift] >> bitShift
		if bitShift > 0 && i+wordShift+1 < len(x.words) {
			words[i] |= x.words[i+wordShift+1] << (32 - bitShift)
		}
	}
	return &BigInt{
		words: trim(words),
	}, nil
}

// Trunc returns the count least-significant bits of x.
func Trunc(x *BigInt, count int) *BigInt {
	if count <= 0 {
		return New(0)
	}
	numWords := (count + 31) / 32
	if numWords > len(x.words) {
		return x.Clone()
	}
	words := make([]uint32, numWords)
	copy(words, x.words[:numWords])
	if count%32 != 0 {
		words[numWords-1] &= 1<<uint(count%32) - 1
	}
	return &BigInt{
		words: trim(words),
	}
}

// shl1InPlace shifts x left by one bit in place.
func (x *BigInt) shl1InPlace() {
	var carry uint32
	for i := range x.words {
		next := x.words[i] >> 31
		x.words[i] = x.words[i]<<1 | carry
		carry = next
	}
	if carry != 0 {
		x.words = append(x.words, carry)
	}
}

// subInPlace subtracts y from x in place. The caller must ensure that
// x >= y.
func (x *BigInt) subInPlace(y *BigInt) {
	var borrow uint64
	for i := range x.words {
		t := uint64(x.words[i]) - borrow
		if i < len(y.words) {
			t -= uint64(y.words[i])
		}
		x.words[i] = uint32(t)
		borrow = t >> 32 & 1
	}
	x.words = trim(x.words)
}
