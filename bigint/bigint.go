//
// bigint.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package bigint implements arbitrary-precision unsigned integers on
// top of 32-bit words. The representation is canonical: the word
// slice is little-endian and never carries superfluous leading zero
// words, and the value zero is always a single zero word. All
// operations return fresh values; arguments are never modified.
package bigint

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxShift is the largest shift amount, in bits, accepted by Shl and
// Shr. It bounds memory growth to four times the largest supported
// modulus width (4096 bits).
const MaxShift = 4 * 4096

var (
	// ErrParse is returned when a number cannot be parsed from its
	// textual representation.
	ErrParse = errors.New("bigint: invalid number")

	// ErrUnderflow is returned when a subtraction would produce a
	// negative value.
	ErrUnderflow = errors.New("bigint: underflow")

	// ErrDivisionByZero is returned on division by zero.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrShiftRange is returned when a shift amount is negative or
	// greater than MaxShift.
	ErrShiftRange = errors.New("bigint: shift amount out of range")
)

// BigInt is an arbitrary-precision unsigned integer.
type BigInt struct {
	// Words in little-endian order, base 2^32.
	words []uint32
}

// New creates a BigInt from the value v.
func New(v uint64) *BigInt {
	if v>>32 == 0 {
		return &BigInt{
			words: []uint32{uint32(v)},
		}
	}
	return &BigInt{
		words: []uint32{uint32(v), uint32(v >> 32)},
	}
}

// FromDecimal parses a decimal number.
func FromDecimal(val string) (*BigInt, error) {
	if len(val) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	result := New(0)
	for _, r := range val {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q", ErrParse, r)
		}
		result.mulAddWord(10, uint32(r-'0'))
	}
	return result, nil
}

// FromHex parses a hexadecimal number.
func FromHex(val string) (*BigInt, error) {
	if len(val) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	result := New(0)
	for _, r := range val {
		var digit uint32
		switch {
		case r >= '0' && r <= '9':
			digit = uint32(r - '0')
		case r >= 'a' && r <= 'f':
			digit = uint32(r-'a') + 10
		case r >= 'A' && r <= 'F':
			digit = uint32(r-'A') + 10
		default:
			return nil, fmt.Errorf("%w: %q", ErrParse, r)
		}
		result.mulAddWord(16, digit)
	}
	return result, nil
}

// FromBytes creates a BigInt from the big-endian bytes data. An empty
// input creates the value zero.
func FromBytes(data []byte) *BigInt {
	if len(data) == 0 {
		return New(0)
	}
	words := make([]uint32, (len(data)+3)/4)
	for i := 0; i < len(data); i++ {
		b := data[len(data)-1-i]
		words[i/4] |= uint32(b) << uint(8*(i%4))
	}
	return &BigInt{
		words: trim(words),
	}
}

// Clone returns a copy of x.
func (x *BigInt) Clone() *BigInt {
	words := make([]uint32, len(x.words))
	copy(words, x.words)
	return &BigInt{
		words: words,
	}
}

// IsZero tests if x is zero.
func (x *BigInt) IsZero() bool {
	return len(x.words) == 1 && x.words[0] == 0
}

// IsOdd tests if x is odd.
func (x *BigInt) IsOdd() bool {
	return x.words[0]&1 == 1
}

// BitLen returns the length of x in bits. The bit length of zero is
// zero.
func (x *BigInt) BitLen() int {
	top := x.words[len(x.words)-1]
	if top == 0 {
		return 0
	}
	return (len(x.words)-1)*32 + bits.Len32(top)
}

// Bit returns the value of the i'th bit of x.
func (x *BigInt) Bit(i int) uint {
	if i < 0 || i/32 >= len(x.words) {
		return 0
	}
	return uint(x.words[i/32]>>uint(i%32)) & 1
}

// Cmp compares x and y and returns -1, 0, or 1 when x is smaller
// than, equal to, or greater than y.
func (x *BigInt) Cmp(y *BigInt) int {
	if len(x.words) != len(y.words) {
		if len(x.words) < len(y.words) {
			return -1
		}
		return 1
	}
	for i := len(x.words) - 1; i >= 0; i-- {
		if x.words[i] != y.words[i] {
			if x.words[i] < y.words[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal tests if x and y are equal.
func (x *BigInt) Equal(y *BigInt) bool {
	return x.Cmp(y) == 0
}

// Uint64 returns the value of x as uint64. The result is undefined if
// x does not fit into 64 bits.
func (x *BigInt) Uint64() uint64 {
	v := uint64(x.words[0])
	if len(x.words) > 1 {
		v |= uint64(x.words[1]) << 32
	}
	return v
}

// Decimal formats x as a decimal number. The result has no leading
// zero digits except for the value zero itself.
func (x *BigInt) Decimal() string {
	if x.IsZero() {
		return "0"
	}
	words := make([]uint32, len(x.words))
	copy(words, x.words)

	var digits []byte
	for len(words) > 0 {
		r := divWordInPlace(words, 10)
		digits = append(digits, '0'+byte(r))
		for len(words) > 0 && words[len(words)-1] == 0 {
			words = words[:len(words)-1]
		}
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Hex formats x as a hexadecimal number. The result has no leading
// zero digits except for the value zero itself.
func (x *BigInt) Hex() string {
	result := fmt.Sprintf("%x", x.words[len(x.words)-1])
	for i := len(x.words) - 2; i >= 0; i-- {
		result += fmt.Sprintf("%08x", x.words[i])
	}
	return result
}

// Bytes returns the minimal big-endian byte representation of x. The
// representation of zero is the empty slice.
func (x *BigInt) Bytes() []byte {
	n := (x.BitLen() + 7) / 8
	data := make([]byte, n)
	for i := 0; i < n; i++ {
		data[n-1-i] = byte(x.words[i/4] >> uint(8*(i%4)))
	}
	return data
}

func (x *BigInt) String() string {
	return x.Decimal()
}

// Clear zeroizes the value of x.
func (x *BigInt) Clear() {
	for i := range x.words {
		x.words[i] = 0
	}
	x.words = x.words[:1]
}

// trim removes superfluous leading zero words, keeping the value zero
// as a single zero word.
func trim(words []uint32) []uint32 {
	i := len(words)
	for i > 1 && words[i-1] == 0 {
		i--
	}
	return words[:i]
}

// mulAddWord computes x = x*m + a in place.
func (x *BigInt) mulAddWord(m, a uint32) {
	carry := uint64(a)
	for i := range x.words {
		t := uint64(x.words[i])*uint64(m) + carry
		x.words[i] = uint32(t)
		carry = t >> 32
	}
	if carry != 0 {
		x.words = append(x.words, uint32(carry))
	}
}

// divWordInPlace divides words by d in place and returns the
// remainder. The divisor d must be non-zero.
func divWordInPlace(words []uint32, d uint32) uint32 {
	var r uint64
	for i := len(words) - 1; i >= 0; i-- {
		cur := r<<32 | uint64(words[i])
		words[i] = uint32(cur / uint64(d))
		r = cur % uint64(d)
	}
	return uint32(r)
}
