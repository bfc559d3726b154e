//
// egcd.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package mont implements Montgomery modular arithmetic: the extended
// Euclidean algorithm, Montgomery context setup with the REDC
// reduction, and modular exponentiation with a plain divide-based
// fallback for moduli that do not qualify for Montgomery form.
package mont

import (
	"errors"

	"github.com/markkurossi/rsa4096/bigint"
)

var (
	// ErrNoInverse is returned when a modular inverse does not exist
	// i.e. the argument and the modulus are not coprime.
	ErrNoInverse = errors.New("mont: modular inverse does not exist")
)

// signed is a signed-magnitude integer for the Bezout coefficients of
// the extended Euclidean algorithm. The coefficients can go negative
// even though all final results are non-negative.
type signed struct {
	abs *bigint.BigInt
	neg bool
}

// sub computes x - y.
func (x signed) sub(y signed) (signed, error) {
	if x.neg == y.neg {
		if x.abs.Cmp(y.abs) >= 0 {
			abs, err := bigint.Sub(x.abs, y.abs)
			if err != nil {
				return signed{}, err
			}
			return signed{
				abs: abs,
				neg: x.neg && !abs.IsZero(),
			}, nil
		}
		abs, err := bigint.Sub(y.abs, x.abs)
		if err != nil {
			return signed{}, err
		}
		return signed{
			abs: abs,
			neg: !y.neg,
		}, nil
	}
	return signed{
		abs: bigint.Add(x.abs, y.abs),
		neg: x.neg,
	}, nil
}

// mul computes x * m for a non-negative m.
func (x signed) mul(m *bigint.BigInt) signed {
	abs := bigint.Mul(x.abs, m)
	return signed{
		abs: abs,
		neg: x.neg && !abs.IsZero(),
	}
}

// extendedGCD computes gcd(a, b) and the Bezout coefficients x, y so
// that a*x + b*y = gcd(a, b).
func extendedGCD(a, b *bigint.BigInt) (
	g *bigint.BigInt, x, y signed, err error) {

	if a.IsZero() {
		return b.Clone(),
			signed{abs: bigint.New(0)},
			signed{abs: bigint.New(1)},
			nil
	}
	// b = q*a + r
	q, r, err := bigint.DivMod(b, a)
	if err != nil {
		return nil, signed{}, signed{}, err
	}
	g, x1, y1, err := extendedGCD(r, a)
	if err != nil {
		return nil, signed{}, signed{}, err
	}
	// g = r*x1 + a*y1 = (b-q*a)*x1 + a*y1 = a*(y1-q*x1) + b*x1
	x, err = y1.sub(x1.mul(q))
	if err != nil {
		return nil, signed{}, signed{}, err
	}
	return g, x, x1, nil
}

// GCD computes the greatest common divisor of a and b.
func GCD(a, b *bigint.BigInt) (*bigint.BigInt, error) {
	g, _, _, err := extendedGCD(a, b)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Inverse computes the modular inverse of a modulo m. The result is
// normalized into [0, m). It fails with ErrNoInverse if gcd(a, m) is
// not one.
func Inverse(a, m *bigint.BigInt) (*bigint.BigInt, error) {
	if m.IsZero() {
		return nil, ErrNoInverse
	}
	g, x, _, err := extendedGCD(a, m)
	if err != nil {
		return nil, err
	}
	if !g.Equal(bigint.New(1)) {
		return nil, ErrNoInverse
	}
	result, err := bigint.Mod(x.abs, m)
	if err != nil {
		return nil, err
	}
	if x.neg && !result.IsZero() {
		return bigint.Sub(m, result)
	}
	return result, nil
}
