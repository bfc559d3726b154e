//
// modexp.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mont

import (
	"github.com/markkurossi/rsa4096/bigint"
)

// Exp computes base^exp modulo the context modulus with the
// right-to-left binary method, processing exponent bits
// least-significant first. An active context runs the whole loop in
// Montgomery form; an inactive context falls back to plain
// divide-based reduction. A modulus of zero or one gives zero for any
// base and exponent.
func (ctx *Context) Exp(base, exp *bigint.BigInt) (*bigint.BigInt, error) {
	one := bigint.New(1)
	if ctx.n.Cmp(one) <= 0 {
		return bigint.New(0), nil
	}
	if exp.IsZero() {
		return one, nil
	}
	b, err := bigint.Mod(base, ctx.n)
	if err != nil {
		return nil, err
	}
	result := one
	if ctx.active {
		result, err = ctx.ToMont(result)
		if err != nil {
			return nil, err
		}
		b, err = ctx.ToMont(b)
		if err != nil {
			return nil, err
		}
	}
	e := exp.Clone()
	for !e.IsZero() {
		if e.IsOdd() {
			result, err = ctx.Mul(result, b)
			if err != nil {
				return nil, err
			}
		}
		e, err = bigint.Shr(e, 1)
		if err != nil {
			return nil, err
		}
		// The final squaring would never be used.
		if !e.IsZero() {
			b, err = ctx.Mul(b, b)
			if err != nil {
				return nil, err
			}
		}
	}
	if ctx.active {
		return ctx.FromMont(result)
	}
	return result, nil
}

// Exp computes base^exp mod n. The function builds a Montgomery
// context for n; callers doing repeated exponentiations with the same
// modulus should build the context once and use Context.Exp.
func Exp(base, exp, n *bigint.BigInt) (*bigint.BigInt, error) {
	ctx, err := NewContext(n)
	if err != nil {
		return nil, err
	}
	return ctx.Exp(base, exp)
}
