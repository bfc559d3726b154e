//
// context.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package mont

import (
	"github.com/markkurossi/rsa4096/bigint"
)

// MaxModulusBits is the largest supported modulus width in bits.
const MaxModulusBits = 4096

// Context holds the precomputed Montgomery constants for one fixed
// modulus. The context is immutable once built. An inactive context
// carries only the modulus and routes all operations through plain
// divide-based reduction.
type Context struct {
	n      *bigint.BigInt
	rBits  int
	nInv   *bigint.BigInt // n': n*n' == -1 (mod R)
	rModN  *bigint.BigInt
	r2ModN *bigint.BigInt
	active bool
}

// Usable tests if the modulus n qualifies for Montgomery arithmetic:
// n must be odd and at least 3. Note that the size of n does not
// matter; only parity and the minimum value do.
func Usable(n *bigint.BigInt) bool {
	return n.IsOdd() && n.Cmp(bigint.New(3)) >= 0
}

// NewContext creates a Montgomery context for the modulus n. If n
// does not satisfy Usable, the context is created inactive and every
// operation falls back to plain reduction.
func NewContext(n *bigint.BigInt) (*Context, error) {
	ctx := &Context{
		n: n.Clone(),
	}
	if !Usable(n) {
		return ctx, nil
	}
	// R is the smallest word-aligned power of two strictly greater
	// than n.
	ctx.rBits = (n.BitLen() + 31) / 32 * 32

	r, err := bigint.Shl(bigint.New(1), ctx.rBits)
	if err != nil {
		return nil, err
	}
	// n is odd so it has an inverse modulo R. n' = R - n^-1 mod R
	// satisfies n*n' == -1 (mod R).
	inv, err := Inverse(ctx.n, r)
	if err != nil {
		return nil, err
	}
	ctx.nInv, err = bigint.Sub(r, inv)
	if err != nil {
		return nil, err
	}
	// R mod n and R^2 mod n by repeated doubling and reduction.
	x := bigint.New(1)
	for i := 0; i < ctx.rBits; i++ {
		x, err = ctx.doubleMod(x)
		if err != nil {
			return nil, err
		}
	}
	ctx.rModN = x

	x = x.Clone()
	for i := 0; i < ctx.rBits; i++ {
		x, err = ctx.doubleMod(x)
		if err != nil {
			return nil, err
		}
	}
	ctx.r2ModN = x
	ctx.active = true

	return ctx, nil
}

// Active tests if Montgomery arithmetic is enabled for the modulus.
func (ctx *Context) Active() bool {
	return ctx.active
}

// Modulus returns the modulus the context is bound to.
func (ctx *Context) Modulus() *bigint.BigInt {
	return ctx.n
}

// ToMont converts x into Montgomery form x*R mod n. The argument must
// be reduced modulo n. For an inactive context the value is returned
// unchanged.
func (ctx *Context) ToMont(x *bigint.BigInt) (*bigint.BigInt, error) {
	if !ctx.active {
		return x.Clone(), nil
	}
	return ctx.redc(bigint.Mul(x, ctx.r2ModN))
}

// FromMont converts x out of Montgomery form. For an inactive context
// the value is returned unchanged.
func (ctx *Context) FromMont(x *bigint.BigInt) (*bigint.BigInt, error) {
	if !ctx.active {
		return x.Clone(), nil
	}
	return ctx.redc(x)
}

// Mul computes the modular product of x and y. For an active context
// both arguments must be in Montgomery form and the result is in
// Montgomery form. For an inactive context this is the plain
// (x*y) mod n.
func (ctx *Context) Mul(x, y *bigint.BigInt) (*bigint.BigInt, error) {
	p := bigint.Mul(x, y)
	if !ctx.active {
		return bigint.Mod(p, ctx.n)
	}
	return ctx.redc(p)
}

// redc runs the Montgomery reduction: the result is x*R^-1 mod n,
// computed without any general-purpose division by n. The argument
// must be smaller than n*R.
func (ctx *Context) redc(x *bigint.BigInt) (*bigint.BigInt, error) {
	// m = (x mod R) * n' mod R. R is a power of two so the
	// reductions are truncations.
	m := bigint.Trunc(bigint.Mul(bigint.Trunc(x, ctx.rBits), ctx.nInv),
		ctx.rBits)

	// t = (x + m*n) / R. The low rBits cancel out by the choice of m.
	t, err := bigint.Shr(bigint.Add(x, bigint.Mul(m, ctx.n)), ctx.rBits)
	if err != nil {
		return nil, err
	}
	if t.Cmp(ctx.n) >= 0 {
		return bigint.Sub(t, ctx.n)
	}
	return t, nil
}

// doubleMod computes 2*x mod n for a reduced x.
func (ctx *Context) doubleMod(x *bigint.BigInt) (*bigint.BigInt, error) {
	d, err := bigint.Shl(x, 1)
	if err != nil {
		return nil, err
	}
	if d.Cmp(ctx.n) >= 0 {
		return bigint.Sub(d, ctx.n)
	}
	return d, nil
}

// Clear zeroizes the context constants.
func (ctx *Context) Clear() {
	ctx.n.Clear()
	if ctx.active {
		ctx.nInv.Clear()
		ctx.rModN.Clear()
		ctx.r2ModN.Clear()
	}
	ctx.active = false
}
