//
// key.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package rsa4096 implements textbook RSA for modulus sizes up to
// 4096 bits on top of the bigint arithmetic and the Montgomery REDC
// exponentiation engine. The package implements no padding scheme and
// no key generation; key material arrives as plain decimal strings.
package rsa4096

import (
	"errors"
	"fmt"

	"github.com/markkurossi/rsa4096/bigint"
	"github.com/markkurossi/rsa4096/mont"
)

var (
	// ErrInvalidKey is returned when the key modulus or exponent is
	// zero or wider than the supported maximum.
	ErrInvalidKey = errors.New("rsa4096: invalid key")

	// ErrMessageTooLarge is returned when a message value is not
	// smaller than the key modulus.
	ErrMessageTooLarge = errors.New("rsa4096: message too large for key")

	// ErrInvalidCiphertext is returned when a binary ciphertext is
	// not a whole number of ciphertext blocks or a block decrypts to
	// a value that cannot come from a valid plaintext block.
	ErrInvalidCiphertext = errors.New("rsa4096: invalid ciphertext")
)

// Key is an RSA key. The same structure holds both public and private
// keys: the exponent slot carries e for public and d for private keys
// and the Private flag is bookkeeping only. The key caches the
// Montgomery context of its modulus; the context is built once at
// load time and never mutated.
type Key struct {
	N        *bigint.BigInt
	Exponent *bigint.BigInt
	Private  bool

	ctx *mont.Context
}

// LoadKey creates a key from the decimal modulus and exponent
// strings. Both values must be non-zero and the modulus must not be
// wider than 4096 bits.
func LoadKey(modulus, exponent string, private bool) (*Key, error) {
	n, err := bigint.FromDecimal(modulus)
	if err != nil {
		return nil, fmt.Errorf("modulus: %w", err)
	}
	exp, err := bigint.FromDecimal(exponent)
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}
	if n.IsZero() {
		return nil, fmt.Errorf("%w: zero modulus", ErrInvalidKey)
	}
	if exp.IsZero() {
		return nil, fmt.Errorf("%w: zero exponent", ErrInvalidKey)
	}
	if n.BitLen() > mont.MaxModulusBits {
		return nil, fmt.Errorf("%w: %d-bit modulus exceeds %d bits",
			ErrInvalidKey, n.BitLen(), mont.MaxModulusBits)
	}
	if exp.BitLen() > mont.MaxModulusBits {
		return nil, fmt.Errorf("%w: %d-bit exponent exceeds %d bits",
			ErrInvalidKey, exp.BitLen(), mont.MaxModulusBits)
	}
	ctx, err := mont.NewContext(n)
	if err != nil {
		return nil, err
	}
	return &Key{
		N:        n,
		Exponent: exp,
		Private:  private,
		ctx:      ctx,
	}, nil
}

// BitLen returns the key modulus length in bits.
func (key *Key) BitLen() int {
	return key.N.BitLen()
}

// MontgomeryActive tests if the key modulus qualifies for Montgomery
// arithmetic.
func (key *Key) MontgomeryActive() bool {
	return key.ctx.Active()
}

// Release zeroizes the key material. The key must not be used after
// release.
func (key *Key) Release() {
	key.N.Clear()
	key.Exponent.Clear()
	key.ctx.Clear()
}
