//
// codec.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package rsa4096

import (
	"fmt"

	"github.com/markkurossi/rsa4096/bigint"
)

// EncryptText encrypts the decimal message and returns the ciphertext
// as a hexadecimal string. The message value must be smaller than the
// key modulus.
func (key *Key) EncryptText(message string) (string, error) {
	m, err := bigint.FromDecimal(message)
	if err != nil {
		return "", fmt.Errorf("message: %w", err)
	}
	if m.Cmp(key.N) >= 0 {
		return "", ErrMessageTooLarge
	}
	c, err := key.ctx.Exp(m, key.Exponent)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// DecryptText decrypts the hexadecimal ciphertext and returns the
// message as a decimal string.
func (key *Key) DecryptText(ciphertext string) (string, error) {
	c, err := bigint.FromHex(ciphertext)
	if err != nil {
		return "", fmt.Errorf("ciphertext: %w", err)
	}
	m, err := key.ctx.Exp(c, key.Exponent)
	if err != nil {
		return "", err
	}
	return m.Decimal(), nil
}

// plainBlockSize returns the plaintext block size in bytes. Blocks of
// this size are always smaller than the modulus, except for moduli
// narrower than 9 bits where the minimum block of one byte applies
// and the block value is checked at encryption time.
func (key *Key) plainBlockSize() int {
	k := (key.N.BitLen() - 1) / 8
	if k < 1 {
		k = 1
	}
	return k
}

// cipherBlockSize returns the fixed ciphertext block width in bytes.
func (key *Key) cipherBlockSize() int {
	return (key.N.BitLen() + 7) / 8
}

// EncryptBinary encrypts the data buffer. The input is split into
// plaintext blocks, each block is interpreted as a big-endian integer
// and encrypted on its own, and the resulting values are emitted as
// fixed-width big-endian ciphertext blocks, left-padded with zero
// bytes.
func (key *Key) EncryptBinary(data []byte) ([]byte, error) {
	k := key.plainBlockSize()
	K := key.cipherBlockSize()

	result := make([]byte, 0, (len(data)+k-1)/k*K)
	for start := 0; start < len(data); start += k {
		end := start + k
		if end > len(data) {
			end = len(data)
		}
		m := bigint.FromBytes(data[start:end])
		if m.Cmp(key.N) >= 0 {
			return nil, fmt.Errorf("%w: block at offset %d",
				ErrMessageTooLarge, start)
		}
		c, err := key.ctx.Exp(m, key.Exponent)
		if err != nil {
			return nil, err
		}
		block := make([]byte, K)
		cb := c.Bytes()
		copy(block[K-len(cb):], cb)
		result = append(result, block...)
	}
	return result, nil
}

// DecryptBinary decrypts the data buffer. The input must be a whole
// number of ciphertext blocks. Every plaintext block except the last
// is emitted at the fixed plaintext block width, left-padded with
// zero bytes; the last block is emitted as the minimal big-endian
// representation of its value since its original length is not
// recorded in the ciphertext. Leading zero bytes of the last original
// block are therefore not recovered.
func (key *Key) DecryptBinary(data []byte) ([]byte, error) {
	k := key.plainBlockSize()
	K := key.cipherBlockSize()

	if len(data)%K != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d",
			ErrInvalidCiphertext, len(data), K)
	}
	numBlocks := len(data) / K

	var result []byte
	for i := 0; i < numBlocks; i++ {
		c := bigint.FromBytes(data[i*K : (i+1)*K])
		m, err := key.ctx.Exp(c, key.Exponent)
		if err != nil {
			return nil, err
		}
		mb := m.Bytes()
		if i+1 < numBlocks {
			if len(mb) > k {
				return nil, fmt.Errorf("%w: block %d overflows %d bytes",
					ErrInvalidCiphertext, i, k)
			}
			block := make([]byte, k)
			copy(block[k-len(mb):], mb)
			result = append(result, block...)
		} else {
			if len(mb) == 0 {
				mb = []byte{0}
			}
			result = append(result, mb...)
		}
	}
	return result, nil
}
