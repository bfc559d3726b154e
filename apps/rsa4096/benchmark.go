//
// benchmark.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"fmt"

	"github.com/markkurossi/rsa4096"
	"golang.org/x/crypto/chacha20"
)

const (
	benchTextOps    = 100
	benchBinarySize = 256
)

// runBenchmarks times text encryptions and a binary block-mode round
// trip. The binary payload comes from a fixed-key ChaCha20 stream so
// that runs are reproducible.
func runBenchmarks() error {
	key, err := rsa4096.LoadKey("35", "5", false)
	if err != nil {
		return err
	}
	defer key.Release()

	fmt.Printf("Benchmark: %d-bit modulus, Montgomery=%v\n",
		key.BitLen(), key.MontgomeryActive())

	timing := NewTiming()

	for i := 0; i < benchTextOps; i++ {
		msg := fmt.Sprintf("%d", i%20+1)
		if _, err := key.EncryptText(msg); err != nil {
			return err
		}
	}
	timing.Sample(fmt.Sprintf("EncryptText x%d", benchTextOps),
		benchTextOps)

	data, err := benchData(benchBinarySize)
	if err != nil {
		return err
	}
	// Keep every byte below the tiny benchmark modulus.
	for i := range data {
		data[i] %= 35
	}
	encrypted, err := key.EncryptBinary(data)
	if err != nil {
		return err
	}
	timing.Sample("EncryptBinary", len(data))

	decrypted, err := key.DecryptBinary(encrypted)
	if err != nil {
		return err
	}
	timing.Sample("DecryptBinary", len(encrypted))

	if !bytes.Equal(data, decrypted) {
		return fmt.Errorf("binary round trip mismatch")
	}
	timing.Print()
	return nil
}

// benchData expands a fixed ChaCha20 key into a deterministic
// pseudorandom benchmark payload.
func benchData(size int) ([]byte, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	copy(key[:], []byte("rsa4096 benchmark payload seed"))

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	data := make([]byte, size)
	c.XORKeyStream(data, data)
	return data, nil
}
