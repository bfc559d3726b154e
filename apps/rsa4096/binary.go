//
// binary.go
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
)

// runBinaryVerification round trips a small binary payload through
// the block-mode codec.
func runBinaryVerification() error {
	pub, err := rsa4096.LoadKey("35", "5", false)
	if err != nil {
		return err
	}
	defer pub.Release()

	priv, err := rsa4096.LoadKey("35", "5", true)
	if err != nil {
		return err
	}
	defer priv.Release()

	data := []byte{0x01, 0x02, 0x03, 0x04}
	fmt.Printf("original : %x\n", data)

	encrypted, err := pub.EncryptBinary(data)
	if err != nil {
		return err
	}
	fmt.Printf("encrypted: %x\n", encrypted)

	decrypted, err := priv.DecryptBinary(encrypted)
	if err != nil {
		return err
	}
	fmt.Printf("decrypted: %x\n", decrypted)

	if !bytes.Equal(data, decrypted) {
		return fmt.Errorf("binary round trip failed")
	}
	fmt.Printf("binary round trip: PASS\n")
	return nil
}
