//
// keytest.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/markkurossi/rsa4096"
	"github.com/markkurossi/text/superscript"
)

// runKeyTest exercises a proper RSA pair with distinct exponents:
// n=143=11*13, phi(n)=120, e=7, d=103. The modulus is odd so the
// Montgomery context must be active.
func runKeyTest() error {
	pub, err := rsa4096.LoadKey("143", "7", false)
	if err != nil {
		return err
	}
	defer pub.Release()

	priv, err := rsa4096.LoadKey("143", "103", true)
	if err != nil {
		return err
	}
	defer priv.Release()

	fmt.Printf("RSA key test: n=143, e=7, d=103 (%d-bit modulus)\n",
		pub.BitLen())
	if !pub.MontgomeryActive() {
		return fmt.Errorf("Montgomery inactive for odd modulus 143")
	}
	fmt.Printf("Montgomery REDC: active\n")

	const message = "42"

	hex, err := pub.EncryptText(message)
	if err != nil {
		return err
	}
	fmt.Printf("%s%s mod n = %s (hex)\n", message, superscript.Itoa(7), hex)

	decrypted, err := priv.DecryptText(hex)
	if err != nil {
		return err
	}
	fmt.Printf("decrypted: %s\n", decrypted)

	if decrypted != message {
		return fmt.Errorf("round trip failed: got %s, expected %s",
			decrypted, message)
	}
	fmt.Printf("round trip: PASS\n")
	return nil
}
