//
// verify.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/markkurossi/rsa4096"
	"github.com/markkurossi/rsa4096/bigint"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Verification vectors for n=35=5*7, phi(n)=24, e=d=5.
var vectors = []struct {
	message   string
	encrypted string
}{
	{"2", "32"},
	{"3", "33"},
	{"4", "9"},
}

func runVerification() error {
	const (
		modulus  = "35"
		exponent = "5"
	)
	pub, err := rsa4096.LoadKey(modulus, exponent, false)
	if err != nil {
		return err
	}
	defer pub.Release()

	priv, err := rsa4096.LoadKey(modulus, exponent, true)
	if err != nil {
		return err
	}
	defer priv.Release()

	fmt.Printf("RSA verification: n=%s, e=%s, d=%s, Montgomery=%v\n",
		modulus, exponent, exponent, pub.MontgomeryActive())

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header(fmt.Sprintf("m%s mod n", superscript.Itoa(5))).
		SetAlign(tabulate.MR)
	tab.Header("Expected").SetAlign(tabulate.MR)
	tab.Header("Encrypted").SetAlign(tabulate.MR)
	tab.Header("Decrypted").SetAlign(tabulate.MR)
	tab.Header("Status").SetAlign(tabulate.ML)

	failed := 0
	for _, vec := range vectors {
		row := tab.Row()
		row.Column(vec.message)
		row.Column(vec.encrypted)

		hex, err := pub.EncryptText(vec.message)
		if err != nil {
			return err
		}
		encrypted, err := hexToDecimal(hex)
		if err != nil {
			return err
		}
		row.Column(encrypted)

		decrypted, err := priv.DecryptText(hex)
		if err != nil {
			return err
		}
		row.Column(decrypted)

		if encrypted == vec.encrypted && decrypted == vec.message {
			row.Column("PASS")
		} else {
			row.Column("FAIL")
			failed++
		}
		if verbose {
			fmt.Printf("message %s: ciphertext %s (hex)\n", vec.message, hex)
		}
	}
	tab.Print(os.Stdout)

	if failed > 0 {
		return fmt.Errorf("%d of %d vectors failed", failed, len(vectors))
	}
	fmt.Printf("all %d vectors passed\n", len(vectors))
	return nil
}

func hexToDecimal(hex string) (string, error) {
	val, err := bigint.FromHex(hex)
	if err != nil {
		return "", err
	}
	return val.Decimal(), nil
}
