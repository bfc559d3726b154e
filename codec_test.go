//
// codec_test.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package rsa4096

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"math/big"
	"strconv"
	"testing"

	"golang.org/x/crypto/chacha20"
)

func TestEncryptTextVectors(t *testing.T) {
	pub, err := LoadKey("35", "5", false)
	if err != nil {
		t.Fatal(err)
	}
	priv, err := LoadKey("35", "5", true)
	if err != nil {
		t.Fatal(err)
	}
	vectors := []struct {
		message string
		hex     string
	}{
		{"2", "20"},
		{"3", "21"},
		{"4", "9"},
	}
	for _, vec := range vectors {
		encrypted, err := pub.EncryptText(vec.message)
		if err != nil {
			t.Fatal(err)
		}
		if encrypted != vec.hex {
			t.Errorf("EncryptText(%s): got %s, expected %s",
				vec.message, encrypted, vec.hex)
		}
		decrypted, err := priv.DecryptText(encrypted)
		if err != nil {
			t.Fatal(err)
		}
		if decrypted != vec.message {
			t.Errorf("DecryptText(%s): got %s, expected %s",
				encrypted, decrypted, vec.message)
		}
	}
}

func TestTextRoundTrip143(t *testing.T) {
	pub, err := LoadKey("143", "7", false)
	if err != nil {
		t.Fatal(err)
	}
	priv, err := LoadKey("143", "103", true)
	if err != nil {
		t.Fatal(err)
	}
	if !pub.MontgomeryActive() {
		t.Fatal("Montgomery inactive for modulus 143")
	}
	for m := 0; m < 143; m++ {
		message := strconv.Itoa(m)
		encrypted, err := pub.EncryptText(message)
		if err != nil {
			t.Fatal(err)
		}
		decrypted, err := priv.DecryptText(encrypted)
		if err != nil {
			t.Fatal(err)
		}
		if decrypted != message {
			t.Fatalf("round trip of %s: got %s", message, decrypted)
		}
	}
}

func TestEncryptTextErrors(t *testing.T) {
	pub, err := LoadKey("35", "5", false)
	if err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{"35", "36", "1000"} {
		_, err := pub.EncryptText(msg)
		if !errors.Is(err, ErrMessageTooLarge) {
			t.Errorf("EncryptText(%s): expected ErrMessageTooLarge, got %v",
				msg, err)
		}
	}
	if _, err := pub.EncryptText("12a"); err == nil {
		t.Errorf("EncryptText(12a): expected parse error")
	}
	if _, err := pub.DecryptText("zz"); err == nil {
		t.Errorf("DecryptText(zz): expected parse error")
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	pub, err := LoadKey("35", "5", false)
	if err != nil {
		t.Fatal(err)
	}
	priv, err := LoadKey("35", "5", true)
	if err != nil {
		t.Fatal(err)
	}
	data := []byte{0x01, 0x02, 0x03, 0x04}

	encrypted, err := pub.EncryptBinary(data)
	if err != nil {
		t.Fatal(err)
	}
	// The 6-bit modulus gives one-byte plaintext and ciphertext
	// blocks.
	if len(encrypted) != 4 {
		t.Fatalf("ciphertext length: got %d, expected 4", len(encrypted))
	}
	decrypted, err := priv.DecryptBinary(encrypted)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decrypted, data) {
		t.Fatalf("round trip: got %x, expected %x", decrypted, data)
	}
}

func TestBinaryBlockTooLarge(t *testing.T) {
	pub, err := LoadKey("35", "5", false)
	if err != nil {
		t.Fatal(err)
	}
	// Byte value 35 is not below the modulus.
	_, err = pub.EncryptBinary([]byte{0x23})
	if !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("expected ErrMessageTooLarge, got %v", err)
	}
}

func TestBinaryEmptyInput(t *testing.T) {
	pub, err := LoadKey("35", "5", false)
	if err != nil {
		t.Fatal(err)
	}
	encrypted, err := pub.EncryptBinary(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(encrypted) != 0 {
		t.Errorf("EncryptBinary(nil): got %d bytes", len(encrypted))
	}
	decrypted, err := pub.DecryptBinary(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(decrypted) != 0 {
		t.Errorf("DecryptBinary(nil): got %d bytes", len(decrypted))
	}
}

// generateKeys creates an RSA key pair of the given size with the
// standard library generator and loads it into core keys.
func generateKeys(t *testing.T, bits int) (*Key, *Key, *rsa.PrivateKey) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		t.Fatal(err)
	}
	pub, err := LoadKey(rsaKey.N.String(), strconv.Itoa(rsaKey.E), false)
	if err != nil {
		t.Fatal(err)
	}
	priv, err := LoadKey(rsaKey.N.String(), rsaKey.D.String(), true)
	if err != nil {
		t.Fatal(err)
	}
	return pub, priv, rsaKey
}

func TestGeneratedKeyText(t *testing.T) {
	pub, priv, rsaKey := generateKeys(t, 1024)
	if !pub.MontgomeryActive() {
		t.Fatal("Montgomery inactive for RSA modulus")
	}
	const message = "123456789012345678901234567890"

	encrypted, err := pub.EncryptText(message)
	if err != nil {
		t.Fatal(err)
	}
	// Cross-check the ciphertext value against the standard library
	// arithmetic.
	m, _ := new(big.Int).SetString(message, 10)
	expected := new(big.Int).Exp(m, big.NewInt(int64(rsaKey.E)), rsaKey.N)
	if encrypted != expected.Text(16) {
		t.Fatalf("ciphertext mismatch: got %s, expected %s",
			encrypted, expected.Text(16))
	}
	decrypted, err := priv.DecryptText(encrypted)
	if err != nil {
		t.Fatal(err)
	}
	if decrypted != message {
		t.Fatalf("round trip: got %s", decrypted)
	}
}

func TestGeneratedKeyBinary(t *testing.T) {
	pub, priv, _ := generateKeys(t, 1024)

	// Three full 127-byte plaintext blocks. The payload is a
	// deterministic ChaCha20 stream with zero bytes punched in to
	// exercise the block padding; the final block is kept free of
	// leading zeros since their length is not recoverable.
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		t.Fatal(err)
	}
	data := make([]byte, 381)
	cipher.XORKeyStream(data, data)
	data[0] = 0
	data[1] = 0
	data[70] = 0
	data[254] = 0xab

	encrypted, err := pub.EncryptBinary(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(encrypted) != 3*128 {
		t.Fatalf("ciphertext length: got %d, expected %d",
			len(encrypted), 3*128)
	}
	decrypted, err := priv.DecryptBinary(encrypted)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decrypted, data) {
		t.Fatalf("binary round trip mismatch")
	}
}

func TestBinaryInvalidLength(t *testing.T) {
	pub, _, _ := generateKeys(t, 1024)

	_, err := pub.DecryptBinary(make([]byte, 127))
	if !errors.Is(err, ErrInvalidCiphertext) {
		t.Errorf("expected ErrInvalidCiphertext, got %v", err)
	}
}

func benchmarkEncrypt(b *testing.B, bits int) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		b.Fatal(err)
	}
	priv, err := LoadKey(rsaKey.N.String(), rsaKey.D.String(), true)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := priv.EncryptText("42424242424242"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncrypt1024(b *testing.B) {
	benchmarkEncrypt(b, 1024)
}

func BenchmarkEncrypt2048(b *testing.B) {
	benchmarkEncrypt(b, 2048)
}
