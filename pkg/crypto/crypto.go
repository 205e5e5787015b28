package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// hkdfInfo binds derived keys to their single purpose: encrypting sender
// account provider settings at rest.
const hkdfInfo = "mailfleet-account-config-v1"

// DeriveKey expands the engine passphrase into a 256-bit AES key using
// HKDF-SHA256.
func DeriveKey(passphrase string) ([]byte, error) {
	reader := hkdf.New(sha256.New, []byte(passphrase), nil, []byte(hkdfInfo))
	key := make([]byte, 32)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("DeriveKey: %w", err)
	}
	return key, nil
}

// EncryptString seals str with AES-256-GCM under a key derived from the
// passphrase and returns nonce||ciphertext hex-encoded.
func EncryptString(str string, passphrase string) (string, error) {
	key, err := DeriveKey(passphrase)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("EncryptString cipher error: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("EncryptString gcm error: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("EncryptString nonce error: %w", err)
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(str), nil)

	return fmt.Sprintf("%x", ciphertext), nil
}

// Decrypt opens nonce||ciphertext produced by EncryptString.
func Decrypt(data []byte, passphrase string) ([]byte, error) {
	key, err := DeriveKey(passphrase)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("Decrypt cipher error: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("Decrypt gcm error: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, fmt.Errorf("Decrypt: ciphertext shorter than nonce")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("Decrypt open gcm error: %w", err)
	}

	return plaintext, nil
}

// DecryptFromHexString is the inverse of EncryptString.
func DecryptFromHexString(str string, passphrase string) (string, error) {
	if str == "" {
		return "", fmt.Errorf("DecryptFromHexString empty string")
	}

	data, err := hex.DecodeString(str)
	if err != nil {
		return "", fmt.Errorf("DecryptFromHexString decode error: %w", err)
	}

	decoded, err := Decrypt(data, passphrase)
	if err != nil {
		return "", fmt.Errorf("DecryptFromHexString decrypt error: %w", err)
	}

	return string(decoded), nil
}
