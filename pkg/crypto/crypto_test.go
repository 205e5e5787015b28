package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	key1, err := DeriveKey("passphrase")
	require.NoError(t, err)
	assert.Len(t, key1, 32)

	// Deterministic for the same passphrase.
	key2, err := DeriveKey("passphrase")
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	// Different passphrase, different key.
	key3, err := DeriveKey("other")
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		plain string
	}{
		{"provider config", `{"host":"smtp.example.com","port":587,"password":"s3cret"}`},
		{"empty string", ""},
		{"unicode", "héllo wörld ✉"},
		{"long payload", strings.Repeat("a", 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := EncryptString(tt.plain, "engine-secret")
			require.NoError(t, err)
			assert.NotEqual(t, tt.plain, encrypted)

			// Hex output only.
			_, err = hex.DecodeString(encrypted)
			require.NoError(t, err)

			decrypted, err := DecryptFromHexString(encrypted, "engine-secret")
			require.NoError(t, err)
			assert.Equal(t, tt.plain, decrypted)
		})
	}
}

func TestEncryptStringIsNonDeterministic(t *testing.T) {
	a, err := EncryptString("same input", "key")
	require.NoError(t, err)
	b, err := EncryptString("same input", "key")
	require.NoError(t, err)
	// Random nonce per call.
	assert.NotEqual(t, a, b)
}

func TestDecryptWrongPassphrase(t *testing.T) {
	encrypted, err := EncryptString("secret payload", "right")
	require.NoError(t, err)

	_, err = DecryptFromHexString(encrypted, "wrong")
	assert.Error(t, err)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	encrypted, err := EncryptString("secret payload", "key")
	require.NoError(t, err)

	raw, err := hex.DecodeString(encrypted)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff

	_, err = Decrypt(raw, "key")
	assert.Error(t, err)
}

func TestDecryptFromHexStringErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := DecryptFromHexString("", "key")
		assert.Error(t, err)
	})

	t.Run("not hex", func(t *testing.T) {
		_, err := DecryptFromHexString("zz-not-hex", "key")
		assert.Error(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := DecryptFromHexString("abcd", "key")
		assert.Error(t, err)
	})
}
