//go:build unit

package pii_test

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"bookingpay/internal/infra/pii"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encrypt(t *testing.T, hexKey string, plaintext string) []byte {
	t.Helper()

	key, err := hex.DecodeString(hexKey)
	require.NoError(t, err)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	aead, err := cipher.NewGCM(block)
	require.NoError(t, err)

	nonce := make([]byte, aead.NonceSize())
	_, err = rand.Read(nonce)
	require.NoError(t, err)

	return append(nonce, aead.Seal(nil, nonce, []byte(plaintext), nil)...)
}

func TestAESDecryptor(t *testing.T) {
	hexKey := hex.EncodeToString(make([]byte, 32))

	t.Run("round trip", func(t *testing.T) {
		d, err := pii.NewAESDecryptor(hexKey)
		require.NoError(t, err)

		plaintext, err := d.Decrypt(encrypt(t, hexKey, "Jane"))
		require.NoError(t, err)
		assert.Equal(t, "Jane", plaintext)
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := pii.NewAESDecryptor("not-hex")
		require.ErrorIs(t, err, pii.ErrInvalidKey)

		_, err = pii.NewAESDecryptor("abcd")
		require.ErrorIs(t, err, pii.ErrInvalidKey)
	})

	t.Run("ciphertext too short", func(t *testing.T) {
		d, err := pii.NewAESDecryptor(hexKey)
		require.NoError(t, err)

		_, err = d.Decrypt([]byte{0x01, 0x02})
		require.ErrorIs(t, err, pii.ErrCiphertextInvalid)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		d, err := pii.NewAESDecryptor(hexKey)
		require.NoError(t, err)

		ct := encrypt(t, hexKey, "Jane")
		ct[len(ct)-1] ^= 0xff

		_, err = d.Decrypt(ct)
		require.ErrorIs(t, err, pii.ErrCiphertextInvalid)
	})

	t.Run("wrong key", func(t *testing.T) {
		otherKey := hex.EncodeToString(append([]byte{0x01}, make([]byte, 31)...))
		d, err := pii.NewAESDecryptor(otherKey)
		require.NoError(t, err)

		_, err = d.Decrypt(encrypt(t, hexKey, "Jane"))
		require.ErrorIs(t, err, pii.ErrCiphertextInvalid)
	})
}
