package pii

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"

	"bookingpay/internal/pkg/errs"
)

var (
	ErrInvalidKey        = errs.New("pii key must be 32 bytes of hex")
	ErrCiphertextInvalid = errs.New("ciphertext too short or corrupted")
)

// NameDecryptor turns stored customer PII back into plaintext. Payment notes
// embed the customer name, so webhook processing needs it at write time.
type NameDecryptor interface {
	Decrypt(ciphertext []byte) (string, error)
}

type aesGCMDecryptor struct {
	aead cipher.AEAD
}

// NewAESDecryptor expects a hex-encoded 256-bit key. Ciphertexts are
// nonce-prefixed AES-GCM.
func NewAESDecryptor(hexKey string) (NameDecryptor, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil || len(key) != 32 {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errs.Wrap(err, "failed to init cipher")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errs.Wrap(err, "failed to init gcm")
	}

	return &aesGCMDecryptor{aead: aead}, nil
}

func (d *aesGCMDecryptor) Decrypt(ciphertext []byte) (string, error) {
	nonceSize := d.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", ErrCiphertextInvalid
	}

	plaintext, err := d.aead.Open(nil, ciphertext[:nonceSize], ciphertext[nonceSize:], nil)
	if err != nil {
		return "", errs.Mark(err, ErrCiphertextInvalid)
	}
	return string(plaintext), nil
}
