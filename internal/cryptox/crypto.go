// Package cryptox seals small JSON payloads (sessions) with AES-GCM under a
// key derived from a password with argon2id.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"golang.org/x/crypto/argon2"
)

var ErrSealedDataTooShort = errors.New("sealed data too short")

// DeriveKey stretches password into a 32-byte AES-256 key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// Seal serializes v to JSON, encrypts it with AES-GCM and returns
// base64url(nonce || ciphertext). A fresh nonce is drawn for every call.
func Seal(v any, key []byte) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := common.GenerateRandByteArray(aesgcm.NonceSize())
	if nonce == nil {
		return "", common.ErrInternal
	}

	sealed := aesgcm.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal and unmarshals the plaintext into v.
func Open(sealed string, key []byte, v any) error {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return err
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}

	ns := aesgcm.NonceSize()
	if len(raw) < ns {
		return ErrSealedDataTooShort
	}

	plaintext, err := aesgcm.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return err
	}

	return json.Unmarshal(plaintext, v)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
