package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	AccessToken string `json:"accessToken"`
	UserID      string `json:"userId"`
}

func TestDeriveKey_DeterministicAndSaltSensitive(t *testing.T) {
	k1 := DeriveKey([]byte("password"), []byte("salt-1"))
	k2 := DeriveKey([]byte("password"), []byte("salt-1"))
	k3 := DeriveKey([]byte("password"), []byte("salt-2"))

	assert.Len(t, k1, 32)
	assert.True(t, bytes.Equal(k1, k2))
	assert.False(t, bytes.Equal(k1, k3))
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("password"), []byte("salt"))
	in := payload{AccessToken: "at", UserID: "user_123"}

	sealed, err := Seal(in, key)
	require.NoError(t, err)

	var out payload
	require.NoError(t, Open(sealed, key, &out))
	assert.Equal(t, in, out)
}

func TestSeal_FreshNonceEachTime(t *testing.T) {
	key := DeriveKey([]byte("password"), []byte("salt"))

	a, err := Seal(payload{UserID: "u"}, key)
	require.NoError(t, err)
	b, err := Seal(payload{UserID: "u"}, key)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestOpen_Failures(t *testing.T) {
	key := DeriveKey([]byte("password"), []byte("salt"))
	other := DeriveKey([]byte("other"), []byte("salt"))

	sealed, err := Seal(payload{UserID: "u"}, key)
	require.NoError(t, err)

	var out payload
	assert.Error(t, Open(sealed, other, &out), "wrong key")
	assert.Error(t, Open("not base64 !!", key, &out), "bad encoding")
	assert.ErrorIs(t, Open("AAAA", key, &out), ErrSealedDataTooShort)
	assert.Error(t, Open(sealed, []byte("short"), &out), "bad key size")
}
