package cryptox

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/potholeauth/internal/common"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	plain := []byte("eyJhbGciOiJIUzI1NiJ9.payload.sig")

	sealed, err := Seal(plain, key, []byte("token"))
	require.NoError(t, err)
	require.False(t, bytes.Contains(sealed, plain), "plaintext must not leak into sealed value")

	got, err := Open(sealed, key, []byte("token"))
	require.NoError(t, err)
	require.Equal(t, plain, got)
}

func TestSeal_NonceIsRandom(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)

	a, err := Seal([]byte("same"), key, nil)
	require.NoError(t, err)
	b, err := Seal([]byte("same"), key, nil)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestOpen_WrongKey(t *testing.T) {
	sealed, err := Seal([]byte("v"), common.GenerateRandByteArray(KeySize), nil)
	require.NoError(t, err)

	_, err = Open(sealed, common.GenerateRandByteArray(KeySize), nil)
	require.Error(t, err)
}

func TestOpen_WrongAAD(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	sealed, err := Seal([]byte("42"), key, []byte("user_id"))
	require.NoError(t, err)

	_, err = Open(sealed, key, []byte("token"))
	require.Error(t, err)
}

func TestOpen_TooShort(t *testing.T) {
	_, err := Open([]byte{1, 2, 3}, common.GenerateRandByteArray(KeySize), nil)
	require.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestSeal_BadKeyLength(t *testing.T) {
	_, err := Seal([]byte("v"), []byte("short"), nil)
	require.Error(t, err)
}
