package cryptox

import (
	"encoding/base32"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Run("generates distinct tokens", func(t *testing.T) {
		a, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		b, err := GenerateToken(TokenSize256)
		require.NoError(t, err)

		require.NotEmpty(t, a)
		require.NotEqual(t, a, b)
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := GenerateToken(0)
		require.Error(t, err)
		_, err = GenerateToken(-1)
		require.Error(t, err)
	})
}

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret(20)
	require.NoError(t, err)
	require.NotEmpty(t, secret)

	// Must round-trip as unpadded base32 for OTP libraries
	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
	require.NoError(t, err)
	require.Len(t, raw, 20)
}

func TestFingerprintToken(t *testing.T) {
	fp := FingerprintToken("some-token")

	// SHA-256 fingerprints are deterministic and 43 chars base64url
	require.Equal(t, fp, FingerprintToken("some-token"))
	require.NotEqual(t, fp, FingerprintToken("other-token"))
	require.Len(t, fp, 43)
}
