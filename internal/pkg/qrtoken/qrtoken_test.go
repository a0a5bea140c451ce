//go:build unit

package qrtoken_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"campus-reserve/internal/pkg/qrtoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer(t *testing.T) {
	issuer := qrtoken.NewIssuer("test-secret")

	t.Run("minted payload verifies and decodes", func(t *testing.T) {
		payload := issuer.Mint("RES-7K2M9QXZ")

		assert.Equal(t, "RES-7K2M9QXZ", payload.Code)
		assert.Len(t, payload.Sig, 16)
		assert.True(t, issuer.Verify(payload.Code, payload.Sig))

		raw, err := issuer.MintJSON("RES-7K2M9QXZ")
		require.NoError(t, err)

		code, err := issuer.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, "RES-7K2M9QXZ", code)
	})

	t.Run("signature is bound to the code", func(t *testing.T) {
		payload := issuer.Mint("RES-7K2M9QXZ")

		assert.False(t, issuer.Verify("RES-AAAAAAAA", payload.Sig))
	})

	t.Run("tampered payload is rejected", func(t *testing.T) {
		payload := issuer.Mint("RES-7K2M9QXZ")
		payload.Code = "RES-AAAAAAAA"
		raw, err := json.Marshal(payload)
		require.NoError(t, err)

		_, err = issuer.Decode(raw)
		require.ErrorIs(t, err, qrtoken.ErrInvalidSignature)
	})

	t.Run("different secret fails verification", func(t *testing.T) {
		payload := issuer.Mint("RES-7K2M9QXZ")
		other := qrtoken.NewIssuer("other-secret")

		assert.False(t, other.Verify(payload.Code, payload.Sig))
	})

	t.Run("legacy full-length payload is accepted", func(t *testing.T) {
		// The legacy shape carries the untruncated signature.
		raw, err := issuer.MintJSON("RES-7K2M9QXZ")
		require.NoError(t, err)

		var compact qrtoken.Payload
		require.NoError(t, json.Unmarshal(raw, &compact))

		full := buildLegacy(t, issuer, compact.Code)
		code, err := issuer.Decode(full)
		require.NoError(t, err)
		assert.Equal(t, "RES-7K2M9QXZ", code)
	})

	t.Run("wrong-length signature is rejected", func(t *testing.T) {
		assert.False(t, issuer.Verify("RES-7K2M9QXZ", "abc"))
	})

	t.Run("malformed payload is rejected", func(t *testing.T) {
		for _, raw := range [][]byte{
			[]byte(`not json`),
			[]byte(`{}`),
			[]byte(`{"foo":"bar"}`),
			[]byte(``),
		} {
			_, err := issuer.Decode(raw)
			require.ErrorIs(t, err, qrtoken.ErrInvalidPayload)
		}
	})
}

// buildLegacy reconstructs the long-form wire shape with the untruncated
// HMAC, the way codes printed before the compact format carried it.
func buildLegacy(t *testing.T, issuer *qrtoken.Issuer, code string) []byte {
	t.Helper()

	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write([]byte(code))
	raw, err := json.Marshal(map[string]string{
		"reservation_code": code,
		"signature":        hex.EncodeToString(mac.Sum(nil)),
	})
	require.NoError(t, err)
	return raw
}
