package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainCodecRoundTrip(t *testing.T) {
	codec := PlainCodec{}

	claims := Claims{
		UIN:  "GFA-P-1234",
		Role: "pupil",
		User: map[string]string{"name": "Ada", "email": "ada@example.com"},
	}

	token, err := codec.Issue(claims)
	require.NoError(t, err)

	got, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims, got)
}

func TestPlainCodecRejectsGarbage(t *testing.T) {
	_, err := PlainCodec{}.Verify("not-json")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestSignedCodecRoundTrip(t *testing.T) {
	codec := SignedCodec{Secret: []byte("test-secret")}

	claims := Claims{UIN: "GFA-T-4321", Role: "teacher"}

	token, err := codec.Issue(claims)
	require.NoError(t, err)

	got, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims, got)
}

func TestSignedCodecRejectsTampering(t *testing.T) {
	codec := SignedCodec{Secret: []byte("test-secret")}

	token, err := codec.Issue(Claims{UIN: "GFA-P-1234", Role: "pupil"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA"

	_, err = codec.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestSignedCodecRejectsWrongSecret(t *testing.T) {
	token, err := SignedCodec{Secret: []byte("secret-a")}.Issue(Claims{UIN: "GFA-P-1234", Role: "pupil"})
	require.NoError(t, err)

	_, err = SignedCodec{Secret: []byte("secret-b")}.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestNewCodecSelection(t *testing.T) {
	require.IsType(t, PlainCodec{}, NewCodec(""))
	require.IsType(t, SignedCodec{}, NewCodec("some-secret"))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, CheckPasswordHash("s3cret-pass", hash))
	require.False(t, CheckPasswordHash("wrong-pass", hash))
}
