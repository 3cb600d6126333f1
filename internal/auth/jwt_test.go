package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(42, secret, time.Hour)
	require.NoError(t, err)

	userID, err := ParseUserID(tok, secret)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
}

func TestParseUserID_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken(1, secret, -1*time.Second)
	require.NoError(t, err)

	_, err = ParseUserID(tok, secret)
	require.Error(t, err)
	require.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseUserID_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(2, []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ParseUserID(tok, []byte("wrong-secret"))
	require.Error(t, err)
}

func TestParseUserID_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ParseUserID("not.a.jwt", []byte("k"))
	require.Error(t, err)
}

func TestParseUserID_RejectsUnsignedAlg(t *testing.T) {
	t.Parallel()

	// alg=none must never pass verification
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 3})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseUserID(tok, []byte("secret"))
	require.Error(t, err)
}
