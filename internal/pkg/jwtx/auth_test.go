package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_EncodeDecode(t *testing.T) {
	t.Parallel()
	auth := NewAuth("test-key")

	token, err := auth.Encode(UserClaims("u1", "customer"))
	require.NoError(t, err)

	claims, err := auth.Decode("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "u1", StringClaim(claims, ClaimUID))
	assert.Equal(t, "customer", StringClaim(claims, ClaimRole))
	assert.Equal(t, issuer, claims["iss"])
	assert.NotNil(t, claims["exp"])
}

func TestAuth_Decode(t *testing.T) {
	t.Parallel()
	auth := NewAuth("test-key")

	expired, err := auth.Encode(jwt.MapClaims{
		ClaimUID: "u1",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)
	otherKey, err := NewAuth("other-key").Encode(UserClaims("u1", "admin"))
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, UserClaims("u1", "admin")).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "已过期", token: expired},
		{name: "签名密钥不对", token: otherKey},
		{name: "不签名", token: none},
		{name: "格式错误", token: "abc"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := auth.Decode(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestStringClaim(t *testing.T) {
	t.Parallel()
	claims := jwt.MapClaims{"uid": "u1", "n": 1.0}
	assert.Equal(t, "u1", StringClaim(claims, "uid"))
	assert.Empty(t, StringClaim(claims, "n"))
	assert.Empty(t, StringClaim(claims, "missing"))
}
