package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingoleap/lingo_api/shared"
)

func newTestJWTService() *JWTService {
	return &JWTService{
		AccessTokenDuration: time.Hour,
		jwtSecretKey:        "test-secret",
	}
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.ToJWT("user-123", shared.RoleAdmin)
	require.NoError(t, err)

	userID, role, err := svc.VerifyJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, shared.RoleAdmin, role)
}

func TestJWT_ExpiredTokenRejected(t *testing.T) {
	svc := newTestJWTService()
	svc.AccessTokenDuration = -time.Minute

	token, err := svc.ToJWT("user-123", shared.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.VerifyJWTToken(token)
	assert.Error(t, err)
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.ToJWT("user-123", shared.RoleUser)
	require.NoError(t, err)

	other := &JWTService{AccessTokenDuration: time.Hour, jwtSecretKey: "different"}
	_, _, err = other.VerifyJWTToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = svc.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = svc.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}
