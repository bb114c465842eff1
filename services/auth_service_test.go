package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/mqvi-directory/models"
	"github.com/akinalp/mqvi-directory/pkg"
	"github.com/akinalp/mqvi-directory/services"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims models.TokenClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(userID string, expiresIn time.Duration) models.TokenClaims {
	now := time.Now()
	return models.TokenClaims{
		UserID:   userID,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
}

func TestValidateAccessToken_Valid(t *testing.T) {
	svc := services.NewAuthService(testSecret)
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor("user-alice", time.Hour))

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-alice", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	svc := services.NewAuthService(testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, []byte("other"), claimsFor("user-alice", time.Hour))},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor("user-alice", -time.Minute))},
		{name: "alg none", token: signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, claimsFor("user-alice", time.Hour))},
		{name: "missing user id", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claimsFor("", time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(tt.token)
			assert.ErrorIs(t, err, pkg.ErrUnauthorized)
		})
	}
}
