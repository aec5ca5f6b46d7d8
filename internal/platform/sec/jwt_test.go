// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuminhdang/pagemark/internal/platform/sec"
)

const testIssuer = "pagemark.app"

func newTestService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService([]byte("test-secret-key-for-unit-tests"), testIssuer)
	require.NoError(t, err)
	return service
}

/*
TestTokenService_EmptySecret verifies that construction rejects a missing secret.
*/
func TestTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService(nil, testIssuer)
	assert.Error(t, err)
}

/*
TestTokenService_RoundTrip issues a token and verifies its claims survive.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateAccessToken("user-123", "dang", 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "dang", claims.Username())
	assert.Equal(t, testIssuer, claims.Issuer)
}

/*
TestTokenService_Expired verifies that expired tokens are rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateAccessToken("user-123", "dang", -1*time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Tampered verifies that a token signed with a different
secret does not verify.
*/
func TestTokenService_Tampered(t *testing.T) {
	service := newTestService(t)

	other, err := sec.NewTokenService([]byte("a-completely-different-secret"), testIssuer)
	require.NoError(t, err)

	token, err := other.GenerateAccessToken("user-123", "dang", 15*time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_MissingSubject verifies that a correctly signed token
without a subject claim does not verify.
*/
func TestTokenService_MissingSubject(t *testing.T) {
	service := newTestService(t)

	currentTime := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(15 * time.Minute)),
		},
		UserID: "user-123",
	})
	signed, err := token.SignedString([]byte("test-secret-key-for-unit-tests"))
	require.NoError(t, err)

	_, err = service.VerifyToken(signed)
	assert.ErrorContains(t, err, "missing subject")
}

/*
TestTokenService_Garbage verifies that non-JWT input is rejected.
*/
func TestTokenService_Garbage(t *testing.T) {
	service := newTestService(t)

	_, err := service.VerifyToken("not.a.jwt")
	assert.Error(t, err)

	_, err = service.VerifyToken("")
	assert.Error(t, err)
}
