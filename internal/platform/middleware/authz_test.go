// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/vuminhdang/pagemark/internal/platform/ctxutil"
	"github.com/vuminhdang/pagemark/internal/platform/middleware"
	"github.com/vuminhdang/pagemark/internal/platform/sec"
)

// stubVerifier returns fixed claims or a fixed error.
type stubVerifier struct {
	claims *sec.AuthClaims
	err    error
}

func (s *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	return s.claims, s.err
}

// stubResolver accepts or rejects every subject.
type stubResolver struct {
	err error
}

func (s *stubResolver) ResolveSubject(ctx context.Context, username string) error {
	return s.err
}

func validClaims() *sec.AuthClaims {
	return &sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "dang"},
		UserID:           "user-123",
	}
}

// okHandler records that it ran and captures claims from context.
func okHandler(ran *bool, captured **sec.AuthClaims) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*ran = true
		if captured != nil {
			*captured = ctxutil.GetAuthUser(request.Context())
		}
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate_Anonymous verifies requests without a header pass through
unauthenticated.
*/
func TestAuthenticate_Anonymous(t *testing.T) {
	var ran bool
	var claims *sec.AuthClaims

	handler := middleware.Authenticate(&stubVerifier{})(okHandler(&ran, &claims))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.True(t, ran)
	assert.Nil(t, claims)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestAuthenticate_BadFormat verifies malformed Authorization headers are rejected.
*/
func TestAuthenticate_BadFormat(t *testing.T) {
	var ran bool

	handler := middleware.Authenticate(&stubVerifier{claims: validClaims()})(okHandler(&ran, nil))

	for _, header := range []string{"Token abc", "Bearer", "Bearer a b"} {
		ran = false
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", header)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.False(t, ran, "header %q should not reach the handler", header)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	}
}

/*
TestAuthenticate_InvalidToken verifies verifier failures yield 401 with the
WWW-Authenticate challenge header.
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	var ran bool

	handler := middleware.Authenticate(&stubVerifier{err: errors.New("expired")})(okHandler(&ran, nil))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer bad-token")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.False(t, ran)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Bearer", recorder.Header().Get("WWW-Authenticate"))
}

/*
TestAuthenticate_ValidToken verifies claims are injected into the request context.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	var ran bool
	var claims *sec.AuthClaims

	handler := middleware.Authenticate(&stubVerifier{claims: validClaims()})(okHandler(&ran, &claims))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.True(t, ran)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims.UserID)
}

/*
TestRequireAuth verifies anonymous requests are blocked and authenticated
ones pass.
*/
func TestRequireAuth(t *testing.T) {
	var ran bool
	handler := middleware.RequireAuth(okHandler(&ran, nil))

	// Anonymous: blocked
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.False(t, ran)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Authenticated: passes
	ctx := ctxutil.WithAuthUser(context.Background(), validClaims())
	request = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.True(t, ran)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequireUser verifies the gate rejects tokens whose subject no longer
resolves to an account.
*/
func TestRequireUser(t *testing.T) {
	tests := []struct {
		name       string
		claims     *sec.AuthClaims
		resolveErr error
		wantStatus int
		wantRan    bool
	}{
		{"anonymous", nil, nil, http.StatusUnauthorized, false},
		{"unknown_subject", validClaims(), errors.New("no such user"), http.StatusUnauthorized, false},
		{"live_account", validClaims(), nil, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ran bool
			handler := middleware.RequireUser(&stubResolver{err: tt.resolveErr})(okHandler(&ran, nil))

			ctx := context.Background()
			if tt.claims != nil {
				ctx = ctxutil.WithAuthUser(ctx, tt.claims)
			}

			request := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantRan, ran)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
