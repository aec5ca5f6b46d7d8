// Copyright (c) 2026 Pagemark. All rights reserved.
// Author: vu.minhdang.vn@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	service, _, _ := newTestService()
	_, err := service.Register(context.Background(), RegisterInput{
		Username: "dang",
		Email:    "dang@pagemark.app",
		Password: "super-secret-pw",
	})
	require.NoError(t, err)

	return NewHandler(service)
}

func postJSON(t *testing.T, handler *Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)
	return recorder
}

/*
TestLogin_UsernameField verifies the documented login body shape
({username, password}) authenticates and returns a bearer session.
*/
func TestLogin_UsernameField(t *testing.T) {
	handler := newTestHandler(t)

	recorder := postJSON(t, handler, "/login", `{"username":"dang","password":"super-secret-pw"}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data[FieldAccessToken])
	assert.Equal(t, "bearer", envelope.Data[FieldTokenType])
}

/*
TestLogin_LoginAlias verifies the "login" body field is accepted as an alias
for username, including email-based identification.
*/
func TestLogin_LoginAlias(t *testing.T) {
	handler := newTestHandler(t)

	byUsername := postJSON(t, handler, "/login", `{"login":"dang","password":"super-secret-pw"}`)
	assert.Equal(t, http.StatusOK, byUsername.Code)

	byEmail := postJSON(t, handler, "/login", `{"login":"dang@pagemark.app","password":"super-secret-pw"}`)
	assert.Equal(t, http.StatusOK, byEmail.Code)
}

/*
TestLogin_MissingIdentifier verifies a body without any account identifier
fails validation on the username field.
*/
func TestLogin_MissingIdentifier(t *testing.T) {
	handler := newTestHandler(t)

	recorder := postJSON(t, handler, "/login", `{"password":"super-secret-pw"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), FieldUsername)
}
