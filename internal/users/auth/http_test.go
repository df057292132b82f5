// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todone-app/todone/internal/platform/sec"
	"github.com/todone-app/todone/internal/users/auth"
)

// authFixture mounts the public auth routes over the in-memory repository
// with a real token service.
type authFixture struct {
	router     chi.Router
	repository *memoryUserRepository
	tokens     *sec.TokenService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	tokens, err := sec.NewTokenService("auth-http-test-key", "todone.test")
	require.NoError(t, err)

	repository := newMemoryUserRepository()
	service := auth.NewService(repository, tokens, time.Hour)
	handler := auth.NewHandler(service)

	router := chi.NewRouter()
	router.Mount("/", handler.Routes())

	return &authFixture{router: router, repository: repository, tokens: tokens}
}

func (fixture *authFixture) post(t *testing.T, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	recorder := httptest.NewRecorder()
	fixture.router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestRegisterEndpoint verifies account creation: 201 with a confirmation body,
no credential material echoed back.
*/
func TestRegisterEndpoint(t *testing.T) {
	fixture := newAuthFixture(t)

	recorder := fixture.post(t, "/register", map[string]string{
		"username": "alice",
		"password": "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotContains(t, recorder.Body.String(), "correct horse battery")

	require.NotNil(t, fixture.repository.users["alice"])
}

/*
TestRegisterEndpoint_Duplicate verifies the second registration under a taken
username answers 409.
*/
func TestRegisterEndpoint_Duplicate(t *testing.T) {
	fixture := newAuthFixture(t)

	first := fixture.post(t, "/register", map[string]string{"username": "alice", "password": "password-one"})
	require.Equal(t, http.StatusCreated, first.Code)

	second := fixture.post(t, "/register", map[string]string{"username": "alice", "password": "password-two"})
	assert.Equal(t, http.StatusConflict, second.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "CONFLICT", body["code"])
}

/*
TestRegisterEndpoint_Validation verifies malformed or weak input is rejected
with 400 before any account is created.
*/
func TestRegisterEndpoint_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing_username", map[string]string{"password": "long enough password"}},
		{"missing_password", map[string]string{"username": "alice"}},
		{"short_password", map[string]string{"username": "alice", "password": "short"}},
		{"short_username", map[string]string{"username": "ab", "password": "long enough password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newAuthFixture(t)

			recorder := fixture.post(t, "/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Empty(t, fixture.repository.users)
		})
	}
}

/*
TestLoginEndpoint verifies a successful login returns a token that the
verifier accepts and that carries the account's identity and role.
*/
func TestLoginEndpoint(t *testing.T) {
	fixture := newAuthFixture(t)

	created := fixture.post(t, "/register", map[string]string{"username": "alice", "password": "correct horse battery"})
	require.Equal(t, http.StatusCreated, created.Code)

	recorder := fixture.post(t, "/login", map[string]string{"username": "alice", "password": "correct horse battery"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])

	claims, err := fixture.tokens.VerifyToken(body["token"])
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

/*
TestLoginEndpoint_BadCredentials verifies that an unknown username and a wrong
password produce byte-identical response bodies with the same status, so the
endpoint leaks nothing about which accounts exist.
*/
func TestLoginEndpoint_BadCredentials(t *testing.T) {
	fixture := newAuthFixture(t)

	created := fixture.post(t, "/register", map[string]string{"username": "alice", "password": "correct horse battery"})
	require.Equal(t, http.StatusCreated, created.Code)

	unknownUser := fixture.post(t, "/login", map[string]string{"username": "nobody", "password": "whatever"})
	wrongPassword := fixture.post(t, "/login", map[string]string{"username": "alice", "password": "wrong password"})

	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownUser.Body.String(), wrongPassword.Body.String())
}
