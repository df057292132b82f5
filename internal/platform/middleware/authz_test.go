// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todone-app/todone/internal/platform/middleware"
	"github.com/todone-app/todone/internal/platform/sec"
)

// newTokenService builds a real HS256 TokenService for gate testing.
func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService("authz-test-signing-key", "todone.test")
	require.NoError(t, err)
	return service
}

// issueToken signs a token for the given identity.
func issueToken(t *testing.T, service *sec.TokenService, username, role string) string {
	t.Helper()
	token, err := service.GenerateAccessToken("id-"+username, username, role, time.Hour)
	require.NoError(t, err)
	return token
}

// decodeErrorCode extracts the machine-readable code from an error body.
func decodeErrorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Code
}

/*
TestAuthenticate_MissingCredential verifies that requests without a usable
bearer token are rejected with 401 before the handler runs.
*/
func TestAuthenticate_MissingCredential(t *testing.T) {
	service := newTokenService(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no_header", ""},
		{"wrong_scheme", "Basic dXNlcjpwYXNz"},
		{"scheme_without_token", "Bearer "},
		{"bare_token_no_scheme", "just-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				handlerCalled = true
			})

			request := httptest.NewRequest(http.MethodGet, "/todos", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(service)(next).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, "UNAUTHORIZED", decodeErrorCode(t, recorder))
			assert.False(t, handlerCalled, "handler must not run without a credential")
		})
	}
}

/*
TestAuthenticate_InvalidToken verifies that a credential which is present but
fails verification is rejected with 403 (not 401 — the credential was offered).
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	service := newTokenService(t)
	valid := issueToken(t, service, "alice", "user")

	// Extend the signature segment so it can no longer match.
	tampered := valid + "x"

	otherService, err := sec.NewTokenService("a-different-signing-key", "todone.test")
	require.NoError(t, err)
	foreign := issueToken(t, otherService, "alice", "user")

	expired, err := service.GenerateAccessToken("id-alice", "alice", "user", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"tampered_signature", tampered},
		{"signed_with_other_key", foreign},
		{"expired", expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				handlerCalled = true
			})

			request := httptest.NewRequest(http.MethodGet, "/todos", nil)
			request.Header.Set("Authorization", "Bearer "+tt.token)
			recorder := httptest.NewRecorder()

			middleware.Authenticate(service)(next).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusForbidden, recorder.Code)
			assert.Equal(t, "FORBIDDEN", decodeErrorCode(t, recorder))
			assert.False(t, handlerCalled)
		})
	}
}

/*
TestAuthenticate_ValidToken verifies that a valid token passes the gate and
injects the decoded claims into the request context.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	service := newTokenService(t)
	token := issueToken(t, service, "alice", "user")

	var seenClaims *sec.AuthClaims
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenClaims = middleware.GetUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/todos", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	middleware.Authenticate(service)(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, seenClaims)
	assert.Equal(t, "alice", seenClaims.Username)
	assert.Equal(t, "user", seenClaims.Role)
}

/*
TestAuthenticate_SchemeCaseInsensitive verifies the "bearer" scheme matches
regardless of letter case, per RFC 7235.
*/
func TestAuthenticate_SchemeCaseInsensitive(t *testing.T) {
	service := newTokenService(t)
	token := issueToken(t, service, "alice", "user")

	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/todos", nil)
	request.Header.Set("Authorization", "bearer "+token)
	recorder := httptest.NewRecorder()

	middleware.Authenticate(service)(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequireRole verifies the authorization gate: the role claim alone decides,
with no store consultation.
*/
func TestRequireRole(t *testing.T) {
	service := newTokenService(t)

	tests := []struct {
		name           string
		role           string
		expectedStatus int
	}{
		{"admin_allowed", "admin", http.StatusNoContent},
		{"user_forbidden", "user", http.StatusForbidden},
		{"unknown_role_forbidden", "moderator", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := issueToken(t, service, "someone", tt.role)

			next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(http.StatusNoContent)
			})

			// Chain the gates exactly as the server mounts them.
			chain := middleware.Authenticate(service)(middleware.RequireRole(sec.RoleAdmin)(next))

			request := httptest.NewRequest(http.MethodDelete, "/todos", nil)
			request.Header.Set("Authorization", "Bearer "+token)
			recorder := httptest.NewRecorder()

			chain.ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.expectedStatus == http.StatusForbidden {
				assert.Equal(t, "FORBIDDEN", decodeErrorCode(t, recorder))
			}
		})
	}
}

/*
TestRequireRole_WithoutAuthenticate verifies the defensive 401 when the
authorization gate runs without claims in context.
*/
func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	})

	request := httptest.NewRequest(http.MethodDelete, "/todos", nil)
	recorder := httptest.NewRecorder()

	middleware.RequireRole(sec.RoleAdmin)(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
