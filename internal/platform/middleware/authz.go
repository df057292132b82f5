// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/todone-app/todone/internal/platform/apperr"
	"github.com/todone-app/todone/internal/platform/constants"
	"github.com/todone-app/todone/internal/platform/ctxkey"
	"github.com/todone-app/todone/internal/platform/respond"
	"github.com/todone-app/todone/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing us to easily inject stubs during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. Missing header, missing Bearer scheme, or a malformed two-part shape all
//     count as "no credential supplied" → abort with HTTP 401.
//  3. If a token is present, parse and verify it via [TokenVerifier].
//     A bad signature, malformed payload, or expired token → abort with
//     HTTP 403. The 401/403 split is deliberate: 401 means no credential,
//     403 means a credential was offered and rejected.
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// The gate performs no store I/O: the claims are trusted exactly as signed.
//
// # Parameters
//   - verifier: The TokenVerifier instance.
//
// # Returns
//   - An [http.Handler] middleware.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Credential Presence ────────────────────────────────────────
			if authHeader == "" {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Scheme Validation ──────────────────────────────────────────
			// Anything that is not "Bearer <token>" is treated as no token.
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], constants.AuthScheme) || parts[1] == "" {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			tokenStr := parts[1]
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Forbidden("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := context.WithValue(request.Context(), ctxkey.KeyUser, claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests if the authenticated user doesn't have the required role.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]: reaching this gate
// without claims in context is a wiring bug, not a runtime condition, and is
// rejected defensively with HTTP 401.
//
// # Flow
//  1. Check if [*sec.AuthClaims] exists in context.
//  2. Check if the user's role meets or exceeds the required target role using
//     [sec.UserRole.AtLeast]. The role claim is read from the token verbatim;
//     it is never re-fetched from the store.
//  3. If insufficient, abort with HTTP 403 Forbidden.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := GetUser(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			userRole := sec.UserRole(claims.Role)
			if !userRole.AtLeast(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// GetUser retrieves the [*sec.AuthClaims] from the [context.Context].
//
// # Returns
//   - A pointer to [*sec.AuthClaims] if the user is authenticated.
//   - nil if the user is anonymous.
func GetUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
