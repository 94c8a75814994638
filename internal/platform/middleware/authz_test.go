// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-app/velora/internal/platform/constants"
	"github.com/velora-app/velora/internal/platform/middleware"
	"github.com/velora-app/velora/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string and returns fixed claims.
type fakeVerifier struct {
	accepted string
	claims   *sec.AuthClaims
}

func (f *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == f.accepted {
		return f.claims, nil
	}
	return nil, errors.New("verification failed")
}

// okHandler records whether it was reached and echoes the context claims.
func okHandler(reached *bool, gotClaims **sec.AuthClaims) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*reached = true
		if gotClaims != nil {
			*gotClaims = middleware.GetUser(request.Context())
		}
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate_TokenTransport covers both accepted header transports and
the malformed Authorization rejection.
*/
func TestAuthenticate_TokenTransport(t *testing.T) {
	verifier := &fakeVerifier{
		accepted: "good-token",
		claims:   &sec.AuthClaims{UserID: "user-1", Role: "admin"},
	}

	tests := []struct {
		name       string
		header     string
		value      string
		wantStatus int
		wantUser   string
	}{
		{"custom_header", constants.HeaderAuthToken, "good-token", http.StatusOK, "user-1"},
		{"bearer_header", "Authorization", "Bearer good-token", http.StatusOK, "user-1"},
		{"bearer_case_insensitive", "Authorization", "bearer good-token", http.StatusOK, "user-1"},
		{"no_header_anonymous", "", "", http.StatusOK, ""},
		{"malformed_authorization", "Authorization", "good-token", http.StatusUnauthorized, ""},
		{"invalid_token", constants.HeaderAuthToken, "bad-token", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			var claims *sec.AuthClaims
			handler := middleware.Authenticate(verifier)(okHandler(&reached, &claims))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set(tt.header, tt.value)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, reached)
				if tt.wantUser != "" {
					require.NotNil(t, claims)
					assert.Equal(t, tt.wantUser, claims.UserID)
				} else {
					assert.Nil(t, claims)
				}
			} else {
				assert.False(t, reached)
			}
		})
	}
}

/*
TestRequireAuth verifies anonymous requests are blocked with 401 while
authenticated ones pass through.
*/
func TestRequireAuth(t *testing.T) {
	verifier := &fakeVerifier{
		accepted: "good-token",
		claims:   &sec.AuthClaims{UserID: "user-1", Role: "member"},
	}

	var reached bool
	chain := middleware.Authenticate(verifier)(middleware.RequireAuth(okHandler(&reached, nil)))

	// Anonymous: blocked
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/settings", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, reached)

	// Authenticated: passes
	request := httptest.NewRequest(http.MethodPut, "/settings", nil)
	request.Header.Set(constants.HeaderAuthToken, "good-token")
	recorder = httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, reached)
}

/*
TestRequireRole verifies the role gate distinguishes 401 from 403.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		role       string
		wantStatus int
	}{
		{"anonymous", "", "", http.StatusUnauthorized},
		{"member_blocked", "member-token", "member", http.StatusForbidden},
		{"author_blocked", "author-token", "author", http.StatusForbidden},
		{"admin_allowed", "admin-token", "admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{
				accepted: tt.token,
				claims:   &sec.AuthClaims{UserID: "user-1", Role: tt.role},
			}

			var reached bool
			chain := middleware.Authenticate(verifier)(
				middleware.RequireRole(sec.RoleAdmin)(okHandler(&reached, nil)),
			)

			request := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.token != "" {
				request.Header.Set(constants.HeaderAuthToken, tt.token)
			}
			recorder := httptest.NewRecorder()

			chain.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)
		})
	}
}
