// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-app/velora/internal/platform/sec"
)

const testSecret = "unit-test-signing-secret"

/*
TestTokenService_Roundtrip verifies a generated token carries the identity
claims back through verification.
*/
func TestTokenService_Roundtrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "velora.app")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-123", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "velora.app", claims.Issuer)
}

/*
TestTokenService_Expiry verifies an expired token is rejected.
*/
func TestTokenService_Expiry(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "velora.app")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-123", "member", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Rejections covers tampered and cross-service tokens.
*/
func TestTokenService_Rejections(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "velora.app")
	require.NoError(t, err)

	otherSecret, err := sec.NewTokenService("a-different-secret", "velora.app")
	require.NoError(t, err)

	otherIssuer, err := sec.NewTokenService(testSecret, "someone-else.example")
	require.NoError(t, err)

	valid, err := service.GenerateAccessToken("user-123", "member", time.Hour)
	require.NoError(t, err)

	foreignKey, err := otherSecret.GenerateAccessToken("user-123", "member", time.Hour)
	require.NoError(t, err)

	foreignIssuer, err := otherIssuer.GenerateAccessToken("user-123", "member", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"empty", ""},
		{"truncated", valid[:len(valid)-5]},
		{"wrong_secret", foreignKey},
		{"wrong_issuer", foreignIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

/*
TestNewTokenService_EmptySecret verifies construction fails without a secret.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "velora.app")
	assert.Error(t, err)
}
