// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velora-app/velora/internal/platform/sec"
)

/*
TestUserRole_AtLeast verifies the role hierarchy ordering.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     sec.UserRole
		target   sec.UserRole
		expected bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_member", sec.RoleAdmin, sec.RoleMember, true},
		{"author_meets_member", sec.RoleAuthor, sec.RoleMember, true},
		{"author_below_admin", sec.RoleAuthor, sec.RoleAdmin, false},
		{"member_below_author", sec.RoleMember, sec.RoleAuthor, false},
		{"member_below_admin", sec.RoleMember, sec.RoleAdmin, false},
		{"unknown_below_member", sec.UserRole("ghost"), sec.RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.AtLeast(tt.target))
		})
	}
}

/*
TestUserRole_IsValid verifies the closed role set.
*/
func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, sec.RoleAdmin.IsValid())
	assert.True(t, sec.RoleAuthor.IsValid())
	assert.True(t, sec.RoleMember.IsValid())
	assert.False(t, sec.UserRole("superuser").IsValid())
	assert.False(t, sec.UserRole("").IsValid())
}

/*
TestHashPassword_Roundtrip verifies bcrypt hashing and verification.
*/
func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := sec.HashPassword("correct-horse")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, sec.CheckPasswordHash("correct-horse", hash))
	assert.False(t, sec.CheckPasswordHash("wrong-horse", hash))
}

/*
TestGenerateNumericCode verifies code length and digit-only content.
*/
func TestGenerateNumericCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := sec.GenerateNumericCode(6)
		assert.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}
