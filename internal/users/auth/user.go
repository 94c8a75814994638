// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

/*
Package auth implements the user identity and account lifecycle layer.

It defines the core domain entity (User) and the logic for registration,
approval-gated login, the optional email one-time-code second factor, and
administrative account management.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/velora-app/velora/internal/platform/sec"
)

// # Domain Entities

// User represents a registered operator or author of the Velora storefront.
//
// Accounts are created unapproved by self-registration and only become able
// to authenticate once an existing admin approves them.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.UserRole `json:"role"`
	IsApproved   bool         `json:"is_approved"`
	MFAEnabled   bool         `json:"mfa_enabled"`

	// Pending second-factor state, set transiently at login time and cleared
	// on successful verification. Never serialized.
	MFACode          string    `json:"-"`
	MFACodeExpiresAt time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPendingMFACode reports whether the user has a one-time code that is
// still inside its validity window. An expired code is treated as absent.
func (u *User) HasPendingMFACode(now time.Time) bool {
	return u.MFACode != "" && now.Before(u.MFACodeExpiresAt)
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldMFACode     = "mfa_code"
	FieldToken       = "token"
	FieldOldPassword = "old_password"
	FieldNewPassword = "new_password"
	FieldMessage     = "message"
	FieldUser        = "user"
)
