// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package auth

import "time"

// # Authentication Constraints

const (
	// SessionTokenTTL is the duration a session token remains valid.
	// Fixed at one hour; tokens are stateless and never revoked early.
	SessionTokenTTL = 1 * time.Hour

	// MFACodeTTL is the validity window of the emailed one-time login code.
	MFACodeTTL = 5 * time.Minute

	// MFACodeDigits is the length of the numeric one-time login code.
	MFACodeDigits = 6

	// ResetTokenTTL is the duration a password reset token remains valid.
	// Short-lived (1 hour) for security.
	ResetTokenTTL = 1 * time.Hour

	// ResetTokenLength is the byte length of the random password reset token.
	ResetTokenLength = 32
)
