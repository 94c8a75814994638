// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

/*
Package auth implements the core identity and access management (IAM) system.

It handles user registration with admin approval gating, credential
verification, email one-time-code MFA, and stateless JWT session issuance.

Architecture:

  - Service: Orchestrates business logic (Register, Login, VerifyMFA, Approve).
  - Repository: Abstracted interfaces for Postgres (Users) and Redis (Reset tokens).
  - Security: Leverages Bcrypt hashing and HMAC-signed JWTs.

The package ensures that identity data remains consistent and secure throughout
the platform's lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/velora-app/velora/internal/platform/apperr"
	"github.com/velora-app/velora/internal/platform/mailer"
	"github.com/velora-app/velora/internal/platform/sec"
	"github.com/velora-app/velora/pkg/pagination"
	"github.com/velora-app/velora/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, role string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository       UserRepository
	resetTokenRepository ResetTokenRepository
	tokenProvider        TokenProvider
	mail                 mailer.Sender
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	resetRepo ResetTokenRepository,
	tokenProv TokenProvider,
	mail mailer.Sender,
) *Service {
	return &Service{
		userRepository:       userRepo,
		resetTokenRepository: resetRepo,
		tokenProvider:        tokenProv,
		mail:                 mail,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: New accounts start unapproved with the member role. They cannot
log in until an administrator approves them.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Verify username uniqueness. Return a client-safe Conflict err.
	_, err = service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         sec.RoleMember,
		IsApproved:   false,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult represents the outcome of a successful credential check.
//
// When MFAPending is true, no token was issued yet; the caller must complete
// the flow via [Service.VerifyMFA] with the emailed one-time code.
type LoginResult struct {
	Token      string
	User       *User
	MFAPending bool
}

/*
Login validates user credentials and issues a stateless session token.

Description: Verifies identity with a constant-time password comparison. When
the account has MFA enabled, a one-time code is emailed instead of a token.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: Session token or MFA-pending marker
  - err: InvalidCredentials, NotApproved, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {

	// Look up by email. Generic message to prevent enumeration: an unknown
	// email and a wrong password are indistinguishable to the caller.
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.InvalidCredentials()
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.InvalidCredentials()
	}

	// Approval gate. Valid credentials on an unapproved account get a
	// distinct, actionable response.
	if !user.IsApproved {
		return nil, apperr.NotApproved()
	}

	// MFA branch: issue a one-time code instead of a token
	if user.MFAEnabled {
		code, err := sec.GenerateNumericCode(MFACodeDigits)
		if err != nil {
			return nil, fmt.Errorf("auth_service_mfa_code_generation_failed: %w", err)
		}

		// Store the code on the account row; a fresh login overwrites any
		// previous pending code.
		expiresAt := time.Now().Add(MFACodeTTL)
		if err := service.userRepository.SetMFACode(context, user.ID, code, expiresAt); err != nil {
			return nil, fmt.Errorf("auth_service_mfa_code_store_failed: %w", err)
		}

		// Dispatch the code by email
		body := fmt.Sprintf("Your Velora verification code is %s. It expires in %d minutes.", code, int(MFACodeTTL.Minutes()))
		if err := service.mail.Send(user.Email, "Your verification code", body); err != nil {
			return nil, fmt.Errorf("auth_service_mfa_code_delivery_failed: %w", err)
		}

		return &LoginResult{User: user, MFAPending: true}, nil
	}

	// Generate the short-lived stateless session token
	token, err := service.tokenProvider.GenerateAccessToken(user.ID, string(user.Role), SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

/*
VerifyMFA completes an MFA-gated login with the emailed one-time code.

Description: All failure modes (unknown email, no pending code, expired code,
wrong code) collapse into the same InvalidMFACode response to avoid leaking
challenge state. A consumed code is cleared and cannot be replayed.

Parameters:
  - context: context.Context
  - email: string
  - code: string

Returns:
  - *LoginResult: Session token for the now-authenticated user
  - err: InvalidMFACode or internal failures
*/
func (service *Service) VerifyMFA(context context.Context, email, code string) (*LoginResult, error) {

	// Look up the account under challenge
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return nil, apperr.InvalidMFACode()
	}

	// The code must be pending and unexpired
	if !user.HasPendingMFACode(time.Now()) {
		return nil, apperr.InvalidMFACode()
	}

	// The code must match exactly
	if user.MFACode != code {
		return nil, apperr.InvalidMFACode()
	}

	// Consume the code so it can never be replayed
	if err := service.userRepository.ClearMFACode(context, user.ID); err != nil {
		return nil, fmt.Errorf("auth_service_mfa_code_clear_failed: %w", err)
	}

	// Issue the session token
	token, err := service.tokenProvider.GenerateAccessToken(user.ID, string(user.Role), SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_mfa_token_generation_failed: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

/*
Me returns the profile of the authenticated account.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *User: Hydrated account entity
  - err: apperr.NotFound or storage errors
*/
func (service *Service) Me(context context.Context, userID string) (*User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// # Password Management

/*
ChangePassword allows an authenticated user to update their credentials.

Description: Verifies the current password, rotates the hash, and invalidates
any outstanding password reset token so stale reset links stop working.

Parameters:
  - context: context.Context
  - userID: string
  - currentPassword: string
  - newPassword: string

Returns:
  - err: InvalidCredentials or storage failures
*/
func (service *Service) ChangePassword(context context.Context, userID, currentPassword, newPassword string) error {

	// Fetch user by ID
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return err
	}

	// Verify the current password before allowing change
	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.InvalidCredentials()
	}

	// Hash the brand new password
	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_change_password_hash_failed: %w", err)
	}

	// Update the database with the new hash
	if err := service.userRepository.UpdatePassword(context, userID, hashedPassword); err != nil {
		return fmt.Errorf("auth_service_change_password_update_failed: %w", err)
	}

	// Security Side Effect: invalidate outstanding reset tokens for the account
	_ = service.resetTokenRepository.DeleteForUser(context, userID)

	return nil
}

/*
ForgotPassword initiates the forgot-password flow.

Description: Generates a secure token, saves it to Redis, and emails a reset
link. Unknown emails succeed silently to prevent user enumeration.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - err: Generation or delivery errors
*/
func (service *Service) ForgotPassword(context context.Context, email string) error {

	// Look up user.
	// NOTE: We don't return NOT_FOUND if the email doesn't exist to prevent user enumeration.
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return nil
	}

	// Generate reset token
	token, err := sec.GenerateSecureToken(ResetTokenLength)
	if err != nil {
		return fmt.Errorf("auth_service_generate_reset_token_failed: %w", err)
	}

	// Save to Redis
	if err := service.resetTokenRepository.Set(context, token, user.ID, ResetTokenTTL); err != nil {
		return fmt.Errorf("auth_service_save_reset_token_failed: %w", err)
	}

	// Dispatch the reset token by email
	body := fmt.Sprintf("Use this token to reset your Velora password: %s. It expires in %d minutes.", token, int(ResetTokenTTL.Minutes()))
	if err := service.mail.Send(user.Email, "Password reset request", body); err != nil {
		return fmt.Errorf("auth_service_reset_token_delivery_failed: %w", err)
	}

	return nil
}

/*
ResetPassword completes the forgot-password flow.

Description: Verifies the token, hashes the new password, updates the DB,
and burns the token.

Parameters:
  - context: context.Context
  - token: string
  - newPassword: string

Returns:
  - err: Validation or update failures
*/
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {

	// Retrieve the userID associated with the reset token from Redis
	userID, err := service.resetTokenRepository.Get(context, token)
	if err != nil {
		return err
	}

	// Hash the new password securely
	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_reset_password_hash_failed: %w", err)
	}

	// Update the user's password in persistent storage
	if err := service.userRepository.UpdatePassword(context, userID, hashedPassword); err != nil {
		return fmt.Errorf("auth_service_reset_password_update_failed: %w", err)
	}

	// Delete the used token from Redis
	_ = service.resetTokenRepository.Delete(context, token)

	return nil
}

// # Administration

/*
ListUsers returns one page of accounts for the admin dashboard.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []*User: Page of accounts
  - pagination.Meta: Paging metadata
  - err: Storage failures
*/
func (service *Service) ListUsers(context context.Context, params pagination.Params) ([]*User, pagination.Meta, error) {
	users, total, err := service.userRepository.List(context, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("auth_service_list_users_failed: %w", err)
	}
	return users, pagination.NewMeta(params.Page, params.Limit, total), nil
}

/*
Approve admits a pending account onto the platform.

Description: Sets the approval flag and promotes the account to the admin
role in the same operation. Approving an already-approved account is a no-op
beyond refreshing the role.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *User: Updated account entity
  - err: apperr.NotFound or storage failures
*/
func (service *Service) Approve(context context.Context, userID string) (*User, error) {

	// The account must exist
	if _, err := service.userRepository.FindByID(context, userID); err != nil {
		return nil, err
	}

	// Every approved account operates with full administrative rights
	if err := service.userRepository.Approve(context, userID, string(sec.RoleAdmin)); err != nil {
		return nil, fmt.Errorf("auth_service_approve_failed: %w", err)
	}

	// Return the refreshed entity
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

/*
Reject permanently removes a pending account.

Description: Hard delete with no tombstone. The email and username become
immediately available for re-registration.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - err: apperr.NotFound or storage failures
*/
func (service *Service) Reject(context context.Context, userID string) error {

	// The account must exist
	if _, err := service.userRepository.FindByID(context, userID); err != nil {
		return err
	}

	// Hard delete the row
	if err := service.userRepository.Delete(context, userID); err != nil {
		return fmt.Errorf("auth_service_reject_failed: %w", err)
	}

	return nil
}
