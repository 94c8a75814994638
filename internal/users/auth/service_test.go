// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-app/velora/internal/platform/apperr"
	"github.com/velora-app/velora/internal/platform/sec"
	"github.com/velora-app/velora/internal/users/auth"
	"github.com/velora-app/velora/pkg/pagination"
)

// # Test Doubles

// fakeUserRepo is an in-memory UserRepository keyed by user ID.
type fakeUserRepo struct {
	users map[string]*auth.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*auth.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*auth.User, int, error) {
	all := make([]*auth.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		all = append(all, &copied)
	}
	total := len(all)
	if offset > len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *auth.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID, newHash string) error {
	if user, ok := f.users[userID]; ok {
		user.PasswordHash = newHash
	}
	return nil
}

func (f *fakeUserRepo) SetMFACode(_ context.Context, userID, code string, expiresAt time.Time) error {
	if user, ok := f.users[userID]; ok {
		user.MFACode = code
		user.MFACodeExpiresAt = expiresAt
	}
	return nil
}

func (f *fakeUserRepo) ClearMFACode(_ context.Context, userID string) error {
	if user, ok := f.users[userID]; ok {
		user.MFACode = ""
		user.MFACodeExpiresAt = time.Time{}
	}
	return nil
}

func (f *fakeUserRepo) Approve(_ context.Context, userID, role string) error {
	if user, ok := f.users[userID]; ok {
		user.IsApproved = true
		user.Role = sec.UserRole(role)
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, userID string) error {
	delete(f.users, userID)
	return nil
}

// fakeResetTokens is an in-memory ResetTokenRepository.
type fakeResetTokens struct {
	tokens map[string]string // token -> userID
}

func newFakeResetTokens() *fakeResetTokens {
	return &fakeResetTokens{tokens: make(map[string]string)}
}

func (f *fakeResetTokens) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeResetTokens) Get(_ context.Context, token string) (string, error) {
	if userID, ok := f.tokens[token]; ok {
		return userID, nil
	}
	return "", apperr.NotFound("Reset token is invalid or expired")
}

func (f *fakeResetTokens) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func (f *fakeResetTokens) DeleteForUser(_ context.Context, userID string) error {
	for token, owner := range f.tokens {
		if owner == userID {
			delete(f.tokens, token)
		}
	}
	return nil
}

// fakeMailer records every dispatched message.
type fakeMailer struct {
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// fakeTokenProvider issues deterministic tokens for assertions.
type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, role string, _ time.Duration) (string, error) {
	return "token:" + userID + ":" + role, nil
}

// # Harness

type harness struct {
	service *auth.Service
	users   *fakeUserRepo
	resets  *fakeResetTokens
	mail    *fakeMailer
}

func newHarness() *harness {
	users := newFakeUserRepo()
	resets := newFakeResetTokens()
	mail := &fakeMailer{}
	service := auth.NewService(users, resets, fakeTokenProvider{}, mail)
	return &harness{service: service, users: users, resets: resets, mail: mail}
}

// seedUser registers an account through the service and applies mutations.
func (h *harness) seedUser(t *testing.T, username, email, password string, mutate func(*auth.User)) *auth.User {
	t.Helper()

	user, err := h.service.Register(context.Background(), auth.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	stored := h.users.users[user.ID]
	if mutate != nil {
		mutate(stored)
	}
	return stored
}

// # Registration

/*
TestRegister_Defaults verifies new accounts start unapproved with the member role.
*/
func TestRegister_Defaults(t *testing.T) {
	h := newHarness()

	user, err := h.service.Register(context.Background(), auth.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.False(t, user.IsApproved)
	assert.Equal(t, sec.RoleMember, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct-horse", user.PasswordHash))
}

/*
TestRegister_DuplicateIdentity verifies email and username uniqueness conflicts.
*/
func TestRegister_DuplicateIdentity(t *testing.T) {
	h := newHarness()
	h.seedUser(t, "alice", "alice@example.com", "correct-horse", nil)

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"duplicate_email", "someone_else", "alice@example.com"},
		{"duplicate_username", "alice", "other@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.service.Register(context.Background(), auth.RegisterInput{
				Username: tt.username,
				Email:    tt.email,
				Password: "irrelevant-pw",
			})

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "CONFLICT", ae.Code)
		})
	}
}

// # Login

/*
TestLogin_InvalidCredentialsIndistinguishable verifies an unknown email and a
wrong password produce the exact same error response.
*/
func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	h := newHarness()
	h.seedUser(t, "alice", "alice@example.com", "correct-horse", func(u *auth.User) {
		u.IsApproved = true
	})

	_, unknownErr := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	_, wrongPassErr := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)

	unknownAE := apperr.As(unknownErr)
	wrongAE := apperr.As(wrongPassErr)
	require.NotNil(t, unknownAE)
	require.NotNil(t, wrongAE)

	assert.Equal(t, unknownAE.Code, wrongAE.Code)
	assert.Equal(t, unknownAE.Message, wrongAE.Message)
	assert.Equal(t, unknownAE.HTTPStatus, wrongAE.HTTPStatus)
}

/*
TestLogin_UnapprovedAccount verifies valid credentials on a pending account
return the distinct NOT_APPROVED error and never a token.
*/
func TestLogin_UnapprovedAccount(t *testing.T) {
	h := newHarness()
	h.seedUser(t, "alice", "alice@example.com", "correct-horse", nil)

	result, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_APPROVED", ae.Code)
}

/*
TestLogin_Success verifies an approved, MFA-disabled account receives a token.
*/
func TestLogin_Success(t *testing.T) {
	h := newHarness()
	seeded := h.seedUser(t, "alice", "alice@example.com", "correct-horse", func(u *auth.User) {
		u.IsApproved = true
	})

	result, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.False(t, result.MFAPending)
	assert.Equal(t, "token:"+seeded.ID+":member", result.Token)
	assert.Empty(t, h.mail.sent)
}

// # MFA Flow

/*
TestLogin_MFAChallenge verifies MFA-enabled accounts get a code by email
instead of a token, and the code is stored with an expiry.
*/
func TestLogin_MFAChallenge(t *testing.T) {
	h := newHarness()
	seeded := h.seedUser(t, "alice", "alice@example.com", "correct-horse", func(u *auth.User) {
		u.IsApproved = true
		u.MFAEnabled = true
	})

	result, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.True(t, result.MFAPending)
	assert.Empty(t, result.Token)

	// The code was persisted on the account row
	stored := h.users.users[seeded.ID]
	assert.Len(t, stored.MFACode, auth.MFACodeDigits)
	assert.True(t, stored.MFACodeExpiresAt.After(time.Now()))

	// And dispatched by email
	require.Len(t, h.mail.sent, 1)
	assert.Equal(t, "alice@example.com", h.mail.sent[0].To)
	assert.Contains(t, h.mail.sent[0].Body, stored.MFACode)
}

/*
TestVerifyMFA_Roundtrip verifies the full challenge flow: login produces a
code, verification consumes it and yields a token, replay fails.
*/
func TestVerifyMFA_Roundtrip(t *testing.T) {
	h := newHarness()
	seeded := h.seedUser(t, "alice", "alice@example.com", "correct-horse", func(u *auth.User) {
		u.IsApproved = true
		u.MFAEnabled = true
	})

	_, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	code := h.users.users[seeded.ID].MFACode
	require.NotEmpty(t, code)

	// First verification succeeds and issues a token
	result, err := h.service.VerifyMFA(context.Background(), "alice@example.com", code)
	require.NoError(t, err)
	assert.Equal(t, "token:"+seeded.ID+":member", result.Token)

	// The code was consumed
	assert.Empty(t, h.users.users[seeded.ID].MFACode)

	// Replay with the same code fails
	_, err = h.service.VerifyMFA(context.Background(), "alice@example.com", code)
	require.Error(t, err)
	assert.Equal(t, "INVALID_MFA_CODE", apperr.As(err).Code)
}

/*
TestVerifyMFA_Failures verifies every failure mode collapses into the same
INVALID_MFA_CODE response.
*/
func TestVerifyMFA_Failures(t *testing.T) {
	h := newHarness()
	seeded := h.seedUser(t, "alice", "alice@example.com", "correct-horse", func(u *auth.User) {
		u.IsApproved = true
		u.MFAEnabled = true
	})

	_, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	code := h.users.users[seeded.ID].MFACode

	tests := []struct {
		name    string
		prepare func()
		email   string
		code    string
	}{
		{"unknown_email", nil, "nobody@example.com", code},
		{"wrong_code", nil, "alice@example.com", "000000"},
		{"expired_code", func() {
			h.users.users[seeded.ID].MFACodeExpiresAt = time.Now().Add(-time.Minute)
		}, "alice@example.com", code},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepare != nil {
				tt.prepare()
			}

			_, err := h.service.VerifyMFA(context.Background(), tt.email, tt.code)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "INVALID_MFA_CODE", ae.Code)
		})
	}
}

/*
TestLogin_MFACodeOverwrite verifies a fresh login replaces any previous
pending code, invalidating the old one.
*/
func TestLogin_MFACodeOverwrite(t *testing.T) {
	h := newHarness()
	seeded := h.seedUser(t, "alice", "alice@example.com", "correct-horse", func(u *auth.User) {
		u.IsApproved = true
		u.MFAEnabled = true
	})

	login := func() string {
		_, err := h.service.Login(context.Background(), auth.LoginInput{
			Email:    "alice@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		return h.users.users[seeded.ID].MFACode
	}

	first := login()
	second := login()

	if first != second {
		// The earlier code no longer matches the stored one
		_, err := h.service.VerifyMFA(context.Background(), "alice@example.com", first)
		require.Error(t, err)
		assert.Equal(t, "INVALID_MFA_CODE", apperr.As(err).Code)
	}

	// The latest code always works
	_, err := h.service.VerifyMFA(context.Background(), "alice@example.com", second)
	require.NoError(t, err)
}

// # Password Management

/*
TestChangePassword verifies old-password verification, hash rotation, and
reset token invalidation.
*/
func TestChangePassword(t *testing.T) {
	h := newHarness()
	seeded := h.seedUser(t, "alice", "alice@example.com", "correct-horse", func(u *auth.User) {
		u.IsApproved = true
	})

	// Outstanding reset token that must be invalidated by the change
	require.NoError(t, h.resets.Set(context.Background(), "stale-token", seeded.ID, time.Hour))

	// Wrong old password is rejected
	err := h.service.ChangePassword(context.Background(), seeded.ID, "wrong-old", "brand-new-pw")
	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", apperr.As(err).Code)

	// Correct old password rotates the hash
	err = h.service.ChangePassword(context.Background(), seeded.ID, "correct-horse", "brand-new-pw")
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("brand-new-pw", h.users.users[seeded.ID].PasswordHash))

	// The stale reset token is gone
	_, err = h.resets.Get(context.Background(), "stale-token")
	require.Error(t, err)
}

/*
TestForgotPassword_UnknownEmailSilent verifies unknown emails succeed without
leaking account existence or sending anything.
*/
func TestForgotPassword_UnknownEmailSilent(t *testing.T) {
	h := newHarness()

	err := h.service.ForgotPassword(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.Empty(t, h.mail.sent)
	assert.Empty(t, h.resets.tokens)
}

/*
TestResetPassword_Roundtrip verifies the forgot/reset flow end to end.
*/
func TestResetPassword_Roundtrip(t *testing.T) {
	h := newHarness()
	seeded := h.seedUser(t, "alice", "alice@example.com", "correct-horse", func(u *auth.User) {
		u.IsApproved = true
	})

	require.NoError(t, h.service.ForgotPassword(context.Background(), "alice@example.com"))
	require.Len(t, h.mail.sent, 1)
	require.Len(t, h.resets.tokens, 1)

	var token string
	for stored := range h.resets.tokens {
		token = stored
	}

	require.NoError(t, h.service.ResetPassword(context.Background(), token, "brand-new-pw"))
	assert.True(t, sec.CheckPasswordHash("brand-new-pw", h.users.users[seeded.ID].PasswordHash))

	// The token was burned
	err := h.service.ResetPassword(context.Background(), token, "another-pw")
	require.Error(t, err)
}

// # Administration

/*
TestApprove_PromotesToAdmin verifies approval flips the flag and assigns the
admin role in the same operation.
*/
func TestApprove_PromotesToAdmin(t *testing.T) {
	h := newHarness()
	seeded := h.seedUser(t, "alice", "alice@example.com", "correct-horse", nil)

	user, err := h.service.Approve(context.Background(), seeded.ID)

	require.NoError(t, err)
	assert.True(t, user.IsApproved)
	assert.Equal(t, sec.RoleAdmin, user.Role)

	// The account can now log in
	result, err := h.service.Login(context.Background(), auth.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "token:"+seeded.ID+":admin", result.Token)
}

/*
TestApprove_NotFound verifies approving a missing account fails cleanly.
*/
func TestApprove_NotFound(t *testing.T) {
	h := newHarness()

	_, err := h.service.Approve(context.Background(), "0191b7a0-0000-7000-8000-000000000000")

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestReject_HardDelete verifies rejection removes the row and frees the
identity for re-registration.
*/
func TestReject_HardDelete(t *testing.T) {
	h := newHarness()
	seeded := h.seedUser(t, "alice", "alice@example.com", "correct-horse", nil)

	require.NoError(t, h.service.Reject(context.Background(), seeded.ID))

	// The account is gone
	_, err := h.service.Me(context.Background(), seeded.ID)
	require.Error(t, err)

	// The same identity registers again without conflict
	_, err = h.service.Register(context.Background(), auth.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "fresh-password",
	})
	require.NoError(t, err)
}

/*
TestListUsers_Pagination verifies paging metadata over the account list.
*/
func TestListUsers_Pagination(t *testing.T) {
	h := newHarness()
	h.seedUser(t, "alice", "alice@example.com", "pw-alice-123", nil)
	h.seedUser(t, "bob", "bob@example.com", "pw-bob-1234", nil)
	h.seedUser(t, "carol", "carol@example.com", "pw-carol-12", nil)

	users, meta, err := h.service.ListUsers(context.Background(), pagination.Params{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}
