// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package settings_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-app/velora/internal/platform/apperr"
	"github.com/velora-app/velora/internal/site/settings"
)

// fakeRepository is an in-memory Repository holding at most one document.
type fakeRepository struct {
	document *settings.Settings
	saves    int
}

func (f *fakeRepository) Load(_ context.Context) (*settings.Settings, error) {
	if f.document == nil {
		return nil, apperr.NotFound("Settings")
	}
	copied := *f.document
	return &copied, nil
}

func (f *fakeRepository) Save(_ context.Context, document *settings.Settings) error {
	copied := *document
	f.document = &copied
	f.saves++
	return nil
}

/*
TestGet_LazyCreatesDefaults verifies the first read persists and returns the
default document.
*/
func TestGet_LazyCreatesDefaults(t *testing.T) {
	repo := &fakeRepository{}
	service := settings.NewService(repo)

	document, err := service.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), *document)
	assert.Equal(t, 1, repo.saves)

	// Subsequent reads hit the stored row without re-saving
	again, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, *document, *again)
	assert.Equal(t, 1, repo.saves)
}

/*
TestUpdate_ReplaceNotMerge asserts the documented last-writer-wins sharp
edge: a payload that omits a field reverts that field to its schema default,
even if a different value was stored before.
*/
func TestUpdate_ReplaceNotMerge(t *testing.T) {
	repo := &fakeRepository{}
	service := settings.NewService(repo)

	// Seed a fully customized document
	seeded := settings.Defaults()
	seeded.HeroMainText = "A"
	seeded.FooterCopyrightText = "B"
	require.NoError(t, repo.Save(context.Background(), &seeded))

	// Update with a partial object that omits footerCopyrightText
	_, err := service.Update(context.Background(), []byte(`{"heroMainText":"Z"}`))
	require.NoError(t, err)

	stored, err := service.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Z", stored.HeroMainText)
	// The omitted field is NOT "B" anymore: it reverted to the schema default
	assert.Equal(t, settings.Defaults().FooterCopyrightText, stored.FooterCopyrightText)
}

/*
TestUpdate_FullObjectPreservesFields verifies the disciplined read-modify-write
path: submitting the whole current document with one field changed leaves
every other field untouched.
*/
func TestUpdate_FullObjectPreservesFields(t *testing.T) {
	repo := &fakeRepository{}
	service := settings.NewService(repo)

	seeded := settings.Defaults()
	seeded.HeroMainText = "A"
	seeded.FooterCopyrightText = "B"
	seeded.FooterLinks = []settings.FooterLink{{Label: "Terms", URL: "/pages/terms"}}
	require.NoError(t, repo.Save(context.Background(), &seeded))

	// Read the full document, change one field, submit the whole thing back
	current, err := service.Get(context.Background())
	require.NoError(t, err)
	current.HeroMainText = "Z"

	payload, err := json.Marshal(current)
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, "Z", updated.HeroMainText)
	assert.Equal(t, "B", updated.FooterCopyrightText)
	assert.Equal(t, seeded.FooterLinks, updated.FooterLinks)
}

/*
TestUpdate_InvalidJSON verifies malformed payloads are rejected without
touching the stored document.
*/
func TestUpdate_InvalidJSON(t *testing.T) {
	repo := &fakeRepository{}
	service := settings.NewService(repo)

	seeded := settings.Defaults()
	seeded.HeroMainText = "A"
	require.NoError(t, repo.Save(context.Background(), &seeded))
	savesBefore := repo.saves

	_, err := service.Update(context.Background(), []byte(`{not json`))

	require.Error(t, err)
	assert.Equal(t, savesBefore, repo.saves)
	assert.Equal(t, "A", repo.document.HeroMainText)
}
