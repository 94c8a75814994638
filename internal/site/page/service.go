// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package page

import (
	"context"
	"errors"
	"fmt"

	"github.com/velora-app/velora/internal/platform/apperr"
	slugutil "github.com/velora-app/velora/pkg/slug"
)

// Service implements the static content page use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
Get returns the content for a slug.

Description: A slug with no stored record yields its deterministic fallback
snippet instead of an error, so public reads never 404.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - *Page: Stored or fallback document
  - err: Storage failures only, never absence
*/
func (service *Service) Get(context context.Context, slug string) (*Page, error) {
	slug = slugutil.From(slug)

	stored, err := service.repository.FindBySlug(context, slug)
	if err == nil {
		return stored, nil
	}

	var appError *apperr.AppError
	if errors.As(err, &appError) && appError.Code == "NOT_FOUND" {
		return &Page{Slug: slug, Content: Fallback(slug)}, nil
	}

	return nil, err
}

/*
Put creates or wholesale replaces the content for a slug.

Description: The slug is canonicalized before storage so "Privacy Policy"
and "privacy-policy" address the same document. The whole content blob is
the atomic unit; there is no merge.

Parameters:
  - context: context.Context
  - slug: string
  - content: string

Returns:
  - *Page: Persisted document
  - err: Storage failures
*/
func (service *Service) Put(context context.Context, slug, content string) (*Page, error) {
	page := &Page{
		Slug:    slugutil.From(slug),
		Content: content,
	}

	if err := service.repository.Upsert(context, page); err != nil {
		return nil, fmt.Errorf("page_service_put_failed: %w", err)
	}

	return page, nil
}
