// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/velora-app/velora/internal/platform/apperr"
	"github.com/velora-app/velora/internal/platform/validate"
)

// Service implements the site configuration use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
Get returns the site-wide Settings document.

Description: When no document exists yet, the defaults are persisted and
returned so every deployment always has exactly one Settings row after the
first read.

Parameters:
  - context: context.Context

Returns:
  - *Settings: Stored or freshly-created document
  - err: Storage failures only
*/
func (service *Service) Get(context context.Context) (*Settings, error) {
	document, err := service.repository.Load(context)
	if err == nil {
		return document, nil
	}

	// Only absence triggers lazy creation; real storage errors propagate.
	if !errIsNotFound(err) {
		return nil, err
	}

	fresh := Defaults()
	if err := service.repository.Save(context, &fresh); err != nil {
		return nil, fmt.Errorf("settings_service_lazy_create_failed: %w", err)
	}

	return &fresh, nil
}

/*
Update replaces the stored Settings document with the incoming payload.

Description: The raw JSON is decoded over a fresh default document and the
result is persisted verbatim. Omitted fields revert to schema defaults; the
store performs no field-level merging. Callers must read the full document
first and submit the whole object back. Last writer wins.

Parameters:
  - context: context.Context
  - payload: []byte (Full Settings object as JSON)

Returns:
  - *Settings: Persisted document
  - err: validate.ErrInvalidJSON or storage failures
*/
func (service *Service) Update(context context.Context, payload []byte) (*Settings, error) {
	next := Defaults()
	if err := json.Unmarshal(payload, &next); err != nil {
		return nil, validate.ErrInvalidJSON
	}

	if err := service.repository.Save(context, &next); err != nil {
		return nil, fmt.Errorf("settings_service_update_failed: %w", err)
	}

	return &next, nil
}

// errIsNotFound reports whether err is the repository's absence signal.
func errIsNotFound(err error) bool {
	var appError *apperr.AppError
	return errors.As(err, &appError) && appError.Code == "NOT_FOUND"
}
