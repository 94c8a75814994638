// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package settings

import "context"

// Repository defines the persistence contract for the Settings singleton.
type Repository interface {

	/*
		Load retrieves the stored Settings document.

		Parameters:
		  - context: context.Context

		Returns:
		  - *Settings: Stored document
		  - error: apperr.NotFound when no document exists yet, or storage errors
	*/
	Load(context context.Context) (*Settings, error)

	/*
		Save persists the full Settings document, creating or wholesale
		replacing the singleton row. No field-level merging is performed.

		Parameters:
		  - context: context.Context
		  - document: *Settings

		Returns:
		  - error: Storage errors
	*/
	Save(context context.Context, document *Settings) error
}
