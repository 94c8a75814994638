// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package page

import "context"

// Repository defines the persistence contract for static content pages.
type Repository interface {

	/*
		FindBySlug retrieves the stored page for a slug.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Page: Stored document
		  - error: apperr.NotFound when no record exists, or storage errors
	*/
	FindBySlug(context context.Context, slug string) (*Page, error)

	/*
		Upsert creates or wholesale replaces the content blob for a slug.

		Parameters:
		  - context: context.Context
		  - page: *Page

		Returns:
		  - error: Storage errors
	*/
	Upsert(context context.Context, page *Page) error
}
