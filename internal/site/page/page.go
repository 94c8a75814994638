// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

/*
Package page owns the slug-addressed static content documents (legal pages).

Each page is a single HTML blob keyed by a stable slug such as "terms" or
"privacy-policy". There is no revision history. Reads for a slug with no
stored record return a fixed per-slug fallback snippet instead of an error,
so the storefront always has something to render. Writes create or wholesale
replace the blob; the content field is the atomic unit.
*/
package page

import "time"

// Page is one slug-addressed static content document.
type Page struct {
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Well-known legal page slugs.
const (
	SlugTerms      = "terms"
	SlugPrivacy    = "privacy-policy"
	SlugDisclosure = "disclosure"
)

// fallbackContent holds the deterministic per-slug HTML returned when no
// record exists for a well-known slug.
var fallbackContent = map[string]string{
	SlugTerms:      "<h1>Terms of Service</h1><p>The terms of service for this site have not been published yet.</p>",
	SlugPrivacy:    "<h1>Privacy Policy</h1><p>The privacy policy for this site has not been published yet.</p>",
	SlugDisclosure: "<h1>Affiliate Disclosure</h1><p>Some links on this site are affiliate links. The full disclosure has not been published yet.</p>",
}

// genericFallback is returned for slugs with no dedicated fallback.
const genericFallback = "<p>This page has not been published yet.</p>"

// Fallback returns the deterministic HTML snippet served for a slug with no
// stored record.
func Fallback(slug string) string {
	if content, ok := fallbackContent[slug]; ok {
		return content
	}
	return genericFallback
}
