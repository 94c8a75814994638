// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package schema

// SiteSettingsTable represents the 'site.settings' table.
//
// The table holds exactly one row (the storefront customization aggregate),
// keyed by a constant singleton id and stored as a single JSONB document.
type SiteSettingsTable struct {
	Table     string
	ID        string
	Document  string
	UpdatedAt string
}

// SiteSettings is the schema definition for site.settings
var SiteSettings = SiteSettingsTable{
	Table:     "site.settings",
	ID:        "id",
	Document:  "document",
	UpdatedAt: "updatedat",
}
