// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package schema

// SitePageTable represents the 'site.page' table
type SitePageTable struct {
	Table     string
	Slug      string
	Content   string
	UpdatedAt string
}

// SitePage is the schema definition for site.page
var SitePage = SitePageTable{
	Table:     "site.page",
	Slug:      "slug",
	Content:   "content",
	UpdatedAt: "updatedat",
}

func (t SitePageTable) Columns() []string {
	return []string{t.Slug, t.Content, t.UpdatedAt}
}
