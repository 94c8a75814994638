// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velora-app/velora/internal/platform/database/schema"
)

/*
TestUserAccountColumns pins the column order of the users.account SELECT list.

The auth repository scans rows positionally, so the order returned here must
match its scan destinations exactly.
*/
func TestUserAccountColumns(t *testing.T) {
	assert.Equal(t, "users.account", schema.UserAccount.Table)

	assert.Equal(t, []string{
		"id", "username", "email", "passwordhash", "role", "isapproved",
		"mfaenabled", "mfacode", "mfacodeexpiresat", "createdat", "updatedat",
	}, schema.UserAccount.Columns())
}

/*
TestSitePageColumns pins the column order of the site.page SELECT list.
*/
func TestSitePageColumns(t *testing.T) {
	assert.Equal(t, "site.page", schema.SitePage.Table)
	assert.Equal(t, []string{"slug", "content", "updatedat"}, schema.SitePage.Columns())
}
