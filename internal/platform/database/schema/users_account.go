// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

// Package schema holds the static table/column name definitions used by the
// repository layer to build SQL without scattering string literals.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table            string
	ID               string
	Username         string
	Email            string
	Password         string
	Role             string
	IsApproved       string
	MFAEnabled       string
	MFACode          string
	MFACodeExpiresAt string
	CreatedAt        string
	UpdatedAt        string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:            "users.account",
	ID:               "id",
	Username:         "username",
	Email:            "email",
	Password:         "passwordhash",
	Role:             "role",
	IsApproved:       "isapproved",
	MFAEnabled:       "mfaenabled",
	MFACode:          "mfacode",
	MFACodeExpiresAt: "mfacodeexpiresat",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.Password, t.Role, t.IsApproved,
		t.MFAEnabled, t.MFACode, t.MFACodeExpiresAt, t.CreatedAt, t.UpdatedAt,
	}
}
