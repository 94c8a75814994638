// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velora-app/velora/internal/platform/database/schema"
	"github.com/velora-app/velora/internal/platform/dberr"
)

// singletonID is the fixed primary key of the one-and-only settings row.
const singletonID = 1

// PostgresRepository implements the Repository interface using pgx.
//
// The entire aggregate is stored as one JSONB document so that new display
// fields never require a migration.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Load(context context.Context) (*Settings, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.SiteSettings.Document, schema.SiteSettings.Table, schema.SiteSettings.ID)

	var raw []byte
	if err := repository.db.QueryRow(context, query, singletonID).Scan(&raw); err != nil {
		return nil, dberr.Wrap(err, "load_settings")
	}

	document := &Settings{}
	if err := json.Unmarshal(raw, document); err != nil {
		return nil, fmt.Errorf("postgres_settings_repo_decode_failed: %w", err)
	}

	return document, nil
}

func (repository *PostgresRepository) Save(context context.Context, document *Settings) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		schema.SiteSettings.Table, schema.SiteSettings.ID, schema.SiteSettings.Document, schema.SiteSettings.UpdatedAt,
		schema.SiteSettings.ID,
		schema.SiteSettings.Document, schema.SiteSettings.Document,
		schema.SiteSettings.UpdatedAt, schema.SiteSettings.UpdatedAt,
	)

	raw, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("postgres_settings_repo_encode_failed: %w", err)
	}

	if _, err := repository.db.Exec(context, query, singletonID, raw, time.Now()); err != nil {
		return dberr.Wrap(err, "save_settings")
	}

	return nil
}
