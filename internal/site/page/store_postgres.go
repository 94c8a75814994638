// Copyright (c) 2026 Velora. All rights reserved.
// Author: hello@velora.app

package page

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velora-app/velora/internal/platform/database/schema"
	"github.com/velora-app/velora/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Page, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.SitePage.Columns(), ", "),
		schema.SitePage.Table, schema.SitePage.Slug)

	page := &Page{}
	if err := repository.db.QueryRow(context, query, slug).Scan(&page.Slug, &page.Content, &page.UpdatedAt); err != nil {
		return nil, dberr.Wrap(err, "find_page_by_slug")
	}

	return page, nil
}

func (repository *PostgresRepository) Upsert(context context.Context, page *Page) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		schema.SitePage.Table, schema.SitePage.Slug, schema.SitePage.Content, schema.SitePage.UpdatedAt,
		schema.SitePage.Slug,
		schema.SitePage.Content, schema.SitePage.Content,
		schema.SitePage.UpdatedAt, schema.SitePage.UpdatedAt,
	)

	page.UpdatedAt = time.Now()

	if _, err := repository.db.Exec(context, query, page.Slug, page.Content, page.UpdatedAt); err != nil {
		return dberr.Wrap(err, "upsert_page")
	}

	return nil
}
