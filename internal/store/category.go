// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"apigs/internal/models"
	"apigs/internal/query"
)

// CategoryStore manages project and service categories.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `categories.id, categories.name, categories.slug, categories.description,
	categories.type, categories.color, categories.sort_order, categories.is_active,
	categories.created_at, categories.updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(s scanner) (*models.Category, error) {
	var c models.Category
	err := s.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description,
		&c.Type, &c.Color, &c.SortOrder, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns the categories matching q.
func (s *CategoryStore) List(ctx context.Context, q query.Query) ([]models.Category, error) {
	return list(ctx, s.db, "categories", categoryColumns, q, scanCategory)
}

// FindByID retrieves a category regardless of its active flag.
func (s *CategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	q := query.Lookup(query.Categories, query.Admin).WithEqual("categories.id", id)
	return find(ctx, s.db, "categories", categoryColumns, q, scanCategory)
}

// SlugTaken reports whether another category already uses slug.
func (s *CategoryStore) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	return slugTaken(ctx, s.db, "categories", slug, exclude)
}

// Create inserts a new category and returns it.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, slug, description, type, color, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+categoryColumns,
		c.Name, c.Slug, nullIfEmpty(c.Description), string(c.Type), nullIfEmpty(c.Color), c.SortOrder, c.IsActive,
	)
	created, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", translate(err, ErrInvalidReference))
	}
	return created, nil
}

// Update overwrites the writable fields of c.ID and returns the stored row.
func (s *CategoryStore) Update(ctx context.Context, c *models.Category) (*models.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE categories SET
			name = $1, slug = $2, description = $3, type = $4, color = $5,
			sort_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+categoryColumns,
		c.Name, c.Slug, nullIfEmpty(c.Description), string(c.Type), nullIfEmpty(c.Color),
		c.SortOrder, c.IsActive, c.ID,
	)
	updated, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update category: %w", translate(err, ErrInvalidReference))
	}
	return updated, nil
}

// Delete removes a category. Categories still referenced by projects are
// kept and ErrInUse is returned; the foreign key backs this check.
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	var refs int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE category_id = $1`, id,
	).Scan(&refs)
	if err != nil {
		return fmt.Errorf("count category references: %w", err)
	}
	if refs > 0 {
		return ErrInUse
	}
	return deleteByID(ctx, s.db, "categories", id)
}
