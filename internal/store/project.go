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

// ProjectStore manages portfolio projects.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore returns a new ProjectStore.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// Every read joins the owning category for its name, slug and color.
const (
	projectFrom    = `projects JOIN categories ON categories.id = projects.category_id`
	projectColumns = `projects.id, projects.title, projects.slug, projects.description,
	projects.image, projects.technologies, projects.category_id, projects.sort_order,
	projects.is_active, projects.created_at, projects.updated_at,
	categories.name, categories.slug, categories.color`
)

func scanProject(s scanner) (*models.Project, error) {
	var p models.Project
	var ref models.CategoryRef
	err := s.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description,
		&p.Image, &p.Technologies, &p.CategoryID, &p.SortOrder,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&ref.Name, &ref.Slug, &ref.Color,
	)
	if err != nil {
		return nil, err
	}
	p.Category = &ref
	return &p, nil
}

// List returns the projects matching q.
func (s *ProjectStore) List(ctx context.Context, q query.Query) ([]models.Project, error) {
	return list(ctx, s.db, projectFrom, projectColumns, q, scanProject)
}

// FindByID retrieves a project in admin mode.
func (s *ProjectStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	q := query.Lookup(query.Projects, query.Admin).WithEqual("projects.id", id)
	return find(ctx, s.db, projectFrom, projectColumns, q, scanProject)
}

// FindBySlug retrieves a project visible in mode.
func (s *ProjectStore) FindBySlug(ctx context.Context, slug string, mode query.Mode) (*models.Project, error) {
	q := query.Lookup(query.Projects, mode).WithEqual("projects.slug", slug)
	return find(ctx, s.db, projectFrom, projectColumns, q, scanProject)
}

// SlugTaken reports whether another project already uses slug.
func (s *ProjectStore) SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	return slugTaken(ctx, s.db, "projects", slug, exclude)
}

// Create inserts a project and returns it joined with its category. A
// missing category yields ErrInvalidReference.
func (s *ProjectStore) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		WITH saved AS (
			INSERT INTO projects (title, slug, description, image, technologies, category_id, sort_order, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT `+projectColumns+`
		FROM saved AS projects JOIN categories ON categories.id = projects.category_id`,
		p.Title, p.Slug, p.Description, nullIfEmpty(p.Image), p.Technologies,
		p.CategoryID, p.SortOrder, p.IsActive,
	)
	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", translate(err, ErrInvalidReference))
	}
	return created, nil
}

// Update overwrites the writable fields of p.ID.
func (s *ProjectStore) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		WITH saved AS (
			UPDATE projects SET
				title = $1, slug = $2, description = $3, image = $4, technologies = $5,
				category_id = $6, sort_order = $7, is_active = $8, updated_at = NOW()
			WHERE id = $9
			RETURNING *
		)
		SELECT `+projectColumns+`
		FROM saved AS projects JOIN categories ON categories.id = projects.category_id`,
		p.Title, p.Slug, p.Description, nullIfEmpty(p.Image), p.Technologies,
		p.CategoryID, p.SortOrder, p.IsActive, p.ID,
	)
	updated, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update project: %w", translate(err, ErrInvalidReference))
	}
	return updated, nil
}

// Delete removes a project by ID.
func (s *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, "projects", id)
}
