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

// TeamStore manages team members.
type TeamStore struct {
	db *sql.DB
}

// NewTeamStore returns a new TeamStore.
func NewTeamStore(db *sql.DB) *TeamStore {
	return &TeamStore{db: db}
}

const teamColumns = `id, first_name, last_name, display_name, job_title, department,
	avatar_public_id, avatar_url, avatar_secure_url, avatar_format, avatar_width, avatar_height, avatar_version,
	linkedin_url, instagram_url, github_url, twitter_url, website_url,
	email, phone, start_date, is_active, is_public, sort_order, created_at, updated_at`

func scanTeamMember(s scanner) (*models.TeamMember, error) {
	var m models.TeamMember
	a, l := &m.Avatar, &m.Social
	err := s.Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.DisplayName, &m.JobTitle, &m.Department,
		&a.PublicID, &a.URL, &a.SecureURL, &a.Format, &a.Width, &a.Height, &a.Version,
		&l.LinkedIn, &l.Instagram, &l.GitHub, &l.Twitter, &l.Website,
		&m.Email, &m.Phone, &m.StartDate, &m.IsActive, &m.IsPublic, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// teamArgs returns the writable columns of m in teamColumns order, starting
// at first_name.
func teamArgs(m *models.TeamMember) []any {
	a, l := m.Avatar, m.Social
	return []any{
		m.FirstName, m.LastName, m.DisplayName, m.JobTitle, nullIfEmpty(m.Department),
		nullIfEmpty(a.PublicID), nullIfEmpty(a.URL), nullIfEmpty(a.SecureURL), nullIfEmpty(a.Format),
		a.Width, a.Height, nullIfEmpty(a.Version),
		nullIfEmpty(l.LinkedIn), nullIfEmpty(l.Instagram), nullIfEmpty(l.GitHub),
		nullIfEmpty(l.Twitter), nullIfEmpty(l.Website),
		nullIfEmpty(m.Email), nullIfEmpty(m.Phone), m.StartDate, m.IsActive, m.IsPublic, m.SortOrder,
	}
}

// List returns the team members matching q.
func (s *TeamStore) List(ctx context.Context, q query.Query) ([]models.TeamMember, error) {
	return list(ctx, s.db, "team_members", teamColumns, q, scanTeamMember)
}

// FindByID retrieves a team member regardless of visibility.
func (s *TeamStore) FindByID(ctx context.Context, id uuid.UUID) (*models.TeamMember, error) {
	q := query.Lookup(query.TeamMembers, query.Admin).WithEqual("team_members.id", id)
	return find(ctx, s.db, "team_members", teamColumns, q, scanTeamMember)
}

// Create inserts a team member and returns it.
func (s *TeamStore) Create(ctx context.Context, m *models.TeamMember) (*models.TeamMember, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO team_members (
			first_name, last_name, display_name, job_title, department,
			avatar_public_id, avatar_url, avatar_secure_url, avatar_format, avatar_width, avatar_height, avatar_version,
			linkedin_url, instagram_url, github_url, twitter_url, website_url,
			email, phone, start_date, is_active, is_public, sort_order
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		RETURNING `+teamColumns,
		teamArgs(m)...,
	)
	created, err := scanTeamMember(row)
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return created, nil
}

// Update overwrites every writable field of m.ID.
func (s *TeamStore) Update(ctx context.Context, m *models.TeamMember) (*models.TeamMember, error) {
	args := append(teamArgs(m), m.ID)
	row := s.db.QueryRowContext(ctx, `
		UPDATE team_members SET
			first_name = $1, last_name = $2, display_name = $3, job_title = $4, department = $5,
			avatar_public_id = $6, avatar_url = $7, avatar_secure_url = $8, avatar_format = $9,
			avatar_width = $10, avatar_height = $11, avatar_version = $12,
			linkedin_url = $13, instagram_url = $14, github_url = $15, twitter_url = $16, website_url = $17,
			email = $18, phone = $19, start_date = $20, is_active = $21, is_public = $22, sort_order = $23,
			updated_at = NOW()
		WHERE id = $24
		RETURNING `+teamColumns,
		args...,
	)
	updated, err := scanTeamMember(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}
	return updated, nil
}

// SetVisibility updates the employment and display flags. Nil leaves a flag
// unchanged.
func (s *TeamStore) SetVisibility(ctx context.Context, id uuid.UUID, isActive, isPublic *bool) (*models.TeamMember, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE team_members SET
			is_active = COALESCE($1, is_active),
			is_public = COALESCE($2, is_public),
			updated_at = NOW()
		WHERE id = $3
		RETURNING `+teamColumns,
		isActive, isPublic, id,
	)
	updated, err := scanTeamMember(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("set team member visibility: %w", err)
	}
	return updated, nil
}

// Delete removes a team member and returns the deleted row so the caller
// can release its avatar.
func (s *TeamStore) Delete(ctx context.Context, id uuid.UUID) (*models.TeamMember, error) {
	row := s.db.QueryRowContext(ctx,
		`DELETE FROM team_members WHERE id = $1 RETURNING `+teamColumns, id)
	deleted, err := scanTeamMember(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete team member: %w", err)
	}
	return deleted, nil
}
