// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"apigs/internal/models"
)

// CompanyStore manages the single active company record.
type CompanyStore struct {
	db *sql.DB
}

// NewCompanyStore returns a new CompanyStore.
func NewCompanyStore(db *sql.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

const companyColumns = `id, team_members_count, years_experience, projects_completed, company_name,
	tagline, about_us, vision, mission, office_address, office_address_url, office_phone,
	contact_email, support_email, operational_hours, timezone,
	website_url, linkedin_url, instagram_url, facebook_url, twitter_url, youtube_url,
	founded_year, certifications, is_active, created_at, updated_at`

func scanCompany(s scanner) (*models.CompanyDetails, error) {
	var c models.CompanyDetails
	err := s.Scan(
		&c.ID, &c.TeamMembersCount, &c.YearsExperience, &c.ProjectsCompleted, &c.CompanyName,
		&c.Tagline, &c.AboutUs, &c.Vision, &c.Mission, &c.OfficeAddress, &c.OfficeAddressURL, &c.OfficePhone,
		&c.ContactEmail, &c.SupportEmail, &c.OperationalHours, &c.Timezone,
		&c.WebsiteURL, &c.LinkedInURL, &c.InstagramURL, &c.FacebookURL, &c.TwitterURL, &c.YouTubeURL,
		&c.FoundedYear, &c.Certifications, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Active returns the active company record. Returns nil if none has been
// saved yet.
func (s *CompanyStore) Active(ctx context.Context) (*models.CompanyDetails, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM company_details WHERE is_active LIMIT 1`)
	c, err := scanCompany(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active company details: %w", err)
	}
	return c, nil
}

// Upsert creates the active record or updates it in place, in one statement.
// Concurrent callers cannot create a second active row: the partial unique
// index on is_active turns the losing insert into an update.
func (s *CompanyStore) Upsert(ctx context.Context, c *models.CompanyDetails) (*models.CompanyDetails, error) {
	timezone := c.Timezone
	if timezone == "" {
		timezone = models.DefaultTimezone
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO company_details (
			team_members_count, years_experience, projects_completed, company_name,
			tagline, about_us, vision, mission, office_address, office_address_url, office_phone,
			contact_email, support_email, operational_hours, timezone,
			website_url, linkedin_url, instagram_url, facebook_url, twitter_url, youtube_url,
			founded_year, certifications, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, TRUE
		)
		ON CONFLICT (is_active) WHERE is_active DO UPDATE SET
			team_members_count = EXCLUDED.team_members_count,
			years_experience = EXCLUDED.years_experience,
			projects_completed = EXCLUDED.projects_completed,
			company_name = EXCLUDED.company_name,
			tagline = EXCLUDED.tagline,
			about_us = EXCLUDED.about_us,
			vision = EXCLUDED.vision,
			mission = EXCLUDED.mission,
			office_address = EXCLUDED.office_address,
			office_address_url = EXCLUDED.office_address_url,
			office_phone = EXCLUDED.office_phone,
			contact_email = EXCLUDED.contact_email,
			support_email = EXCLUDED.support_email,
			operational_hours = EXCLUDED.operational_hours,
			timezone = EXCLUDED.timezone,
			website_url = EXCLUDED.website_url,
			linkedin_url = EXCLUDED.linkedin_url,
			instagram_url = EXCLUDED.instagram_url,
			facebook_url = EXCLUDED.facebook_url,
			twitter_url = EXCLUDED.twitter_url,
			youtube_url = EXCLUDED.youtube_url,
			founded_year = EXCLUDED.founded_year,
			certifications = EXCLUDED.certifications,
			updated_at = NOW()
		RETURNING `+companyColumns,
		c.TeamMembersCount, c.YearsExperience, c.ProjectsCompleted, c.CompanyName,
		nullIfEmpty(c.Tagline), nullIfEmpty(c.AboutUs), nullIfEmpty(c.Vision), nullIfEmpty(c.Mission),
		nullIfEmpty(c.OfficeAddress), nullIfEmpty(c.OfficeAddressURL), nullIfEmpty(c.OfficePhone),
		nullIfEmpty(c.ContactEmail), nullIfEmpty(c.SupportEmail), nullIfEmpty(c.OperationalHours), timezone,
		nullIfEmpty(c.WebsiteURL), nullIfEmpty(c.LinkedInURL), nullIfEmpty(c.InstagramURL),
		nullIfEmpty(c.FacebookURL), nullIfEmpty(c.TwitterURL), nullIfEmpty(c.YouTubeURL),
		c.FoundedYear, c.Certifications,
	)
	saved, err := scanCompany(row)
	if err != nil {
		return nil, fmt.Errorf("upsert company details: %w", err)
	}
	return saved, nil
}
