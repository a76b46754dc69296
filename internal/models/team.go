// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Avatar holds the image descriptor returned by the media service, stored
// verbatim. All fields are optional.
type Avatar struct {
	PublicID  *string `json:"publicId"`
	URL       *string `json:"url"`
	SecureURL *string `json:"secureUrl"`
	Format    *string `json:"format"`
	Width     *int    `json:"width"`
	Height    *int    `json:"height"`
	Version   *string `json:"version"`
}

// SocialLinks are the optional profile links shown on a team card.
type SocialLinks struct {
	LinkedIn  *string `json:"linkedinUrl"`
	Instagram *string `json:"instagramUrl"`
	GitHub    *string `json:"githubUrl"`
	Twitter   *string `json:"twitterUrl"`
	Website   *string `json:"websiteUrl"`
}

// TeamMember is a person shown on the team page. IsActive (employment) and
// IsPublic (display) are independent; the public page requires both.
type TeamMember struct {
	ID          uuid.UUID   `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	DisplayName string      `json:"displayName"`
	JobTitle    string      `json:"jobTitle"`
	Department  *string     `json:"department"`
	Avatar      Avatar      `json:"avatar"`
	Social      SocialLinks `json:"social"`
	Email       *string     `json:"email"`
	Phone       *string     `json:"phone"`
	StartDate   *time.Time  `json:"startDate"`
	IsActive    bool        `json:"isActive"`
	IsPublic    bool        `json:"isPublic"`
	SortOrder   int         `json:"sortOrder"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Visible reports whether the member belongs on the public team page.
func (m *TeamMember) Visible() bool {
	return m.IsActive && m.IsPublic
}
