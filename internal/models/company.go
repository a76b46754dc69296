// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanyDetails is the site-wide company profile. At most one row is
// active; the stats are entered by admins, not computed.
type CompanyDetails struct {
	ID                uuid.UUID  `json:"id"`
	TeamMembersCount  int        `json:"teamMembersCount"`
	YearsExperience   int        `json:"yearsExperience"`
	ProjectsCompleted int        `json:"projectsCompleted"`
	CompanyName       string     `json:"companyName"`
	Tagline           *string    `json:"tagline"`
	AboutUs           *string    `json:"aboutUs"`
	Vision            *string    `json:"vision"`
	Mission           *string    `json:"mission"`
	OfficeAddress     *string    `json:"officeAddress"`
	OfficeAddressURL  *string    `json:"officeAddressUrl"`
	OfficePhone       *string    `json:"officePhone"`
	ContactEmail      *string    `json:"contactEmail"`
	SupportEmail      *string    `json:"supportEmail"`
	OperationalHours  *string    `json:"operationalHours"`
	Timezone          string     `json:"timezone"`
	WebsiteURL        *string    `json:"websiteUrl"`
	LinkedInURL       *string    `json:"linkedinUrl"`
	InstagramURL      *string    `json:"instagramUrl"`
	FacebookURL       *string    `json:"facebookUrl"`
	TwitterURL        *string    `json:"twitterUrl"`
	YouTubeURL        *string    `json:"youtubeUrl"`
	FoundedYear       *int       `json:"foundedYear"`
	Certifications    StringList `json:"certifications"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// DefaultTimezone is stored when an upsert leaves the timezone blank.
const DefaultTimezone = "Asia/Jakarta"
