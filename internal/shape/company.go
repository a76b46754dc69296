// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package shape

import "apigs/internal/models"

// DefaultCompanyName is reported while no company record has been saved.
const DefaultCompanyName = "APIGS Indonesia"

// CompanyDetailsView is always fully populated. Optional text fields are
// empty strings rather than null.
type CompanyDetailsView struct {
	ID                *string  `json:"id"`
	TeamMembersCount  int      `json:"teamMembersCount"`
	YearsExperience   int      `json:"yearsExperience"`
	ProjectsCompleted int      `json:"projectsCompleted"`
	CompanyName       string   `json:"companyName"`
	Tagline           string   `json:"tagline"`
	AboutUs           string   `json:"aboutUs"`
	Vision            string   `json:"vision"`
	Mission           string   `json:"mission"`
	OfficeAddress     string   `json:"officeAddress"`
	OfficeAddressURL  string   `json:"officeAddressUrl"`
	OfficePhone       string   `json:"officePhone"`
	ContactEmail      string   `json:"contactEmail"`
	SupportEmail      string   `json:"supportEmail"`
	OperationalHours  string   `json:"operationalHours"`
	Timezone          string   `json:"timezone"`
	WebsiteURL        string   `json:"websiteUrl"`
	LinkedInURL       string   `json:"linkedinUrl"`
	InstagramURL      string   `json:"instagramUrl"`
	FacebookURL       string   `json:"facebookUrl"`
	TwitterURL        string   `json:"twitterUrl"`
	YouTubeURL        string   `json:"youtubeUrl"`
	FoundedYear       *int     `json:"foundedYear"`
	Certifications    []string `json:"certifications"`
	IsActive          bool     `json:"isActive"`
	CreatedAt         *string  `json:"createdAt"`
	UpdatedAt         *string  `json:"updatedAt"`
}

// CompanyDetails shapes the active company record. A nil record yields the
// default profile so callers never need to handle a missing row.
func CompanyDetails(c *models.CompanyDetails) CompanyDetailsView {
	if c == nil {
		return CompanyDetailsView{
			CompanyName:    DefaultCompanyName,
			Certifications: []string{},
		}
	}
	cid := id(c.ID)
	return CompanyDetailsView{
		ID:                &cid,
		TeamMembersCount:  c.TeamMembersCount,
		YearsExperience:   c.YearsExperience,
		ProjectsCompleted: c.ProjectsCompleted,
		CompanyName:       c.CompanyName,
		Tagline:           deref(c.Tagline),
		AboutUs:           deref(c.AboutUs),
		Vision:            deref(c.Vision),
		Mission:           deref(c.Mission),
		OfficeAddress:     deref(c.OfficeAddress),
		OfficeAddressURL:  deref(c.OfficeAddressURL),
		OfficePhone:       deref(c.OfficePhone),
		ContactEmail:      deref(c.ContactEmail),
		SupportEmail:      deref(c.SupportEmail),
		OperationalHours:  deref(c.OperationalHours),
		Timezone:          c.Timezone,
		WebsiteURL:        deref(c.WebsiteURL),
		LinkedInURL:       deref(c.LinkedInURL),
		InstagramURL:      deref(c.InstagramURL),
		FacebookURL:       deref(c.FacebookURL),
		TwitterURL:        deref(c.TwitterURL),
		YouTubeURL:        deref(c.YouTubeURL),
		FoundedYear:       c.FoundedYear,
		Certifications:    stringList(c.Certifications),
		IsActive:          c.IsActive,
		CreatedAt:         StampPtr(&c.CreatedAt),
		UpdatedAt:         StampPtr(&c.UpdatedAt),
	}
}
