// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"apigs/internal/models"
	"apigs/internal/shape"
	"apigs/internal/transport"
)

type companyInput struct {
	TeamMembersCount  int      `json:"teamMembersCount" validate:"gte=0"`
	YearsExperience   int      `json:"yearsExperience" validate:"gte=0"`
	ProjectsCompleted int      `json:"projectsCompleted" validate:"gte=0"`
	CompanyName       string   `json:"companyName" validate:"required,max=200"`
	Tagline           *string  `json:"tagline" validate:"omitempty,max=300"`
	AboutUs           *string  `json:"aboutUs" validate:"omitempty,max=10000"`
	Vision            *string  `json:"vision" validate:"omitempty,max=5000"`
	Mission           *string  `json:"mission" validate:"omitempty,max=5000"`
	OfficeAddress     *string  `json:"officeAddress" validate:"omitempty,max=500"`
	OfficeAddressURL  *string  `json:"officeAddressUrl" validate:"omitempty,url,max=500"`
	OfficePhone       *string  `json:"officePhone" validate:"omitempty,phone"`
	ContactEmail      *string  `json:"contactEmail" validate:"omitempty,email,max=254"`
	SupportEmail      *string  `json:"supportEmail" validate:"omitempty,email,max=254"`
	OperationalHours  *string  `json:"operationalHours" validate:"omitempty,max=200"`
	Timezone          string   `json:"timezone" validate:"omitempty,timezone"`
	WebsiteURL        *string  `json:"websiteUrl" validate:"omitempty,url,max=500"`
	LinkedInURL       *string  `json:"linkedinUrl" validate:"omitempty,url,max=500"`
	InstagramURL      *string  `json:"instagramUrl" validate:"omitempty,url,max=500"`
	FacebookURL       *string  `json:"facebookUrl" validate:"omitempty,url,max=500"`
	TwitterURL        *string  `json:"twitterUrl" validate:"omitempty,url,max=500"`
	YouTubeURL        *string  `json:"youtubeUrl" validate:"omitempty,url,max=500"`
	FoundedYear       *int     `json:"foundedYear" validate:"omitempty,gte=1800,lte=2200"`
	Certifications    []string `json:"certifications" validate:"max=50,dive,required,max=200"`
}

func (in *companyInput) model() *models.CompanyDetails {
	certs := make(models.StringList, 0, len(in.Certifications))
	for _, c := range in.Certifications {
		certs = append(certs, strings.TrimSpace(c))
	}
	return &models.CompanyDetails{
		TeamMembersCount:  in.TeamMembersCount,
		YearsExperience:   in.YearsExperience,
		ProjectsCompleted: in.ProjectsCompleted,
		CompanyName:       strings.TrimSpace(in.CompanyName),
		Tagline:           trimmed(in.Tagline),
		AboutUs:           trimmed(in.AboutUs),
		Vision:            trimmed(in.Vision),
		Mission:           trimmed(in.Mission),
		OfficeAddress:     trimmed(in.OfficeAddress),
		OfficeAddressURL:  trimmed(in.OfficeAddressURL),
		OfficePhone:       trimmed(in.OfficePhone),
		ContactEmail:      trimmed(in.ContactEmail),
		SupportEmail:      trimmed(in.SupportEmail),
		OperationalHours:  trimmed(in.OperationalHours),
		Timezone:          strings.TrimSpace(in.Timezone),
		WebsiteURL:        trimmed(in.WebsiteURL),
		LinkedInURL:       trimmed(in.LinkedInURL),
		InstagramURL:      trimmed(in.InstagramURL),
		FacebookURL:       trimmed(in.FacebookURL),
		TwitterURL:        trimmed(in.TwitterURL),
		YouTubeURL:        trimmed(in.YouTubeURL),
		FoundedYear:       in.FoundedYear,
		Certifications:    certs,
	}
}

// GetCompany returns the active company profile, or the default profile
// when none has been saved.
func (a *Admin) GetCompany(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.dbContext(r)
	defer cancel()

	c, err := a.CompanyStore.Active(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.CompanyDetails(c))
}

// PutCompany creates or replaces the active company profile.
func (a *Admin) PutCompany(w http.ResponseWriter, r *http.Request) {
	var in companyInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	c, err := a.CompanyStore.Upsert(ctx, in.model())
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.CompanyDetails(c))
}
