// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"apigs/internal/models"
	"apigs/internal/query"
	"apigs/internal/shape"
	"apigs/internal/transport"
)

const dateLayout = "2006-01-02"

type avatarInput struct {
	PublicID  *string `json:"publicId" validate:"omitempty,max=255"`
	URL       *string `json:"url" validate:"omitempty,max=500"`
	SecureURL *string `json:"secureUrl" validate:"omitempty,max=500"`
	Format    *string `json:"format" validate:"omitempty,max=20"`
	Width     *int    `json:"width" validate:"omitempty,gt=0"`
	Height    *int    `json:"height" validate:"omitempty,gt=0"`
	Version   *string `json:"version" validate:"omitempty,max=50"`
}

type socialInput struct {
	LinkedIn  *string `json:"linkedinUrl" validate:"omitempty,url,max=500"`
	Instagram *string `json:"instagramUrl" validate:"omitempty,url,max=500"`
	GitHub    *string `json:"githubUrl" validate:"omitempty,url,max=500"`
	Twitter   *string `json:"twitterUrl" validate:"omitempty,url,max=500"`
	Website   *string `json:"websiteUrl" validate:"omitempty,url,max=500"`
}

type teamInput struct {
	FirstName   string      `json:"firstName" validate:"required,max=100"`
	LastName    string      `json:"lastName" validate:"required,max=100"`
	DisplayName string      `json:"displayName" validate:"max=200"`
	JobTitle    string      `json:"jobTitle" validate:"required,max=200"`
	Department  *string     `json:"department" validate:"omitempty,max=100"`
	Avatar      avatarInput `json:"avatar"`
	Social      socialInput `json:"social"`
	Email       *string     `json:"email" validate:"omitempty,email,max=254"`
	Phone       *string     `json:"phone" validate:"omitempty,phone"`
	StartDate   *string     `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool       `json:"isActive"`
	IsPublic    *bool       `json:"isPublic"`
	SortOrder   int         `json:"sortOrder" validate:"gte=0"`
}

func (in *teamInput) model(id uuid.UUID) *models.TeamMember {
	first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
	display := strings.TrimSpace(in.DisplayName)
	if display == "" {
		display = first + " " + last
	}
	m := &models.TeamMember{
		ID:          id,
		FirstName:   first,
		LastName:    last,
		DisplayName: display,
		JobTitle:    strings.TrimSpace(in.JobTitle),
		Department:  trimmed(in.Department),
		Avatar: models.Avatar{
			PublicID:  trimmed(in.Avatar.PublicID),
			URL:       trimmed(in.Avatar.URL),
			SecureURL: trimmed(in.Avatar.SecureURL),
			Format:    trimmed(in.Avatar.Format),
			Width:     in.Avatar.Width,
			Height:    in.Avatar.Height,
			Version:   trimmed(in.Avatar.Version),
		},
		Social: models.SocialLinks{
			LinkedIn:  trimmed(in.Social.LinkedIn),
			Instagram: trimmed(in.Social.Instagram),
			GitHub:    trimmed(in.Social.GitHub),
			Twitter:   trimmed(in.Social.Twitter),
			Website:   trimmed(in.Social.Website),
		},
		Email:     trimmed(in.Email),
		Phone:     trimmed(in.Phone),
		IsActive:  boolOr(in.IsActive, true),
		IsPublic:  boolOr(in.IsPublic, true),
		SortOrder: in.SortOrder,
	}
	if in.StartDate != nil {
		// Already validated against dateLayout.
		if t, err := time.Parse(dateLayout, *in.StartDate); err == nil {
			m.StartDate = &t
		}
	}
	return m
}

func avatarID(m *models.TeamMember) string {
	if m == nil || m.Avatar.PublicID == nil {
		return ""
	}
	return *m.Avatar.PublicID
}

// ListTeam lists team members in the caller's visibility mode.
func (a *Admin) ListTeam(w http.ResponseWriter, r *http.Request) {
	m, params, ok := mode(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	items, err := a.TeamStore.List(ctx, query.Build(query.TeamMembers, params, m))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.ForMode(m, shape.TeamMember)))
}

// GetTeamMember returns one member with admin fields.
func (a *Admin) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	m, err := a.TeamStore.FindByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.TeamMember(m, query.Admin))
}

// CreateTeamMember adds a member.
func (a *Admin) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var in teamInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	m, err := a.TeamStore.Create(ctx, in.model(uuid.Nil))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, shape.TeamMember(m, query.Admin))
}

// UpdateTeamMember replaces a member. A replaced avatar image is deleted
// from object storage after the update commits.
func (a *Admin) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in teamInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	existing, err := a.TeamStore.FindByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	m, err := a.TeamStore.Update(ctx, in.model(id))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if old := avatarID(existing); old != "" && old != avatarID(m) {
		cctx, ccancel := a.cleanupContext(r)
		a.Media.DeleteQuietly(cctx, old)
		ccancel()
	}
	transport.WriteJSON(w, http.StatusOK, shape.TeamMember(m, query.Admin))
}

type visibilityInput struct {
	IsActive *bool `json:"isActive"`
	IsPublic *bool `json:"isPublic"`
}

// SetTeamVisibility toggles a member's employment and display flags
// independently. Omitted flags are unchanged.
func (a *Admin) SetTeamVisibility(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in visibilityInput
	if !a.decode(w, r, &in) {
		return
	}
	if in.IsActive == nil && in.IsPublic == nil {
		invalid(w, map[string]string{"isActive": "required_without", "isPublic": "required_without"})
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	m, err := a.TeamStore.SetVisibility(ctx, id, in.IsActive, in.IsPublic)
	if err != nil {
		writeError(w, r, err)
		return
	}
	slog.Info("team: visibility changed", "member_id", m.ID, "listed", m.Visible())
	transport.WriteJSON(w, http.StatusOK, shape.TeamMember(m, query.Admin))
}

// DeleteTeamMember removes a member and their avatar image.
func (a *Admin) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	m, err := a.TeamStore.Delete(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if old := avatarID(m); old != "" {
		cctx, ccancel := a.cleanupContext(r)
		a.Media.DeleteQuietly(cctx, old)
		ccancel()
	}
	w.WriteHeader(http.StatusNoContent)
}
