// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package shape

import (
	"fmt"
	"net/url"

	"apigs/internal/models"
	"apigs/internal/query"
)

const placeholderAvatar = "https://ui-avatars.com/api/?name=%s&bold=true&background=d9d9d9&rounded=true&size=400"

// AvatarURL picks the best avatar URL for m: the secure CDN URL, then the
// plain URL, then a generated initials image.
func AvatarURL(m *models.TeamMember) string {
	if s := deref(m.Avatar.SecureURL); s != "" {
		return s
	}
	if s := deref(m.Avatar.URL); s != "" {
		return s
	}
	return fmt.Sprintf(placeholderAvatar, url.QueryEscape(m.FirstName+" "+m.LastName))
}

// TeamMemberView is the public profile of a team member. Contact details
// and the avatar descriptor are never included.
type TeamMemberView struct {
	ID          string             `json:"id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	DisplayName string             `json:"displayName"`
	JobTitle    string             `json:"jobTitle"`
	Department  *string            `json:"department"`
	Avatar      string             `json:"avatar"`
	Social      models.SocialLinks `json:"social"`
	SortOrder   int                `json:"sortOrder"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
}

// TeamMemberAdminView adds contact details, employment flags and the raw
// avatar descriptor.
type TeamMemberAdminView struct {
	TeamMemberView
	AvatarImage models.Avatar `json:"avatarImage"`
	Email       *string       `json:"email"`
	Phone       *string       `json:"phone"`
	StartDate   *string       `json:"startDate"`
	IsActive    bool          `json:"isActive"`
	IsPublic    bool          `json:"isPublic"`
}

// TeamMember shapes m for mode: a TeamMemberView in public mode, a
// TeamMemberAdminView otherwise.
func TeamMember(m *models.TeamMember, mode query.Mode) any {
	v := publicTeamMember(m)
	if mode != query.Admin {
		return v
	}
	return TeamMemberAdminView{
		TeamMemberView: v,
		AvatarImage:    m.Avatar,
		Email:          m.Email,
		Phone:          m.Phone,
		StartDate:      StampPtr(m.StartDate),
		IsActive:       m.IsActive,
		IsPublic:       m.IsPublic,
	}
}

func publicTeamMember(m *models.TeamMember) TeamMemberView {
	return TeamMemberView{
		ID:          id(m.ID),
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DisplayName: m.DisplayName,
		JobTitle:    m.JobTitle,
		Department:  m.Department,
		Avatar:      AvatarURL(m),
		Social:      m.Social,
		SortOrder:   m.SortOrder,
		CreatedAt:   Stamp(m.CreatedAt),
		UpdatedAt:   Stamp(m.UpdatedAt),
	}
}
