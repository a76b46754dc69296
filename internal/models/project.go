// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry. Every project belongs to exactly one Category.
type Project struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	Image        *string    `json:"image"`
	Technologies StringList `json:"technologies"`
	CategoryID   uuid.UUID  `json:"categoryId"`
	SortOrder    int        `json:"sortOrder"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// Joined from categories by list queries; nil when not loaded.
	Category *CategoryRef `json:"category,omitempty"`
}

// CategoryRef is the slim category projection embedded in project rows.
type CategoryRef struct {
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Color *string `json:"color"`
}
