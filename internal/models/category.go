// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType discriminates portfolio categories from service categories.
type CategoryType string

const (
	CategoryTypePortfolio CategoryType = "portfolio"
	CategoryTypeService   CategoryType = "service"
)

// CategoryTypes lists every accepted category type.
var CategoryTypes = []string{string(CategoryTypePortfolio), string(CategoryTypeService)}

// Category groups portfolio projects (or service offerings) for display.
// A category referenced by any project cannot be deleted.
type Category struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Description *string      `json:"description"`
	Type        CategoryType `json:"type"`
	Color       *string      `json:"color"`
	SortOrder   int          `json:"sortOrder"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
