// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package shape

import "apigs/internal/models"

// CategoryView carries no admin-only fields; both modes share it.
type CategoryView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Type        string  `json:"type"`
	Color       *string `json:"color"`
	SortOrder   int     `json:"sortOrder"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func Category(c *models.Category) CategoryView {
	return CategoryView{
		ID:          id(c.ID),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Type:        string(c.Type),
		Color:       c.Color,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   Stamp(c.CreatedAt),
		UpdatedAt:   Stamp(c.UpdatedAt),
	}
}

type ProjectView struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Slug         string              `json:"slug"`
	Description  string              `json:"description"`
	Image        *string             `json:"image"`
	Technologies []string            `json:"technologies"`
	CategoryID   string              `json:"categoryId"`
	Category     *models.CategoryRef `json:"category"`
	SortOrder    int                 `json:"sortOrder"`
	IsActive     bool                `json:"isActive"`
	CreatedAt    string              `json:"createdAt"`
	UpdatedAt    string              `json:"updatedAt"`
}

func Project(p *models.Project) ProjectView {
	return ProjectView{
		ID:           id(p.ID),
		Title:        p.Title,
		Slug:         p.Slug,
		Description:  p.Description,
		Image:        p.Image,
		Technologies: stringList(p.Technologies),
		CategoryID:   id(p.CategoryID),
		Category:     p.Category,
		SortOrder:    p.SortOrder,
		IsActive:     p.IsActive,
		CreatedAt:    Stamp(p.CreatedAt),
		UpdatedAt:    Stamp(p.UpdatedAt),
	}
}

type TestimonialView struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Position  *string `json:"position"`
	Company   *string `json:"company"`
	Text      string  `json:"text"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func Testimonial(t *models.Testimonial) TestimonialView {
	return TestimonialView{
		ID:        id(t.ID),
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Position:  t.Position,
		Company:   t.Company,
		Text:      t.Text,
		CreatedAt: Stamp(t.CreatedAt),
		UpdatedAt: Stamp(t.UpdatedAt),
	}
}
