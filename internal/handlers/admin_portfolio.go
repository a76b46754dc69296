// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"apigs/internal/models"
	"apigs/internal/query"
	"apigs/internal/shape"
	"apigs/internal/store"
	"apigs/internal/transport"
)

// --- Categories ---

type categoryInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Slug        string  `json:"slug" validate:"omitempty,slug,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Type        string  `json:"type" validate:"omitempty,oneof=portfolio service"`
	Color       *string `json:"color" validate:"omitempty,hexcolor,len=7"`
	SortOrder   int     `json:"sortOrder" validate:"gte=0"`
	IsActive    *bool   `json:"isActive"`
}

func (in *categoryInput) model(id uuid.UUID, s string) *models.Category {
	t := models.CategoryType(in.Type)
	if t == "" {
		t = models.CategoryTypePortfolio
	}
	return &models.Category{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Slug:        s,
		Description: trimmed(in.Description),
		Type:        t,
		Color:       trimmed(in.Color),
		SortOrder:   in.SortOrder,
		IsActive:    boolOr(in.IsActive, true),
	}
}

// ListCategories lists categories in the caller's visibility mode.
func (a *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	m, params, ok := mode(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	items, err := a.CategoryStore.List(ctx, query.Build(query.Categories, params, m))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.Category))
}

// GetCategory returns one category.
func (a *Admin) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	c, err := a.CategoryStore.FindByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.Category(c))
}

// CreateCategory adds a category.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in categoryInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	s, ok := claimSlug(ctx, w, r, in.Slug, "", in.Name, uuid.Nil, a.CategoryStore.SlugTaken)
	if !ok {
		return
	}
	c, err := a.CategoryStore.Create(ctx, in.model(uuid.Nil, s))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, shape.Category(c))
}

// UpdateCategory replaces a category's writable fields.
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in categoryInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	existing, err := a.CategoryStore.FindByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s, ok := claimSlug(ctx, w, r, in.Slug, existing.Slug, in.Name, id, a.CategoryStore.SlugTaken)
	if !ok {
		return
	}
	c, err := a.CategoryStore.Update(ctx, in.model(id, s))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.Category(c))
}

// DeleteCategory removes a category no project references.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	if err := a.CategoryStore.Delete(ctx, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Projects ---

type projectInput struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Slug         string   `json:"slug" validate:"omitempty,slug,max=200"`
	Description  string   `json:"description" validate:"required,max=10000"`
	Image        *string  `json:"image" validate:"omitempty,max=500"`
	Technologies []string `json:"technologies" validate:"max=50,dive,required,max=60"`
	CategoryID   string   `json:"categoryId" validate:"required,uuid"`
	SortOrder    int      `json:"sortOrder" validate:"gte=0"`
	IsActive     *bool    `json:"isActive"`
}

func (in *projectInput) model(id uuid.UUID, s string) *models.Project {
	techs := make(models.StringList, 0, len(in.Technologies))
	for _, t := range in.Technologies {
		techs = append(techs, strings.TrimSpace(t))
	}
	return &models.Project{
		ID:           id,
		Title:        strings.TrimSpace(in.Title),
		Slug:         s,
		Description:  in.Description,
		Image:        trimmed(in.Image),
		Technologies: techs,
		CategoryID:   uuid.MustParse(in.CategoryID),
		SortOrder:    in.SortOrder,
		IsActive:     boolOr(in.IsActive, true),
	}
}

// checkCategory fails fast when the referenced category does not exist.
func (a *Admin) checkCategory(w http.ResponseWriter, r *http.Request, id string) bool {
	ctx, cancel := a.dbContext(r)
	defer cancel()

	_, err := a.CategoryStore.FindByID(ctx, uuid.MustParse(id))
	if errors.Is(err, store.ErrNotFound) {
		invalid(w, map[string]string{"categoryId": "exists"})
		return false
	}
	if err != nil {
		writeError(w, r, err)
		return false
	}
	return true
}

// ListProjects lists projects in the caller's visibility mode.
func (a *Admin) ListProjects(w http.ResponseWriter, r *http.Request) {
	m, params, ok := mode(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	items, err := a.ProjectStore.List(ctx, query.Build(query.Projects, params, m))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.Project))
}

// GetProject returns one project.
func (a *Admin) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	p, err := a.ProjectStore.FindByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.Project(p))
}

// CreateProject adds a project under an existing category.
func (a *Admin) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in projectInput
	if !a.decode(w, r, &in) || !a.checkCategory(w, r, in.CategoryID) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	s, ok := claimSlug(ctx, w, r, in.Slug, "", in.Title, uuid.Nil, a.ProjectStore.SlugTaken)
	if !ok {
		return
	}
	p, err := a.ProjectStore.Create(ctx, in.model(uuid.Nil, s))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, shape.Project(p))
}

// UpdateProject replaces a project's writable fields.
func (a *Admin) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in projectInput
	if !a.decode(w, r, &in) || !a.checkCategory(w, r, in.CategoryID) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	existing, err := a.ProjectStore.FindByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s, ok := claimSlug(ctx, w, r, in.Slug, existing.Slug, in.Title, id, a.ProjectStore.SlugTaken)
	if !ok {
		return
	}
	p, err := a.ProjectStore.Update(ctx, in.model(id, s))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.Project(p))
}

// DeleteProject removes a project.
func (a *Admin) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	if err := a.ProjectStore.Delete(ctx, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Testimonials ---

type testimonialInput struct {
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName" validate:"required,max=100"`
	Position  *string `json:"position" validate:"omitempty,max=100"`
	Company   *string `json:"company" validate:"omitempty,max=100"`
	Text      string  `json:"text" validate:"required,max=2000"`
}

func (in *testimonialInput) model(id uuid.UUID) *models.Testimonial {
	return &models.Testimonial{
		ID:        id,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Position:  trimmed(in.Position),
		Company:   trimmed(in.Company),
		Text:      strings.TrimSpace(in.Text),
	}
}

// ListTestimonials lists testimonials. Testimonials have no hidden rows,
// so both modes return the same records.
func (a *Admin) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	m, params, ok := mode(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	items, err := a.TestimonialStore.List(ctx, query.Build(query.Testimonials, params, m))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.Testimonial))
}

// GetTestimonial returns one testimonial.
func (a *Admin) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	t, err := a.TestimonialStore.FindByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.Testimonial(t))
}

// CreateTestimonial adds a testimonial.
func (a *Admin) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var in testimonialInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	t, err := a.TestimonialStore.Create(ctx, in.model(uuid.Nil))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, shape.Testimonial(t))
}

// UpdateTestimonial replaces a testimonial.
func (a *Admin) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in testimonialInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	t, err := a.TestimonialStore.Update(ctx, in.model(id))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.Testimonial(t))
}

// DeleteTestimonial removes a testimonial.
func (a *Admin) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	if err := a.TestimonialStore.Delete(ctx, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
