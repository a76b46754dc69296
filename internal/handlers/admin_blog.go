// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"apigs/internal/identity"
	"apigs/internal/models"
	"apigs/internal/query"
	"apigs/internal/shape"
	"apigs/internal/transport"
)

type galleryImageInput struct {
	URL      string `json:"url" validate:"required,max=500"`
	PublicID string `json:"publicId" validate:"max=255"`
	Caption  string `json:"caption" validate:"max=300"`
}

type blogInput struct {
	Title                 string              `json:"title" validate:"required,max=300"`
	Slug                  string              `json:"slug" validate:"omitempty,slug,max=200"`
	Excerpt               *string             `json:"excerpt" validate:"omitempty,max=1000"`
	Content               string              `json:"content" validate:"required,max=100000"`
	FeaturedImage         *string             `json:"featuredImage" validate:"omitempty,max=500"`
	FeaturedImagePublicID *string             `json:"featuredImagePublicId" validate:"omitempty,max=255"`
	Gallery               []galleryImageInput `json:"gallery" validate:"max=50,dive"`
	Category              *string             `json:"category" validate:"omitempty,max=100"`
	Tags                  []string            `json:"tags" validate:"max=30,dive,required,max=50"`
	Author                string              `json:"author" validate:"max=100"`
	Status                string              `json:"status" validate:"omitempty,oneof=draft published"`
	Featured              bool                `json:"featured"`
}

// model builds the post. The author defaults to the acting admin.
func (in *blogInput) model(id uuid.UUID, s string, caller *identity.Caller) *models.BlogPost {
	gallery := make(models.Gallery, 0, len(in.Gallery))
	for _, img := range in.Gallery {
		gallery = append(gallery, models.GalleryImage{
			URL:      strings.TrimSpace(img.URL),
			PublicID: strings.TrimSpace(img.PublicID),
			Caption:  strings.TrimSpace(img.Caption),
		})
	}
	tags := make(models.StringList, 0, len(in.Tags))
	for _, t := range in.Tags {
		tags = append(tags, strings.TrimSpace(t))
	}
	status := models.BlogStatus(in.Status)
	if status == "" {
		status = models.BlogStatusDraft
	}

	p := &models.BlogPost{
		ID:                    id,
		Title:                 strings.TrimSpace(in.Title),
		Slug:                  s,
		Excerpt:               trimmed(in.Excerpt),
		Content:               in.Content,
		FeaturedImage:         trimmed(in.FeaturedImage),
		FeaturedImagePublicID: trimmed(in.FeaturedImagePublicID),
		Gallery:               gallery,
		Category:              trimmed(in.Category),
		Tags:                  tags,
		Author:                strings.TrimSpace(in.Author),
		Status:                status,
		Featured:              in.Featured,
	}
	if caller != nil {
		authorID := caller.ID
		p.AuthorID = &authorID
		if p.Author == "" {
			p.Author = caller.Name
		}
	}
	if p.Author == "" {
		p.Author = "Admin"
	}
	return p
}

// ListBlogPosts lists posts in the caller's visibility mode.
func (a *Admin) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	m, params, ok := mode(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	items, err := a.BlogStore.List(ctx, query.Build(query.BlogPosts, params, m))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.ForMode(m, shape.BlogPost)))
}

// GetBlogPost returns one post with admin fields.
func (a *Admin) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	p, err := a.BlogStore.FindByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.BlogPost(p, query.Admin))
}

// CreateBlogPost adds a post. Creating it as published stamps publishedAt.
func (a *Admin) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var in blogInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	s, ok := claimSlug(ctx, w, r, in.Slug, "", in.Title, uuid.Nil, a.BlogStore.SlugTaken)
	if !ok {
		return
	}
	p, err := a.BlogStore.Create(ctx, in.model(uuid.Nil, s, identity.FromContext(r.Context())))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, shape.BlogPost(p, query.Admin))
}

// UpdateBlogPost replaces a post. Images the post no longer references are
// deleted from object storage after the update commits.
func (a *Admin) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in blogInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	existing, err := a.BlogStore.FindByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s, ok := claimSlug(ctx, w, r, in.Slug, existing.Slug, in.Title, id, a.BlogStore.SlugTaken)
	if !ok {
		return
	}

	next := in.model(id, s, identity.FromContext(r.Context()))
	if existing.AuthorID != nil {
		next.AuthorID = existing.AuthorID
	}
	p, err := a.BlogStore.Update(ctx, next)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if gone := models.SupersededMedia(existing, p); len(gone) > 0 {
		cctx, ccancel := a.cleanupContext(r)
		a.Media.DeleteQuietly(cctx, gone...)
		ccancel()
	}
	transport.WriteJSON(w, http.StatusOK, shape.BlogPost(p, query.Admin))
}

// DeleteBlogPost removes a post with its featured and gallery images.
func (a *Admin) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	p, err := a.BlogStore.Delete(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if ids := p.MediaIDs(); len(ids) > 0 {
		cctx, ccancel := a.cleanupContext(r)
		a.Media.DeleteQuietly(cctx, ids...)
		ccancel()
	}
	w.WriteHeader(http.StatusNoContent)
}
