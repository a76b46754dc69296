// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"apigs/internal/markdown"
	"apigs/internal/middleware"
	"apigs/internal/query"
	"apigs/internal/shape"
	"apigs/internal/transport"
)

// Public serves the marketing site's read endpoints. Every query runs in
// public mode whatever the caller sends.
type Public struct {
	*Deps
	// countView records a blog page view without blocking the response.
	countView func(ctx context.Context, id uuid.UUID)
}

// NewPublic creates the public handler group.
func NewPublic(d *Deps) *Public {
	p := &Public{Deps: d}
	p.countView = p.incrementViewsAsync
	return p
}

// incrementViewsAsync bumps the view counter in a goroutine detached from
// the request's cancellation. Failures are logged; the page response never
// waits for them.
func (p *Public) incrementViewsAsync(ctx context.Context, id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), orDefault(p.DBTimeout, 5*time.Second))
	go func() {
		defer cancel()
		if err := p.BlogStore.IncrementViews(ctx, id); err != nil {
			slog.Warn("blog view increment failed", "post_id", id, "error", err,
				"request_id", middleware.RequestIDFromContext(ctx))
		}
	}()
}

func publicQuery(e *query.Entity, r *http.Request) query.Query {
	return query.Build(e, query.FromValues(r.URL.Query()), query.Public)
}

// CompanyDetails returns the active company profile, or the default
// profile while none has been saved.
func (p *Public) CompanyDetails(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	c, err := p.CompanyStore.Active(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.CompanyDetails(c))
}

// Projects lists active projects.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	items, err := p.ProjectStore.List(ctx, publicQuery(query.Projects, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.Project))
}

// Project returns one active project by slug.
func (p *Public) Project(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	project, err := p.ProjectStore.FindBySlug(ctx, chi.URLParam(r, "slug"), query.Public)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.Project(project))
}

// Categories lists active categories.
func (p *Public) Categories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	items, err := p.CategoryStore.List(ctx, publicQuery(query.Categories, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.Category))
}

// Team lists members who are both active and public.
func (p *Public) Team(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	items, err := p.TeamStore.List(ctx, publicQuery(query.TeamMembers, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.ForMode(query.Public, shape.TeamMember)))
}

// Testimonials lists every testimonial.
func (p *Public) Testimonials(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	items, err := p.TestimonialStore.List(ctx, publicQuery(query.Testimonials, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.Testimonial))
}

// Blog lists published posts.
func (p *Public) Blog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	items, err := p.BlogStore.List(ctx, publicQuery(query.BlogPosts, r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.List(items, shape.ForMode(query.Public, shape.BlogPost)))
}

// BlogPost returns a published post with its body rendered to HTML and
// counts the view.
func (p *Public) BlogPost(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	post, err := p.BlogStore.FindBySlug(ctx, chi.URLParam(r, "slug"), query.Public)
	if err != nil {
		writeError(w, r, err)
		return
	}

	html, err := markdown.ToHTML(post.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	p.countView(r.Context(), post.ID)
	transport.WriteJSON(w, http.StatusOK, shape.BlogPostDetail(post, html))
}
