// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"apigs/internal/models"
	"apigs/internal/query"
	"apigs/internal/shape"
	"apigs/internal/transport"
)

// homeSectionSize caps the testimonials and projects shown on the landing
// page.
const homeSectionSize = 6

// pageData is what the site's composite pages are built from.
type pageData struct {
	company      *models.CompanyDetails
	team         []models.TeamMember
	testimonials []models.Testimonial
	projects     []models.Project
}

// loadPage fetches the company profile and public team, plus the latest
// testimonials and projects when withSections is set. The reads run
// concurrently; the first failure cancels the rest.
func (p *Public) loadPage(ctx context.Context, withSections bool) (*pageData, error) {
	var d pageData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.company, err = p.CompanyStore.Active(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.team, err = p.TeamStore.List(ctx, query.Build(query.TeamMembers, nil, query.Public))
		return err
	})
	if withSections {
		g.Go(func() (err error) {
			d.testimonials, err = p.TestimonialStore.List(ctx,
				query.Build(query.Testimonials, nil, query.Public).WithLimit(homeSectionSize))
			return err
		})
		g.Go(func() (err error) {
			d.projects, err = p.ProjectStore.List(ctx,
				query.Build(query.Projects, nil, query.Public).WithLimit(homeSectionSize))
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Home returns everything the landing page renders in one response.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	d, err := p.loadPage(ctx, true)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.Home(d.company, d.team, d.testimonials, d.projects))
}

// About returns the company profile with the public team.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	d, err := p.loadPage(ctx, false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.About(d.company, d.team))
}

// CompanyStats returns the headline numbers only.
func (p *Public) CompanyStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := p.dbContext(r)
	defer cancel()

	c, err := p.CompanyStore.Active(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, shape.CompanyStats(c))
}
