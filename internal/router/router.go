// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains of the
// content API. Routes are grouped into the public site API, backoffice
// authentication and the admin API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"apigs/internal/handlers"
	"apigs/internal/identity"
	"apigs/internal/middleware"
)

// Config wires the handler groups and the identity sources into the router.
type Config struct {
	Public *handlers.Public
	Admin  *handlers.Admin
	Auth   *handlers.Auth
	Health http.Handler

	Sessions middleware.SessionLoader
	Verifier *identity.Verifier

	// SecureCookies marks the CSRF cookie Secure (HTTPS deployments).
	SecureCookies bool
}

// New creates the chi router with all middleware and route groups wired up.
func New(cfg Config) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Method(http.MethodGet, "/health", cfg.Health)

	csrf := middleware.NewCSRF(cfg.SecureCookies)
	identify := middleware.Identify(cfg.Sessions, cfg.Verifier)

	r.Route("/api", func(r chi.Router) {
		// Public site API: always public mode, no identity needed.
		r.Group(func(r chi.Router) {
			pub := cfg.Public
			r.Get("/company-details", pub.CompanyDetails)
			r.Get("/company-stats", pub.CompanyStats)
			r.Get("/home", pub.Home)
			r.Get("/about", pub.About)
			r.Get("/projects", pub.Projects)
			r.Get("/projects/{slug}", pub.Project)
			r.Get("/categories", pub.Categories)
			r.Get("/team", pub.Team)
			r.Get("/testimonials", pub.Testimonials)
			r.Get("/blog", pub.Blog)
			r.Get("/blog/{slug}", pub.BlogPost)
			r.Post("/contact", pub.Contact)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Use(identify)
			r.Use(csrf)

			auth := cfg.Auth
			r.Get("/csrf", auth.CSRF)
			r.Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)
			r.Get("/me", auth.Me)

			// Second factor: needs the password step, not a full identity.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSession)
				r.Post("/2fa/setup", auth.TwoFASetup)
				r.Post("/2fa/verify", auth.TwoFAVerify)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Use(identify)
			r.Use(csrf)

			a := cfg.Admin

			// Lists honor ?public=true, so the visibility gate decides.
			r.Get("/projects", a.ListProjects)
			r.Get("/categories", a.ListCategories)
			r.Get("/inquiries", a.ListInquiries)
			r.Get("/testimonials", a.ListTestimonials)
			r.Get("/team", a.ListTeam)
			r.Get("/blog", a.ListBlogPosts)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireIdentity)

				r.Post("/projects", a.CreateProject)
				r.Get("/projects/{id}", a.GetProject)
				r.Put("/projects/{id}", a.UpdateProject)
				r.Delete("/projects/{id}", a.DeleteProject)

				r.Post("/categories", a.CreateCategory)
				r.Get("/categories/{id}", a.GetCategory)
				r.Put("/categories/{id}", a.UpdateCategory)
				r.Delete("/categories/{id}", a.DeleteCategory)

				r.Get("/inquiries/{id}", a.GetInquiry)
				r.Patch("/inquiries/{id}", a.PatchInquiry)
				r.Delete("/inquiries/{id}", a.DeleteInquiry)

				r.Post("/testimonials", a.CreateTestimonial)
				r.Get("/testimonials/{id}", a.GetTestimonial)
				r.Put("/testimonials/{id}", a.UpdateTestimonial)
				r.Delete("/testimonials/{id}", a.DeleteTestimonial)

				r.Post("/team", a.CreateTeamMember)
				r.Get("/team/{id}", a.GetTeamMember)
				r.Put("/team/{id}", a.UpdateTeamMember)
				r.Patch("/team/{id}/visibility", a.SetTeamVisibility)
				r.Delete("/team/{id}", a.DeleteTeamMember)

				r.Post("/blog", a.CreateBlogPost)
				r.Get("/blog/{id}", a.GetBlogPost)
				r.Put("/blog/{id}", a.UpdateBlogPost)
				r.Delete("/blog/{id}", a.DeleteBlogPost)

				r.Get("/company-details", a.GetCompany)
				r.Put("/company-details", a.PutCompany)

				r.Get("/media", a.ListMedia)
				r.Post("/media", a.UploadMedia)
				r.Delete("/media", a.DeleteMedia)
			})
		})
	})

	return r
}
