// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON HTTP API: public site reads, the
// contact form, admin CRUD, media uploads and backoffice authentication.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"apigs/internal/identity"
	"apigs/internal/mailer"
	"apigs/internal/media"
	"apigs/internal/middleware"
	"apigs/internal/query"
	"apigs/internal/session"
	"apigs/internal/store"
	"apigs/internal/transport"
	"apigs/internal/validation"
)

// Deps carries everything the handler groups share.
type Deps struct {
	ProjectStore     *store.ProjectStore
	CategoryStore    *store.CategoryStore
	InquiryStore     *store.InquiryStore
	TestimonialStore *store.TestimonialStore
	TeamStore        *store.TeamStore
	BlogStore        *store.BlogStore
	CompanyStore     *store.CompanyStore
	UserStore        *store.UserStore

	Media    *media.Service
	Notifier *mailer.InquiryNotifier
	Sessions *session.Store
	Verifier *identity.Verifier
	Validate *validation.Validator

	// DBTimeout bounds each request's storage work; UpstreamTimeout bounds
	// calls to object storage and the email API.
	DBTimeout       time.Duration
	UpstreamTimeout time.Duration

	// SiteName labels emails and TOTP enrollments.
	SiteName string
}

func (d *Deps) dbContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), orDefault(d.DBTimeout, 5*time.Second))
}

func (d *Deps) upstreamContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), orDefault(d.UpstreamTimeout, 15*time.Second))
}

// cleanupContext outlives the request so best-effort media cleanup is not
// cut short when the client disconnects.
func (d *Deps) cleanupContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(r.Context()), orDefault(d.UpstreamTimeout, 15*time.Second))
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// decode reads and validates a JSON body. It writes the error response
// and returns false when the body is unusable.
func (d *Deps) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	return readJSON(w, r, v) && d.check(w, v)
}

// readJSON decodes the body into v without validating it.
func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := transport.DecodeRequest(w, r, v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			transport.WriteError(w, http.StatusRequestEntityTooLarge, "request body too large", nil)
			return false
		}
		transport.WriteError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error(), nil)
		return false
	}
	return true
}

// check validates v, writing a 400 with field details on failure.
func (d *Deps) check(w http.ResponseWriter, v any) bool {
	if err := d.Validate.Struct(v); err != nil {
		if ve := d.Validate.ValidationErrors(err); ve != nil {
			invalid(w, transport.ValidationDetails(ve))
			return false
		}
		transport.WriteError(w, http.StatusBadRequest, "invalid request", nil)
		return false
	}
	return true
}

// invalid writes a 400 with field-level details.
func invalid(w http.ResponseWriter, details map[string]string) {
	transport.WriteError(w, http.StatusBadRequest, "validation failed", details)
}

// pathID parses the {id} URL parameter. It writes a 404 and returns false
// when the parameter is not a UUID, since no record can match it.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		transport.WriteError(w, http.StatusNotFound, "not found", nil)
		return uuid.Nil, false
	}
	return id, true
}

// mode resolves the visibility mode of an admin list request.
func mode(w http.ResponseWriter, r *http.Request) (query.Mode, query.Params, bool) {
	params := query.FromValues(r.URL.Query())
	m, err := query.Resolve(identity.FromContext(r.Context()), params.Public())
	if err != nil {
		writeError(w, r, err)
		return m, nil, false
	}
	return m, params, true
}

// writeError maps a domain error onto an HTTP status and writes it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
	}
	var details map[string]string
	if errors.Is(err, store.ErrSlugTaken) {
		details = map[string]string{"slug": "taken"}
	}
	transport.WriteError(w, status, message, details)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, store.ErrSlugTaken):
		return http.StatusConflict, "slug already in use"
	case errors.Is(err, store.ErrInUse):
		return http.StatusConflict, "record is still referenced"
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict, "conflicting record"
	case errors.Is(err, store.ErrInvalidReference):
		return http.StatusBadRequest, "referenced record does not exist"
	case errors.Is(err, query.ErrUnauthorized):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, media.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, "file too large (max 5 MB)"
	case errors.Is(err, media.ErrUnsupportedType),
		errors.Is(err, media.ErrInvalidFolder),
		errors.Is(err, media.ErrEmpty):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, media.ErrNotConfigured):
		return http.StatusServiceUnavailable, "object storage is not configured"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream timed out, please retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
