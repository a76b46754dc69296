// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"apigs/internal/identity"
	"apigs/internal/slug"
	"apigs/internal/store"
)

// Admin groups the backoffice CRUD handlers. List handlers resolve their
// own visibility mode; every other handler runs behind RequireIdentity.
type Admin struct {
	*Deps
}

// NewAdmin creates the admin handler group.
func NewAdmin(d *Deps) *Admin {
	return &Admin{Deps: d}
}

// slugChecker reports whether a slug is used by a record other than exclude.
type slugChecker func(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)

// claimSlug picks the slug for a write. An explicit slug wins, then the
// record's current slug, then one generated from source. It writes the
// error response and returns false when the slug is malformed or taken.
func claimSlug(ctx context.Context, w http.ResponseWriter, r *http.Request, provided, current, source string, exclude uuid.UUID, taken slugChecker) (string, bool) {
	if strings.TrimSpace(provided) == "" && current != "" {
		provided = current
	}
	s, ok := slug.Resolve(provided, source)
	if !ok {
		invalid(w, map[string]string{"slug": "slug"})
		return "", false
	}
	inUse, err := taken(ctx, s, exclude)
	if err != nil {
		writeError(w, r, err)
		return "", false
	}
	if inUse {
		writeError(w, r, store.ErrSlugTaken)
		return "", false
	}
	return s, true
}

// callerEmail names the acting admin for audit fields.
func callerEmail(r *http.Request) *string {
	c := identity.FromContext(r.Context())
	if c == nil || c.Email == "" {
		return nil
	}
	return &c.Email
}

// trimmed returns nil for nil or blank strings and the trimmed value
// otherwise.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// boolOr dereferences b, defaulting to fallback.
func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
