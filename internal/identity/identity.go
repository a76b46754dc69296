// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package identity describes the authenticated caller of a request. The
// caller is resolved once by middleware and then passed explicitly to the
// query layer; nothing below the handlers reads it from globals.
package identity

import "context"

// Source records how the caller proved who they are.
type Source string

const (
	SourceSession Source = "session"
	SourceToken   Source = "token"
)

// Caller is an authenticated backoffice identity.
type Caller struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Source Source `json:"source"`
}

type contextKey struct{}

// WithCaller returns a copy of ctx carrying c.
func WithCaller(ctx context.Context, c *Caller) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the caller stored in ctx, or nil for anonymous requests.
func FromContext(ctx context.Context) *Caller {
	c, _ := ctx.Value(contextKey{}).(*Caller)
	return c
}
