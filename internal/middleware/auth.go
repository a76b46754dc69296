// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"apigs/internal/identity"
	"apigs/internal/session"
	"apigs/internal/transport"
)

type sessionKey struct{}

// SessionLoader reads the session attached to a request.
type SessionLoader interface {
	Get(ctx context.Context, r *http.Request) (*session.Data, error)
}

// Identify resolves the caller once per request. A bearer token takes
// precedence over the session cookie; an invalid token is rejected
// outright. A session cookie that cannot be resolved because the store is
// down answers 503. A session identifies a caller only after its second factor,
// but is stored in the context either way for the login flow. Identify
// never rejects anonymous requests.
func Identify(sessions SessionLoader, verifier *identity.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if token := identity.BearerToken(r.Header.Get("Authorization")); token != "" {
				if verifier == nil {
					transport.WriteError(w, http.StatusUnauthorized, "bearer tokens are not accepted", nil)
					return
				}
				caller, err := verifier.Verify(token)
				if err != nil {
					slog.Warn("bearer token rejected", "error", err, "request_id", RequestIDFromContext(ctx))
					transport.WriteError(w, http.StatusUnauthorized, "invalid token", nil)
					return
				}
				next.ServeHTTP(w, r.WithContext(identity.WithCaller(ctx, caller)))
				return
			}

			if sessions != nil {
				data, err := sessions.Get(ctx, r)
				if err != nil {
					slog.Error("session load failed", "error", err, "request_id", RequestIDFromContext(ctx))
					// Without a cookie there is no session to lose; carry on anonymous.
					if _, cerr := r.Cookie(session.CookieName); cerr == nil {
						transport.WriteError(w, http.StatusServiceUnavailable, "session store unavailable", nil)
						return
					}
				}
				if data != nil {
					ctx = context.WithValue(ctx, sessionKey{}, data)
					if caller := data.Caller(); caller != nil {
						ctx = identity.WithCaller(ctx, caller)
					}
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireIdentity answers 401 unless Identify found a caller.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity.FromContext(r.Context()) == nil {
			transport.WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession answers 401 unless the request carries a session, with or
// without a completed second factor. Guards the 2FA endpoints.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromCtx(r.Context()) == nil {
			transport.WriteError(w, http.StatusUnauthorized, "login required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromCtx extracts the session data from the request context.
// Returns nil if no session is loaded.
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(sessionKey{}).(*session.Data)
	return data
}

// WithSession returns a copy of ctx carrying data. Used by tests and by
// handlers that create a session mid-request.
func WithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, sessionKey{}, data)
}
