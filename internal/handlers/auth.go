// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"apigs/internal/identity"
	"apigs/internal/middleware"
	"apigs/internal/models"
	"apigs/internal/session"
	"apigs/internal/transport"
)

// Auth groups the backoffice authentication handlers.
type Auth struct {
	*Deps
}

// NewAuth creates a new Auth handler group.
func NewAuth(d *Deps) *Auth {
	return &Auth{Deps: d}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=256"`
}

type codeInput struct {
	Code string `json:"code" validate:"required,numeric,len=6"`
}

type meResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	Role          string `json:"role"`
	Source        string `json:"source"`
	Authenticated bool   `json:"authenticated"`
}

// CSRF returns the token the client must echo in X-CSRF-Token on unsafe
// requests. The CSRF middleware has already set the cookie.
func (a *Auth) CSRF(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]string{"csrfToken": middleware.CSRFToken(r)})
}

// Login checks the password and opens a session with the second factor
// still pending.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	email := models.NormalizeEmail(in.Email)
	user, err := a.UserStore.FindByEmail(ctx, email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if user == nil || !a.UserStore.CheckPassword(user, in.Password) {
		slog.Warn("login rejected", "email", email, "request_id", middleware.RequestIDFromContext(r.Context()))
		transport.WriteError(w, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}

	if old := middleware.SessionFromCtx(r.Context()); old != nil {
		if err := a.Sessions.Destroy(ctx, w, r); err != nil {
			slog.Warn("previous session not destroyed", "error", err)
		}
	}
	_, err = a.Sessions.Create(ctx, w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("login: password accepted", "user_id", user.ID)
	transport.WriteJSON(w, http.StatusOK, map[string]any{
		"needs2FASetup": user.Needs2FASetup(),
		"twoFactorDone": false,
	})
}

// TwoFASetup generates a TOTP secret for a user who has not enrolled yet
// and returns it with a QR code. Enrolled users cannot reset their secret
// from a half-authenticated session.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	ctx, cancel := a.dbContext(r)
	defer cancel()

	user, err := a.UserStore.FindByID(ctx, sess.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if user == nil {
		transport.WriteError(w, http.StatusUnauthorized, "login required", nil)
		return
	}
	if user.TOTPEnabled {
		transport.WriteError(w, http.StatusConflict, "two-factor authentication is already set up", nil)
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      a.SiteName,
		AccountName: user.Email,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.UserStore.SetTOTPSecret(ctx, user.ID, key.Secret()); err != nil {
		writeError(w, r, err)
		return
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		writeError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"secret": key.Secret(),
		"qrCode": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"url":    key.URL(),
	})
}

// TwoFAVerify checks a TOTP code, completes enrollment on first use and
// marks the session authenticated. When bearer tokens are configured the
// response also carries a token for non-browser clients.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	var in codeInput
	if !a.decode(w, r, &in) {
		return
	}
	ctx, cancel := a.dbContext(r)
	defer cancel()

	user, err := a.UserStore.FindByID(ctx, sess.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if user == nil {
		transport.WriteError(w, http.StatusUnauthorized, "login required", nil)
		return
	}
	if user.TOTPSecret == nil {
		transport.WriteError(w, http.StatusConflict, "two-factor authentication is not set up", nil)
		return
	}
	if !totp.Validate(in.Code, *user.TOTPSecret) {
		slog.Warn("2fa code rejected", "user_id", user.ID)
		invalid(w, map[string]string{"code": "invalid"})
		return
	}

	if user.Enrolling() {
		if err := a.UserStore.EnableTOTP(ctx, user.ID); err != nil {
			writeError(w, r, err)
			return
		}
	}

	sess.TwoFADone = true
	if err := a.Sessions.Update(ctx, r, sess); err != nil {
		writeError(w, r, err)
		return
	}

	resp := map[string]any{"authenticated": true}
	if a.Verifier != nil {
		token, err := a.Verifier.Issue(*sess.Caller(), session.DefaultTTL)
		if err != nil {
			writeError(w, r, err)
			return
		}
		resp["token"] = token
		resp["expiresIn"] = int(session.DefaultTTL.Seconds())
	}
	slog.Info("login: second factor accepted", "user_id", user.ID)
	transport.WriteJSON(w, http.StatusOK, resp)
}

// Logout destroys the session cookie and its server-side record.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.Sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("logout: session not destroyed", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me describes the current caller, or the pending login when only the
// password step is done.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	if c := identity.FromContext(r.Context()); c != nil {
		transport.WriteJSON(w, http.StatusOK, meResponse{
			ID:            c.ID,
			Email:         c.Email,
			DisplayName:   c.Name,
			Role:          c.Role,
			Source:        string(c.Source),
			Authenticated: true,
		})
		return
	}
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		transport.WriteJSON(w, http.StatusOK, meResponse{
			ID:          sess.UserID.String(),
			Email:       sess.Email,
			DisplayName: sess.DisplayName,
			Role:        sess.Role,
			Source:      string(identity.SourceSession),
		})
		return
	}
	transport.WriteError(w, http.StatusUnauthorized, "authentication required", nil)
}
