// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func csrfHandler(secure bool, seen *string) http.Handler {
	return NewCSRF(secure)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = CSRFToken(r)
		}
		w.WriteHeader(http.StatusOK)
	}))
}

// issueToken performs a GET and returns the CSRF cookie it set.
func issueToken(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/auth/csrf", nil))
	for _, c := range rr.Result().Cookies() {
		if c.Name == CSRFCookieName {
			return c
		}
	}
	t.Fatal("CSRF cookie not set")
	return nil
}

func TestNewCSRFSecureFlag(t *testing.T) {
	for _, secure := range []bool{true, false} {
		c := issueToken(t, csrfHandler(secure, nil))
		if c.Secure != secure {
			t.Errorf("cookie Secure: got %v, want %v", c.Secure, secure)
		}
		if c.SameSite != http.SameSiteStrictMode {
			t.Errorf("cookie SameSite: got %v, want StrictMode", c.SameSite)
		}
		if c.HttpOnly {
			t.Error("CSRF cookie must be readable by the admin client")
		}
		if len(c.Value) != 2*csrfTokenLength {
			t.Errorf("token length %d", len(c.Value))
		}
	}
}

func TestCSRFTokenVisibleOnFirstRequest(t *testing.T) {
	var seen string
	h := csrfHandler(false, &seen)
	c := issueToken(t, h)
	if seen != c.Value {
		t.Errorf("handler saw %q, cookie %q", seen, c.Value)
	}
}

func TestCSRFValidation(t *testing.T) {
	h := csrfHandler(false, nil)
	cookie := issueToken(t, h)

	tests := []struct {
		name   string
		method string
		cookie bool
		header string
		bearer bool
		want   int
	}{
		{"safe method", http.MethodGet, false, "", false, http.StatusOK},
		{"missing header", http.MethodPost, true, "", false, http.StatusForbidden},
		{"wrong header", http.MethodDelete, true, "deadbeef", false, http.StatusForbidden},
		{"matching header", http.MethodPut, true, cookie.Value, false, http.StatusOK},
		{"no cookie yet", http.MethodPost, false, cookie.Value, false, http.StatusForbidden},
		{"bearer exempt", http.MethodPatch, false, "", true, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/admin/projects", nil)
			if tt.cookie {
				req.AddCookie(cookie)
			}
			if tt.header != "" {
				req.Header.Set(CSRFHeaderName, tt.header)
			}
			if tt.bearer {
				req.Header.Set("Authorization", "Bearer abc.def.ghi")
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Errorf("status: got %d, want %d", rr.Code, tt.want)
			}
		})
	}
}
