// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Integration tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"apigs/internal/database"
	"apigs/internal/identity"
	"apigs/internal/media"
	"apigs/internal/store"
	"apigs/internal/validation"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "apigs")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "apigs")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// unitDeps returns dependencies with no storage behind them. Only requests
// rejected before any store call may use them.
func unitDeps() *Deps {
	return &Deps{Validate: validation.New(), SiteName: "APIGS Test"}
}

// testEnv holds the handler groups wired to a real database.
type testEnv struct {
	DB     *sql.DB
	Deps   *Deps
	Admin  *Admin
	Public *Public
}

// newTestEnv creates handler groups backed by the test database. Media
// storage and email stay unconfigured.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	deps := &Deps{
		ProjectStore:     store.NewProjectStore(db),
		CategoryStore:    store.NewCategoryStore(db),
		InquiryStore:     store.NewInquiryStore(db),
		TestimonialStore: store.NewTestimonialStore(db),
		TeamStore:        store.NewTeamStore(db),
		BlogStore:        store.NewBlogStore(db),
		CompanyStore:     store.NewCompanyStore(db),
		UserStore:        store.NewUserStore(db),
		Media:            media.New(nil, store.NewMediaStore(db)),
		Validate:         validation.New(),
		SiteName:         "APIGS Test",
	}
	public := NewPublic(deps)
	// Views are counted synchronously so assertions see them.
	public.countView = func(ctx context.Context, id uuid.UUID) {
		if err := deps.BlogStore.IncrementViews(ctx, id); err != nil {
			t.Errorf("increment views: %v", err)
		}
	}
	return &testEnv{DB: db, Deps: deps, Admin: NewAdmin(deps), Public: public}
}

// testCaller is the identity admin requests run as.
func testCaller() *identity.Caller {
	return &identity.Caller{
		ID:     "8a0b8f4e-2d55-4b8e-9f0e-5a3c7f1d2e10",
		Email:  "admin@test.local",
		Name:   "Test Admin",
		Role:   "admin",
		Source: identity.SourceSession,
	}
}

// jsonRequest builds a request with body encoded as JSON.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	r := httptest.NewRequest(method, target, &buf)
	r.Header.Set("Content-Type", "application/json")
	return r
}

// asAdmin attaches testCaller to r.
func asAdmin(r *http.Request) *http.Request {
	return r.WithContext(identity.WithCaller(r.Context(), testCaller()))
}

// withURLParam adds a chi URL parameter to a request.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeBody decodes a recorded JSON response into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
}

// errorBody is the error envelope.
type errorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

// listBody is a list response with raw items.
type listBody struct {
	Items []map[string]any `json:"items"`
	Count int              `json:"count"`
}
