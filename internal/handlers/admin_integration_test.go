// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func uniqueSlug(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

func cleanBySlug(t *testing.T, db *sql.DB, table string, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM "+table+" WHERE slug = $1", s)
	}
}

// createCategory creates a category through the admin handler and returns its id.
func createCategory(t *testing.T, env *testEnv, slug string) string {
	t.Helper()
	rec := httptest.NewRecorder()
	env.Admin.CreateCategory(rec, asAdmin(jsonRequest(t, http.MethodPost, "/api/admin/categories", map[string]any{
		"name":  "Web " + slug,
		"slug":  slug,
		"type":  "portfolio",
		"color": "#1a2b3c",
	})))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category: status %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	decodeBody(t, rec, &body)
	return body["id"].(string)
}

func TestPortfolioLifecycle(t *testing.T) {
	env := newTestEnv(t)

	catSlug := uniqueSlug("test-cat")
	projSlug := uniqueSlug("test-proj")
	t.Cleanup(func() {
		cleanBySlug(t, env.DB, "projects", projSlug)
		cleanBySlug(t, env.DB, "categories", catSlug)
	})

	catID := createCategory(t, env, catSlug)

	// Project with an unknown category fails fast.
	rec := httptest.NewRecorder()
	env.Admin.CreateProject(rec, asAdmin(jsonRequest(t, http.MethodPost, "/api/admin/projects", map[string]any{
		"title":       "Ghost",
		"description": "No category",
		"categoryId":  uuid.NewString(),
	})))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown category: status %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	env.Admin.CreateProject(rec, asAdmin(jsonRequest(t, http.MethodPost, "/api/admin/projects", map[string]any{
		"title":        "Company Portal",
		"slug":         projSlug,
		"description":  "A portal",
		"technologies": []string{"Go", "PostgreSQL"},
		"categoryId":   catID,
		"isActive":     false,
	})))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create project: status %d: %s", rec.Code, rec.Body.String())
	}

	// Duplicate slug conflicts.
	rec = httptest.NewRecorder()
	env.Admin.CreateProject(rec, asAdmin(jsonRequest(t, http.MethodPost, "/api/admin/projects", map[string]any{
		"title":       "Copy",
		"slug":        projSlug,
		"description": "dup",
		"categoryId":  catID,
	})))
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate slug: status %d, want 409", rec.Code)
	}

	// Inactive projects are hidden from the public detail view.
	rec = httptest.NewRecorder()
	env.Public.Project(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/api/projects/"+projSlug, nil), "slug", projSlug))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("inactive public project: status %d, want 404", rec.Code)
	}

	// The public flag on the admin list hides it as well, even for admins.
	rec = httptest.NewRecorder()
	env.Admin.ListProjects(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/projects?public=true&search=Company+Portal", nil)))
	var list listBody
	decodeBody(t, rec, &list)
	for _, item := range list.Items {
		if item["slug"] == projSlug {
			t.Error("inactive project listed in public mode")
		}
	}

	// Referenced category cannot be deleted.
	rec = httptest.NewRecorder()
	env.Admin.DeleteCategory(rec, asAdmin(withURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", catID)))
	if rec.Code != http.StatusConflict {
		t.Fatalf("delete referenced category: status %d, want 409", rec.Code)
	}
}

func TestBlogPublishAndRead(t *testing.T) {
	env := newTestEnv(t)

	postSlug := uniqueSlug("test-post")
	t.Cleanup(func() { cleanBySlug(t, env.DB, "blog_posts", postSlug) })

	rec := httptest.NewRecorder()
	env.Admin.CreateBlogPost(rec, asAdmin(jsonRequest(t, http.MethodPost, "/api/admin/blog", map[string]any{
		"title":   "Hello",
		"slug":    postSlug,
		"content": "**bold** <script>alert(1)</script>",
		"status":  "published",
	})))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create post: status %d: %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	decodeBody(t, rec, &created)
	if created["publishedAt"] == nil {
		t.Error("published post has no publishedAt")
	}
	if created["author"] != "Test Admin" {
		t.Errorf("author = %v", created["author"])
	}

	rec = httptest.NewRecorder()
	env.Public.BlogPost(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/api/blog/"+postSlug, nil), "slug", postSlug))
	if rec.Code != http.StatusOK {
		t.Fatalf("public post: status %d", rec.Code)
	}
	var detail map[string]any
	decodeBody(t, rec, &detail)
	html, _ := detail["contentHtml"].(string)
	if html == "" {
		t.Fatal("missing contentHtml")
	}
	if _, leaked := detail["authorId"]; leaked {
		t.Error("public view exposes authorId")
	}

	var views int
	if err := env.DB.QueryRow("SELECT view_count FROM blog_posts WHERE slug = $1", postSlug).Scan(&views); err != nil {
		t.Fatalf("read views: %v", err)
	}
	if views != 1 {
		t.Errorf("view_count = %d, want 1", views)
	}
}

func TestBlogViewCountOutlivesRequest(t *testing.T) {
	env := newTestEnv(t)

	postSlug := uniqueSlug("test-views")
	t.Cleanup(func() { cleanBySlug(t, env.DB, "blog_posts", postSlug) })

	rec := httptest.NewRecorder()
	env.Admin.CreateBlogPost(rec, asAdmin(jsonRequest(t, http.MethodPost, "/api/admin/blog", map[string]any{
		"title":   "Views",
		"slug":    postSlug,
		"content": "body",
		"status":  "published",
	})))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create post: status %d: %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	decodeBody(t, rec, &created)

	// The client has gone by the time the counter runs.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	env.Public.incrementViewsAsync(ctx, uuid.MustParse(created["id"].(string)))

	deadline := time.Now().Add(3 * time.Second)
	for {
		var views int
		if err := env.DB.QueryRow("SELECT view_count FROM blog_posts WHERE slug = $1", postSlug).Scan(&views); err != nil {
			t.Fatalf("read views: %v", err)
		}
		if views == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("view_count = %d after cancelled request, want 1", views)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestSitePages(t *testing.T) {
	env := newTestEnv(t)

	catSlug := uniqueSlug("test-cat")
	hiddenSlug := uniqueSlug("test-hidden")
	t.Cleanup(func() {
		cleanBySlug(t, env.DB, "projects", hiddenSlug)
		cleanBySlug(t, env.DB, "categories", catSlug)
	})
	catID := createCategory(t, env, catSlug)

	rec := httptest.NewRecorder()
	env.Admin.CreateProject(rec, asAdmin(jsonRequest(t, http.MethodPost, "/api/admin/projects", map[string]any{
		"title":       "Hidden Work",
		"slug":        hiddenSlug,
		"description": "Not yet launched",
		"categoryId":  catID,
		"isActive":    false,
	})))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create project: status %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	env.Public.Home(rec, httptest.NewRequest(http.MethodGet, "/api/home", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("home: status %d: %s", rec.Code, rec.Body.String())
	}
	var home struct {
		Company      map[string]any   `json:"company"`
		Team         []map[string]any `json:"team"`
		Testimonials []map[string]any `json:"testimonials"`
		Projects     []map[string]any `json:"projects"`
	}
	decodeBody(t, rec, &home)
	if home.Company["companyName"] == "" || home.Team == nil || home.Testimonials == nil || home.Projects == nil {
		t.Fatalf("home = %+v", home)
	}
	if len(home.Testimonials) > homeSectionSize || len(home.Projects) > homeSectionSize {
		t.Errorf("sections exceed %d: %d testimonials, %d projects", homeSectionSize, len(home.Testimonials), len(home.Projects))
	}
	for _, p := range home.Projects {
		if p["slug"] == hiddenSlug {
			t.Error("inactive project on the home page")
		}
	}
	for _, m := range home.Team {
		if _, leaked := m["email"]; leaked {
			t.Error("home team exposes email")
		}
	}

	rec = httptest.NewRecorder()
	env.Public.About(rec, httptest.NewRequest(http.MethodGet, "/api/about", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("about: status %d", rec.Code)
	}
	var about map[string]any
	decodeBody(t, rec, &about)
	if _, ok := about["company"]; !ok {
		t.Errorf("about = %v", about)
	}
	if _, ok := about["projects"]; ok {
		t.Error("about page carries home sections")
	}

	rec = httptest.NewRecorder()
	env.Public.CompanyStats(rec, httptest.NewRequest(http.MethodGet, "/api/company-stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("company stats: status %d", rec.Code)
	}
	var stats map[string]any
	decodeBody(t, rec, &stats)
	for _, k := range []string{"teamMembersCount", "yearsExperience", "projectsCompleted"} {
		if _, ok := stats[k].(float64); !ok {
			t.Errorf("stats[%s] = %v", k, stats[k])
		}
	}
}

func TestContactAndInquiryWorkflow(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Public.Contact(rec, jsonRequest(t, http.MethodPost, "/api/contact", map[string]any{
		"name":        "Budi Santoso",
		"email":       "budi@example.com",
		"inquiryType": "partnership",
		"subject":     "Partnership",
		"message":     "Let us work together on this.",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("contact: status %d: %s", rec.Code, rec.Body.String())
	}
	var resp contactResponse
	decodeBody(t, rec, &resp)
	t.Cleanup(func() { env.DB.Exec("DELETE FROM inquiries WHERE id = $1", resp.InquiryID) })

	if !resp.Success || resp.InquiryID == "" {
		t.Fatalf("contact response = %+v", resp)
	}

	rec = httptest.NewRecorder()
	r := withURLParam(jsonRequest(t, http.MethodPatch, "/", `{"status":"qualified","priority":"high","followUpDate":"2026-12-01","notes":"call back"}`), "id", resp.InquiryID)
	env.Admin.PatchInquiry(rec, asAdmin(r))
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: status %d: %s", rec.Code, rec.Body.String())
	}
	var patched map[string]any
	decodeBody(t, rec, &patched)
	if patched["status"] != "qualified" || patched["priority"] != "high" || patched["followUpDate"] == nil {
		t.Errorf("patched = %v", patched)
	}

	rec = httptest.NewRecorder()
	r = withURLParam(jsonRequest(t, http.MethodPatch, "/", `{"followUpDate":null}`), "id", resp.InquiryID)
	env.Admin.PatchInquiry(rec, asAdmin(r))
	var cleared map[string]any
	decodeBody(t, rec, &cleared)
	if cleared["followUpDate"] != nil || cleared["status"] != "qualified" {
		t.Errorf("cleared = %v", cleared)
	}

	// Inquiries have no public rows.
	rec = httptest.NewRecorder()
	env.Admin.ListInquiries(rec, httptest.NewRequest(http.MethodGet, "/api/admin/inquiries?public=true", nil))
	var list listBody
	decodeBody(t, rec, &list)
	if list.Count != 0 || list.Items == nil {
		t.Errorf("public inquiries = %+v, want empty array", list)
	}
}

func TestCompanyDetailsUpsert(t *testing.T) {
	env := newTestEnv(t)

	var before sql.NullString
	env.DB.QueryRow("SELECT company_name FROM company_details WHERE is_active").Scan(&before)
	t.Cleanup(func() {
		if !before.Valid {
			env.DB.Exec("DELETE FROM company_details WHERE is_active")
		}
	})

	for _, name := range []string{"APIGS One", "APIGS Two"} {
		rec := httptest.NewRecorder()
		env.Admin.PutCompany(rec, asAdmin(jsonRequest(t, http.MethodPut, "/api/admin/company-details", map[string]any{
			"companyName":      name,
			"teamMembersCount": 12,
			"certifications":   []string{"ISO 9001"},
		})))
		if rec.Code != http.StatusOK {
			t.Fatalf("put %s: status %d: %s", name, rec.Code, rec.Body.String())
		}
	}

	var active int
	if err := env.DB.QueryRow("SELECT COUNT(*) FROM company_details WHERE is_active").Scan(&active); err != nil {
		t.Fatalf("count: %v", err)
	}
	if active != 1 {
		t.Errorf("active rows = %d, want 1", active)
	}

	rec := httptest.NewRecorder()
	env.Public.CompanyDetails(rec, httptest.NewRequest(http.MethodGet, "/api/company-details", nil))
	var body map[string]any
	decodeBody(t, rec, &body)
	if body["companyName"] != "APIGS Two" || body["timezone"] != "Asia/Jakarta" {
		t.Errorf("company = %v", body)
	}
}

func TestTeamVisibility(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.Admin.CreateTeamMember(rec, asAdmin(jsonRequest(t, http.MethodPost, "/api/admin/team", map[string]any{
		"firstName": "Sari",
		"lastName":  "Dewi",
		"jobTitle":  "Engineer",
		"email":     "sari@example.com",
	})))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create member: status %d: %s", rec.Code, rec.Body.String())
	}
	var member map[string]any
	decodeBody(t, rec, &member)
	id := member["id"].(string)
	t.Cleanup(func() { env.DB.Exec("DELETE FROM team_members WHERE id = $1", id) })

	if member["avatar"] == "" {
		t.Error("expected generated avatar url")
	}

	rec = httptest.NewRecorder()
	r := withURLParam(jsonRequest(t, http.MethodPatch, "/", `{"isPublic":false}`), "id", id)
	env.Admin.SetTeamVisibility(rec, asAdmin(r))
	if rec.Code != http.StatusOK {
		t.Fatalf("visibility: status %d: %s", rec.Code, rec.Body.String())
	}
	var updated map[string]any
	decodeBody(t, rec, &updated)
	if updated["isPublic"] != false || updated["isActive"] != true {
		t.Errorf("flags = public %v active %v", updated["isPublic"], updated["isActive"])
	}

	rec = httptest.NewRecorder()
	env.Public.Team(rec, httptest.NewRequest(http.MethodGet, "/api/team", nil))
	var list listBody
	decodeBody(t, rec, &list)
	for _, item := range list.Items {
		if item["id"] == id {
			t.Error("private member listed publicly")
		}
		if _, leaked := item["email"]; leaked {
			t.Error("public team view exposes email")
		}
	}
}
