package slug

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple two words", "Web Development", "web-development"},
		{"title with year", "Company Profile 2026", "company-profile-2026"},
		{"punctuation", "Hello, World! How's it going?", "hello-world-hows-it-going"},
		{"ampersand", "UI & UX Design", "ui-ux-design"},
		{"slashes removed", "Frontend/Backend | Full Stack", "frontendbackend-full-stack"},
		{"version number", "Version 2.0.1", "version-201"},
		{"date-like string", "2026-02-25", "2026-02-25"},
		{"leading and trailing spaces", "  hello world  ", "hello-world"},
		{"consecutive spaces", "hello    world", "hello-world"},
		{"tabs become hyphens", "hello\tworld", "hello-world"},
		{"newlines become hyphens", "hello\nworld", "hello-world"},
		{"hyphens and spaces mixed", "  --hello -- world--  ", "hello-world"},
		{"single hyphen preserved", "well-known fact", "well-known-fact"},
		{"empty", "", ""},
		{"only special characters", "!@#$%^&*()", ""},
		{"realistic project title", "E-Commerce Platform (Jakarta)", "e-commerce-platform-jakarta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerate_TruncatesLongInput(t *testing.T) {
	got := Generate(strings.Repeat("word ", 100))
	if len(got) > MaxLength {
		t.Errorf("len = %d, want <= %d", len(got), MaxLength)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("truncated slug ends with a hyphen: %q", got)
	}
	if !Valid(got) {
		t.Errorf("truncated slug %q is not valid", got)
	}
}

// Generating a slug from an existing slug returns it unchanged.
func TestGenerate_Idempotent(t *testing.T) {
	for _, s := range []string{"hello-world", "a", "123", "go-1-25-release-notes"} {
		if got := Generate(s); got != s {
			t.Errorf("Generate(%q) = %q", s, got)
		}
	}
}

func TestValid(t *testing.T) {
	tests := map[string]bool{
		"web-development": true,
		"a":               true,
		"2026":            true,
		"":                false,
		"Web":             false,
		"web--dev":        false,
		"-web":            false,
		"web-":            false,
		"web dev":         false,
		"web_dev":         false,
		"café":            false,
	}
	for in, want := range tests {
		if got := Valid(in); got != want {
			t.Errorf("Valid(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		source   string
		want     string
		ok       bool
	}{
		{"provided wins", "custom-slug", "Some Title", "custom-slug", true},
		{"generated when empty", "", "Some Title", "some-title", true},
		{"provided is trimmed", "  custom  ", "x", "custom", true},
		{"invalid provided", "Bad Slug", "Some Title", "Bad Slug", false},
		{"nothing usable", "", "!!!", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.provided, tt.source)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Resolve(%q, %q) = %q, %v; want %q, %v", tt.provided, tt.source, got, ok, tt.want, tt.ok)
			}
		})
	}
}
