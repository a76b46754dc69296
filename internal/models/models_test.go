package models

import (
	"testing"
)

func TestInquiryEnums(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		value string
		want  bool
	}{
		{"type general", ValidInquiryType, "general", true},
		{"type support", ValidInquiryType, "support", true},
		{"type career rejected", ValidInquiryType, "career", false},
		{"type uppercase rejected", ValidInquiryType, "PROJECT", false},
		{"status qualified", ValidInquiryStatus, "qualified", true},
		{"status unknown", ValidInquiryStatus, "archived", false},
		{"priority urgent", ValidPriority, "urgent", true},
		{"priority empty", ValidPriority, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.value); got != tt.want {
				t.Errorf("check(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestTeamMemberVisible(t *testing.T) {
	tests := []struct {
		active, public, want bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}
	for _, tt := range tests {
		m := &TeamMember{IsActive: tt.active, IsPublic: tt.public}
		if got := m.Visible(); got != tt.want {
			t.Errorf("Visible(active=%v, public=%v) = %v, want %v", tt.active, tt.public, got, tt.want)
		}
	}
}

func TestStringListScan(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["Go","PostgreSQL"]`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(l) != 2 || l[0] != "Go" || l[1] != "PostgreSQL" {
		t.Errorf("Scan result = %v", l)
	}

	var fromNull StringList
	if err := fromNull.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if fromNull == nil || len(fromNull) != 0 {
		t.Errorf("Scan(nil) = %#v, want empty non-nil list", fromNull)
	}

	if err := l.Scan(42); err == nil {
		t.Error("expected error scanning an int")
	}
}

func TestStringListValueNil(t *testing.T) {
	v, err := StringList(nil).Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil list stored as %s, want []", v)
	}
}

func TestGalleryScan(t *testing.T) {
	var g Gallery
	err := g.Scan(`[{"url":"https://cdn/a.jpg","publicId":"blog/a","caption":"Office"}]`)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(g) != 1 || g[0].PublicID != "blog/a" || g[0].Caption != "Office" {
		t.Errorf("Scan result = %+v", g)
	}
}
