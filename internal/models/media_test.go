package models

import "testing"

// TestMediaHumanSize verifies the byte, kilobyte and megabyte formatting.
func TestMediaHumanSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "zero", bytes: 0, want: "0 B"},
		{name: "bytes", bytes: 512, want: "512 B"},
		{name: "one kilobyte", bytes: 1024, want: "1 KB"},
		{name: "kilobytes", bytes: 300 * 1024, want: "300 KB"},
		{name: "one megabyte", bytes: 1024 * 1024, want: "1.0 MB"},
		{name: "upload limit", bytes: 5 * 1024 * 1024, want: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MediaAsset{Bytes: tt.bytes}
			if got := m.HumanSize(); got != tt.want {
				t.Errorf("HumanSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
