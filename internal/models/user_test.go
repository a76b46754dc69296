package models

import "testing"

func TestValidRole(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleEditor, true},
		{Role(""), false},
		{Role("ADMIN"), false},
		{Role("owner"), false},
	}
	for _, tt := range tests {
		if got := ValidRole(tt.role); got != tt.want {
			t.Errorf("ValidRole(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Admin@APIGS.Local "); got != "admin@apigs.local" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestUserTOTPState(t *testing.T) {
	secret := "JBSWY3DPEHPK3PXP"

	tests := []struct {
		name          string
		secret        *string
		enabled       bool
		wantSetup     bool
		wantEnrolling bool
	}{
		{"fresh account", nil, false, true, false},
		{"secret issued", &secret, false, true, true},
		{"confirmed", &secret, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{TOTPSecret: tt.secret, TOTPEnabled: tt.enabled}
			if got := u.Needs2FASetup(); got != tt.wantSetup {
				t.Errorf("Needs2FASetup() = %v, want %v", got, tt.wantSetup)
			}
			if got := u.Enrolling(); got != tt.wantEnrolling {
				t.Errorf("Enrolling() = %v, want %v", got, tt.wantEnrolling)
			}
		})
	}
}
