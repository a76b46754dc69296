package query

import (
	"errors"
	"testing"

	"apigs/internal/identity"
)

func TestResolve(t *testing.T) {
	admin := &identity.Caller{ID: "u1", Role: "admin"}

	tests := []struct {
		name    string
		caller  *identity.Caller
		public  bool
		want    Mode
		wantErr error
	}{
		{name: "anonymous public", caller: nil, public: true, want: Public},
		{name: "authenticated public", caller: admin, public: true, want: Public},
		{name: "authenticated admin", caller: admin, public: false, want: Admin},
		{name: "anonymous admin", caller: nil, public: false, wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.caller, tt.public)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if Public.String() != "public" || Admin.String() != "admin" {
		t.Errorf("mode strings = %q, %q", Public, Admin)
	}
}
