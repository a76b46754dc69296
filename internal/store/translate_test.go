package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslate(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		onFK error
		want error
	}{
		{"slug unique", &pgconn.PgError{Code: "23505", ConstraintName: "blog_posts_slug_key"}, ErrInvalidReference, ErrSlugTaken},
		{"wrapped slug unique", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: "projects_slug_key"}), ErrInvalidReference, ErrSlugTaken},
		{"other unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, ErrInvalidReference, ErrConflict},
		{"fk on write", &pgconn.PgError{Code: "23503"}, ErrInvalidReference, ErrInvalidReference},
		{"fk on delete", &pgconn.PgError{Code: "23503"}, ErrInUse, ErrInUse},
		{"unrelated", plain, ErrInUse, plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.err, tt.onFK); !errors.Is(got, tt.want) {
				t.Errorf("translate() = %v, want %v", got, tt.want)
			}
		})
	}
}
