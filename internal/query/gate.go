package query

import (
	"errors"

	"apigs/internal/identity"
)

// Mode selects which rows and fields a caller may see.
type Mode int

const (
	// Public applies hidden row constraints and strips admin-only fields.
	Public Mode = iota
	// Admin sees every row and field. Requires an authenticated caller.
	Admin
)

func (m Mode) String() string {
	if m == Admin {
		return "admin"
	}
	return "public"
}

// ErrUnauthorized is returned when the admin view is requested anonymously.
var ErrUnauthorized = errors.New("query: admin view requires an authenticated caller")

// Resolve decides the view mode for a request. The public view never fails;
// the admin view needs a caller.
func Resolve(caller *identity.Caller, public bool) (Mode, error) {
	if public {
		return Public, nil
	}
	if caller == nil {
		return Public, ErrUnauthorized
	}
	return Admin, nil
}
