// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the records stored in PostgreSQL: the public site
// content, contact inquiries, media assets and backoffice accounts.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is a backoffice permission level. Values match the users.role
// CHECK constraint.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// ValidRole reports whether r is a role the users table accepts.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleEditor
}

// User is a backoffice account. Signing in takes the password, then a TOTP
// code; TOTPEnabled flips once the first code after enrollment is accepted.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	Role         Role      `json:"role"`
	TOTPSecret   *string   `json:"-"`
	TOTPEnabled  bool      `json:"totpEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Needs2FASetup reports whether the user has not confirmed a TOTP
// enrollment yet. Every account enrolls on first sign-in.
func (u *User) Needs2FASetup() bool {
	return !u.TOTPEnabled
}

// Enrolling reports whether a TOTP secret was issued but no code has been
// confirmed against it.
func (u *User) Enrolling() bool {
	return u.TOTPSecret != nil && !u.TOTPEnabled
}
