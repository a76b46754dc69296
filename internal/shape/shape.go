// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package shape converts stored records into the JSON views handed to API
// callers. Public views omit admin-only fields; timestamps leave this
// package as canonical UTC strings, never as driver types.
package shape

import (
	"time"

	"github.com/google/uuid"

	"apigs/internal/query"
)

// TimeLayout is the single timestamp form used in every response.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Stamp formats t in TimeLayout.
func Stamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// StampPtr formats an optional timestamp; nil stays nil (JSON null).
func StampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Stamp(*t)
	return &s
}

// Collection is the envelope of every list response.
type Collection[V any] struct {
	Items []V `json:"items"`
	Count int `json:"count"`
}

// List maps every record through view. The result always encodes as a JSON
// array, never null, and Count always equals len(Items).
func List[T, V any](records []T, view func(*T) V) Collection[V] {
	items := make([]V, len(records))
	for i := range records {
		items[i] = view(&records[i])
	}
	return Collection[V]{Items: items, Count: len(items)}
}

// ForMode adapts a mode-aware view function for use with List.
func ForMode[T, V any](mode query.Mode, view func(*T, query.Mode) V) func(*T) V {
	return func(r *T) V { return view(r, mode) }
}

func id(u uuid.UUID) string { return u.String() }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stringList(l []string) []string {
	if l == nil {
		return []string{}
	}
	return l
}
