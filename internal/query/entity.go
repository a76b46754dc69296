// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"slices"

	"github.com/google/uuid"
)

// Kind selects how a filter parameter is compared.
type Kind int

const (
	// Text compares the raw value for equality.
	Text Kind = iota
	// Enum compares against an allow-list; other values match nothing.
	Enum
	// UUID parses the value as a UUID; unparsable values match nothing.
	UUID
	// Mapped translates the value through Map; unmapped values match nothing.
	Mapped
)

// Filter binds one query parameter to one column comparison.
type Filter struct {
	Param  string
	Column string
	Kind   Kind
	Values []string
	Map    map[string]any
}

func (f Filter) predicate(value string) Predicate {
	switch f.Kind {
	case Enum:
		if !slices.Contains(f.Values, value) {
			return False
		}
		return Eq(f.Column, value)
	case UUID:
		id, err := uuid.Parse(value)
		if err != nil {
			return False
		}
		return Eq(f.Column, id)
	case Mapped:
		v, ok := f.Map[value]
		if !ok {
			return False
		}
		return Eq(f.Column, v)
	default:
		return Eq(f.Column, value)
	}
}

// SortKey is an orderable column expression.
type SortKey struct {
	Column    string
	NullsLast bool
}

// Order is one ORDER BY term.
type Order struct {
	Key  SortKey
	Desc bool
}

// Entity declares how one collection is searched, filtered and sorted, and
// which rows the public may see. Columns are qualified with Table so the
// stores can join related tables.
type Entity struct {
	Name    string
	Table   string
	Search  []string
	Filters []Filter
	Sorts   map[string]SortKey
	Default []Order

	// Hidden is AND-ed into every public-mode query. Nil means the
	// collection is fully public.
	Hidden Predicate
}

// tieBreak returns the identity column used as the final sort key.
func (e *Entity) tieBreak() SortKey {
	return SortKey{Column: e.Table + ".id"}
}
