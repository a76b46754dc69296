// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package query turns flat request parameters into filtered, deterministically
// ordered queries over the site's collections. Each collection is declared
// once in a table (see entities.go) and consumed by one generic builder.
//
// In public mode the collection's hidden predicate is always the first
// conjunct of the WHERE clause. No parameter can remove or override it.
package query

import (
	"net/url"
	"strings"
)

// Params is the flat set of optional string parameters of a list request.
type Params map[string]string

// FromValues takes the first value of each URL query parameter, trimmed.
func FromValues(v url.Values) Params {
	p := make(Params, len(v))
	for k, vals := range v {
		if len(vals) > 0 {
			p[k] = strings.TrimSpace(vals[0])
		}
	}
	return p
}

// get returns the value of key, or "" when the parameter is absent or "all".
func (p Params) get(key string) string {
	v := strings.TrimSpace(p[key])
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

// Public reports whether the request asked for the public view.
func (p Params) Public() bool {
	switch strings.ToLower(strings.TrimSpace(p["public"])) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// Query is a resolved predicate and ordering over one collection.
type Query struct {
	entity *Entity
	mode   Mode
	filter Predicate
	extra  []Predicate
	order  []Order
	limit  int
}

// Build translates params into a query over e. Recognized parameters are
// "search", the entity's filter parameters, "sortBy" and "sortOrder";
// everything else is ignored.
func Build(e *Entity, p Params, mode Mode) Query {
	var parts []Predicate

	if term := p.get("search"); term != "" && len(e.Search) > 0 {
		matches := make([]Predicate, len(e.Search))
		for i, col := range e.Search {
			matches[i] = Contains(col, term)
		}
		parts = append(parts, Or(matches...))
	}

	for _, f := range e.Filters {
		if v := p.get(f.Param); v != "" {
			parts = append(parts, f.predicate(v))
		}
	}

	return Query{
		entity: e,
		mode:   mode,
		filter: And(parts...),
		order:  resolveOrder(e, p["sortBy"], p["sortOrder"]),
	}
}

// Lookup returns an unfiltered query over e, for detail views that add
// their own conditions with WithEqual.
func Lookup(e *Entity, mode Mode) Query {
	return Query{entity: e, mode: mode, filter: True, order: e.Default}
}

// WithEqual returns a copy of q further constrained to column = value.
func (q Query) WithEqual(column string, value any) Query {
	extra := make([]Predicate, len(q.extra), len(q.extra)+1)
	copy(extra, q.extra)
	q.extra = append(extra, Eq(column, value))
	return q
}

// WithLimit returns a copy of q capped at n rows. Request parameters never
// set a limit; it is only used for fixed-size page sections.
func (q Query) WithLimit(n int) Query {
	q.limit = n
	return q
}

// Limit returns the row cap, or 0 when the query is unbounded.
func (q Query) Limit() int { return q.limit }

// Entity returns the collection the query targets.
func (q Query) Entity() *Entity { return q.entity }

// Mode returns the visibility mode the query was built for.
func (q Query) Mode() Mode { return q.mode }

// Predicate returns the complete condition, including the hidden public
// constraint when the mode is Public.
func (q Query) Predicate() Predicate {
	parts := make([]Predicate, 0, 2+len(q.extra))
	if q.mode == Public && q.entity.Hidden != nil {
		parts = append(parts, q.entity.Hidden)
	}
	parts = append(parts, q.filter)
	parts = append(parts, q.extra...)
	return And(parts...)
}

// Where renders the WHERE clause body and its positional arguments.
func (q Query) Where() (string, []any) {
	return Render(q.Predicate())
}

// OrderBy renders the ORDER BY clause body.
func (q Query) OrderBy() string {
	return renderOrder(q.order, q.entity.tieBreak())
}
