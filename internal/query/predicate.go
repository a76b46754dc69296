// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package query

import (
	"strconv"
	"strings"
)

// Predicate is a boolean condition over one collection. Predicates render
// to parameterized PostgreSQL; caller-supplied values are always bound as
// arguments and never spliced into the SQL text.
type Predicate interface {
	render(b *binder) string
}

// binder accumulates positional arguments for $n placeholders.
type binder struct {
	args []any
}

func (b *binder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

type constant bool

func (c constant) render(*binder) string {
	if c {
		return "TRUE"
	}
	return "FALSE"
}

// True matches every record; False matches none.
var (
	True  Predicate = constant(true)
	False Predicate = constant(false)
)

type eq struct {
	column string
	value  any
}

func (p eq) render(b *binder) string {
	return p.column + " = " + b.bind(p.value)
}

// Eq matches records whose column equals value.
func Eq(column string, value any) Predicate {
	return eq{column: column, value: value}
}

type contains struct {
	column string
	term   string
}

func (p contains) render(b *binder) string {
	return "COALESCE(" + p.column + ", '') ILIKE " + b.bind("%"+escapeLike(p.term)+"%")
}

// Contains matches records whose column contains term, ignoring case.
// NULL columns never match.
func Contains(column, term string) Predicate {
	return contains{column: column, term: term}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards so the term matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type conj []Predicate

func (c conj) render(b *binder) string {
	if len(c) == 0 {
		return "TRUE"
	}
	return "(" + c.renderFlat(b) + ")"
}

func (c conj) renderFlat(b *binder) string {
	if len(c) == 0 {
		return "TRUE"
	}
	parts := make([]string, len(c))
	for i, p := range c {
		parts[i] = p.render(b)
	}
	return strings.Join(parts, " AND ")
}

// And combines predicates with logical AND. Nil and True operands are
// dropped and nested conjunctions are flattened.
func And(ps ...Predicate) Predicate {
	var out conj
	for _, p := range ps {
		switch v := p.(type) {
		case nil:
		case constant:
			if !v {
				out = append(out, v)
			}
		case conj:
			out = append(out, v...)
		default:
			out = append(out, p)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

type disj []Predicate

func (d disj) render(b *binder) string {
	parts := make([]string, len(d))
	for i, p := range d {
		parts[i] = p.render(b)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// Or combines predicates with logical OR. An empty Or matches nothing.
func Or(ps ...Predicate) Predicate {
	switch len(ps) {
	case 0:
		return False
	case 1:
		return ps[0]
	}
	return disj(ps)
}

// Render returns the SQL text and positional arguments for p. A top-level
// conjunction is rendered without enclosing parentheses.
func Render(p Predicate) (string, []any) {
	b := &binder{}
	if p == nil {
		return "TRUE", nil
	}
	if c, ok := p.(conj); ok {
		return c.renderFlat(b), b.args
	}
	return p.render(b), b.args
}
