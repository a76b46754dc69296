package query

import "strings"

// resolveOrder maps sortBy/sortOrder onto the entity's allow-list. Unknown
// keys fall back to the entity default; any direction other than "asc"
// sorts descending.
func resolveOrder(e *Entity, sortBy, sortOrder string) []Order {
	key, ok := e.Sorts[strings.TrimSpace(sortBy)]
	if !ok {
		return e.Default
	}
	return []Order{{Key: key, Desc: !strings.EqualFold(strings.TrimSpace(sortOrder), "asc")}}
}

// renderOrder joins the terms and appends the tie-break so that rows with
// equal sort keys always come back in the same order.
func renderOrder(order []Order, tie SortKey) string {
	terms := make([]string, 0, len(order)+1)
	for _, o := range order {
		terms = append(terms, renderTerm(o))
	}
	if n := len(order); n == 0 || order[n-1].Key.Column != tie.Column {
		terms = append(terms, renderTerm(Order{Key: tie}))
	}
	return strings.Join(terms, ", ")
}

func renderTerm(o Order) string {
	term := o.Key.Column
	if o.Desc {
		term += " DESC"
	} else {
		term += " ASC"
	}
	if o.Key.NullsLast {
		term += " NULLS LAST"
	}
	return term
}
