// Package sqlbuild assembles parameterized SQL fragments for the resource
// repositories: SET clauses for partial updates and conjunctive WHERE
// predicates for list filters.
//
// Every caller-influenced value is bound as a positional parameter ($1..$n),
// never concatenated into the statement text. Column names come from a fixed
// per-resource override table and are still quoted defensively.
package sqlbuild

import (
	"fmt"
	"strings"

	"joblist/api-service/internal/domain"
)

// Assignment pairs a domain field name with its new value. Callers build the
// slice in declared field order, so fragment order is deterministic and the
// bound-value list stays parallel to it.
type Assignment struct {
	Field string
	Value any
}

// ColumnFor translates a domain field name to its physical column name: the
// override entry when present, the input unchanged otherwise.
func ColumnFor(field string, overrides map[string]string) string {
	if col, ok := overrides[field]; ok {
		return col
	}
	return field
}

// quoteIdent wraps an identifier in double quotes, doubling any embedded
// quote characters.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// SetFragments turns a sparse update into an ordered fragment list plus the
// parallel bound values. Fragment i is `"<column>" = $<i+1>`; the caller
// appends the natural-key parameter as $<len+1> when building the full
// UPDATE statement.
//
// An empty assignment list is a validation error, checked before any
// placeholder is generated.
func SetFragments(assigns []Assignment, overrides map[string]string) ([]string, []any, error) {
	if len(assigns) == 0 {
		return nil, nil, &domain.ValidationError{Msg: "no data to update"}
	}

	fragments := make([]string, 0, len(assigns))
	values := make([]any, 0, len(assigns))
	for i, a := range assigns {
		col := ColumnFor(a.Field, overrides)
		fragments = append(fragments, fmt.Sprintf("%s = $%d", quoteIdent(col), i+1))
		values = append(values, a.Value)
	}
	return fragments, values, nil
}

// WhereBuilder accumulates AND-joined predicates with positional
// placeholders. The zero value is ready to use and compiles to an empty
// clause (match all).
type WhereBuilder struct {
	conds []string
	args  []any
}

// Compare appends `<column> <op> $n` binding value as the next parameter.
func (b *WhereBuilder) Compare(column, op string, value any) {
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf("%s %s $%d", column, op, len(b.args)))
}

// ContainsFold appends a case-insensitive substring predicate on column.
// The pattern itself is bound, so the needle never reaches the SQL text.
func (b *WhereBuilder) ContainsFold(column, needle string) {
	b.args = append(b.args, "%"+needle+"%")
	b.conds = append(b.conds, fmt.Sprintf("%s ILIKE $%d", column, len(b.args)))
}

// Clause returns the assembled ` WHERE a AND b` text, or "" when no
// predicate was added.
func (b *WhereBuilder) Clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args returns the bound values in placeholder order.
func (b *WhereBuilder) Args() []any {
	return b.args
}
