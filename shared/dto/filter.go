package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is a single predicate on a column. ArgName defaults to Field and must be set
// when the same column appears twice in one query.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f Filter) arg() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause renders the predicate with named placeholders. An unknown operator
// renders nothing.
func (f Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	name := f.arg()

	if symbol, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", f.column(), symbol, name), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[name] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", f.column(), name), args
	case FilterOperatorIn:
		values := reflect.ValueOf(f.Value)
		if values.Kind() != reflect.Slice && values.Kind() != reflect.Array {
			return "", args
		}

		placeholders := make([]string, values.Len())

		for idx := range values.Len() {
			key := fmt.Sprintf("%s_%d", name, idx)
			args[key] = values.Index(idx).Interface()
			placeholders[idx] = ":" + key
		}

		return fmt.Sprintf("%s IN (%s)", f.column(), strings.Join(placeholders, ", ")), args
	}

	return "", args
}

// FilterGroup joins Filter and nested FilterGroup values with Operator, AND when unset.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func And(filters ...any) FilterGroup {
	return FilterGroup{Operator: FilterGroupOperatorAnd, Filters: filters}
}

func Or(filters ...any) FilterGroup {
	return FilterGroup{Operator: FilterGroupOperatorOr, Filters: filters}
}

// Add appends a filter and returns the group for chaining.
func (f *FilterGroup) Add(filter any) *FilterGroup {
	f.Filters = append(f.Filters, filter)

	return f
}

func (f *FilterGroup) IsEmpty() bool {
	return len(f.Filters) == 0
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch typed := filter.(type) {
		case Filter:
			where, arg = typed.GetWhereClause()
		case FilterGroup:
			where, arg = typed.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}
