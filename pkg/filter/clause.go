package filter

import (
	"fmt"
	"strings"
)

// Field names of the catalog's package entity.
const (
	FieldID                = "Id"
	FieldTags              = "Tags"
	FieldNormalizedVersion = "NormalizedVersion"
	FieldIsPrerelease      = "IsPrerelease"
)

// Clause is a single $filter predicate fragment. The zero value is the empty
// clause, which means "no constraint" and is dropped by [And].
type Clause string

// IsEmpty reports whether c carries no predicate.
func (c Clause) IsEmpty() bool { return strings.TrimSpace(string(c)) == "" }

// String returns the clause text.
func (c Clause) String() string { return string(c) }

// And joins the non-empty clauses with the OData "and" operator, preserving
// their order. It returns the empty clause when nothing remains.
func And(clauses ...Clause) Clause {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if !c.IsEmpty() {
			parts = append(parts, string(c))
		}
	}
	return Clause(strings.Join(parts, " and "))
}

// Literal quotes s as an OData string literal, doubling embedded quotes.
func Literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Eq returns "field eq 'value'".
func Eq(field, value string) Clause {
	return Clause(fmt.Sprintf("%s eq %s", field, Literal(value)))
}

// Compare returns "field op 'value'" for one of the comparators ge, gt, le, lt, eq.
func Compare(field string, op Operator, value string) Clause {
	return Clause(fmt.Sprintf("%s %s %s", field, op, Literal(value)))
}

// StartsWith returns "startswith(field, 'prefix')".
func StartsWith(field, prefix string) Clause {
	return Clause(fmt.Sprintf("startswith(%s, %s)", field, Literal(prefix)))
}

// EndsWith returns "endswith(field, 'suffix')".
func EndsWith(field, suffix string) Clause {
	return Clause(fmt.Sprintf("endswith(%s, %s)", field, Literal(suffix)))
}

// SubstringOf returns "substringof('text', field)".
func SubstringOf(text, field string) Clause {
	return Clause(fmt.Sprintf("substringof(%s, %s)", Literal(text), field))
}

// HasTag returns "substringof('tag', Tags) eq true", the quoted form used to
// AND several tag requirements together.
func HasTag(tag string) Clause {
	return Clause(fmt.Sprintf("%s eq true", SubstringOf(tag, FieldTags)))
}

// Operator is an OData comparison operator.
type Operator string

// Comparison operators used against NormalizedVersion.
const (
	OpEq Operator = "eq"
	OpGe Operator = "ge"
	OpGt Operator = "gt"
	OpLe Operator = "le"
	OpLt Operator = "lt"
)
