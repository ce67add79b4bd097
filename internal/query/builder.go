// Package query turns listing options and creation payloads into parameterized SQL.
//
// Values are always bound as positional parameters. The only text that is ever
// spliced into a statement comes from fixed allow-lists defined in this package.
package query

import (
	"strconv"
	"strings"
)

// Statement is a parameterized SQL statement ready to hand to the store.
type Statement struct {
	SQL  string
	Args []any
}

// Builder accumulates an ordered clause list and the positional parameters they bind.
type Builder struct {
	clauses []string
	args    []any
}

// NewBuilder starts a statement with the given leading clause.
func NewBuilder(head string) *Builder {
	return &Builder{clauses: []string{head}}
}

// Add appends a clause. Each '?' in text is replaced by the next positional
// parameter ($1, $2, ...) and bound to the matching value in args.
// text must be a fixed string; it panics if the placeholder count and args differ.
func (b *Builder) Add(text string, args ...any) *Builder {
	if n := strings.Count(text, "?"); n != len(args) {
		panic("query: clause " + strconv.Quote(text) + " has " + strconv.Itoa(n) +
			" placeholders but " + strconv.Itoa(len(args)) + " args")
	}
	if len(args) == 0 {
		b.clauses = append(b.clauses, text)
		return b
	}

	var sb strings.Builder
	sb.Grow(len(text) + 2*len(args))
	i := 0
	for _, r := range text {
		if r != '?' {
			sb.WriteRune(r)
			continue
		}
		b.args = append(b.args, args[i])
		i++
		sb.WriteByte('$')
		sb.WriteString(strconv.Itoa(len(b.args)))
	}
	b.clauses = append(b.clauses, sb.String())
	return b
}

// Placeholders returns n comma-separated '?' markers for use with Add.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// Build renders the statement.
func (b *Builder) Build() Statement {
	args := make([]any, len(b.args))
	copy(args, b.args)
	return Statement{SQL: strings.Join(b.clauses, " "), Args: args}
}
