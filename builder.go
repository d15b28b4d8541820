package keyset

import (
	"strconv"
	"strings"

	"gorm.io/gorm/clause"
)

// QueryBuilder accumulates SQL text and bound parameters. Paginator only ever
// appends to it.
type QueryBuilder interface {
	// Push appends raw SQL text. The text is trusted and written as-is.
	Push(sql string)
	// PushBind appends a placeholder and registers value as its parameter.
	PushBind(value any)
}

// Placeholder defines how bound parameters are rendered in the SQL text.
type Placeholder uint8

const (
	// PlaceholderDollar renders PostgreSQL ordinal placeholders: $1, $2, ...
	PlaceholderDollar Placeholder = iota
	// PlaceholderQuestion renders "?" placeholders. Use it when the fragment is
	// handed over to gorm, which numbers placeholders for the target dialect.
	PlaceholderQuestion
)

func (p Placeholder) render(ordinal int) string {
	if p == PlaceholderQuestion {
		return "?"
	}

	return "$" + strconv.Itoa(ordinal)
}

// Builder is the default QueryBuilder implementation.
//
// Usage:
//
//	b := NewBuilder("SELECT id, name FROM users WHERE deleted_at IS NULL AND")
//	p.PushWhere1(b, &[1]any{lastID})
//	p.PushOrderBy(b)
//	p.PushLimit(b)
//
//	rows, err := db.QueryContext(ctx, b.SQL(), b.Args()...)
//
// Builder is not safe for concurrent use.
type Builder struct {
	init        string
	sql         strings.Builder
	args        []any
	placeholder Placeholder
}

var _ QueryBuilder = (*Builder)(nil)

func NewBuilder(init string) *Builder {
	b := &Builder{init: init}
	b.sql.WriteString(init)

	return b
}

// WithPlaceholder sets the placeholder style. Call it before any PushBind.
func (b *Builder) WithPlaceholder(placeholder Placeholder) *Builder {
	if b == nil {
		b = new(Builder)
	}

	b.placeholder = placeholder

	return b
}

// Push - implements QueryBuilder.
func (b *Builder) Push(sql string) {
	b.sql.WriteString(sql)
}

// PushBind - implements QueryBuilder.
func (b *Builder) PushBind(value any) {
	b.args = append(b.args, value)
	b.sql.WriteString(b.placeholder.render(len(b.args)))
}

// Separated starts a separated append sequence on the builder.
func (b *Builder) Separated(sep string) *Separator {
	return Separated(b, sep)
}

// SQL returns the accumulated SQL text.
func (b *Builder) SQL() string {
	if b == nil {
		return ""
	}

	return b.sql.String()
}

// Args returns bound parameters in placeholder order.
func (b *Builder) Args() []any {
	if b == nil {
		return nil
	}

	return b.args
}

// Expr returns the accumulated text as a gorm expression. Leading and trailing
// whitespace is trimmed.
//
// IMPORTANT: gorm only understands "?" placeholders, so the builder must use
// PlaceholderQuestion.
func (b *Builder) Expr() clause.Expr {
	return clause.Expr{
		SQL:  strings.TrimSpace(b.SQL()),
		Vars: b.Args(),
	}
}

// Reset drops everything pushed after construction. The initial text and the
// placeholder style are kept.
func (b *Builder) Reset() {
	b.sql.Reset()
	b.sql.WriteString(b.init)
	b.args = nil
}

// Separator writes a separator between successive pushes, so callers do not
// have to track the first element themselves.
type Separator struct {
	builder QueryBuilder
	sep     string
	started bool
}

// Separated starts a separated append sequence on any QueryBuilder.
func Separated(b QueryBuilder, sep string) *Separator {
	return &Separator{
		builder: b,
		sep:     sep,
	}
}

// Push appends raw SQL text, preceded by the separator unless it is the first push.
func (s *Separator) Push(sql string) {
	s.separate()
	s.builder.Push(sql)
}

// PushBind appends a bound parameter, preceded by the separator unless it is
// the first push.
func (s *Separator) PushBind(value any) {
	s.separate()
	s.builder.PushBind(value)
}

// PushUnseparated appends raw SQL text without a separator. It does not count
// as a push for separation purposes.
func (s *Separator) PushUnseparated(sql string) {
	s.builder.Push(sql)
}

func (s *Separator) separate() {
	if s.started {
		s.builder.Push(s.sep)
	}

	s.started = true
}
