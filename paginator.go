package keyset

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// MaxColumns is the maximum number of key columns a Paginator supports.
const MaxColumns = 5

// Comparison defines how the cursor condition is written.
type Comparison uint8

const (
	// ComparisonRow writes a row value comparison: ((c1, c2) > ($1, $2)).
	ComparisonRow Comparison = iota
	// ComparisonExpanded writes the equivalent lexicographic disjunction:
	// ((c1 > $1) OR (c1 = $2 AND c2 > $3)).
	// Use it for engines without native row value comparison.
	ComparisonExpanded
)

// Paginator emits keyset pagination fragments: the cursor condition, the
// ORDER BY clause and the LIMIT clause.
//
// Paginator is immutable and holds no connection, so a single value may be
// shared between goroutines as long as each of them pushes into its own
// QueryBuilder.
//
// IMPORTANT:
//   - The joint of the key columns MUST uniquely identify a row, otherwise rows
//     get skipped or duplicated between pages.
//   - Cursor values MUST follow the order of the key columns.
//   - Column names are written as-is, as trusted SQL. Never pass user input as a
//     column name; resolve it with ResolveColumns or check it with Validate.
type Paginator struct {
	columns    []string
	direction  Direction
	pageSize   uint32
	comparison Comparison
}

// New creates a Paginator.
//
// direction controls where pages move. With key columns (created_at, id),
// scrolling to the past is Backward and rows come sorted desc; scrolling to
// the future is Forward and rows come sorted asc.
//
// pageSize is the number of rows requested per page.
//
// columns are the key columns, up to MaxColumns. Their joint must uniquely
// identify a row.
func New(direction Direction, pageSize uint32, columns ...string) Paginator {
	return Paginator{
		columns:   slices.Clone(columns),
		direction: direction,
		pageSize:  pageSize,
	}
}

// WithExpandedComparison returns a copy of the Paginator that writes the cursor
// condition as a lexicographic disjunction instead of a row value comparison.
func (p Paginator) WithExpandedComparison() Paginator {
	p.comparison = ComparisonExpanded

	return p
}

// Columns returns a copy of the key columns.
func (p Paginator) Columns() []string {
	return slices.Clone(p.columns)
}

func (p Paginator) Direction() Direction {
	return p.direction
}

func (p Paginator) PageSize() uint32 {
	return p.pageSize
}

func (p Paginator) Comparison() Comparison {
	return p.comparison
}

// Orderings returns the key columns paired with the sort order of the direction.
func (p Paginator) Orderings() Orderings {
	sortOrder := p.direction.SortOrder()

	return lo.Map(p.columns, func(column string, _ int) OrderBy {
		return OrderBy{Column: column, SortOrder: sortOrder}
	})
}

// IsLastPage returns true if a page with the given number of rows is the last
// one in the dataset, i.e. fewer rows than the page size came back.
func (p Paginator) IsLastPage(rows int) bool {
	return rows < int(p.pageSize)
}

// PushWhere1 pushes the cursor condition for one key column.
//
// Roughly, PushWhereN pushes and binds
//
//	((col_1, col_2, ..., col_N) op ($_, $_, ..., $_))
//
// where op is chosen according to the direction. A nil cursor means the first
// page and pushes "true", so the fragment can always follow "WHERE ... AND".
//
// Values are bound via QueryBuilder.PushBind, so the fragment is as secure as
// the QueryBuilder.
//
// PushWhereN panics if the cursor is not nil and N differs from the number of
// key columns. For cursors with typed elements see PushCursor1.
func (p Paginator) PushWhere1(b QueryBuilder, cursor *[1]any) {
	if cursor == nil {
		p.pushWhere(b, nil)
		return
	}

	p.pushWhere(b, cursor[:])
}

// PushWhere2 pushes the cursor condition for two key columns. See PushWhere1.
func (p Paginator) PushWhere2(b QueryBuilder, cursor *[2]any) {
	if cursor == nil {
		p.pushWhere(b, nil)
		return
	}

	p.pushWhere(b, cursor[:])
}

// PushWhere3 pushes the cursor condition for three key columns. See PushWhere1.
func (p Paginator) PushWhere3(b QueryBuilder, cursor *[3]any) {
	if cursor == nil {
		p.pushWhere(b, nil)
		return
	}

	p.pushWhere(b, cursor[:])
}

// PushWhere4 pushes the cursor condition for four key columns. See PushWhere1.
func (p Paginator) PushWhere4(b QueryBuilder, cursor *[4]any) {
	if cursor == nil {
		p.pushWhere(b, nil)
		return
	}

	p.pushWhere(b, cursor[:])
}

// PushWhere5 pushes the cursor condition for five key columns. See PushWhere1.
func (p Paginator) PushWhere5(b QueryBuilder, cursor *[5]any) {
	if cursor == nil {
		p.pushWhere(b, nil)
		return
	}

	p.pushWhere(b, cursor[:])
}

type keyValue struct {
	column string
	value  any
}

func (p Paginator) pushWhere(b QueryBuilder, cursor []any) {
	b.Push(" ")

	if cursor == nil {
		b.Push("true")
		return
	}

	if len(cursor) != len(p.columns) {
		panic(fmt.Errorf("cursor has %d values, but there are %d key columns", len(cursor), len(p.columns)))
	}

	keys := make([]keyValue, 0, len(cursor))
	for i, value := range cursor {
		keys = append(keys, keyValue{column: p.columns[i], value: value})
	}

	if p.comparison == ComparisonExpanded {
		expandRowComparison(keys, p.direction.Operator()).push(b)
		return
	}

	pushRowComparison(b, keys, p.direction.Operator())
}

// pushRowComparison pushes ((c1, c2, ...) op ($_, $_, ...)).
func pushRowComparison(b QueryBuilder, keys []keyValue, op Operator) {
	b.Push("(")

	// (col1, col2, ...)
	b.Push("(")
	sep := Separated(b, ", ")
	for _, key := range keys {
		sep.Push(key.column)
	}
	b.Push(")")

	b.Push(" ")
	b.Push(string(op))
	b.Push(" ")

	// ($_, $_, ...)
	b.Push("(")
	sep = Separated(b, ", ")
	for _, key := range keys {
		sep.PushBind(key.value)
	}
	b.Push(")")

	b.Push(")")
}

// PushOrderBy pushes the order by clause "ORDER BY col_1 asc|desc, ...".
// Every column shares the sort order of the direction.
func (p Paginator) PushOrderBy(b QueryBuilder) {
	b.Push(" ")
	b.Push("ORDER BY")
	b.Push(" ")

	sortOrder := string(p.direction.SortOrder())

	sep := Separated(b, ", ")
	for _, column := range p.columns {
		sep.Push(column)
		sep.PushUnseparated(" ")
		sep.PushUnseparated(sortOrder)
	}
}

// PushLimit pushes the limit clause "LIMIT $_" with the page size bound.
func (p Paginator) PushLimit(b QueryBuilder) {
	b.Push(" ")
	b.Push("LIMIT")
	b.Push(" ")
	b.PushBind(int64(p.pageSize))
}

// Apply applies the cursor condition, the ordering and the limit to a gorm query.
//
// where pushes the cursor condition, typically by calling one of the PushWhereN
// methods. A nil where means the first page.
//
// Usage:
//
//	db = p.Apply(db.Model(&User{}), func(b keyset.QueryBuilder) {
//		p.PushWhere2(b, &[2]any{last.CreatedAt, last.ID})
//	})
func (p Paginator) Apply(db *gorm.DB, where func(QueryBuilder)) *gorm.DB {
	cond := NewBuilder("").WithPlaceholder(PlaceholderQuestion)
	if where != nil {
		where(cond)
	} else {
		p.pushWhere(cond, nil)
	}

	return db.
		Clauses(cond.Expr()).
		Order(p.Orderings().ToSQL()).
		Limit(int(p.pageSize))
}

// Validate checks the Paginator configuration. It is never called implicitly:
// emitting fragments does not fail.
func (p Paginator) Validate() error {
	if len(p.columns) == 0 {
		return fmt.Errorf("empty key column list")
	}

	if len(p.columns) > MaxColumns {
		return fmt.Errorf("too many key columns: %d, at most %d are supported", len(p.columns), MaxColumns)
	}

	if duplicates := lo.FindDuplicates(p.columns); len(duplicates) > 0 {
		return fmt.Errorf("duplicate key column '%s'", duplicates[0])
	}

	if !p.direction.Valid() {
		return fmt.Errorf("invalid direction '%s'", p.direction)
	}

	if err := validatePairing(p.direction.Operator(), p.direction.SortOrder()); err != nil {
		return fmt.Errorf("direction '%s': %w", p.direction, err)
	}

	if err := p.Orderings().Validate(); err != nil {
		return err
	}

	if p.pageSize == 0 {
		return fmt.Errorf("page size must be positive")
	}

	return nil
}

// validatePairing checks that op and sortOrder walk the key space the same way.
// A mismatch makes every page after the first skip or repeat rows.
func validatePairing(op Operator, sortOrder SortOrder) error {
	if !op.Valid() {
		return fmt.Errorf("invalid operator '%s'", op)
	}

	if !sortOrder.Valid() {
		return fmt.Errorf("invalid sort order '%s'", sortOrder)
	}

	if op.ForOrdering() != sortOrder || sortOrder.ForOperator() != op {
		return fmt.Errorf("operator '%s' does not match sort order '%s'", op, sortOrder)
	}

	return nil
}
