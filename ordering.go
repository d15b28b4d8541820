package keyset

import (
	"fmt"
	"math"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Direction defines where successive pages move relative to the cursor.
//
// When Backward: 7 6 5 4 3 => order desc, cursor < 7.
// When Forward:  3 4 5 6 7 => order asc,  cursor > 3.
type Direction uint8

const (
	// Backward selects rows towards which the key tuple becomes smaller.
	// E.g. if the key is (created_at, id), Backward scrolls to the past.
	Backward Direction = iota
	// Forward selects rows towards which the key tuple becomes bigger.
	Forward
)

func (d Direction) Valid() bool {
	return d == Backward || d == Forward
}

// Operator returns the comparison operator matching the direction.
func (d Direction) Operator() Operator {
	return lo.Ternary(d == Backward, OperatorLT, OperatorGT)
}

// SortOrder returns the sort order matching the direction.
func (d Direction) SortOrder() SortOrder {
	return lo.Ternary(d == Backward, SortOrderDESC, SortOrderASC)
}

func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// SortOrder defines the sort order of the requested dataset.
type SortOrder string

const (
	SortOrderASC  SortOrder = "asc"
	SortOrderDESC SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == SortOrderASC || o == SortOrderDESC
}

func (o SortOrder) ForOperator() Operator {
	switch o {
	case SortOrderASC:
		return OperatorGT
	case SortOrderDESC:
		return OperatorLT
	default:
		panic(fmt.Errorf("cannot map sort order '%s' to operator", o))
	}
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		SortOrder SortOrder
	}

	ColumnAlias = string

	// ColumnMapping maps external column aliases to fully qualified column names.
	// Use it when bare column names could cause an "ambiguous column name" error.
	// Key is an external alias, value is an internal column name.
	ColumnMapping = map[ColumnAlias]string
)

var _availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

// validateColumn guards against SQL injection by restricting allowed characters
// in column names.
func validateColumn(column string) error {
	if column == "" {
		return fmt.Errorf("empty column name")
	}

	if !lo.Every(_availableColumnNameSymbols, []rune(column)) {
		return fmt.Errorf("column name contains forbidden symbols '%s'", column)
	}

	return nil
}

// Validate checks every column name and sort order.
func (o Orderings) Validate() error {
	for _, ordering := range o {
		if err := validateColumn(ordering.Column); err != nil {
			return err
		}

		if !ordering.SortOrder.Valid() {
			return fmt.Errorf("invalid sort order '%s' for column '%s'", ordering.SortOrder, ordering.Column)
		}
	}

	return nil
}

// ToSQLSlice converts Orderings to a slice of strings in the form
// "<order_column> <sort_order>".
//
// Example: for Orderings: [{"a", "asc"}, {"b", "asc"}] returns ["a asc", "b asc"].
func (o Orderings) ToSQLSlice() []string {
	return lo.Map(o, func(ordering OrderBy, _ int) string {
		return fmt.Sprintf("%s %s", ordering.Column, ordering.SortOrder)
	})
}

// ToSQL converts Orderings to a single string
// "<order_column_1> <sort_order_1>, <order_column_2> <sort_order_2>".
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM table ORDER BY %s", orderings.ToSQL())
func (o Orderings) ToSQL() string {
	return strings.Join(o.ToSQLSlice(), ", ")
}

// ResolveColumns maps external column aliases to internal column names via
// ColumnMapping, keeping the alias order. Returns an error naming the closest
// known alias if an alias is not found in the mapping.
func ResolveColumns(aliases []ColumnAlias, columnMapping ColumnMapping) ([]string, error) {
	ret := make([]string, 0, len(aliases))
	known := lo.Keys(columnMapping)

	for _, alias := range aliases {
		alias = strings.TrimSpace(alias)

		column := columnMapping[alias]
		if column == "" {
			return nil, fmt.Errorf("invalid column alias '%s'. closest: '%s'", alias, closestAlias(alias, known))
		}

		ret = append(ret, column)
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, dataSet []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, dataSetAlias := range dataSet {
		dist := fuzzy.LevenshteinDistance(dataSetAlias, input)
		if dist < minDist || (dist == minDist && dataSetAlias < closest) {
			minDist = dist
			closest = dataSetAlias
		}
	}

	return closest
}
