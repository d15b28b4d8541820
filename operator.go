package keyset

import "fmt"

// Operator is the comparison written between the key columns and the cursor.
type Operator string

const (
	// OperatorGT selects keys after the cursor. Pairs with SortOrderASC.
	OperatorGT Operator = ">"
	// OperatorLT selects keys before the cursor. Pairs with SortOrderDESC.
	OperatorLT Operator = "<"

	// operatorEq only appears in the equality prefixes of the expanded comparison.
	operatorEq Operator = "="
)

// Valid reports whether the operator may compare keys against a cursor.
func (o Operator) Valid() bool {
	return o == OperatorLT || o == OperatorGT
}

// ForOrdering returns the sort order that lists rows in the order the operator
// walks them. Panics on an operator that is not Valid.
func (o Operator) ForOrdering() SortOrder {
	switch o {
	case OperatorGT:
		return SortOrderASC
	case OperatorLT:
		return SortOrderDESC
	default:
		panic(fmt.Errorf("operator '%s' has no sort order", o))
	}
}
