package keyset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Direction_Operator_And_SortOrder(t *testing.T) {
	tests := []struct {
		name      string
		in        Direction
		valid     bool
		operator  Operator
		sortOrder SortOrder
	}{
		{"backward maps to LT and desc", Backward, true, OperatorLT, SortOrderDESC},
		{"forward maps to GT and asc", Forward, true, OperatorGT, SortOrderASC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, tt.in.Valid())
			require.Equal(t, tt.operator, tt.in.Operator())
			require.Equal(t, tt.sortOrder, tt.in.SortOrder())

			// Operator and sort order always come as a matched pair.
			require.Equal(t, tt.sortOrder, tt.in.Operator().ForOrdering())
			require.Equal(t, tt.operator, tt.in.SortOrder().ForOperator())
		})
	}

	require.False(t, Direction(7).Valid())
	require.Equal(t, "Direction(7)", Direction(7).String())
	require.Equal(t, "backward", Backward.String())
}

func Test_SortOrder_Valid_And_ForOperator(t *testing.T) {
	tests := []struct {
		name     string
		in       SortOrder
		valid    bool
		operator Operator
		panicExp bool
	}{
		{"asc valid maps to GT", SortOrderASC, true, OperatorGT, false},
		{"desc valid maps to LT", SortOrderDESC, true, OperatorLT, false},
		{"uppercase is invalid", "ASC", false, "", true},
	}
	for _, tt := range tests {
		if got := tt.in.Valid(); got != tt.valid {
			t.Errorf("%s: Valid=%v want %v", tt.name, got, tt.valid)
		}
		if !tt.panicExp {
			if got := tt.in.ForOperator(); got != tt.operator {
				t.Errorf("%s: ForOperator=%v want %v", tt.name, got, tt.operator)
			}
		} else {
			require.Panics(t, func() { tt.in.ForOperator() }, tt.name)
		}
	}
}

func Test_Orderings_ToSQL(t *testing.T) {
	ord := Orderings{
		{Column: "a", SortOrder: SortOrderASC},
		{Column: "b", SortOrder: SortOrderDESC},
	}

	require.Equal(t, []string{"a asc", "b desc"}, ord.ToSQLSlice())
	require.Equal(t, "a asc, b desc", ord.ToSQL())
	require.Equal(t, "", Orderings{}.ToSQL())
}

func Test_ResolveColumns(t *testing.T) {
	mapping := ColumnMapping{
		"id":   "t.id",
		"name": "t.name",
	}

	tests := []struct {
		name string
		in   []ColumnAlias
		ok   bool
		want []string
	}{
		{"unknown alias", []ColumnAlias{"idx"}, false, nil},
		{"single alias", []ColumnAlias{"id"}, true, []string{"t.id"}},
		{"order is kept", []ColumnAlias{"name", " id "}, true, []string{"t.name", "t.id"}},
		{"empty list", nil, true, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveColumns(tt.in, mapping)
			if (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
				return
			}
			if tt.ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_ResolveColumns_SuggestsClosestAlias(t *testing.T) {
	_, err := ResolveColumns([]ColumnAlias{"nmae"}, ColumnMapping{"id": "id", "name": "name"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "closest: 'name'")
}

func Test_closestAlias(t *testing.T) {
	aliases := []ColumnAlias{"id", "name", "created_at"}
	tests := []struct {
		name string
		in   ColumnAlias
		out  ColumnAlias
	}{
		{"closest to id", "idx", "id"},
		{"closest to name", "nme", "name"},
		{"closest to created_at", "createdat", "created_at"},
		{"distance counts runes, not bytes", "nämé", "name"},
		{"single substitution", "ad", "id"},
		{"exact match", "name", "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := closestAlias(tt.in, aliases); got != tt.out {
				t.Errorf("%s: got %s want %s", tt.name, got, tt.out)
			}
		})
	}
}

func Test_Orderings_Validate(t *testing.T) {
	tests := []struct {
		name      string
		orderings Orderings
		wantErr   bool
	}{
		{"empty", nil, false},
		{"asc and desc", Orderings{{"a", SortOrderASC}, {"t.b", SortOrderDESC}}, false},
		{"unknown sort order", Orderings{{"a", SortOrder("up")}}, true},
		{"empty sort order", Orderings{{"a", ""}}, true},
		{"forbidden column symbols", Orderings{{"a)--", SortOrderASC}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.orderings.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
