package keyset

import (
	"fmt"

	"github.com/samber/lo"
)

// RawPage is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPage `json:",inline"`
//	}
//
// The cursor values are not part of RawPage: the caller passes them to
// PushWhereN already typed.
type RawPage struct {
	// Limit - maximum number of records to return in the response.
	Limit int `json:"limit"`
	// Backward - scroll towards smaller keys. Forward by default.
	Backward bool `json:"backward"`
	// Columns - key column aliases, resolved through ColumnMapping.
	Columns []ColumnAlias `json:"columns"`
}

// Decode converts RawPage into a Paginator, resolving column aliases and
// normalizing Limit. The returned Paginator has passed Paginator.Validate.
func (p RawPage) Decode(columnMapping ColumnMapping) (Paginator, error) {
	columns, err := ResolveColumns(p.Columns, columnMapping)
	if err != nil {
		return Paginator{}, fmt.Errorf("cannot decode page: %w", err)
	}

	direction := lo.Ternary(p.Backward, Backward, Forward)
	paginator := New(direction, NormalizeLimit(p.Limit), columns...)

	if err = paginator.Validate(); err != nil {
		return Paginator{}, fmt.Errorf("cannot decode page: %w", err)
	}

	return paginator, nil
}
