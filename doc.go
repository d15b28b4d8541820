// Package keyset generates the SQL fragments of keyset (cursor-based)
// pagination.
//
// Overview
//
// A Paginator is configured once with a direction, a page size and up to five
// key columns, and then pushes three fragments into a QueryBuilder:
//   - PushWhereN: the cursor condition ((c1, c2) > ($1, $2)), or "true" on the
//     first page. N is the number of key columns, so the cursor arity is
//     checked by the compiler. PushCursorN does the same for a typed CursorN.
//   - PushOrderBy: ORDER BY c1 asc, c2 asc.
//   - PushLimit: LIMIT $3 with the page size bound.
//
// Example:
//
//	p := keyset.New(keyset.Backward, 100, "row_id")
//
//	b := keyset.NewBuilder("SELECT row_id, user_name FROM users WHERE true AND")
//	p.PushWhere1(b, &[1]any{11}) // ((row_id) < ($1))
//	p.PushOrderBy(b)             // ORDER BY row_id desc
//	p.PushLimit(b)               // LIMIT $2
//
//	rows, err := db.QueryContext(ctx, b.SQL(), b.Args()...)
//
// Key concepts
//   - Direction: Backward selects smaller keys sorted desc, Forward selects
//     bigger keys sorted asc.
//   - QueryBuilder: the caller-owned SQL accumulator. Builder is the default
//     implementation; Paginator.Apply adapts the fragments to gorm.
//   - RawPage: API payload decoded into a validated Paginator.
//
// The package never runs queries and never encodes cursors into tokens.
package keyset
