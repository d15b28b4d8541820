package keyset

// Cursor1 .. Cursor5 are cursors whose elements keep their static types. K1 is
// the value of the first key column, K2 of the second and so on. A nil cursor
// means the first page.
//
// Usage:
//
//	var cursor *keyset.Cursor2[time.Time, int64]
//	if last != nil {
//		cursor = keyset.NewCursor2(last.CreatedAt, last.ID)
//	}
//	keyset.PushCursor2(p, b, cursor)
type Cursor1[T1 any] struct {
	K1 T1
}

type Cursor2[T1, T2 any] struct {
	K1 T1
	K2 T2
}

type Cursor3[T1, T2, T3 any] struct {
	K1 T1
	K2 T2
	K3 T3
}

type Cursor4[T1, T2, T3, T4 any] struct {
	K1 T1
	K2 T2
	K3 T3
	K4 T4
}

type Cursor5[T1, T2, T3, T4, T5 any] struct {
	K1 T1
	K2 T2
	K3 T3
	K4 T4
	K5 T5
}

func NewCursor1[T1 any](k1 T1) *Cursor1[T1] {
	return &Cursor1[T1]{K1: k1}
}

func NewCursor2[T1, T2 any](k1 T1, k2 T2) *Cursor2[T1, T2] {
	return &Cursor2[T1, T2]{K1: k1, K2: k2}
}

func NewCursor3[T1, T2, T3 any](k1 T1, k2 T2, k3 T3) *Cursor3[T1, T2, T3] {
	return &Cursor3[T1, T2, T3]{K1: k1, K2: k2, K3: k3}
}

func NewCursor4[T1, T2, T3, T4 any](k1 T1, k2 T2, k3 T3, k4 T4) *Cursor4[T1, T2, T3, T4] {
	return &Cursor4[T1, T2, T3, T4]{K1: k1, K2: k2, K3: k3, K4: k4}
}

func NewCursor5[T1, T2, T3, T4, T5 any](k1 T1, k2 T2, k3 T3, k4 T4, k5 T5) *Cursor5[T1, T2, T3, T4, T5] {
	return &Cursor5[T1, T2, T3, T4, T5]{K1: k1, K2: k2, K3: k3, K4: k4, K5: k5}
}

func (c *Cursor1[T1]) array() *[1]any {
	if c == nil {
		return nil
	}

	return &[1]any{c.K1}
}

func (c *Cursor2[T1, T2]) array() *[2]any {
	if c == nil {
		return nil
	}

	return &[2]any{c.K1, c.K2}
}

func (c *Cursor3[T1, T2, T3]) array() *[3]any {
	if c == nil {
		return nil
	}

	return &[3]any{c.K1, c.K2, c.K3}
}

func (c *Cursor4[T1, T2, T3, T4]) array() *[4]any {
	if c == nil {
		return nil
	}

	return &[4]any{c.K1, c.K2, c.K3, c.K4}
}

func (c *Cursor5[T1, T2, T3, T4, T5]) array() *[5]any {
	if c == nil {
		return nil
	}

	return &[5]any{c.K1, c.K2, c.K3, c.K4, c.K5}
}

// PushCursor1 is Paginator.PushWhere1 for a typed cursor.
func PushCursor1[T1 any](p Paginator, b QueryBuilder, cursor *Cursor1[T1]) {
	p.PushWhere1(b, cursor.array())
}

// PushCursor2 is Paginator.PushWhere2 for a typed cursor.
func PushCursor2[T1, T2 any](p Paginator, b QueryBuilder, cursor *Cursor2[T1, T2]) {
	p.PushWhere2(b, cursor.array())
}

// PushCursor3 is Paginator.PushWhere3 for a typed cursor.
func PushCursor3[T1, T2, T3 any](p Paginator, b QueryBuilder, cursor *Cursor3[T1, T2, T3]) {
	p.PushWhere3(b, cursor.array())
}

// PushCursor4 is Paginator.PushWhere4 for a typed cursor.
func PushCursor4[T1, T2, T3, T4 any](p Paginator, b QueryBuilder, cursor *Cursor4[T1, T2, T3, T4]) {
	p.PushWhere4(b, cursor.array())
}

// PushCursor5 is Paginator.PushWhere5 for a typed cursor.
func PushCursor5[T1, T2, T3, T4, T5 any](p Paginator, b QueryBuilder, cursor *Cursor5[T1, T2, T3, T4, T5]) {
	p.PushWhere5(b, cursor.array())
}
