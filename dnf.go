package keyset

import (
	"github.com/samber/lo"
)

type (
	tConjunct struct {
		Column   string
		Value    any
		Operator Operator
	}

	tDisjunct []tConjunct

	// tDNF represents the disjunctive normal form (DNF) of a logical expression.
	// Each disjunct is joined by OR, and each disjunct consists of a list of
	// conjuncts which are joined by AND. A conjunct is the value of
	// Operator(Column, Value).
	//
	// Thus:
	//
	//	DNF = X1 OR X2 ... OR Xn, where Xi = Ai1 AND Ai2 ... AND Aim.
	//	DNF = (A11 AND A12 AND A13) OR (A21 AND A22 AND A23), for n=2, m=3.
	//
	//  Where (A11 AND A12 AND A13), (A21 AND A22 AND A23) are disjuncts and
	//  A11, A12, A13, A21, A22, A23 are conjuncts.
	tDNF []tDisjunct
)

// expandRowComparison converts the row comparison
//
//	(C1, C2, ... Cn) O (V1, V2, ... Vn)
//
// into the equivalent lexicographic DNF:
//
//	(C1 O V1) or (C1 = V1 and C2 O V2) or ... or (C1 = V1 and ... and Cn O Vn)
func expandRowComparison(keys []keyValue, op Operator) tDNF {
	dnf := make(tDNF, 0, len(keys))
	for i := range keys {
		previousWithEqualityCondition := lo.Map(keys[:i], func(item keyValue, _ int) tConjunct {
			return tConjunct{Column: item.column, Value: item.value, Operator: operatorEq}
		})

		disjunct := make(tDisjunct, 0, len(previousWithEqualityCondition)+1)
		disjunct = append(disjunct, previousWithEqualityCondition...)
		disjunct = append(disjunct, tConjunct{Column: keys[i].column, Value: keys[i].value, Operator: op})

		dnf = append(dnf, disjunct)
	}

	return dnf
}

// push writes a conjunct of the form Operator(Column, Value) as
// "Column Operator <placeholder>", binding Value.
//
// Example:
//
//	tConjunct = { Column: "id", Operator: ">", Value: 123}
//
// Result:
//
//	"id > $1" with [123]
func (c tConjunct) push(b QueryBuilder) {
	b.Push(c.Column)
	b.Push(" ")
	b.Push(string(c.Operator))
	b.Push(" ")
	b.PushBind(c.Value)
}

// push writes a disjunct (K1, K2, K3) as "(K1 AND K2 AND K3)".
func (d tDisjunct) push(b QueryBuilder) {
	b.Push("(")
	sep := Separated(b, " AND ")
	for _, conjunct := range d {
		sep.separate()
		conjunct.push(b)
	}
	b.Push(")")
}

// push writes a DNF as "(D1 OR D2 ... OR Dn)" where each Di is written via
// tDisjunct.push. An empty DNF is written as "true".
//
// Example:
//
//	tDNF = {
//		{{Column: "id", Operator: "<", Value: 10}},
//		{{Column: "id", Operator: "=", Value: 10}, {Column: "name", Operator: "<", Value: "abc"}},
//	}
//
// Result:
//
//	"((id < $1) OR (id = $2 AND name < $3))" with [10, 10, "abc"]
func (d tDNF) push(b QueryBuilder) {
	if len(d) == 0 {
		b.Push("true")
		return
	}

	b.Push("(")
	sep := Separated(b, " OR ")
	for _, disjunct := range d {
		sep.separate()
		disjunct.push(b)
	}
	b.Push(")")
}
