package relsql

import "github.com/zoobzio/relsql/internal/types"

func logical(op BinaryOp, first Node, rest []Node) Node {
	out := first
	for _, n := range rest {
		out = &types.Binary{Left: out, Right: n, Op: op, ValueType: types.TypeBool}
	}
	return out
}

// And combines predicates with AND, left to right.
func And(first Node, rest ...Node) Node { return logical(OpAnd, first, rest) }

// Or combines predicates with OR, left to right.
func Or(first Node, rest ...Node) Node { return logical(OpOr, first, rest) }

// Not negates a boolean expression.
func Not(x Node) *Unary {
	return &types.Unary{Operand: x, Op: types.OpNot, ValueType: types.TypeBool}
}

// IsNull tests x for NULL.
func IsNull(x Node) *IsNullExpr { return &types.IsNull{Expr: x} }

// NotNull tests x for a value.
func NotNull(x Node) *Unary { return Not(IsNull(x)) }

// Exists tests whether sel returns any row.
func Exists(sel *Select) *ExistsExpr { return &types.Exists{Select: sel} }

// In tests x against a list of values. An empty list is always false.
func In(x Node, values ...Node) *InExpr { return &types.In{Expr: x, Values: values} }

// InSelect tests x against the rows of a single-column select.
func InSelect(x Node, sel *Select) *InExpr { return &types.In{Expr: x, Select: sel} }

// Between tests lower <= x <= upper.
func Between(x, lower, upper Node) *BetweenExpr {
	return &types.Between{Expr: x, Lower: lower, Upper: upper}
}

// If returns ifTrue when test holds, otherwise ifFalse.
func If(test, ifTrue, ifFalse Node) *Conditional {
	return &types.Conditional{Test: test, IfTrue: ifTrue, IfFalse: ifFalse, ValueType: ifTrue.Type()}
}
