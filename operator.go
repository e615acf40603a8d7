package relsql

import "github.com/zoobzio/relsql/internal/types"

func compare(op BinaryOp, left, right Node) *Binary {
	return &types.Binary{Left: left, Right: right, Op: op, ValueType: types.TypeBool}
}

// Eq returns left = right. Comparing with Null() renders IS NULL.
func Eq(left, right Node) *Binary { return compare(OpEq, left, right) }

// Ne returns left <> right.
func Ne(left, right Node) *Binary { return compare(OpNe, left, right) }

// Lt returns left < right.
func Lt(left, right Node) *Binary { return compare(OpLt, left, right) }

// Le returns left <= right.
func Le(left, right Node) *Binary { return compare(OpLe, left, right) }

// Gt returns left > right.
func Gt(left, right Node) *Binary { return compare(OpGt, left, right) }

// Ge returns left >= right.
func Ge(left, right Node) *Binary { return compare(OpGe, left, right) }

func arithmetic(op BinaryOp, left, right Node) *Binary {
	return &types.Binary{Left: left, Right: right, Op: op, ValueType: arithmeticType(op, left.Type(), right.Type())}
}

// arithmeticType widens numeric operands; Add over strings concatenates.
func arithmeticType(op BinaryOp, l, r Type) Type {
	switch {
	case op == OpAdd && (l == types.TypeString || r == types.TypeString):
		return types.TypeString
	case l == types.TypeDecimal || r == types.TypeDecimal:
		return types.TypeDecimal
	case l == types.TypeFloat || r == types.TypeFloat:
		return types.TypeFloat
	case l == types.TypeInt64 || r == types.TypeInt64:
		return types.TypeInt64
	case l == types.TypeUnknown:
		return r
	}
	return l
}

// Add returns left + right, or string concatenation for strings.
func Add(left, right Node) *Binary { return arithmetic(OpAdd, left, right) }

// Sub returns left - right.
func Sub(left, right Node) *Binary { return arithmetic(OpSub, left, right) }

// Mul returns left * right.
func Mul(left, right Node) *Binary { return arithmetic(OpMul, left, right) }

// Div returns left / right.
func Div(left, right Node) *Binary { return arithmetic(OpDiv, left, right) }

// Mod returns the remainder of left / right.
func Mod(left, right Node) *Binary { return arithmetic(OpMod, left, right) }

// Coalesce returns left when it is not NULL, otherwise right.
func Coalesce(left, right Node) *Binary {
	t := left.Type()
	if t == types.TypeUnknown {
		t = right.Type()
	}
	return &types.Binary{Left: left, Right: right, Op: OpCoalesce, ValueType: t}
}

// Neg returns -x.
func Neg(x Node) *Unary {
	return &types.Unary{Operand: x, Op: types.OpNegate, ValueType: x.Type()}
}
