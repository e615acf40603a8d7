package relsql

import "github.com/zoobzio/relsql/internal/types"

// Count creates a COUNT(*) aggregate.
func Count() *Aggregate {
	return &types.Aggregate{Func: AggCount, ValueType: types.TypeInt}
}

// CountOf creates a COUNT aggregate over x.
func CountOf(x Node) *Aggregate {
	return &types.Aggregate{Func: AggCount, Arg: x, ValueType: types.TypeInt}
}

// CountDistinct creates a COUNT(DISTINCT x) aggregate.
func CountDistinct(x Node) *Aggregate {
	return &types.Aggregate{Func: AggCount, Arg: x, Distinct: true, ValueType: types.TypeInt}
}

// LongCount creates a 64-bit COUNT(*) aggregate.
func LongCount() *Aggregate {
	return &types.Aggregate{Func: AggLongCount, ValueType: types.TypeInt64}
}

// Sum creates a SUM aggregate.
func Sum(x Node) *Aggregate { return &types.Aggregate{Func: AggSum, Arg: x, ValueType: x.Type()} }

// Avg creates an AVG aggregate.
func Avg(x Node) *Aggregate {
	t := x.Type()
	if t != types.TypeDecimal {
		t = types.TypeFloat
	}
	return &types.Aggregate{Func: AggAvg, Arg: x, ValueType: t}
}

// Min creates a MIN aggregate.
func Min(x Node) *Aggregate { return &types.Aggregate{Func: AggMin, Arg: x, ValueType: x.Type()} }

// Max creates a MAX aggregate.
func Max(x Node) *Aggregate { return &types.Aggregate{Func: AggMax, Arg: x, ValueType: x.Type()} }

// Call creates an instance method call on object.
func Call(object Node, owner Owner, name string, args ...Node) *MethodCall {
	m := types.Method{Owner: owner, Name: name}
	return &types.MethodCall{Object: object, Method: m, Args: args, ValueType: types.MethodResultType(m, object, args)}
}

// Static creates a static method call.
func Static(owner Owner, name string, args ...Node) *MethodCall {
	return Call(nil, owner, name, args...)
}

// Prop creates an instance member access on object.
func Prop(object Node, owner Owner, name string) *MemberAccess {
	m := types.Member{Owner: owner, Name: name}
	return &types.MemberAccess{Object: object, Member: m, ValueType: types.MemberResultType(m)}
}

// StaticProp creates a static member access such as time.Now.
func StaticProp(owner Owner, name string) *MemberAccess {
	m := types.Member{Owner: owner, Name: name}
	t := types.MemberResultType(m)
	if owner == OwnerTime && name == "Now" {
		t = types.TypeTime
	}
	return &types.MemberAccess{Member: m, ValueType: t}
}

// Contains matches strings containing term.
func Contains(x, term Node) *MethodCall { return Call(x, OwnerString, "Contains", term) }

// StartsWith matches strings beginning with term.
func StartsWith(x, term Node) *MethodCall { return Call(x, OwnerString, "StartsWith", term) }

// EndsWith matches strings ending with term.
func EndsWith(x, term Node) *MethodCall { return Call(x, OwnerString, "EndsWith", term) }

// Like matches x against a LIKE pattern.
func Like(x, pattern Node) *MethodCall { return Static(OwnerPattern, "Wildcard", x, pattern) }

// Length returns the character length of a string.
func Length(x Node) *MemberAccess { return Prop(x, OwnerString, "Length") }

// ScalarOf uses a single-value select as an expression.
func ScalarOf(sel *Select, typ Type) *ScalarExpr {
	return &types.Scalar{Select: sel, ValueType: typ}
}
