package types

import "fmt"

// NodeKind identifies the concrete variant of a Node.
//
// Expression kinds and relational kinds share one enumeration space.
// Relational kinds start at relationalBase so IsRelational can tell them
// apart without a second type.
type NodeKind int

const (
	KindConstant NodeKind = iota + 1
	KindBinary
	KindUnary
	KindMethodCall
	KindMemberAccess
	KindConditional
)

const relationalBase NodeKind = 1000

const (
	KindTable NodeKind = relationalBase + iota
	KindSelect
	KindJoin
	KindColumn
	KindNamedValue
	KindAggregate
	KindIsNull
	KindExists
	KindIn
	KindBetween
	KindScalar
)

var kindNames = map[NodeKind]string{
	KindConstant:     "Constant",
	KindBinary:       "Binary",
	KindUnary:        "Unary",
	KindMethodCall:   "MethodCall",
	KindMemberAccess: "MemberAccess",
	KindConditional:  "Conditional",
	KindTable:        "Table",
	KindSelect:       "Select",
	KindJoin:         "Join",
	KindColumn:       "Column",
	KindNamedValue:   "NamedValue",
	KindAggregate:    "Aggregate",
	KindIsNull:       "IsNull",
	KindExists:       "Exists",
	KindIn:           "In",
	KindBetween:      "Between",
	KindScalar:       "Scalar",
}

// String returns the kind name.
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// IsRelational reports whether the kind is one of the relational node kinds.
func (k NodeKind) IsRelational() bool {
	return k >= relationalBase
}

// Type is the declared value type of an expression.
type Type int

const (
	TypeUnknown Type = iota
	TypeBool
	TypeInt
	TypeInt64
	TypeFloat
	TypeDecimal
	TypeString
	TypeTime
	TypeUUID
	TypeBytes
)

var typeNames = [...]string{
	TypeUnknown: "unknown",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeFloat:   "float",
	TypeDecimal: "decimal",
	TypeString:  "string",
	TypeTime:    "time",
	TypeUUID:    "uuid",
	TypeBytes:   "bytes",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsNumeric reports whether values of the type are numbers.
func (t Type) IsNumeric() bool {
	switch t {
	case TypeInt, TypeInt64, TypeFloat, TypeDecimal:
		return true
	}
	return false
}

// Node is an element of the relational expression tree.
// The set of implementations is closed; the formatter switches over them
// exhaustively.
type Node interface {
	Kind() NodeKind
	Type() Type
	node()
}
