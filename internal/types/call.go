package types

// Owner identifies the family a member or method belongs to.
type Owner string

const (
	OwnerString  Owner = "string"
	OwnerTime    Owner = "time"
	OwnerDecimal Owner = "decimal"
	OwnerMath    Owner = "math"
	OwnerPattern Owner = "pattern"
	OwnerObject  Owner = "object"
)

// Method identifies a method by owner and name.
type Method struct {
	Owner Owner
	Name  string
}

func (m Method) String() string { return string(m.Owner) + "." + m.Name }

// Member identifies a property by owner and name.
type Member struct {
	Owner Owner
	Name  string
}

func (m Member) String() string { return string(m.Owner) + "." + m.Name }

// MethodCall invokes a method. Object is nil for static methods.
type MethodCall struct {
	Object    Node
	Method    Method
	Args      []Node
	ValueType Type
}

func (*MethodCall) Kind() NodeKind { return KindMethodCall }
func (m *MethodCall) Type() Type   { return m.ValueType }
func (*MethodCall) node()          {}

// IsStatic reports whether the call has no receiver.
func (m *MethodCall) IsStatic() bool { return m.Object == nil }

// MemberAccess reads a property of Object.
type MemberAccess struct {
	Object    Node
	Member    Member
	ValueType Type
}

func (*MemberAccess) Kind() NodeKind { return KindMemberAccess }
func (m *MemberAccess) Type() Type   { return m.ValueType }
func (*MemberAccess) node()          {}

var boolMethods = map[string]bool{
	"StartsWith":    true,
	"EndsWith":      true,
	"Contains":      true,
	"IsNullOrEmpty": true,
	"Equals":        true,
	"Wildcard":      true,
}

var intMethods = map[Method]bool{
	{OwnerString, "IndexOf"}: true,
	{OwnerMath, "Sign"}:      true,
}

// MethodResultType infers the result type of a call from its shape.
func MethodResultType(m Method, object Node, args []Node) Type {
	switch {
	case boolMethods[m.Name]:
		return TypeBool
	case intMethods[m]:
		return TypeInt
	case m.Name == "ToString":
		return TypeString
	case m.Owner == OwnerString:
		return TypeString
	case m.Owner == OwnerTime && m.Name == "Subtract":
		return TypeFloat
	}
	if object != nil {
		return object.Type()
	}
	if len(args) > 0 {
		return args[0].Type()
	}
	return TypeUnknown
}

// MemberResultType infers the result type of a member access.
func MemberResultType(m Member) Type {
	switch m.Owner {
	case OwnerString, OwnerTime:
		return TypeInt
	}
	return TypeUnknown
}
