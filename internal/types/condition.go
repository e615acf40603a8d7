package types

// IsNull tests an expression for NULL.
type IsNull struct {
	Expr Node
}

func (*IsNull) Kind() NodeKind { return KindIsNull }
func (*IsNull) Type() Type     { return TypeBool }
func (*IsNull) node()          {}

// Exists tests whether a subquery yields rows.
type Exists struct {
	Select *Select
}

func (*Exists) Kind() NodeKind { return KindExists }
func (*Exists) Type() Type     { return TypeBool }
func (*Exists) node()          {}

// In tests membership in a subquery or a value list.
// Exactly one of Select and Values is used; Select wins when both are set.
type In struct {
	Expr   Node
	Select *Select
	Values []Node
}

func (*In) Kind() NodeKind { return KindIn }
func (*In) Type() Type     { return TypeBool }
func (*In) node()          {}

// Between tests Lower <= Expr <= Upper.
type Between struct {
	Expr  Node
	Lower Node
	Upper Node
}

func (*Between) Kind() NodeKind { return KindBetween }
func (*Between) Type() Type     { return TypeBool }
func (*Between) node()          {}

// Conditional yields IfTrue when Test holds and IfFalse otherwise.
type Conditional struct {
	Test      Node
	IfTrue    Node
	IfFalse   Node
	ValueType Type
}

func (*Conditional) Kind() NodeKind { return KindConditional }
func (c *Conditional) Type() Type   { return c.ValueType }
func (*Conditional) node()          {}
