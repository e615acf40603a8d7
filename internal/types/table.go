package types

// Alias is an opaque identity for a table or subquery in scope.
// Anonymous aliases are named by the formatter in first-visit order.
type Alias struct {
	name string
}

// NewAlias returns an anonymous alias.
func NewAlias() *Alias {
	return &Alias{}
}

// NamedAlias returns an alias that always renders as name.
func NamedAlias(name string) *Alias {
	return &Alias{name: name}
}

// Name returns the explicit name, or empty for anonymous aliases.
func (a *Alias) Name() string {
	if a == nil {
		return ""
	}
	return a.name
}

// Table references a physical table.
type Table struct {
	Alias *Alias
	Name  string
}

func (*Table) Kind() NodeKind { return KindTable }
func (*Table) Type() Type     { return TypeUnknown }
func (*Table) node()          {}

// JoinType is the kind of join between two sources.
type JoinType int

const (
	CrossJoin JoinType = iota
	InnerJoin
	LeftOuterJoin
	RightOuterJoin
	CrossApply
	OuterApply
)

var joinNames = [...]string{
	CrossJoin:      "CROSS JOIN",
	InnerJoin:      "INNER JOIN",
	LeftOuterJoin:  "LEFT OUTER JOIN",
	RightOuterJoin: "RIGHT OUTER JOIN",
	CrossApply:     "CROSS APPLY",
	OuterApply:     "OUTER APPLY",
}

// String returns the SQL keyword for the join type.
func (k JoinType) String() string {
	if k >= 0 && int(k) < len(joinNames) {
		return joinNames[k]
	}
	return "UNKNOWN JOIN"
}

// Join combines two sources.
type Join struct {
	Left      Node
	Right     Node
	Condition Node
	JoinType  JoinType
}

func (*Join) Kind() NodeKind { return KindJoin }
func (*Join) Type() Type     { return TypeUnknown }
func (*Join) node()          {}
