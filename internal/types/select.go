package types

// ColumnDeclaration is one projected column of a Select.
type ColumnDeclaration struct {
	Expr Node
	Name string
}

// OrderBy is one ORDER BY entry.
type OrderBy struct {
	Expr       Node
	Descending bool
}

// Select is a query over an optional source.
//
// Skip and Take, when set, must fold to non-negative integer constants.
type Select struct {
	Alias    *Alias
	From     Node
	Where    Node
	Skip     Node
	Take     Node
	Columns  []ColumnDeclaration
	GroupBy  []Node
	OrderBy  []OrderBy
	Distinct bool
}

func (*Select) Kind() NodeKind { return KindSelect }
func (*Select) Type() Type     { return TypeUnknown }
func (*Select) node()          {}

// Scalar uses a single-column Select as a value.
type Scalar struct {
	Select    *Select
	ValueType Type
}

func (*Scalar) Kind() NodeKind { return KindScalar }
func (s *Scalar) Type() Type   { return s.ValueType }
func (*Scalar) node()          {}

// AggregateFunc names an aggregate function.
type AggregateFunc string

const (
	AggCount     AggregateFunc = "COUNT"
	AggLongCount AggregateFunc = "COUNT_BIG"
	AggSum       AggregateFunc = "SUM"
	AggMin       AggregateFunc = "MIN"
	AggMax       AggregateFunc = "MAX"
	AggAvg       AggregateFunc = "AVG"
)

// Aggregate applies an aggregate function. A nil Arg means all rows.
type Aggregate struct {
	Arg       Node
	Func      AggregateFunc
	ValueType Type
	Distinct  bool
}

func (*Aggregate) Kind() NodeKind { return KindAggregate }
func (a *Aggregate) Type() Type   { return a.ValueType }
func (*Aggregate) node()          {}
