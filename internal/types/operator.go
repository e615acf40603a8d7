package types

// BinaryOp is the operator of a Binary node.
type BinaryOp int

const (
	OpAnd BinaryOp = iota
	OpOr
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpCoalesce
)

var binaryNames = [...]string{
	OpAnd:      "AND",
	OpOr:       "OR",
	OpEq:       "=",
	OpNe:       "<>",
	OpLt:       "<",
	OpLe:       "<=",
	OpGt:       ">",
	OpGe:       ">=",
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpMod:      "%",
	OpCoalesce: "COALESCE",
}

// String returns the generic SQL spelling of the operator.
func (op BinaryOp) String() string {
	if op >= 0 && int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return "?"
}

// IsComparison reports whether op compares its operands.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}

// IsLogical reports whether op is AND or OR.
func (op BinaryOp) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// Binary applies an operator to two operands.
type Binary struct {
	Left      Node
	Right     Node
	Op        BinaryOp
	ValueType Type
}

func (*Binary) Kind() NodeKind { return KindBinary }
func (b *Binary) Type() Type   { return b.ValueType }
func (*Binary) node()          {}

// UnaryOp is the operator of a Unary node.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNegate
)

// Unary applies an operator to one operand.
type Unary struct {
	Operand   Node
	Op        UnaryOp
	ValueType Type
}

func (*Unary) Kind() NodeKind { return KindUnary }
func (u *Unary) Type() Type   { return u.ValueType }
func (*Unary) node()          {}
