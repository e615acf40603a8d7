package types

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Constant is a literal value.
type Constant struct {
	Value     any
	ValueType Type
}

func (*Constant) Kind() NodeKind { return KindConstant }
func (c *Constant) Type() Type   { return c.ValueType }
func (*Constant) node()          {}

// NewConstant wraps v, inferring its Type from the Go type.
func NewConstant(v any) *Constant {
	return &Constant{Value: v, ValueType: TypeOf(v)}
}

// TypeOf maps a Go value to a Type.
func TypeOf(v any) Type {
	switch v.(type) {
	case bool:
		return TypeBool
	case int, int8, int16, int32, uint8, uint16, uint32:
		return TypeInt
	case int64, uint, uint64:
		return TypeInt64
	case float32, float64:
		return TypeFloat
	case decimal.Decimal:
		return TypeDecimal
	case string:
		return TypeString
	case time.Time:
		return TypeTime
	case uuid.UUID:
		return TypeUUID
	case []byte:
		return TypeBytes
	}
	return TypeUnknown
}

// FoldInt reduces n to an integer constant.
// Constants of integer type and +, -, * over foldable operands fold;
// anything else does not.
func FoldInt(n Node) (int64, bool) {
	switch v := n.(type) {
	case *Constant:
		return intValue(v.Value)
	case *Unary:
		if v.Op != OpNegate {
			return 0, false
		}
		x, ok := FoldInt(v.Operand)
		return -x, ok
	case *Binary:
		l, ok := FoldInt(v.Left)
		if !ok {
			return 0, false
		}
		r, ok := FoldInt(v.Right)
		if !ok {
			return 0, false
		}
		switch v.Op {
		case OpAdd:
			return l + r, true
		case OpSub:
			return l - r, true
		case OpMul:
			return l * r, true
		}
	}
	return 0, false
}

func intValue(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint:
		return uintValue(uint64(x))
	case uint64:
		return uintValue(x)
	}
	return 0, false
}

func uintValue(x uint64) (int64, bool) {
	if x > math.MaxInt64 {
		return 0, false
	}
	return int64(x), true
}
