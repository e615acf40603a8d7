package render

import (
	"strings"

	"github.com/zoobzio/relsql/internal/types"
)

var arithmetic = map[string]types.BinaryOp{
	"Add":       types.OpAdd,
	"Subtract":  types.OpSub,
	"Multiply":  types.OpMul,
	"Divide":    types.OpDiv,
	"Remainder": types.OpMod,
}

var mathFuncs = map[string]bool{
	"Abs":     true,
	"Acos":    true,
	"Asin":    true,
	"Atan":    true,
	"Cos":     true,
	"Exp":     true,
	"Log10":   true,
	"Sin":     true,
	"Sqrt":    true,
	"Tan":     true,
	"Sign":    true,
	"Ceiling": true,
	"Floor":   true,
}

// StandardMethod writes the calls every dialect shares. It reports false
// for anything it does not know, including known names with the wrong
// number of arguments.
func StandardMethod(f *Formatter, m *types.MethodCall) (bool, error) {
	args := m.Args
	if m.Method.Name == "Equals" {
		switch {
		case m.IsStatic() && len(args) == 2:
			return true, f.visitBinary(&types.Binary{Left: args[0], Right: args[1], Op: types.OpEq, ValueType: types.TypeBool})
		case !m.IsStatic() && len(args) == 1:
			return true, f.visitBinary(&types.Binary{Left: m.Object, Right: args[0], Op: types.OpEq, ValueType: types.TypeBool})
		}
		return false, nil
	}

	switch m.Method.Owner {
	case types.OwnerString:
		return standardString(f, m)

	case types.OwnerPattern:
		if m.Method.Name == "Wildcard" && m.IsStatic() && len(args) == 2 {
			return true, f.Emit("(", args[0], " LIKE ", args[1], ")")
		}

	case types.OwnerDecimal, types.OwnerMath:
		if !m.IsStatic() {
			return false, nil
		}
		if op, ok := arithmetic[m.Method.Name]; ok && len(args) == 2 && m.Method.Owner == types.OwnerDecimal {
			return true, f.visitBinary(&types.Binary{Left: args[0], Right: args[1], Op: op, ValueType: m.ValueType})
		}
		switch {
		case m.Method.Name == "Negate" && len(args) == 1:
			return true, f.visitUnary(&types.Unary{Operand: args[0], Op: types.OpNegate, ValueType: m.ValueType})
		case m.Method.Name == "Round" && len(args) >= 1:
			// Digit counts are not honoured; every rounding is to zero places.
			return true, f.Emit("ROUND(", args[0], ", 0)")
		case m.Method.Name == "Atan2" && len(args) == 2:
			return true, f.Func("ATAN2", args...)
		case m.Method.Name == "Pow" && len(args) == 2:
			return true, f.Func("POWER", args...)
		case m.Method.Name == "Log" && len(args) == 1:
			return true, f.Func("LN", args[0])
		case m.Method.Name == "Log" && len(args) == 2:
			return true, f.Func("LOG", args[1], args[0])
		case mathFuncs[m.Method.Name] && len(args) == 1:
			return true, f.Func(strings.ToUpper(m.Method.Name), args[0])
		}
	}
	return false, nil
}

func standardString(f *Formatter, m *types.MethodCall) (bool, error) {
	args := m.Args
	if m.IsStatic() {
		switch {
		case m.Method.Name == "IsNullOrEmpty" && len(args) == 1:
			return true, f.Emit("(", args[0], " IS NULL OR ", args[0], " = '')")
		case m.Method.Name == "Concat" && len(args) > 0:
			return true, f.dialect.Concat(f, args)
		}
		return false, nil
	}
	switch {
	case m.Method.Name == "ToUpper" && len(args) == 0:
		return true, f.Func("UPPER", m.Object)
	case m.Method.Name == "ToLower" && len(args) == 0:
		return true, f.Func("LOWER", m.Object)
	case m.Method.Name == "Trim" && len(args) == 0:
		return true, f.Func("TRIM", m.Object)
	case m.Method.Name == "Replace" && len(args) == 2:
		return true, f.Func("REPLACE", m.Object, args[0], args[1])
	case m.Method.Name == "ToString" && len(args) == 0 && m.Object.Type() == types.TypeString:
		_, err := f.VisitValue(m.Object)
		return true, err
	}
	return false, nil
}

var extractParts = map[string]string{
	"Year":   "YEAR",
	"Month":  "MONTH",
	"Day":    "DAY",
	"Hour":   "HOUR",
	"Minute": "MINUTE",
	"Second": "SECOND",
}

// StandardMember writes the member accesses every dialect shares.
func StandardMember(f *Formatter, m *types.MemberAccess) (bool, error) {
	switch m.Member.Owner {
	case types.OwnerString:
		if m.Member.Name == "Length" && m.Object != nil {
			return true, f.Func("CHAR_LENGTH", m.Object)
		}
	case types.OwnerTime:
		if m.Object == nil {
			if m.Member.Name == "Now" {
				f.Write("CURRENT_TIMESTAMP")
				return true, nil
			}
			return false, nil
		}
		if part, ok := extractParts[m.Member.Name]; ok {
			return true, f.Emit("EXTRACT("+part+" FROM ", m.Object, ")")
		}
	}
	return false, nil
}
