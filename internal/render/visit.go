package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zoobzio/relsql/internal/types"
)

var errNilNode = errors.New("render: nil node")

// Visit writes n as it stands, without coercing it to a context, and
// returns it.
func (f *Formatter) Visit(n types.Node) (types.Node, error) {
	if err := f.visit(n); err != nil {
		return nil, err
	}
	return n, nil
}

// VisitValue writes n as a scalar. Predicates are wrapped in
// CASE WHEN ... THEN 1 ELSE 0 END regardless of dialect.
func (f *Formatter) VisitValue(n types.Node) (types.Node, error) {
	if !IsPredicate(n) {
		return f.Visit(n)
	}
	f.Write("(CASE WHEN ")
	if err := f.visit(n); err != nil {
		return nil, err
	}
	f.Write(" THEN 1 ELSE 0 END)")
	return n, nil
}

// VisitPredicate writes n as an SQL boolean. Values are compared with
// zero unless the dialect has native booleans and n is boolean.
func (f *Formatter) VisitPredicate(n types.Node) (types.Node, error) {
	if IsPredicate(n) {
		return f.Visit(n)
	}
	if err := f.visit(n); err != nil {
		return nil, err
	}
	if !f.dialect.NativeBoolean || n.Type() != types.TypeBool {
		f.Write(" <> 0")
	}
	return n, nil
}

// IsPredicate reports whether n renders as an SQL boolean expression.
func IsPredicate(n types.Node) bool {
	switch v := n.(type) {
	case *types.Binary:
		return v.Op.IsLogical() || v.Op.IsComparison()
	case *types.Unary:
		return v.Op == types.OpNot
	case *types.IsNull, *types.Exists, *types.In, *types.Between:
		return true
	case *types.MethodCall:
		return v.ValueType == types.TypeBool
	}
	return false
}

func (f *Formatter) visit(n types.Node) error {
	if n == nil {
		return errNilNode
	}
	switch v := n.(type) {
	case *types.Select:
		return f.visitSelect(v, false)
	case *types.Column:
		f.writeColumn(v)
		return nil
	case *types.NamedValue:
		f.WriteParam(v, nil)
		return nil
	case *types.Constant:
		return f.WriteLiteral(v.Value)
	case *types.Binary:
		return f.visitBinary(v)
	case *types.Unary:
		return f.visitUnary(v)
	case *types.MethodCall:
		return f.visitMethodCall(v)
	case *types.MemberAccess:
		return f.visitMemberAccess(v)
	case *types.Conditional:
		return f.visitConditional(v)
	case *types.Aggregate:
		return f.visitAggregate(v)
	case *types.IsNull:
		if _, err := f.VisitValue(v.Expr); err != nil {
			return err
		}
		f.Write(" IS NULL")
		return nil
	case *types.Exists:
		f.Write("EXISTS(")
		if err := f.subquery(v.Select); err != nil {
			return err
		}
		f.Write(")")
		return nil
	case *types.In:
		return f.visitIn(v)
	case *types.Between:
		return f.Emit(v.Expr, " BETWEEN ", v.Lower, " AND ", v.Upper)
	case *types.Scalar:
		f.Write("(")
		if err := f.subquery(v.Select); err != nil {
			return err
		}
		f.Write(")")
		return nil
	case *types.Table, *types.Join:
		return f.Unsupported("node", n.Kind().String(), "tables and joins are only valid as sources")
	}
	return f.Unsupported("node", n.Kind().String())
}

func (f *Formatter) writeColumn(c *types.Column) {
	if alias := f.AliasName(c.Alias); alias != "" {
		f.Write(alias)
		f.Write(".")
	}
	f.Write(f.dialect.Column(c.Name))
}

// subquery writes s on its own indented lines.
func (f *Formatter) subquery(s *types.Select) error {
	if s == nil {
		return errNilNode
	}
	f.NewLine(Inner)
	if err := f.visitSelect(s, true); err != nil {
		return err
	}
	f.NewLine(Outer)
	return nil
}

func isNullConstant(n types.Node) bool {
	c, ok := n.(*types.Constant)
	return ok && c.Value == nil
}

func (f *Formatter) visitBinary(b *types.Binary) error {
	if f.dialect.Binary != nil {
		if ok, err := f.dialect.Binary(f, b); ok || err != nil {
			return err
		}
	}

	switch {
	case b.Op.IsLogical():
		f.Write("(")
		if _, err := f.VisitPredicate(b.Left); err != nil {
			return err
		}
		f.Write(" " + b.Op.String() + " ")
		if _, err := f.VisitPredicate(b.Right); err != nil {
			return err
		}
		f.Write(")")
		return nil

	case (b.Op == types.OpEq || b.Op == types.OpNe) && (isNullConstant(b.Left) || isNullConstant(b.Right)):
		operand := b.Left
		if isNullConstant(b.Left) {
			operand = b.Right
		}
		suffix := " IS NULL)"
		if b.Op == types.OpNe {
			suffix = " IS NOT NULL)"
		}
		return f.Emit("(", operand, suffix)

	case b.Op == types.OpAdd && b.ValueType == types.TypeString:
		return f.dialect.Concat(f, flattenConcat(b, nil))

	case b.Op == types.OpCoalesce:
		return f.Func("COALESCE", b.Left, b.Right)
	}

	return f.Emit("(", b.Left, " "+b.Op.String()+" ", b.Right, ")")
}

func flattenConcat(n types.Node, parts []types.Node) []types.Node {
	if b, ok := n.(*types.Binary); ok && b.Op == types.OpAdd && b.ValueType == types.TypeString {
		parts = flattenConcat(b.Left, parts)
		return flattenConcat(b.Right, parts)
	}
	return append(parts, n)
}

func (f *Formatter) visitUnary(u *types.Unary) error {
	switch u.Op {
	case types.OpNot:
		if isNull, ok := u.Operand.(*types.IsNull); ok {
			return f.Emit(isNull.Expr, " IS NOT NULL")
		}
		if u.Operand.Type() != types.TypeBool && !IsPredicate(u.Operand) {
			return f.Unsupported("operator", "NOT", "operand is not boolean")
		}
		f.Write("NOT ")
		_, err := f.VisitPredicate(u.Operand)
		return err
	case types.OpNegate:
		operand, err := f.Capture(func() error {
			_, err := f.VisitValue(u.Operand)
			return err
		})
		if err != nil {
			return err
		}
		if strings.HasPrefix(operand, "-") {
			f.Write("-(" + operand + ")")
		} else {
			f.Write("-" + operand)
		}
		return nil
	}
	return f.Unsupported("operator", fmt.Sprintf("unary %d", u.Op))
}

func (f *Formatter) visitMethodCall(m *types.MethodCall) error {
	if f.dialect.Method != nil {
		if ok, err := f.dialect.Method(f, m); ok || err != nil {
			return err
		}
	}
	if ok, err := StandardMethod(f, m); ok || err != nil {
		return err
	}
	return f.Unsupported("method", m.Method.String())
}

func (f *Formatter) visitMemberAccess(m *types.MemberAccess) error {
	if f.dialect.Member != nil {
		if ok, err := f.dialect.Member(f, m); ok || err != nil {
			return err
		}
	}
	if ok, err := StandardMember(f, m); ok || err != nil {
		return err
	}
	return f.Unsupported("member", m.Member.String())
}

func (f *Formatter) visitConditional(c *types.Conditional) error {
	f.Write("CASE WHEN ")
	if _, err := f.VisitPredicate(c.Test); err != nil {
		return err
	}
	return f.Emit(" THEN ", c.IfTrue, " ELSE ", c.IfFalse, " END")
}

func (f *Formatter) visitAggregate(a *types.Aggregate) error {
	name := string(a.Func)
	if a.Func == types.AggLongCount {
		name = f.dialect.LongCount
	}
	f.Write(name + "(")
	if a.Distinct {
		f.Write("DISTINCT ")
	}
	if a.Arg == nil {
		f.Write("*")
	} else if _, err := f.VisitValue(a.Arg); err != nil {
		return err
	}
	f.Write(")")
	return nil
}

func (f *Formatter) visitIn(in *types.In) error {
	if in.Select == nil && len(in.Values) == 0 {
		f.Write("0 <> 0")
		return nil
	}
	if _, err := f.VisitValue(in.Expr); err != nil {
		return err
	}
	f.Write(" IN (")
	if in.Select != nil {
		if err := f.subquery(in.Select); err != nil {
			return err
		}
	} else if err := f.join(in.Values, ", "); err != nil {
		return err
	}
	f.Write(")")
	return nil
}

// Func writes name(arg, ...) with each argument in value context.
func (f *Formatter) Func(name string, args ...types.Node) error {
	f.Write(name + "(")
	if err := f.join(args, ", "); err != nil {
		return err
	}
	f.Write(")")
	return nil
}

// WriteLiteral writes value through the dialect literal hook, falling back
// to the generic encoding.
func (f *Formatter) WriteLiteral(value any) error {
	if f.dialect.Literal != nil && f.dialect.Literal(f, value) {
		return nil
	}
	switch v := value.(type) {
	case nil:
		f.Write("NULL")
	case bool:
		switch {
		case f.dialect.NativeBoolean && v:
			f.Write("TRUE")
		case f.dialect.NativeBoolean:
			f.Write("FALSE")
		case v:
			f.Write("1")
		default:
			f.Write("0")
		}
	case string:
		f.Write(QuoteString(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		f.Writef("%d", v)
	case float32:
		f.Write(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		f.Write(strconv.FormatFloat(v, 'f', -1, 64))
	case decimal.Decimal:
		f.Write(v.String())
	case time.Time:
		f.Write(QuoteString(v.Format(DateTimeLayout)))
	case uuid.UUID:
		f.Write(QuoteString(v.String()))
	case []byte:
		f.Writef("X'%X'", v)
	default:
		return f.Unsupported("literal", fmt.Sprintf("%T", value))
	}
	return nil
}

// DateTimeLayout is the layout of generic date literals.
const DateTimeLayout = "2006-01-02 15:04:05"

// QuoteString returns s as a single-quoted SQL string.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
