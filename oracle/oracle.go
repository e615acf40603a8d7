// Package oracle provides the Oracle dialect renderer.
package oracle

import (
	"fmt"
	"time"

	"github.com/zoobzio/relsql/internal/render"
	"github.com/zoobzio/relsql/internal/types"
)

// Renderer implements the Oracle dialect renderer.
type Renderer struct {
	dialect *render.Dialect
}

// New creates a new Oracle renderer.
func New() *Renderer {
	return &Renderer{dialect: Dialect()}
}

// Name returns the dialect name.
func (r *Renderer) Name() string { return r.dialect.Name }

// Render converts a tree to a QueryResult with Oracle SQL.
func (r *Renderer) Render(node types.Node) (*types.QueryResult, error) {
	return render.Render(r.dialect, node)
}

// Format renders node with a fresh formatter and returns only the SQL.
func Format(node types.Node) (string, error) {
	result, err := New().Render(node)
	if err != nil {
		return "", err
	}
	return result.SQL, nil
}

// Dialect returns the Oracle hook set.
//
// Identifiers are written bare, table names lose any brackets, aliases
// follow their expression without AS, and a select without a source reads
// FROM DUAL.
func Dialect() *render.Dialect {
	d := render.Standard()
	d.Name = "oracle"
	d.AliasPrefix = ""
	d.NoSource = "FROM DUAL"
	d.Apply = true
	d.Table = render.Bare
	d.Column = render.Bare
	d.Param = render.ColonParam
	d.Literal = writeLiteral
	d.Member = member
	d.Method = method
	d.Binary = binary
	d.Paginate = rowNum
	d.WrapDepth = 2
	d.DistinctWrapDepth = 0
	return d
}

const dateLayout = "2006-01-02T15:04:05"

func writeLiteral(f *render.Formatter, value any) bool {
	switch v := value.(type) {
	case time.Time:
		f.Write("to_date('" + v.Format(dateLayout) + `','YYYY-MM-DD"T"HH24:MI:SS')`)
		return true
	case []byte:
		f.Writef("HEXTORAW('%X')", v)
		return true
	}
	return false
}

// rowNum filters on ROWNUM assigned over the ordered select. Nested, the
// outer select lists the inner columns so rn stays out of the result.
func rowNum(f *render.Formatter, q *render.Query) error {
	f.Write("SELECT " + q.Projection(f, ""))
	f.Write(q.Line(0) + "FROM (")
	f.Write(q.Line(1) + "SELECT tp.*, ROWNUM rn")
	f.Write(q.Line(1) + "FROM (")
	f.Write(q.Line(2) + q.Plain())
	f.Write(q.Line(1) + ") tp")
	f.Write(q.Line(0) + ")")
	f.Write(q.Line(0) + "WHERE " + q.Window.Range("rn"))
	return nil
}

func binary(f *render.Formatter, b *types.Binary) (bool, error) {
	switch b.Op {
	case types.OpMod:
		return true, f.Func("MOD", b.Left, b.Right)
	case types.OpEq, types.OpNe:
		return uuidEquality(f, b)
	}
	return false, nil
}

// datePart maps time members to TO_CHAR format models.
var datePart = map[string]string{
	"Year":        "YYYY",
	"Month":       "MM",
	"Day":         "DD",
	"Hour":        "HH24",
	"Minute":      "MI",
	"Second":      "SS",
	"Millisecond": "FF3",
	"DayOfYear":   "DDD",
}

func member(f *render.Formatter, m *types.MemberAccess) (bool, error) {
	if m.Object == nil {
		return false, nil
	}
	switch m.Member.Owner {
	case types.OwnerString:
		if m.Member.Name == "Length" {
			return true, f.Func("LENGTH", m.Object)
		}
	case types.OwnerTime:
		if m.Member.Name == "DayOfWeek" {
			return true, f.Emit("(TO_NUMBER(TO_CHAR(", m.Object, ", 'D')) - 1)")
		}
		if format, ok := datePart[m.Member.Name]; ok {
			return true, f.Emit("TO_NUMBER(TO_CHAR(", m.Object, fmt.Sprintf(", '%s'))", format))
		}
	}
	return false, nil
}

func method(f *render.Formatter, m *types.MethodCall) (bool, error) {
	args := m.Args
	switch m.Method.Owner {
	case types.OwnerString:
		if m.IsStatic() {
			return false, nil
		}
		return stringMethod(f, m)

	case types.OwnerTime:
		if m.Method.Name == "Subtract" && m.IsStatic() && len(args) == 2 {
			return true, f.Emit("(", args[0], " - ", args[1], ")")
		}

	case types.OwnerDecimal, types.OwnerMath:
		if !m.IsStatic() || len(args) != 1 {
			return false, nil
		}
		switch m.Method.Name {
		case "Truncate":
			return true, f.Func("TRUNC", args[0])
		case "Ceiling":
			return true, f.Func("CEIL", args[0])
		case "Log10":
			return true, f.Emit("LOG(10, ", args[0], ")")
		}
	}

	if m.Method.Name == "ToString" && !m.IsStatic() && len(args) == 0 && m.Object.Type() != types.TypeString {
		return true, f.Func("TO_CHAR", m.Object)
	}
	return false, nil
}

func stringMethod(f *render.Formatter, m *types.MethodCall) (bool, error) {
	x, args := m.Object, m.Args
	switch m.Method.Name {
	case "StartsWith":
		if len(args) == 1 {
			return true, f.Emit("(", x, " LIKE CONCAT(", args[0], ", '%'))")
		}
	case "EndsWith":
		if len(args) == 1 {
			return true, f.Emit("(", x, " LIKE CONCAT('%', ", args[0], "))")
		}
	case "Contains":
		if len(args) == 1 {
			return true, f.Emit("(", x, " LIKE '%' || ", args[0], " || '%')")
		}
	case "Substring":
		switch len(args) {
		case 1:
			return true, f.Emit("SUBSTR(", x, ", ", args[0], " + 1)")
		case 2:
			return true, f.Emit("SUBSTR(", x, ", ", args[0], " + 1, ", args[1], ")")
		}
	case "Remove":
		switch len(args) {
		case 1:
			return true, f.Emit("SUBSTR(", x, ", 1, ", args[0], ")")
		case 2:
			return true, f.Emit("SUBSTR(", x, ", 1, ", args[0], ") || SUBSTR(", x, ", ", args[0], " + ", args[1], " + 1)")
		}
	case "IndexOf":
		switch len(args) {
		case 1:
			return true, f.Emit("(INSTR(", x, ", ", args[0], ") - 1)")
		case 2:
			return true, f.Emit("(INSTR(", x, ", ", args[0], ", ", args[1], " + 1) - 1)")
		}
	case "Trim":
		if len(args) == 0 {
			return true, f.Emit("RTRIM(LTRIM(", x, "))")
		}
	}
	return false, nil
}
