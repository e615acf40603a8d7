// Package mariadb provides the MariaDB dialect renderer.
package mariadb

import (
	"github.com/zoobzio/relsql/internal/render"
	"github.com/zoobzio/relsql/internal/types"
)

// maxRows is the LIMIT written when only an offset is wanted; MariaDB has
// no OFFSET without LIMIT.
const maxRows = "18446744073709551615"

// Renderer implements the MariaDB dialect renderer.
type Renderer struct {
	dialect *render.Dialect
}

// New creates a new MariaDB renderer.
func New() *Renderer {
	return &Renderer{dialect: Dialect()}
}

// Name returns the dialect name.
func (r *Renderer) Name() string { return r.dialect.Name }

// Render converts a tree to a QueryResult with MariaDB SQL. Placeholders
// are positional, so Params holds one entry per ? in the text.
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

// Dialect returns the MariaDB hook set.
func Dialect() *render.Dialect {
	d := render.Standard()
	d.Name = "mariadb"
	d.Positional = true
	d.Table = render.Backticks
	d.Column = render.Backticks
	d.Param = render.QuestionParam
	d.Concat = render.FuncConcat
	d.Member = member
	d.Method = method
	d.Paginate = render.LimitOffset(maxRows)
	d.WrapDepth = 0
	d.DistinctWrapDepth = 0
	return d
}

var dateFuncs = map[string]string{
	"Year":      "YEAR",
	"Month":     "MONTH",
	"Day":       "DAY",
	"Hour":      "HOUR",
	"Minute":    "MINUTE",
	"Second":    "SECOND",
	"DayOfYear": "DAYOFYEAR",
}

func member(f *render.Formatter, m *types.MemberAccess) (bool, error) {
	if m.Member.Owner != types.OwnerTime {
		return false, nil
	}
	if m.Object == nil {
		if m.Member.Name == "Now" {
			f.Write("NOW()")
			return true, nil
		}
		return false, nil
	}
	switch m.Member.Name {
	case "DayOfWeek":
		return true, f.Emit("(DAYOFWEEK(", m.Object, ") - 1)")
	case "Millisecond":
		return true, f.Emit("(MICROSECOND(", m.Object, ") DIV 1000)")
	}
	if fn, ok := dateFuncs[m.Member.Name]; ok {
		return true, f.Func(fn, m.Object)
	}
	return false, nil
}

func method(f *render.Formatter, m *types.MethodCall) (bool, error) {
	args := m.Args
	switch m.Method.Owner {
	case types.OwnerString:
		if !m.IsStatic() {
			return stringMethod(f, m)
		}

	case types.OwnerTime:
		if m.Method.Name == "Subtract" && m.IsStatic() && len(args) == 2 {
			return true, f.Func("DATEDIFF", args...)
		}

	case types.OwnerDecimal, types.OwnerMath:
		if m.IsStatic() && m.Method.Name == "Truncate" && len(args) == 1 {
			return true, f.Emit("TRUNCATE(", args[0], ", 0)")
		}
	}

	if m.Method.Name == "ToString" && !m.IsStatic() && len(args) == 0 && m.Object.Type() != types.TypeString {
		return true, f.Emit("CAST(", m.Object, " AS CHAR)")
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
			return true, f.Emit("(", x, " LIKE CONCAT('%', ", args[0], ", '%'))")
		}
	case "Substring":
		switch len(args) {
		case 1:
			return true, f.Emit("SUBSTRING(", x, ", ", args[0], " + 1)")
		case 2:
			return true, f.Emit("SUBSTRING(", x, ", ", args[0], " + 1, ", args[1], ")")
		}
	case "Remove":
		switch len(args) {
		case 1:
			return true, f.Func("LEFT", x, args[0])
		case 2:
			return true, f.Emit("INSERT(", x, ", ", args[0], " + 1, ", args[1], ", '')")
		}
	case "IndexOf":
		switch len(args) {
		case 1:
			return true, f.Emit("(LOCATE(", args[0], ", ", x, ") - 1)")
		case 2:
			return true, f.Emit("(LOCATE(", args[0], ", ", x, ", ", args[1], " + 1) - 1)")
		}
	}
	return false, nil
}
