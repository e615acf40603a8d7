// Package sqlite provides the SQLite dialect renderer.
package sqlite

import (
	"github.com/zoobzio/relsql/internal/render"
	"github.com/zoobzio/relsql/internal/types"
)

// Renderer implements the SQLite dialect renderer.
type Renderer struct {
	dialect *render.Dialect
}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{dialect: Dialect()}
}

// Name returns the dialect name.
func (r *Renderer) Name() string { return r.dialect.Name }

// Render converts a tree to a QueryResult with SQLite SQL.
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

// Dialect returns the SQLite hook set. SQLite has window functions, so
// pagination keeps the shared ROW_NUMBER wrapper.
func Dialect() *render.Dialect {
	d := render.Standard()
	d.Name = "sqlite"
	d.Member = member
	d.Method = method
	return d
}

// strftime formats for the time members SQLite can extract as integers.
var strftimeParts = map[string]string{
	"Year":      "%Y",
	"Month":     "%m",
	"Day":       "%d",
	"Hour":      "%H",
	"Minute":    "%M",
	"Second":    "%S",
	"DayOfWeek": "%w",
	"DayOfYear": "%j",
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
		if m.Member.Name == "Millisecond" {
			return true, f.Emit("(CAST(STRFTIME('%f', ", m.Object, ") * 1000 AS INTEGER) % 1000)")
		}
		if format, ok := strftimeParts[m.Member.Name]; ok {
			return true, f.Emit("CAST(STRFTIME('"+format+"', ", m.Object, ") AS INTEGER)")
		}
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
			return true, f.Emit("(JULIANDAY(", args[0], ") - JULIANDAY(", args[1], "))")
		}

	case types.OwnerDecimal, types.OwnerMath:
		if m.IsStatic() && m.Method.Name == "Truncate" && len(args) == 1 {
			return true, f.Emit("CAST(", args[0], " AS INTEGER)")
		}
	}

	if m.Method.Name == "ToString" && !m.IsStatic() && len(args) == 0 && m.Object.Type() != types.TypeString {
		return true, f.Emit("CAST(", m.Object, " AS TEXT)")
	}
	return false, nil
}

func stringMethod(f *render.Formatter, m *types.MethodCall) (bool, error) {
	x, args := m.Object, m.Args
	switch m.Method.Name {
	case "StartsWith":
		if len(args) == 1 {
			return true, f.Emit("(", x, " LIKE ", args[0], " || '%')")
		}
	case "EndsWith":
		if len(args) == 1 {
			return true, f.Emit("(", x, " LIKE '%' || ", args[0], ")")
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
		if len(args) == 1 {
			return true, f.Emit("(INSTR(", x, ", ", args[0], ") - 1)")
		}
	}
	return false, nil
}
