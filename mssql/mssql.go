// Package mssql provides the SQL Server dialect renderer.
package mssql

import (
	"fmt"

	"github.com/google/uuid"
	mssqldb "github.com/microsoft/go-mssqldb"

	"github.com/zoobzio/relsql/internal/render"
	"github.com/zoobzio/relsql/internal/types"
)

// Renderer implements the SQL Server dialect renderer.
type Renderer struct {
	dialect *render.Dialect
}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{dialect: Dialect()}
}

// Name returns the dialect name.
func (r *Renderer) Name() string { return r.dialect.Name }

// Render converts a tree to a QueryResult with SQL Server SQL.
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

// Dialect returns the SQL Server hook set.
func Dialect() *render.Dialect {
	d := render.Standard()
	d.Name = "mssql"
	d.LongCount = "COUNT_BIG"
	d.RowNumberOrder = "(SELECT NULL)"
	d.Apply = true
	d.Table = render.Brackets
	d.Column = render.Brackets
	d.Param = param
	d.Concat = render.PlusConcat
	d.Literal = writeLiteral
	d.Member = member
	d.Method = method
	return d
}

// param uses @name and binds UUIDs as UNIQUEIDENTIFIER.
func param(v *types.NamedValue) (string, types.Conversion) {
	placeholder, _ := render.AtParam(v)
	if v.ValueType == types.TypeUUID {
		return placeholder, types.ConversionFunc(uniqueIdentifier)
	}
	return placeholder, nil
}

func uniqueIdentifier(value any) (any, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return mssqldb.UniqueIdentifier(v), nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		return mssqldb.UniqueIdentifier(id), nil
	case mssqldb.UniqueIdentifier:
		return v, nil
	}
	return nil, fmt.Errorf("cannot convert %T to uniqueidentifier", value)
}

func writeLiteral(f *render.Formatter, value any) bool {
	if b, ok := value.([]byte); ok {
		f.Writef("0x%X", b)
		return true
	}
	return false
}

var dateParts = map[string]string{
	"Year":        "year",
	"Month":       "month",
	"Day":         "day",
	"Hour":        "hour",
	"Minute":      "minute",
	"Second":      "second",
	"Millisecond": "millisecond",
	"DayOfYear":   "dayofyear",
}

func member(f *render.Formatter, m *types.MemberAccess) (bool, error) {
	switch m.Member.Owner {
	case types.OwnerString:
		if m.Member.Name == "Length" && m.Object != nil {
			return true, f.Func("LEN", m.Object)
		}
	case types.OwnerTime:
		if m.Object == nil {
			if m.Member.Name == "Now" {
				f.Write("GETDATE()")
				return true, nil
			}
			return false, nil
		}
		if m.Member.Name == "DayOfWeek" {
			return true, f.Emit("(DATEPART(weekday, ", m.Object, ") - 1)")
		}
		if part, ok := dateParts[m.Member.Name]; ok {
			return true, f.Emit("DATEPART("+part+", ", m.Object, ")")
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
			return true, f.Emit("DATEDIFF(DAY, ", args[1], ", ", args[0], ")")
		}

	case types.OwnerDecimal, types.OwnerMath:
		if !m.IsStatic() {
			return false, nil
		}
		switch {
		case m.Method.Name == "Truncate" && len(args) == 1:
			return true, f.Emit("ROUND(", args[0], ", 0, 1)")
		case m.Method.Name == "Atan2" && len(args) == 2:
			return true, f.Func("ATN2", args...)
		case m.Method.Name == "Log" && len(args) == 1:
			return true, f.Func("LOG", args[0])
		case m.Method.Name == "Log" && len(args) == 2:
			return true, f.Func("LOG", args...)
		}
	}

	if m.Method.Name == "ToString" && !m.IsStatic() && len(args) == 0 && m.Object.Type() != types.TypeString {
		return true, f.Emit("CONVERT(NVARCHAR(MAX), ", m.Object, ")")
	}
	return false, nil
}

func stringMethod(f *render.Formatter, m *types.MethodCall) (bool, error) {
	x, args := m.Object, m.Args
	switch m.Method.Name {
	case "StartsWith":
		if len(args) == 1 {
			return true, f.Emit("(", x, " LIKE ", args[0], " + '%')")
		}
	case "EndsWith":
		if len(args) == 1 {
			return true, f.Emit("(", x, " LIKE '%' + ", args[0], ")")
		}
	case "Contains":
		if len(args) == 1 {
			return true, f.Emit("(", x, " LIKE '%' + ", args[0], " + '%')")
		}
	case "Substring":
		switch len(args) {
		case 1:
			return true, f.Emit("SUBSTRING(", x, ", ", args[0], " + 1, 8000)")
		case 2:
			return true, f.Emit("SUBSTRING(", x, ", ", args[0], " + 1, ", args[1], ")")
		}
	case "Remove":
		switch len(args) {
		case 1:
			return true, f.Emit("STUFF(", x, ", ", args[0], " + 1, 8000, '')")
		case 2:
			return true, f.Emit("STUFF(", x, ", ", args[0], " + 1, ", args[1], ", '')")
		}
	case "IndexOf":
		switch len(args) {
		case 1:
			return true, f.Emit("(CHARINDEX(", args[0], ", ", x, ") - 1)")
		case 2:
			return true, f.Emit("(CHARINDEX(", args[0], ", ", x, ", ", args[1], " + 1) - 1)")
		}
	case "Trim":
		if len(args) == 0 {
			return true, f.Emit("LTRIM(RTRIM(", x, "))")
		}
	}
	return false, nil
}
