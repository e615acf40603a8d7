// Package postgres provides the PostgreSQL dialect renderer.
package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zoobzio/relsql/internal/render"
	"github.com/zoobzio/relsql/internal/types"
)

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct {
	dialect *render.Dialect
}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{dialect: Dialect()}
}

// Name returns the dialect name.
func (r *Renderer) Name() string { return r.dialect.Name }

// Render converts a tree to a QueryResult with PostgreSQL SQL.
func (r *Renderer) Render(node types.Node) (*types.QueryResult, error) {
	return render.Render(r.dialect, node)
}

// Bind resolves the parameters of result as a single pgx.NamedArgs
// argument, which both pgx and its database/sql driver accept.
func (r *Renderer) Bind(result *types.QueryResult, values map[string]any) ([]any, error) {
	args, err := NamedArgs(result, values)
	if err != nil {
		return nil, err
	}
	return []any{args}, nil
}

// Format renders node with a fresh formatter and returns only the SQL.
func Format(node types.Node) (string, error) {
	result, err := New().Render(node)
	if err != nil {
		return "", err
	}
	return result.SQL, nil
}

// NamedArgs resolves values for every parameter of result, applying
// pending conversions, keyed by parameter name.
func NamedArgs(result *types.QueryResult, values map[string]any) (pgx.NamedArgs, error) {
	resolved, err := result.Values(values)
	if err != nil {
		return nil, err
	}
	args := make(pgx.NamedArgs, len(resolved))
	for i, p := range result.Params {
		args[p.Name] = resolved[i]
	}
	return args, nil
}

// Dialect returns the PostgreSQL hook set. Pagination uses LIMIT and
// OFFSET; booleans are native.
func Dialect() *render.Dialect {
	d := render.Standard()
	d.Name = "postgres"
	d.NativeBoolean = true
	d.Param = render.AtParam
	d.Literal = writeLiteral
	d.Member = member
	d.Method = method
	d.Paginate = render.LimitOffset("")
	d.WrapDepth = 0
	d.DistinctWrapDepth = 0
	return d
}

func writeLiteral(f *render.Formatter, value any) bool {
	switch v := value.(type) {
	case time.Time:
		f.Write("TIMESTAMP " + render.QuoteString(v.Format(render.DateTimeLayout)))
		return true
	case uuid.UUID:
		f.Write(render.QuoteString(v.String()) + "::uuid")
		return true
	case []byte:
		f.Writef(`'\x%x'::bytea`, v)
		return true
	}
	return false
}

var extractFields = map[string]string{
	"DayOfWeek": "DOW",
	"DayOfYear": "DOY",
}

func member(f *render.Formatter, m *types.MemberAccess) (bool, error) {
	if m.Member.Owner != types.OwnerTime || m.Object == nil {
		return false, nil
	}
	if m.Member.Name == "Millisecond" {
		return true, f.Emit("(CAST(EXTRACT(MILLISECONDS FROM ", m.Object, ") AS INTEGER) % 1000)")
	}
	if field, ok := extractFields[m.Member.Name]; ok {
		return true, f.Emit("EXTRACT("+field+" FROM ", m.Object, ")")
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
			return true, f.Emit("(EXTRACT(EPOCH FROM (", args[0], " - ", args[1], ")) / 86400)")
		}

	case types.OwnerDecimal, types.OwnerMath:
		if !m.IsStatic() || len(args) != 1 {
			return false, nil
		}
		switch m.Method.Name {
		case "Truncate":
			return true, f.Func("TRUNC", args[0])
		case "Log10":
			return true, f.Func("LOG", args[0])
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
			return true, f.Emit("SUBSTRING(", x, " FROM ", args[0], " + 1)")
		case 2:
			return true, f.Emit("SUBSTRING(", x, " FROM ", args[0], " + 1 FOR ", args[1], ")")
		}
	case "Remove":
		switch len(args) {
		case 1:
			return true, f.Func("LEFT", x, args[0])
		case 2:
			return true, f.Emit("OVERLAY(", x, " PLACING '' FROM ", args[0], " + 1 FOR ", args[1], ")")
		}
	case "IndexOf":
		if len(args) == 1 {
			return true, f.Emit("(STRPOS(", x, ", ", args[0], ") - 1)")
		}
	}
	return false, nil
}
