package relsql

import (
	"fmt"

	"github.com/zoobzio/relsql/internal/types"
)

// Builder provides a fluent API for constructing selects. The first
// error recorded stops further changes and is returned by Build.
type Builder struct {
	sel *types.Select
	err error
}

// From creates a select builder over source: a table, a join or an
// aliased select. A nil source builds a select with no FROM.
func From(source Node) *Builder {
	return &Builder{sel: &types.Select{From: source}}
}

// Subquery creates a builder for a select that will be used as a source,
// under a fresh alias.
func Subquery(source Node) *Builder {
	b := From(source)
	b.sel.Alias = types.NewAlias()
	return b
}

// GetSelect returns the select under construction.
func (b *Builder) GetSelect() *Select {
	return b.sel
}

// GetError returns the recorded error.
func (b *Builder) GetError() error {
	return b.err
}

// Fields appends columns that keep their own names.
func (b *Builder) Fields(exprs ...Node) *Builder {
	if b.err != nil {
		return b
	}
	for _, e := range exprs {
		if e == nil {
			b.err = fmt.Errorf("Fields() does not accept nil expressions")
			return b
		}
		b.sel.Columns = append(b.sel.Columns, types.ColumnDeclaration{Expr: e})
	}
	return b
}

// FieldAs appends a column declared under name.
func (b *Builder) FieldAs(expr Node, name string) *Builder {
	if b.err != nil {
		return b
	}
	if expr == nil {
		b.err = fmt.Errorf("FieldAs() does not accept nil expressions")
		return b
	}
	if !isValidSQLIdentifier(name) {
		b.err = fmt.Errorf("invalid column name: %q", name)
		return b
	}
	b.sel.Columns = append(b.sel.Columns, types.ColumnDeclaration{Expr: expr, Name: name})
	return b
}

// Where sets or adds a predicate. Repeated calls combine with AND.
func (b *Builder) Where(predicate Node) *Builder {
	if b.err != nil || predicate == nil {
		return b
	}
	if b.sel.Where == nil {
		b.sel.Where = predicate
	} else {
		b.sel.Where = And(b.sel.Where, predicate)
	}
	return b
}

// Join joins the current source to right.
func (b *Builder) Join(kind JoinType, right, on Node) *Builder {
	if b.err != nil {
		return b
	}
	if b.sel.From == nil {
		b.err = fmt.Errorf("Join() requires a source")
		return b
	}
	needsOn := kind == InnerJoin || kind == LeftOuterJoin || kind == RightOuterJoin
	if needsOn && on == nil {
		b.err = fmt.Errorf("%s requires a condition", kind)
		return b
	}
	if !needsOn && on != nil {
		b.err = fmt.Errorf("%s does not take a condition", kind)
		return b
	}
	b.sel.From = JoinOn(kind, b.sel.From, right, on)
	return b
}

// InnerJoin adds an INNER JOIN.
func (b *Builder) InnerJoin(right, on Node) *Builder { return b.Join(InnerJoin, right, on) }

// LeftJoin adds a LEFT OUTER JOIN.
func (b *Builder) LeftJoin(right, on Node) *Builder { return b.Join(LeftOuterJoin, right, on) }

// RightJoin adds a RIGHT OUTER JOIN.
func (b *Builder) RightJoin(right, on Node) *Builder { return b.Join(RightOuterJoin, right, on) }

// CrossJoin adds a CROSS JOIN.
func (b *Builder) CrossJoin(right Node) *Builder { return b.Join(CrossJoin, right, nil) }

// CrossApply adds a CROSS APPLY over a correlated select.
func (b *Builder) CrossApply(right *Select) *Builder { return b.Join(CrossApply, right, nil) }

// OuterApply adds an OUTER APPLY over a correlated select.
func (b *Builder) OuterApply(right *Select) *Builder { return b.Join(OuterApply, right, nil) }

// GroupBy appends grouping expressions.
func (b *Builder) GroupBy(exprs ...Node) *Builder {
	if b.err != nil {
		return b
	}
	b.sel.GroupBy = append(b.sel.GroupBy, exprs...)
	return b
}

// OrderBy appends ascending ordering.
func (b *Builder) OrderBy(exprs ...Node) *Builder {
	if b.err != nil {
		return b
	}
	for _, e := range exprs {
		b.sel.OrderBy = append(b.sel.OrderBy, Asc(e))
	}
	return b
}

// OrderByDesc appends descending ordering.
func (b *Builder) OrderByDesc(exprs ...Node) *Builder {
	if b.err != nil {
		return b
	}
	for _, e := range exprs {
		b.sel.OrderBy = append(b.sel.OrderBy, Desc(e))
	}
	return b
}

// Limit sets take, the size of the pagination window.
func (b *Builder) Limit(limit int) *Builder {
	if b.err != nil {
		return b
	}
	if limit < 0 {
		b.err = fmt.Errorf("Limit() requires a non-negative value, got %d", limit)
		return b
	}
	b.sel.Take = types.NewConstant(limit)
	return b
}

// Offset sets skip, the first row of the pagination window.
func (b *Builder) Offset(offset int) *Builder {
	if b.err != nil {
		return b
	}
	if offset < 0 {
		b.err = fmt.Errorf("Offset() requires a non-negative value, got %d", offset)
		return b
	}
	b.sel.Skip = types.NewConstant(offset)
	return b
}

// LimitExpr sets take to an expression, which renderers fold to a
// constant.
func (b *Builder) LimitExpr(expr Node) *Builder {
	if b.err != nil {
		return b
	}
	b.sel.Take = expr
	return b
}

// OffsetExpr sets skip to an expression, which renderers fold to a
// constant.
func (b *Builder) OffsetExpr(expr Node) *Builder {
	if b.err != nil {
		return b
	}
	b.sel.Skip = expr
	return b
}

// Distinct removes duplicate rows.
func (b *Builder) Distinct() *Builder {
	if b.err != nil {
		return b
	}
	b.sel.Distinct = true
	return b
}

// As sets the alias the select is known by when used as a source.
func (b *Builder) As(alias *Alias) *Builder {
	if b.err != nil {
		return b
	}
	b.sel.Alias = alias
	return b
}

// Build returns the constructed select or an error.
func (b *Builder) Build() (*Select, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.sel, nil
}

// MustBuild returns the select or panics on error.
func (b *Builder) MustBuild() *Select {
	sel, err := b.Build()
	if err != nil {
		panic(err)
	}
	return sel
}

// Render builds the select and renders it with r.
func (b *Builder) Render(r Renderer) (*QueryResult, error) {
	sel, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.Render(sel)
}

// MustRender builds and renders the select or panics on error.
func (b *Builder) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}
