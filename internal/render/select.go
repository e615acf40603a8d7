package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zoobzio/relsql/internal/types"
)

// Query is a select rendered into the fragments a pagination composer
// arranges. Head and Body are complete; Order is the ORDER BY list without
// the keyword and is empty for unordered selects.
type Query struct {
	Select *types.Select
	Head   string
	Body   string
	Order  string
	Window Window
	Nested bool

	depth int
	inner int

	// names holds the output name of each column, empty when unnamed.
	names []string
	exprs []string
	order []string
}

// Line returns a line break indented level steps below the select's own
// position.
func (q *Query) Line(level int) string {
	return "\n" + strings.Repeat(" ", (q.depth+level)*indentSize)
}

// Projection returns the select list of a wrapper around the query. At the
// top level it is *; nested, it repeats the query's own columns under
// qualifier so the wrapper keeps the column count.
func (q *Query) Projection(f *Formatter, qualifier string) string {
	if !q.Nested || len(q.names) == 0 {
		return "*"
	}
	cols := make([]string, len(q.names))
	for i, name := range q.names {
		if name == "" {
			return "*"
		}
		cols[i] = qualifier + f.dialect.Column(name)
	}
	return strings.Join(cols, ", ")
}

// outputOrder restates the ORDER BY list in terms of output columns under
// qualifier, for ordering rows outside a DISTINCT derived table.
func (q *Query) outputOrder(f *Formatter, qualifier string) (string, error) {
	items := make([]string, 0, len(q.order))
	for i, expr := range q.order {
		j := slices.Index(q.exprs, expr)
		if j < 0 || q.names[j] == "" {
			return "", f.Unsupported("clause", "DISTINCT ordered by an expression outside the select list")
		}
		item := qualifier + f.dialect.Column(q.names[j])
		if q.Select.OrderBy[i].Descending {
			item += " DESC"
		}
		items = append(items, item)
	}
	return strings.Join(items, ", "), nil
}

// Plain returns the select with its ORDER BY and without pagination.
func (q *Query) Plain() string {
	s := q.Head + q.Body
	if q.Order != "" {
		s += q.Line(q.inner-q.depth) + "ORDER BY " + q.Order
	}
	return s
}

func (f *Formatter) visitSelect(s *types.Select, nested bool) error {
	w, err := windowOf(s)
	if err != nil {
		return err
	}
	paginated := w.Active()
	if paginated && f.dialect.Paginate == nil {
		return f.Unsupported("clause", "pagination")
	}

	f.declareAliases(s.From)

	q := &Query{Select: s, Window: w, Nested: nested, depth: f.depth}
	if paginated {
		f.depth += f.dialect.WrapDepth
		if s.Distinct {
			f.depth += f.dialect.DistinctWrapDepth
		}
	}
	q.inner = f.depth
	err = f.selectParts(s, q)
	f.depth = q.depth
	if err != nil {
		return err
	}

	if paginated {
		return f.dialect.Paginate(f, q)
	}
	f.Write(q.Plain())
	return nil
}

func (f *Formatter) selectParts(s *types.Select, q *Query) error {
	var err error
	q.Head, err = f.Capture(func() error { return f.writeHead(s, q) })
	if err != nil {
		return err
	}
	q.Body, err = f.Capture(func() error { return f.writeBody(s) })
	if err != nil {
		return err
	}
	q.Order, err = f.Capture(func() error { return f.writeOrder(s.OrderBy, q) })
	return err
}

// declareAliases names the aliases of a source in source order so the
// numbering follows the FROM clause rather than the column list.
func (f *Formatter) declareAliases(n types.Node) {
	switch s := n.(type) {
	case *types.Table:
		f.AliasName(s.Alias)
	case *types.Select:
		f.AliasName(s.Alias)
	case *types.Join:
		f.declareAliases(s.Left)
		f.declareAliases(s.Right)
	}
}

func (f *Formatter) writeHead(s *types.Select, q *Query) error {
	f.Write("SELECT ")
	if s.Distinct {
		f.Write("DISTINCT ")
	}
	if len(s.Columns) == 0 {
		f.Write("NULL")
		if q.Nested {
			f.writeAlias(f.dialect.Column("tmp"))
			q.names = append(q.names, "tmp")
		}
		return nil
	}
	// A wrapper that names the columns needs every column named.
	synthesize := q.Window.Active() && (q.Nested || s.Distinct)
	for i, c := range s.Columns {
		if i > 0 {
			f.Write(", ")
		}
		expr, err := f.Capture(func() error {
			_, err := f.VisitValue(c.Expr)
			return err
		})
		if err != nil {
			return err
		}
		f.Write(expr)

		name := c.Name
		switch col, isColumn := c.Expr.(*types.Column); {
		case name != "":
			if !impliesName(c) {
				f.writeAlias(f.dialect.Column(name))
			}
		case isColumn:
			name = col.Name
		case synthesize:
			name = fmt.Sprintf("c%d", i)
			f.writeAlias(f.dialect.Column(name))
		}
		q.names = append(q.names, name)
		q.exprs = append(q.exprs, expr)
	}
	return nil
}

func impliesName(c types.ColumnDeclaration) bool {
	col, ok := c.Expr.(*types.Column)
	return ok && col.Name == c.Name
}

func (f *Formatter) writeAlias(name string) {
	if name == "" {
		return
	}
	f.Write(" " + f.dialect.AliasPrefix + name)
}

func (f *Formatter) writeBody(s *types.Select) error {
	switch {
	case s.From != nil:
		f.NewLine(Same)
		f.Write("FROM ")
		if err := f.visitSource(s.From); err != nil {
			return err
		}
	case f.dialect.NoSource != "":
		f.NewLine(Same)
		f.Write(f.dialect.NoSource)
	}
	if s.Where != nil {
		f.NewLine(Same)
		f.Write("WHERE ")
		if _, err := f.VisitPredicate(s.Where); err != nil {
			return err
		}
	}
	if len(s.GroupBy) > 0 {
		f.NewLine(Same)
		f.Write("GROUP BY ")
		if err := f.join(s.GroupBy, ", "); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) writeOrder(order []types.OrderBy, q *Query) error {
	for i, o := range order {
		if i > 0 {
			f.Write(", ")
		}
		expr, err := f.Capture(func() error {
			_, err := f.VisitValue(o.Expr)
			return err
		})
		if err != nil {
			return err
		}
		f.Write(expr)
		if o.Descending {
			f.Write(" DESC")
		}
		q.order = append(q.order, expr)
	}
	return nil
}

func (f *Formatter) visitSource(n types.Node) error {
	switch s := n.(type) {
	case *types.Table:
		f.Write(f.dialect.Table(s.Name))
		f.writeAlias(f.AliasName(s.Alias))
		return nil
	case *types.Select:
		f.Write("(")
		if err := f.subquery(s); err != nil {
			return err
		}
		f.Write(")")
		f.writeAlias(f.AliasName(s.Alias))
		return nil
	case *types.Join:
		return f.visitJoin(s)
	}
	return SourceError{Kind: n.Kind()}
}

func (f *Formatter) visitJoin(j *types.Join) error {
	if (j.JoinType == types.CrossApply || j.JoinType == types.OuterApply) && !f.dialect.Apply {
		return f.Unsupported("join", j.JoinType.String())
	}
	if err := f.visitSource(j.Left); err != nil {
		return err
	}
	f.NewLine(Same)
	f.Write(j.JoinType.String() + " ")
	if err := f.visitSource(j.Right); err != nil {
		return err
	}
	if j.Condition == nil {
		return nil
	}
	f.NewLine(Inner)
	f.Write("ON ")
	_, err := f.VisitPredicate(j.Condition)
	f.Indent(Outer)
	return err
}
