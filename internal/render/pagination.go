package render

import (
	"fmt"

	"github.com/zoobzio/relsql/internal/types"
)

// Window is the row range selected by skip and take: rows Skip through
// Skip+Take by 1-based ordinal, both ends inclusive.
type Window struct {
	Skip int64
	Take int64
}

// Active reports whether the window restricts the result at all.
func (w Window) Active() bool { return w.Take > 0 || w.Skip > 0 }

// Bounded reports whether the window has an upper bound.
func (w Window) Bounded() bool { return w.Take > 0 }

// Upper returns the inclusive upper bound.
func (w Window) Upper() int64 { return w.Skip + w.Take }

// Range returns the predicate restricting col to the window.
func (w Window) Range(col string) string {
	s := fmt.Sprintf("%s >= %d", col, w.Skip)
	if w.Bounded() {
		s += fmt.Sprintf(" AND %s <= %d", col, w.Upper())
	}
	return s
}

// Offset returns the number of rows a LIMIT/OFFSET clause skips.
func (w Window) Offset() int64 {
	return max(w.Skip, 1) - 1
}

// Limit returns the number of rows a LIMIT clause keeps.
func (w Window) Limit() int64 {
	return w.Upper() - max(w.Skip, 1) + 1
}

func windowOf(s *types.Select) (Window, error) {
	var w Window
	var err error
	if w.Skip, err = foldBound("skip", s.Skip); err != nil {
		return Window{}, err
	}
	if w.Take, err = foldBound("take", s.Take); err != nil {
		return Window{}, err
	}
	return w, nil
}

func foldBound(clause string, n types.Node) (int64, error) {
	if n == nil {
		return 0, nil
	}
	v, ok := types.FoldInt(n)
	if !ok {
		return 0, PaginationError{Clause: clause, Reason: "bound is not an integer constant"}
	}
	if v < 0 {
		return 0, PaginationError{Clause: clause, Reason: fmt.Sprintf("bound %d is negative", v)}
	}
	return v, nil
}

// RowNumber numbers the rows of the select with ROW_NUMBER() and filters
// an outer select on that number. A DISTINCT select is numbered one level
// out so the row number does not take part in the DISTINCT.
func RowNumber(f *Formatter, q *Query) error {
	d := f.Dialect()
	if d.Positional {
		return f.Unsupported("clause", "ROW_NUMBER pagination with positional parameters")
	}

	f.Write("SELECT " + q.Projection(f, "tp."))
	f.Write(q.Line(0) + "FROM (")
	if q.Select.Distinct {
		over, err := q.outputOrder(f, "dq.")
		if err != nil {
			return err
		}
		f.Write(q.Line(1) + "SELECT dq.*, " + rowNumber(d, over))
		f.Write(q.Line(1) + "FROM (")
		f.Write(q.Line(2) + q.Head + q.Body)
		f.Write(q.Line(1) + ") " + d.AliasPrefix + "dq")
	} else {
		f.Write(q.Line(1) + q.Head + ", " + rowNumber(d, q.Order))
		f.Write(q.Body)
	}
	f.Write(q.Line(0) + ") " + d.AliasPrefix + "tp")
	f.Write(q.Line(0) + "WHERE " + q.Window.Range("tp.rn"))
	if !q.Nested {
		f.Write(q.Line(0) + "ORDER BY tp.rn")
	}
	return nil
}

func rowNumber(d *Dialect, order string) string {
	if order == "" {
		order = d.RowNumberOrder
	}
	over := ""
	if order != "" {
		over = "ORDER BY " + order
	}
	return "ROW_NUMBER() OVER (" + over + ") " + d.AliasPrefix + "rn"
}

// LimitOffset returns a composer that appends LIMIT and OFFSET to the
// select. unbounded is the LIMIT written when only skip is set; empty
// omits LIMIT in that case.
func LimitOffset(unbounded string) func(*Formatter, *Query) error {
	return func(f *Formatter, q *Query) error {
		f.Write(q.Plain())
		switch {
		case q.Window.Bounded():
			f.Writef("%sLIMIT %d", q.Line(0), q.Window.Limit())
		case unbounded != "":
			f.Write(q.Line(0) + "LIMIT " + unbounded)
		}
		if offset := q.Window.Offset(); offset > 0 {
			f.Writef("%sOFFSET %d", q.Line(0), offset)
		}
		return nil
	}
}
