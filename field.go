package relsql

import (
	"github.com/zoobzio/relsql/internal/types"
)

// Col returns a column of source. source is a *Table or an aliased
// *Select; anything else yields a column with no alias.
func Col(source Node, name string, typ Type) *Column {
	return &types.Column{Alias: aliasOf(source), Name: name, ValueType: typ}
}

// ColMeta returns a column carrying schema metadata, which dialects use
// for type-aware comparisons.
func ColMeta(source Node, name string, typ Type, dataType string, maxLength int) *Column {
	c := Col(source, name, typ)
	c.Meta = &types.ColumnMeta{DataType: dataType, MaxLength: maxLength}
	return c
}

func aliasOf(source Node) *Alias {
	switch s := source.(type) {
	case *types.Table:
		return s.Alias
	case *types.Select:
		return s.Alias
	}
	return nil
}

// As declares expr as an output column named name.
func As(expr Node, name string) ColumnDeclaration {
	return ColumnDeclaration{Expr: expr, Name: name}
}

// Asc orders by expr ascending.
func Asc(expr Node) OrderBy { return OrderBy{Expr: expr} }

// Desc orders by expr descending.
func Desc(expr Node) OrderBy { return OrderBy{Expr: expr, Descending: true} }
