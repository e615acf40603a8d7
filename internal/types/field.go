package types

import "strings"

// ColumnMeta is the catalog information kept for a column.
// Only identifier encoding consults it.
type ColumnMeta struct {
	DataType  string
	MaxLength int
}

// IsBinary reports whether the column stores raw bytes.
func (m ColumnMeta) IsBinary() bool {
	switch strings.ToUpper(m.DataType) {
	case "RAW", "BLOB", "BINARY", "VARBINARY", "BYTEA", "LONG RAW":
		return true
	}
	return false
}

// Column references a column of an aliased source.
type Column struct {
	Alias     *Alias
	Meta      *ColumnMeta
	Name      string
	ValueType Type
}

func (*Column) Kind() NodeKind { return KindColumn }
func (c *Column) Type() Type   { return c.ValueType }
func (*Column) node()          {}
