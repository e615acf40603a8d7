package oracle

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/zoobzio/relsql/internal/render"
	"github.com/zoobzio/relsql/internal/types"
)

// ConvertUUID encodes id the way a column of the given data type and
// length stores it: 32 hex digits for binary columns and 32-character text
// columns, braces for 38-character text columns, canonical form otherwise.
func ConvertUUID(id uuid.UUID, dataType string, maxLength int) string {
	if (types.ColumnMeta{DataType: dataType}).IsBinary() {
		return hex.EncodeToString(id[:])
	}
	switch maxLength {
	case 32:
		return hex.EncodeToString(id[:])
	case 38:
		return "{" + id.String() + "}"
	}
	return id.String()
}

// UUIDConversion re-encodes a bound UUID for a column with the given data
// type and length. It is attached to parameters compared against such a
// column and applied when the value is bound.
type UUIDConversion struct {
	DataType  string
	MaxLength int
}

// Convert accepts a uuid.UUID, its string form or its 16 raw bytes.
func (c UUIDConversion) Convert(value any) (any, error) {
	var id uuid.UUID
	switch v := value.(type) {
	case uuid.UUID:
		id = v
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		id = parsed
	case []byte:
		parsed, err := uuid.FromBytes(v)
		if err != nil {
			return nil, err
		}
		id = parsed
	default:
		return nil, fmt.Errorf("cannot convert %T to uuid", value)
	}
	return ConvertUUID(id, c.DataType, c.MaxLength), nil
}

// uuidEquality compares a catalogued column with a UUID literal or
// parameter case-insensitively, encoding the value the way the column
// stores it.
func uuidEquality(f *render.Formatter, b *types.Binary) (bool, error) {
	column, value, columnLeft := uuidOperands(b)
	if column == nil {
		return false, nil
	}

	var operand func() error
	switch v := value.(type) {
	case *types.Constant:
		id := v.Value.(uuid.UUID)
		encoded := ConvertUUID(id, column.Meta.DataType, column.Meta.MaxLength)
		operand = func() error {
			f.Write(render.QuoteString(encoded))
			return nil
		}
	case *types.NamedValue:
		conv := UUIDConversion{DataType: column.Meta.DataType, MaxLength: column.Meta.MaxLength}
		operand = func() error {
			f.WriteParam(v, conv)
			return nil
		}
	}
	side := func() error {
		_, err := f.Visit(column)
		return err
	}

	first, second := side, operand
	if !columnLeft {
		first, second = operand, side
	}
	f.Write("(LOWER(")
	if err := first(); err != nil {
		return true, err
	}
	f.Write(") " + b.Op.String() + " LOWER(")
	if err := second(); err != nil {
		return true, err
	}
	f.Write("))")
	return true, nil
}

// uuidOperands finds a column with catalog metadata on one side and a UUID
// constant or UUID named value on the other.
func uuidOperands(b *types.Binary) (*types.Column, types.Node, bool) {
	if c, ok := b.Left.(*types.Column); ok && c.Meta != nil && isUUIDValue(b.Right) {
		return c, b.Right, true
	}
	if c, ok := b.Right.(*types.Column); ok && c.Meta != nil && isUUIDValue(b.Left) {
		return c, b.Left, false
	}
	return nil, nil, false
}

func isUUIDValue(n types.Node) bool {
	switch v := n.(type) {
	case *types.Constant:
		_, ok := v.Value.(uuid.UUID)
		return ok
	case *types.NamedValue:
		return v.ValueType == types.TypeUUID
	}
	return false
}
