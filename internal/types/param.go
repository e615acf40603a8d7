package types

// NamedValue is a late-bound parameter placeholder.
// It is immutable; conversions requested by a dialect are recorded on the
// rendered Param, never on the node.
type NamedValue struct {
	Name      string
	ValueType Type
}

func (*NamedValue) Kind() NodeKind { return KindNamedValue }
func (n *NamedValue) Type() Type   { return n.ValueType }
func (*NamedValue) node()          {}

// Conversion re-encodes a parameter value at bind time.
type Conversion interface {
	Convert(value any) (any, error)
}

// ConversionFunc adapts a function to Conversion.
type ConversionFunc func(value any) (any, error)

// Convert calls f(value).
func (f ConversionFunc) Convert(value any) (any, error) {
	return f(value)
}

// Param is a placeholder emitted into the SQL text.
type Param struct {
	Conversion Conversion
	Name       string
	Type       Type
}
