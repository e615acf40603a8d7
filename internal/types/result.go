package types

import "fmt"

// QueryResult contains the rendered SQL and its parameters.
//
// For named dialects Params holds each parameter once, in first-use order.
// For positional dialects it holds one entry per placeholder occurrence.
type QueryResult struct {
	SQL        string
	Params     []Param
	Positional bool
}

// ParamNames returns the parameter names in Params order.
func (r *QueryResult) ParamNames() []string {
	names := make([]string, len(r.Params))
	for i, p := range r.Params {
		names[i] = p.Name
	}
	return names
}

// Values resolves values for every parameter, in Params order, applying
// pending conversions.
func (r *QueryResult) Values(values map[string]any) ([]any, error) {
	out := make([]any, len(r.Params))
	for i, p := range r.Params {
		v, ok := values[p.Name]
		if !ok {
			return nil, fmt.Errorf("missing value for parameter %q", p.Name)
		}
		if p.Conversion != nil {
			converted, err := p.Conversion.Convert(v)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
			}
			v = converted
		}
		out[i] = v
	}
	return out, nil
}
