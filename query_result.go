package relsql

import (
	"database/sql"

	"github.com/pkg/errors"
)

// Bind resolves values for the parameters of result in bind order,
// applying any conversion a renderer attached. Named dialects get one
// sql.Named per parameter; positional dialects get the raw values, one per
// placeholder.
func Bind(result *QueryResult, values map[string]any) ([]any, error) {
	if result == nil {
		return nil, errors.New("bind: nil result")
	}
	resolved, err := result.Values(values)
	if err != nil {
		return nil, errors.Wrap(err, "bind")
	}
	if result.Positional {
		return resolved, nil
	}
	args := make([]any, len(resolved))
	for i, p := range result.Params {
		args[i] = sql.Named(p.Name, resolved[i])
	}
	return args, nil
}

// BindWith binds through r when it implements Binder, otherwise through
// Bind.
func BindWith(r Renderer, result *QueryResult, values map[string]any) ([]any, error) {
	if b, ok := r.(Binder); ok {
		args, err := b.Bind(result, values)
		return args, errors.Wrapf(err, "bind %s", r.Name())
	}
	return Bind(result, values)
}
