package relsql

import "github.com/zoobzio/relsql/internal/types"

// Renderer defines the interface for SQL dialect-specific rendering.
// Implementations compile a tree to dialect SQL with late-bound parameters.
type Renderer interface {
	// Name returns the dialect name the renderer registers under.
	Name() string

	// Render compiles node to a QueryResult. A failing call returns no
	// partial SQL.
	Render(node types.Node) (*types.QueryResult, error)
}

// Binder is implemented by renderers that bind arguments their own way
// instead of through Bind.
type Binder interface {
	Bind(result *types.QueryResult, values map[string]any) ([]any, error)
}
