package relsql

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/zoobzio/relsql/internal/types"
	"github.com/zoobzio/relsql/mariadb"
	"github.com/zoobzio/relsql/mssql"
	"github.com/zoobzio/relsql/oracle"
	"github.com/zoobzio/relsql/postgres"
	"github.com/zoobzio/relsql/sqlite"
)

// ErrUnknownDialect is returned by Lookup for names nothing registered.
var ErrUnknownDialect = errors.New("unknown dialect")

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Renderer{
		"mariadb":  func() Renderer { return mariadb.New() },
		"mssql":    func() Renderer { return mssql.New() },
		"oracle":   func() Renderer { return oracle.New() },
		"postgres": func() Renderer { return postgres.New() },
		"sqlite":   func() Renderer { return sqlite.New() },
	}
)

// Register makes a renderer constructor available to Lookup under name,
// replacing any previous registration.
func Register(name string, factory func() Renderer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = factory
}

// Lookup returns a new renderer for the named dialect. Names are matched
// case-insensitively.
func Lookup(name string) (Renderer, error) {
	registryMu.RLock()
	factory, ok := registry[strings.ToLower(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDialect, "lookup %q", name)
	}
	return factory(), nil
}

// Dialects returns the registered dialect names in sorted order.
func Dialects() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render compiles node with the named dialect.
func Render(dialect string, node types.Node) (*types.QueryResult, error) {
	r, err := Lookup(dialect)
	if err != nil {
		return nil, err
	}
	return r.Render(node)
}
