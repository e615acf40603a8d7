package relsql_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/zoobzio/relsql"
	"github.com/zoobzio/relsql/postgres"
	"github.com/zoobzio/relsql/sqlite"
)

func TestDialects(t *testing.T) {
	got := strings.Join(relsql.Dialects(), ",")
	for _, name := range []string{"mariadb", "mssql", "oracle", "postgres", "sqlite"} {
		if !strings.Contains(got, name) {
			t.Errorf("Expected %s to be registered, got %s", name, got)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"mariadb", "mssql", "oracle", "postgres", "sqlite"} {
		t.Run(name, func(t *testing.T) {
			r, err := relsql.Lookup(strings.ToUpper(name))
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", name, err)
			}
			if r.Name() != name {
				t.Errorf("Expected renderer %s, got %s", name, r.Name())
			}
		})
	}

	_, err := relsql.Lookup("db2")
	if !errors.Is(err, relsql.ErrUnknownDialect) {
		t.Errorf("Expected ErrUnknownDialect, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	relsql.Register("Custom", func() relsql.Renderer { return sqlite.New() })

	r, err := relsql.Lookup("custom")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if r.Name() != "sqlite" {
		t.Errorf("Expected the registered factory, got %s", r.Name())
	}
}

func TestRender(t *testing.T) {
	users := relsql.T("Users", "u")
	sel := relsql.From(users).Fields(relsql.Col(users, "Id", relsql.TypeInt)).MustBuild()

	result, err := relsql.Render("postgres", sel)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	direct, err := postgres.New().Render(sel)
	if err != nil {
		t.Fatalf("postgres Render() error = %v", err)
	}
	if result.SQL != direct.SQL {
		t.Errorf("Expected registry and direct renders to match:\n%s\n%s", result.SQL, direct.SQL)
	}

	if _, err := relsql.Render("nope", sel); err == nil {
		t.Error("Expected error for an unknown dialect")
	}
}

func TestRenderNil(t *testing.T) {
	if _, err := sqlite.New().Render(nil); err == nil {
		t.Error("Expected error rendering a nil tree")
	}
}

func TestRenderConcurrent(t *testing.T) {
	users := relsql.T("Users")
	sel := relsql.From(users).
		Fields(relsql.Col(users, "Id", relsql.TypeInt)).
		Where(relsql.Eq(relsql.Col(users, "Name", relsql.TypeString), relsql.P("name", relsql.TypeString))).
		OrderBy(relsql.Col(users, "Id", relsql.TypeInt)).
		Limit(5).
		MustBuild()

	want, err := relsql.Render("sqlite", sel)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 5*8)
	for _, name := range []string{"mariadb", "mssql", "oracle", "postgres", "sqlite"} {
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				result, err := relsql.Render(name, sel)
				if err != nil {
					errs <- err
					return
				}
				if name == "sqlite" && result.SQL != want.SQL {
					errs <- errors.New("concurrent render differs")
				}
			}(name)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
