package relsql_test

import (
	"strings"
	"testing"

	"github.com/zoobzio/relsql"
)

func TestIdentifierEscaping(t *testing.T) {
	tests := []struct {
		dialect string
		table   string
		column  string
		want    string
	}{
		{"sqlite", `Users"; DROP TABLE x; --`, `a"b`, "SELECT x.\"a\"\"b\"\nFROM \"Users\"\"; DROP TABLE x; --\" AS x"},
		{"postgres", `Users"`, `Name`, "SELECT x.\"Name\"\nFROM \"Users\"\"\" AS x"},
		{"mssql", `Users]; DROP TABLE x; --`, `a]b`, "SELECT x.[ab]\nFROM [Users; DROP TABLE x; --] AS x"},
		{"mariadb", "Users`; DROP TABLE x; --", "a`b", "SELECT x.`a``b`\nFROM `Users``; DROP TABLE x; --` AS x"},
		{"sqlite", "dbo.Users", "Id", "SELECT x.\"Id\"\nFROM \"dbo\".\"Users\" AS x"},
		{"oracle", "Users x; DROP TABLE y", `a"b`, "SELECT x.\"a\"\"b\"\nFROM \"Users x; DROP TABLE y\" x"},
		{"oracle", "[Sales].[Orders]", "Id", "SELECT x.Id\nFROM Sales.Orders x"},
	}
	for _, tt := range tests {
		t.Run(tt.dialect+"/"+tt.table, func(t *testing.T) {
			table := relsql.T(tt.table, "x")
			sel := relsql.From(table).Fields(relsql.Col(table, tt.column, relsql.TypeString)).MustBuild()
			result, err := relsql.Render(tt.dialect, sel)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if result.SQL != tt.want {
				t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", tt.want, result.SQL)
			}
		})
	}
}

func TestStringLiteralEscaping(t *testing.T) {
	users := relsql.T("Users", "u")
	name := relsql.Col(users, "Name", relsql.TypeString)
	payload := "'; DROP TABLE Users; --"

	for _, dialect := range []string{"sqlite", "postgres", "mssql", "mariadb", "oracle"} {
		t.Run(dialect, func(t *testing.T) {
			sel := relsql.From(users).Fields(name).Where(relsql.Eq(name, relsql.Lit(payload))).MustBuild()
			result, err := relsql.Render(dialect, sel)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(result.SQL, "'''; DROP TABLE Users; --'") {
				t.Errorf("Expected quotes doubled, got:\n%s", result.SQL)
			}
		})
	}
}

func TestValuesNeverInlined(t *testing.T) {
	users := relsql.T("Users", "u")
	name := relsql.Col(users, "Name", relsql.TypeString)

	for _, dialect := range []string{"sqlite", "postgres", "mssql", "mariadb", "oracle"} {
		t.Run(dialect, func(t *testing.T) {
			sel := relsql.From(users).Fields(name).Where(relsql.Eq(name, relsql.P("name", relsql.TypeString))).MustBuild()
			result, err := relsql.Render(dialect, sel)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if len(result.Params) != 1 {
				t.Fatalf("Expected one parameter, got %v", result.ParamNames())
			}
			args, err := result.Values(map[string]any{"name": "Robert'); DROP TABLE Students;--"})
			if err != nil {
				t.Fatalf("Values() error = %v", err)
			}
			if strings.Contains(result.SQL, "Robert") || args[0] != "Robert'); DROP TABLE Students;--" {
				t.Errorf("Value leaked into SQL or was altered: %s %v", result.SQL, args)
			}
		})
	}
}

func TestMaliciousNamesRejected(t *testing.T) {
	names := []string{
		"id; DROP TABLE users",
		"id--",
		"id/*",
		"id'",
		`id"`,
		"OR",
		"",
	}
	for _, name := range names {
		if _, err := relsql.TryP(name, relsql.TypeInt); err == nil {
			t.Errorf("TryP(%q) should fail", name)
		}
		if _, err := relsql.TryT("Users", name); err == nil {
			t.Errorf("TryT alias %q should fail", name)
		}
		if _, err := relsql.From(relsql.T("Users")).FieldAs(relsql.Lit(1), name).Build(); err == nil {
			t.Errorf("FieldAs(%q) should fail", name)
		}
	}
}
