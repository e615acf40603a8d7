// Package testing provides test utilities for relsql.
package testing

import (
	"strings"
	"testing"

	"github.com/zoobzio/relsql"
)

// TestCatalog creates a catalog for testing.
// Includes Users, Posts, Orders and Products tables with Oracle-style
// data types, so Id columns stored as RAW(16) are typed as UUIDs.
func TestCatalog(t *testing.T) *relsql.Catalog {
	t.Helper()

	c := relsql.NewCatalog("test")
	define := func(table string, cols ...relsql.ColumnDef) {
		if err := c.Define(table, cols...); err != nil {
			t.Fatalf("Failed to define %s: %v", table, err)
		}
	}

	define("Users",
		relsql.Def("Id", "RAW(16)"),
		relsql.Def("Username", "VARCHAR2(50 CHAR)"),
		relsql.Def("Email", "VARCHAR2(255 CHAR)"),
		relsql.Def("Age", "NUMBER(3)"),
		relsql.ColumnDef{Name: "Active", DataType: "NUMBER(1)", ValueType: relsql.TypeBool},
		relsql.Def("CreatedAt", "DATE"),
	)
	define("Posts",
		relsql.Def("Id", "RAW(16)"),
		relsql.Def("UserId", "RAW(16)"),
		relsql.Def("Title", "VARCHAR2(200 CHAR)"),
		relsql.Def("Body", "CLOB"),
		relsql.Def("Views", "INTEGER"),
	)
	define("Orders",
		relsql.Def("Id", "INTEGER"),
		relsql.Def("UserId", "RAW(16)"),
		relsql.Def("Amount", "NUMBER(10,2)"),
		relsql.Def("Reference", "CHAR(36)"),
		relsql.Def("PlacedAt", "DATE"),
	)
	define("Products",
		relsql.Def("Id", "INTEGER"),
		relsql.Def("Name", "VARCHAR2(100 CHAR)"),
		relsql.Def("Price", "NUMBER(10,2)"),
		relsql.Def("Stock", "INTEGER"),
	)
	return c
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertRenders renders node with r and compares the SQL.
func AssertRenders(t *testing.T, r relsql.Renderer, node relsql.Node, expected string) *relsql.QueryResult {
	t.Helper()
	result, err := r.Render(node)
	if err != nil {
		t.Fatalf("%s: render failed: %v", r.Name(), err)
	}
	AssertSQL(t, expected, result.SQL)
	return result
}

// AssertParams checks that the param names match expected, in order.
func AssertParams(t *testing.T, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Errorf("Param count mismatch: expected %d, got %d\nExpected: %v\nActual: %v",
			len(expected), len(actual), expected, actual)
		return
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("Param %d mismatch: expected %s, got %s\nExpected: %v\nActual: %v",
				i, expected[i], actual[i], expected, actual)
		}
	}
}

// AssertContainsParam checks that a specific param is in the list.
func AssertContainsParam(t *testing.T, params []string, param string) {
	t.Helper()
	for _, p := range params {
		if p == param {
			return
		}
	}
	t.Errorf("Expected param %q not found in %v", param, params)
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}
