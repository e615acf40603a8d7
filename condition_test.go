package relsql_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/relsql"
	"github.com/zoobzio/relsql/sqlite"
)

func TestAndOr(t *testing.T) {
	users := relsql.T("Users", "u")
	a := relsql.Eq(relsql.Col(users, "A", relsql.TypeInt), relsql.Lit(1))
	b := relsql.Eq(relsql.Col(users, "B", relsql.TypeInt), relsql.Lit(2))
	c := relsql.Eq(relsql.Col(users, "C", relsql.TypeInt), relsql.Lit(3))

	t.Run("single", func(t *testing.T) {
		if relsql.And(a) != relsql.Node(a) {
			t.Error("And with one operand should return it unchanged")
		}
	})

	t.Run("and folds left", func(t *testing.T) {
		got := renderWhere(t, users, relsql.And(a, b, c))
		want := `(((u."A" = 1) AND (u."B" = 2)) AND (u."C" = 3))`
		if got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	})

	t.Run("or inside and", func(t *testing.T) {
		got := renderWhere(t, users, relsql.And(relsql.Or(a, b), c))
		want := `(((u."A" = 1) OR (u."B" = 2)) AND (u."C" = 3))`
		if got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	})
}

func TestNot(t *testing.T) {
	users := relsql.T("Users", "u")
	active := relsql.Col(users, "Active", relsql.TypeBool)

	if got := renderWhere(t, users, relsql.Not(active)); got != `NOT u."Active" <> 0` {
		t.Errorf("Not(bool column) rendered %s", got)
	}
	eq := relsql.Eq(relsql.Col(users, "Id", relsql.TypeInt), relsql.Lit(1))
	if got := renderWhere(t, users, relsql.Not(eq)); got != `NOT (u."Id" = 1)` {
		t.Errorf("Not(comparison) rendered %s", got)
	}

	_, err := relsql.From(users).
		Fields(relsql.Lit(1)).
		Where(relsql.Not(relsql.Col(users, "Name", relsql.TypeString))).
		Render(sqlite.New())
	if !errors.Is(err, relsql.ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported for NOT over a string, got %v", err)
	}
}

func TestBooleanColumnAsPredicate(t *testing.T) {
	users := relsql.T("Users", "u")
	active := relsql.Col(users, "Active", relsql.TypeBool)

	if got := renderWhere(t, users, active); got != `u."Active" <> 0` {
		t.Errorf("bool column rendered %s", got)
	}
}

func TestPredicateAsValue(t *testing.T) {
	users := relsql.T("Users", "u")
	adult := relsql.Ge(relsql.Col(users, "Age", relsql.TypeInt), relsql.Lit(18))

	if got := renderValue(t, users, adult); got != `(CASE WHEN (u."Age" >= 18) THEN 1 ELSE 0 END)` {
		t.Errorf("predicate column rendered %s", got)
	}
}

func TestNullTests(t *testing.T) {
	users := relsql.T("Users", "u")
	email := relsql.Col(users, "Email", relsql.TypeString)

	if got := renderWhere(t, users, relsql.IsNull(email)); got != `u."Email" IS NULL` {
		t.Errorf("IsNull rendered %s", got)
	}
	if got := renderWhere(t, users, relsql.NotNull(email)); got != `u."Email" IS NOT NULL` {
		t.Errorf("NotNull rendered %s", got)
	}
}

func TestIn(t *testing.T) {
	users := relsql.T("Users", "u")
	id := relsql.Col(users, "Id", relsql.TypeInt)

	if got := renderWhere(t, users, relsql.In(id, relsql.Lit(1), relsql.P("other", relsql.TypeInt))); got != `u."Id" IN (1, :other)` {
		t.Errorf("In rendered %s", got)
	}
	if got := renderWhere(t, users, relsql.In(id)); got != "0 <> 0" {
		t.Errorf("empty In rendered %s", got)
	}
}

func TestBetween(t *testing.T) {
	users := relsql.T("Users", "u")
	age := relsql.Col(users, "Age", relsql.TypeInt)

	got := renderWhere(t, users, relsql.Between(age, relsql.P("lo", relsql.TypeInt), relsql.P("hi", relsql.TypeInt)))
	if got != `u."Age" BETWEEN :lo AND :hi` {
		t.Errorf("Between rendered %s", got)
	}
}

func TestIf(t *testing.T) {
	users := relsql.T("Users", "u")
	age := relsql.Col(users, "Age", relsql.TypeInt)

	cond := relsql.If(relsql.Ge(age, relsql.Lit(18)), relsql.Lit("adult"), relsql.Lit("minor"))
	if cond.Type() != relsql.TypeString {
		t.Errorf("Expected string result, got %v", cond.Type())
	}
	if got := renderValue(t, users, cond); got != `CASE WHEN (u."Age" >= 18) THEN 'adult' ELSE 'minor' END` {
		t.Errorf("If rendered %s", got)
	}
}
