package relsql_test

import (
	"testing"

	"github.com/zoobzio/relsql"
	"github.com/zoobzio/relsql/sqlite"
)

func TestExistsSubquery(t *testing.T) {
	users := relsql.T("Users", "u")
	orders := relsql.T("Orders", "o")

	inner := relsql.From(orders).
		Where(relsql.Eq(relsql.Col(orders, "UserId", relsql.TypeInt), relsql.Col(users, "Id", relsql.TypeInt))).
		MustBuild()

	result := relsql.From(users).
		Fields(relsql.Col(users, "Id", relsql.TypeInt)).
		Where(relsql.Exists(inner)).
		MustRender(sqlite.New())

	expected := `SELECT u."Id"
FROM "Users" AS u
WHERE EXISTS(
  SELECT NULL AS "tmp"
  FROM "Orders" AS o
  WHERE (o."UserId" = u."Id")
)`
	if result.SQL != expected {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, result.SQL)
	}
}

func TestInSubquery(t *testing.T) {
	users := relsql.T("Users", "u")
	banned := relsql.T("Banned", "b")

	ids := relsql.From(banned).Fields(relsql.Col(banned, "UserId", relsql.TypeInt)).MustBuild()
	result := relsql.From(users).
		Fields(relsql.Col(users, "Id", relsql.TypeInt)).
		Where(relsql.Not(relsql.InSelect(relsql.Col(users, "Id", relsql.TypeInt), ids))).
		MustRender(sqlite.New())

	expected := `SELECT u."Id"
FROM "Users" AS u
WHERE NOT u."Id" IN (
  SELECT b."UserId"
  FROM "Banned" AS b
)`
	if result.SQL != expected {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, result.SQL)
	}
}

func TestSelectAsSource(t *testing.T) {
	orders := relsql.T("Orders")
	total := relsql.Sum(relsql.Col(orders, "Amount", relsql.TypeDecimal))

	totals := relsql.Subquery(orders).
		Fields(relsql.Col(orders, "CustomerId", relsql.TypeInt)).
		FieldAs(total, "Total").
		GroupBy(relsql.Col(orders, "CustomerId", relsql.TypeInt)).
		MustBuild()

	result := relsql.From(totals).
		Fields(relsql.Col(totals, "CustomerId", relsql.TypeInt)).
		Where(relsql.Gt(relsql.Col(totals, "Total", relsql.TypeDecimal), relsql.Lit(1000))).
		MustRender(sqlite.New())

	expected := `SELECT t0."CustomerId"
FROM (
  SELECT t1."CustomerId", SUM(t1."Amount") AS "Total"
  FROM "Orders" AS t1
  GROUP BY t1."CustomerId"
) AS t0
WHERE (t0."Total" > 1000)`
	if result.SQL != expected {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, result.SQL)
	}
}

func TestScalarSubquery(t *testing.T) {
	users := relsql.T("Users", "u")
	orders := relsql.T("Orders", "o")

	count := relsql.From(orders).
		Fields(relsql.Count()).
		Where(relsql.Eq(relsql.Col(orders, "UserId", relsql.TypeInt), relsql.Col(users, "Id", relsql.TypeInt))).
		MustBuild()

	result := relsql.From(users).
		FieldAs(relsql.ScalarOf(count, relsql.TypeInt), "OrderCount").
		MustRender(sqlite.New())

	expected := `SELECT (
  SELECT COUNT(*)
  FROM "Orders" AS o
  WHERE (o."UserId" = u."Id")
) AS "OrderCount"
FROM "Users" AS u`
	if result.SQL != expected {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, result.SQL)
	}
}

func TestNestedPaginationKeepsOuterOrder(t *testing.T) {
	orders := relsql.T("Orders", "o")
	id := relsql.Col(orders, "Id", relsql.TypeInt)

	page := relsql.From(orders).Fields(id).OrderBy(id).Limit(3).As(relsql.NamedAlias("p")).MustBuild()
	result := relsql.From(page).
		Fields(relsql.Col(page, "Id", relsql.TypeInt)).
		MustRender(sqlite.New())

	expected := `SELECT p."Id"
FROM (
  SELECT tp."Id"
  FROM (
    SELECT o."Id", ROW_NUMBER() OVER (ORDER BY o."Id") AS rn
    FROM "Orders" AS o
  ) AS tp
  WHERE tp.rn >= 0 AND tp.rn <= 3
) AS p`
	if result.SQL != expected {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, result.SQL)
	}
}
