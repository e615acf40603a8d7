// Package benchmarks provides performance benchmarks for relsql.
package benchmarks

import (
	"testing"

	"github.com/zoobzio/relsql"
	"github.com/zoobzio/relsql/mssql"
	"github.com/zoobzio/relsql/oracle"
	"github.com/zoobzio/relsql/postgres"
	"github.com/zoobzio/relsql/sqlite"
)

func createBenchmarkCatalog(b *testing.B) *relsql.Catalog {
	b.Helper()

	c := relsql.NewCatalog("bench")
	define := func(table string, cols ...relsql.ColumnDef) {
		if err := c.Define(table, cols...); err != nil {
			b.Fatalf("Failed to define %s: %v", table, err)
		}
	}

	define("Users",
		relsql.Def("Id", "bigint"),
		relsql.Def("Username", "varchar(50)"),
		relsql.Def("Email", "varchar(255)"),
		relsql.Def("Age", "int"),
		relsql.Def("Active", "boolean"),
		relsql.Def("CreatedAt", "timestamp"),
	)
	define("Posts",
		relsql.Def("Id", "bigint"),
		relsql.Def("UserId", "bigint"),
		relsql.Def("Title", "varchar(200)"),
		relsql.Def("Views", "int"),
	)
	define("Orders",
		relsql.Def("Id", "bigint"),
		relsql.Def("UserId", "bigint"),
		relsql.Def("Total", "numeric(10,2)"),
		relsql.Def("Status", "varchar(20)"),
	)
	return c
}

func benchmarkRender(b *testing.B, r relsql.Renderer, node relsql.Node) {
	b.Helper()
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := r.Render(node); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSimpleSelect measures rendering a bare table select.
func BenchmarkSimpleSelect(b *testing.B) {
	c := createBenchmarkCatalog(b)
	sel := relsql.From(c.T("Users")).MustBuild()
	benchmarkRender(b, postgres.New(), sel)
}

// BenchmarkSelectWithFields measures SELECT with explicit columns.
func BenchmarkSelectWithFields(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	sel := relsql.From(users).
		Fields(c.C(users, "Id"), c.C(users, "Username"), c.C(users, "Email"), c.C(users, "Age")).
		MustBuild()
	benchmarkRender(b, postgres.New(), sel)
}

// BenchmarkSelectWithWhere measures SELECT with a parameterized predicate.
func BenchmarkSelectWithWhere(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	sel := relsql.From(users).
		Where(relsql.Eq(c.C(users, "Active"), relsql.P("active", relsql.TypeBool))).
		MustBuild()
	benchmarkRender(b, sqlite.New(), sel)
}

// BenchmarkSelectWithMultipleConditions measures nested AND/OR predicates.
func BenchmarkSelectWithMultipleConditions(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	sel := relsql.From(users).
		Where(relsql.And(
			c.C(users, "Active"),
			relsql.Or(
				relsql.Gt(c.C(users, "Age"), relsql.P("min_age", relsql.TypeInt)),
				relsql.StartsWith(c.C(users, "Username"), relsql.P("prefix", relsql.TypeString)),
			),
		)).
		MustBuild()
	benchmarkRender(b, sqlite.New(), sel)
}

// BenchmarkSelectWithJoin measures an inner join between two tables.
func BenchmarkSelectWithJoin(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	posts := c.T("Posts", "p")
	sel := relsql.From(users).
		InnerJoin(posts, relsql.Eq(c.C(users, "Id"), c.C(posts, "UserId"))).
		Fields(c.C(users, "Username"), c.C(posts, "Title")).
		MustBuild()
	benchmarkRender(b, postgres.New(), sel)
}

// BenchmarkPaginationLimitOffset measures LIMIT/OFFSET pagination.
func BenchmarkPaginationLimitOffset(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	sel := relsql.From(users).OrderBy(c.C(users, "Id")).Offset(20).Limit(10).MustBuild()
	benchmarkRender(b, postgres.New(), sel)
}

// BenchmarkPaginationRowNumber measures the ROW_NUMBER pagination wrapper.
func BenchmarkPaginationRowNumber(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	sel := relsql.From(users).OrderBy(c.C(users, "Id")).Offset(20).Limit(10).MustBuild()
	benchmarkRender(b, mssql.New(), sel)
}

// BenchmarkPaginationRownum measures the nested ROWNUM pagination form.
func BenchmarkPaginationRownum(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	sel := relsql.From(users).OrderBy(c.C(users, "Id")).Offset(20).Limit(10).MustBuild()
	benchmarkRender(b, oracle.New(), sel)
}

// BenchmarkAggregates measures grouped aggregates.
func BenchmarkAggregates(b *testing.B) {
	c := createBenchmarkCatalog(b)
	orders := c.T("Orders", "o")
	status := c.C(orders, "Status")
	total := c.C(orders, "Total")
	sel := relsql.From(orders).
		Fields(status).
		FieldAs(relsql.Count(), "Orders").
		FieldAs(relsql.Sum(total), "Revenue").
		FieldAs(relsql.Avg(total), "Average").
		GroupBy(status).
		MustBuild()
	benchmarkRender(b, postgres.New(), sel)
}

// BenchmarkConditional measures CASE WHEN rendering.
func BenchmarkConditional(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	age := c.C(users, "Age")
	band := relsql.If(relsql.Lt(age, relsql.Lit(18)), relsql.Lit("minor"),
		relsql.If(relsql.Lt(age, relsql.Lit(65)), relsql.Lit("adult"), relsql.Lit("senior")))
	sel := relsql.From(users).FieldAs(band, "Band").MustBuild()
	benchmarkRender(b, sqlite.New(), sel)
}

// BenchmarkBetween measures BETWEEN rendering.
func BenchmarkBetween(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	sel := relsql.From(users).
		Where(relsql.Between(c.C(users, "Age"), relsql.P("lo", relsql.TypeInt), relsql.P("hi", relsql.TypeInt))).
		MustBuild()
	benchmarkRender(b, postgres.New(), sel)
}

// BenchmarkSubquery measures IN and EXISTS subqueries.
func BenchmarkSubquery(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	posts := c.T("Posts", "p")
	orders := c.T("Orders", "o")

	authors := relsql.From(posts).Fields(c.C(posts, "UserId")).MustBuild()
	buyers := relsql.From(orders).Where(relsql.Eq(c.C(orders, "UserId"), c.C(users, "Id"))).MustBuild()
	sel := relsql.From(users).
		Where(relsql.And(relsql.InSelect(c.C(users, "Id"), authors), relsql.Exists(buyers))).
		MustBuild()
	benchmarkRender(b, postgres.New(), sel)
}

// BenchmarkComplexQuery measures a query combining most features.
func BenchmarkComplexQuery(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	orders := c.T("Orders", "o")

	sel := relsql.From(users).
		LeftJoin(orders, relsql.Eq(c.C(users, "Id"), c.C(orders, "UserId"))).
		Fields(c.C(users, "Username")).
		FieldAs(relsql.Sum(c.C(orders, "Total")), "Spent").
		Where(relsql.And(
			c.C(users, "Active"),
			relsql.Ge(c.C(users, "CreatedAt"), relsql.P("since", relsql.TypeTime)),
			relsql.Contains(c.C(users, "Email"), relsql.P("domain", relsql.TypeString)),
		)).
		GroupBy(c.C(users, "Username")).
		OrderByDesc(c.C(users, "Username")).
		Offset(40).
		Limit(20).
		MustBuild()

	for _, r := range []relsql.Renderer{postgres.New(), sqlite.New(), mssql.New(), oracle.New()} {
		b.Run(r.Name(), func(b *testing.B) {
			benchmarkRender(b, r, sel)
		})
	}
}

// BenchmarkBind measures binding a parameter map to rendered SQL.
func BenchmarkBind(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")
	age := c.C(users, "Age")
	minAge := relsql.P("min", relsql.TypeInt)
	sel := relsql.From(users).
		Where(relsql.Or(relsql.Gt(age, minAge), relsql.Eq(age, minAge))).
		MustBuild()
	result, err := sqlite.New().Render(sel)
	if err != nil {
		b.Fatal(err)
	}
	values := map[string]any{"min": 21}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := relsql.Bind(result, values); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkColumnCreation measures catalog column lookup.
func BenchmarkColumnCreation(b *testing.B) {
	c := createBenchmarkCatalog(b)
	users := c.T("Users", "u")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = c.C(users, "Email")
	}
}

// BenchmarkTableCreation measures table reference creation.
func BenchmarkTableCreation(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = relsql.T("Users", "u")
	}
}

// BenchmarkParamCreation measures parameter creation.
func BenchmarkParamCreation(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = relsql.P("user_id", relsql.TypeInt)
	}
}
