// Package integration runs rendered queries against real databases.
package integration

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mariadb"
	"github.com/testcontainers/testcontainers-go/modules/mssql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Container wraps a running database container and a connection to it.
type Container struct {
	container testcontainers.Container
	db        *sql.DB
}

// Shared containers - lazily initialized
var (
	sharedPg      *Container
	sharedMariaDB *Container
	sharedMSSQL   *Container

	pgOnce      sync.Once
	mariadbOnce sync.Once
	mssqlOnce   sync.Once
)

// TestMain runs the tests and terminates the containers they started.
func TestMain(m *testing.M) {
	code := m.Run()

	ctx := context.Background()
	for _, c := range []*Container{sharedPg, sharedMariaDB, sharedMSSQL} {
		if c == nil {
			continue
		}
		if c.db != nil {
			_ = c.db.Close()
		}
		if c.container != nil {
			_ = c.container.Terminate(ctx)
		}
	}

	os.Exit(code)
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
}

// open connects with driver and waits for the server to accept queries.
func open(driver, connStr string, attempts int) *sql.DB {
	db, err := sql.Open(driver, connStr)
	if err != nil {
		log.Fatalf("Failed to connect with %s: %v", driver, err)
	}
	for i := 0; i < attempts; i++ {
		if err := db.Ping(); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	return db
}

// getPostgresContainer returns the shared PostgreSQL container, starting it if needed.
func getPostgresContainer(t *testing.T) *Container {
	t.Helper()
	skipShort(t)

	pgOnce.Do(func() {
		ctx := context.Background()

		container, err := postgres.Run(ctx,
			"docker.io/postgres:16-alpine",
			postgres.WithDatabase("relsql_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start postgres container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		sharedPg = &Container{container: container, db: open("pgx", connStr, 10)}
	})

	return sharedPg
}

// getMariaDBContainer returns the shared MariaDB container, starting it if needed.
func getMariaDBContainer(t *testing.T) *Container {
	t.Helper()
	skipShort(t)

	mariadbOnce.Do(func() {
		ctx := context.Background()

		container, err := mariadb.Run(ctx,
			"docker.io/mariadb:11",
			mariadb.WithDatabase("relsql_test"),
			mariadb.WithUsername("test"),
			mariadb.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("mariadbd: ready for connections").
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mariadb container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx, "parseTime=true")
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		sharedMariaDB = &Container{container: container, db: open("mysql", connStr, 30)}
	})

	return sharedMariaDB
}

// getMSSQLContainer returns the shared MSSQL container, starting it if needed.
func getMSSQLContainer(t *testing.T) *Container {
	t.Helper()
	skipShort(t)

	mssqlOnce.Do(func() {
		ctx := context.Background()

		container, err := mssql.Run(ctx,
			"mcr.microsoft.com/mssql/server:2022-latest",
			mssql.WithAcceptEULA(),
			mssql.WithPassword("Test@12345"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("SQL Server is now ready for client connections").
					WithStartupTimeout(120*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mssql container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		sharedMSSQL = &Container{container: container, db: open("sqlserver", connStr, 60)}
	})

	return sharedMSSQL
}
