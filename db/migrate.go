package db

import (
	"database/sql"
	"errors"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// RunMigrations applies pending schema migrations before the relational
// backend serves traffic. Any failure is fatal: running against a stale
// schema corrupts history rows.
func RunMigrations(postgresURL string) {
	if postgresURL == "" {
		log.Fatal("POSTGRES_URL not set in environment")
	}

	conn, err := sql.Open("postgres", postgresURL)
	if err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}
	defer conn.Close()

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		log.Fatalf("could not start postgres driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://db/migrations",
		"postgres", driver,
	)
	if err != nil {
		log.Fatalf("migration failed to start: %v", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("could not run up migrations: %v", err)
	}

	log.Println("migrations applied")
}
