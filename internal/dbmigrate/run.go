package dbmigrate

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"slices"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Commands accepted by Run.
var Commands = []string{"up", "down", "status", "version", "redo"}

func ValidCommand(command string) bool {
	return slices.Contains(Commands, command)
}

// Run applies a goose command to the Postgres kv_entries schema.
func Run(ctx context.Context, command string, dbURL string, migrationsDir string) error {
	if !ValidCommand(command) {
		return fmt.Errorf("unsupported migrate command %q", command)
	}
	if dbURL == "" {
		return fmt.Errorf("database URL is empty")
	}
	if migrationsDir == "" {
		migrationsDir = DefaultMigrationsDir
	}
	if info, err := os.Stat(migrationsDir); err != nil || !info.IsDir() {
		return fmt.Errorf("migrations directory %q not found", migrationsDir)
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, migrationsDir); err != nil {
		return fmt.Errorf("goose %s failed: %w", command, err)
	}

	return nil
}
