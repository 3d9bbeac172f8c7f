package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "apply or inspect the embedded schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: withDB(func(ctx context.Context, db *sql.DB) error {
		if err := migrations.Up(ctx, db); err != nil {
			return err
		}
		log.Info().Msg("migrations applied successfully")
		return nil
	}),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "roll back the most recent migration",
	Args:  cobra.NoArgs,
	RunE: withDB(func(ctx context.Context, db *sql.DB) error {
		if err := migrations.Down(ctx, db); err != nil {
			return err
		}
		log.Info().Msg("migration rolled back successfully")
		return nil
	}),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "print applied and pending migrations",
	Args:  cobra.NoArgs,
	RunE: withDB(func(ctx context.Context, db *sql.DB) error {
		return migrations.Status(ctx, db)
	}),
}

// withDB opens the Postgres database described by the PG_* environment
// through the instrumented pgx stdlib driver and hands it to fn.
func withDB(fn func(ctx context.Context, db *sql.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		pg, err := config.LoadPostgres()
		if err != nil {
			return err
		}

		db, err := otelsql.Open("pgx", pg.DSN())
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		ctx := cmd.Context()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}
		log.Info().
			Str("host", pg.Host).
			Int("port", pg.Port).
			Str("database", pg.Database).
			Msg("connected to database")

		return fn(ctx, db)
	}
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
