package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sschier-sketch/folio-api/internal/db"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Folio database migration tool",
	}

	rootCmd.AddCommand(upCmd(), pingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the schema to the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close(cmd.Context())

			if _, err := conn.Exec(cmd.Context(), db.Schema); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}

			fmt.Println("schema applied")
			return nil
		},
	}
}

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check database connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close(cmd.Context())

			if err := conn.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("database unreachable: %w", err)
			}

			fmt.Println("ok")
			return nil
		},
	}
}

func connect(ctx context.Context) (*pgx.Conn, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return pgx.Connect(ctx, dsn)
}
