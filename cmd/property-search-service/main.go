package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"property-search-service/internal"
	"property-search-service/pkg/migrate"

	"github.com/spf13/cobra"
)

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "property-search-service",
		Short: "Property search REST API",
		// без подкоманды запускаем сервер
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(envFile)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to .env file (default: ./.env if present)")

	rootCmd.AddCommand(serveCmd(&envFile), migrateCmd(&envFile))

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Command failed: %v", err)
	}
}

func serve(envFile string) error {
	application, err := internal.NewApp(envFile)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	if err := application.Run(); err != nil {
		return fmt.Errorf("application run failed: %w", err)
	}
	return nil
}

func serveCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(*envFile)
		},
	}
}

func migrateCmd(envFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	withRunner := func(fn func(r *internal.MigrationRunner) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			runner, err := internal.NewMigrationRunner(*envFile, os.Stderr)
			if err != nil {
				return err
			}
			defer runner.Close()
			return fn(runner)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withRunner(func(r *internal.MigrationRunner) error {
				applied, err := r.Up()
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					fmt.Println("No pending migrations.")
					return nil
				}
				for _, mg := range applied {
					fmt.Printf("Applied %s  %s\n", mg.Version, mg.Name)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last applied migration",
			RunE: withRunner(func(r *internal.MigrationRunner) error {
				mg, err := r.Down()
				if errors.Is(err, migrate.ErrNoAppliedMigrations) {
					fmt.Println("No migrations have been applied yet.")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Printf("Rolled back %s  %s\n", mg.Version, mg.Name)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show status of all migrations",
			RunE: withRunner(func(r *internal.MigrationRunner) error {
				statuses, err := r.Status()
				if err != nil {
					return err
				}
				fmt.Printf("%-16s  %-30s  %-8s\n", "Version", "Name", "Status")
				for _, st := range statuses {
					status := "Pending"
					if st.Applied {
						status = "Applied"
					}
					fmt.Printf("%-16s  %-30s  %-8s\n", st.Version, st.Name, status)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "history",
			Short: "Show migration history",
			RunE: withRunner(func(r *internal.MigrationRunner) error {
				records, err := r.History()
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Println("No migrations have been applied yet.")
					return nil
				}
				fmt.Printf("%-16s  %-30s  %-24s\n", "Version", "Name", "Applied At")
				for _, rec := range records {
					fmt.Printf("%-16s  %-30s  %-24s\n", rec.Version, rec.Name, rec.AppliedAt.Format(time.RFC3339))
				}
				return nil
			}),
		},
	)

	return cmd
}
