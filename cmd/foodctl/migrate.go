package main

import (
	"strconv"

	"foodbridge/internal/errors"
	"foodbridge/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		newMigrateUpCmd(),
		newMigrateDownCmd(),
		newMigrateVersionCmd(),
		newMigrateForceCmd(),
	)

	return cmd
}

// withMigrator opens the database and hands a migrator over it to run.
func withMigrator(cmd *cobra.Command, run func(m *migrate.Migrate) error) error {
	var db *gorm.DB

	return withApp(cmd.Context(), nil, func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "failed to get sql.DB")
		}

		m, err := migrations.New(sqlDB)
		if err != nil {
			return err
		}

		runErr := run(m)
		sourceErr, dbErr := m.Close()

		return errors.Join(runErr, sourceErr, dbErr)
	}, &db)
}

func newMigrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *migrate.Migrate) error {
				if err := m.Up(); err != nil {
					if errors.Is(err, migrate.ErrNoChange) {
						cmd.Println("schema is up to date")

						return nil
					}

					return errors.Wrap(err, "migrate up")
				}
				cmd.Println("migrations applied")

				return nil
			})
		},
	}
}

func newMigrateDownCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *migrate.Migrate) error {
				if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
					return errors.Wrap(err, "migrate down")
				}
				cmd.Printf("rolled back %d migration(s)\n", steps)

				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newMigrateVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					cmd.Println("no migrations applied")

					return nil
				}
				if err != nil {
					return errors.Wrap(err, "read schema version")
				}
				cmd.Printf("version %d (dirty: %t)\n", version, dirty)

				return nil
			})
		},
	}
}

func newMigrateForceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "force VERSION",
		Short: "Mark VERSION as applied without running it, clearing the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid version %q", args[0])
			}

			return withMigrator(cmd, func(m *migrate.Migrate) error {
				return errors.Wrap(m.Force(version), "migrate force")
			})
		},
	}
}
