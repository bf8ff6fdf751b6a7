package main

import (
	"fmt"
	"strings"

	"github.com/linskybing/residence-hub/internal/application"
	"github.com/linskybing/residence-hub/internal/config"
	"github.com/linskybing/residence-hub/internal/config/db"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/linskybing/residence-hub/internal/logging"
	"github.com/linskybing/residence-hub/internal/repository"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// openDB is swapped in tests.
var openDB = func() (*gorm.DB, error) {
	return db.Open(config.DbDriver)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "residentctl",
		Short:         "Administrative tasks for the residence hub",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
			logging.SetupWithWriter(cmd.ErrOrStderr(), config.LogLevel, "text")
		},
	}
	root.AddCommand(newMigrateCmd(), newCreateAdminCmd(), newCleanupCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDB()
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if err := db.Migrate(conn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}

func newCreateAdminCmd() *cobra.Command {
	var input user.CreateUserInput
	var fullName string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(input.Email) == "" || len(input.Password) < 6 {
				return fmt.Errorf("--email and a --password of at least 6 characters are required")
			}
			if fullName != "" {
				input.FullName = &fullName
			}

			svc, err := openServices()
			if err != nil {
				return err
			}
			admin, err := svc.User.CreateAdmin(input)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (id %d)\n", admin.Email, admin.UID)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&input.Password, "password", "", "admin password")
	cmd.Flags().StringVar(&input.FlatNumber, "flat", "Office", "flat number shown for the admin")
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	return cmd
}

func newCleanupCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete audit log entries older than the retention period",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openServices()
			if err != nil {
				return err
			}
			deleted, err := svc.Audit.CleanupOldLogs(days)
			if err != nil {
				return fmt.Errorf("cleanup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d audit log entries\n", deleted)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "retention in days")
	return cmd
}

func openServices() (*application.Services, error) {
	conn, err := openDB()
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := db.Migrate(conn); err != nil {
		return nil, err
	}
	return application.New(repository.NewRepositories(conn), application.Deps{}), nil
}
