// Command admin manages user access levels.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"gamereviews/internal/config"
	"gamereviews/internal/database"
	"gamereviews/internal/models"
	"gamereviews/internal/repository"
	"gamereviews/internal/service"

	"github.com/spf13/cobra"
)

// openFunc returns the user service and a release function.
type openFunc func() (*service.UserService, func(), error)

func main() {
	if err := newRootCmd(openFromConfig).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openFromConfig() (*service.UserService, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	release := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return service.NewUserService(repository.NewUserRepository(db)), release, nil
}

func newRootCmd(open openFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Manage game review user access levels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		levelCmd(open, "promote", "Grant admin access to a user", models.AccessLevelAdmin),
		levelCmd(open, "demote", "Revoke admin access from a user", models.AccessLevelUser),
		listAdminsCmd(open),
	)
	return root
}

func levelCmd(open openFunc, use, short, level string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <username>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, release, err := open()
			if err != nil {
				return err
			}
			defer release()

			username := args[0]
			if err := users.SetAccessLevel(cmd.Context(), username, level); err != nil {
				return fmt.Errorf("%s %s: %w", use, username, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now has %s access\n", username, level)
			return nil
		},
	}
}

func listAdminsCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list-admins",
		Short: "List users with admin access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, release, err := open()
			if err != nil {
				return err
			}
			defer release()

			admins, err := users.ListAdmins(cmd.Context())
			if err != nil {
				return err
			}
			printAdmins(cmd.OutOrStdout(), admins)
			return nil
		},
	}
}

func printAdmins(w io.Writer, admins []models.User) {
	if len(admins) == 0 {
		fmt.Fprintln(w, "No admins found")
		return
	}
	for _, a := range admins {
		fmt.Fprintf(w, "%s\t%s\n", a.Username, a.Name)
	}
}

// run executes the CLI with args; used by tests.
func run(ctx context.Context, open openFunc, out io.Writer, args ...string) error {
	cmd := newRootCmd(open)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd.ExecuteContext(ctx)
}
