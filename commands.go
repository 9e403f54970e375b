package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"makeyou-digital/backend/config"
	"makeyou-digital/backend/database"
	"makeyou-digital/backend/models"
	"makeyou-digital/backend/utils"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "makeyou",
		Short:        "MakeYou Digital backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(config.Load(cmd.Flags()))
		},
	}
	root.PersistentFlags().String("port", "", "HTTP port (overrides PORT)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(config.Load(cmd.Flags()))
			},
		},
		newSheetsCheckCommand(),
		newSeedCommand(),
		newHashPasswordCommand(),
	)
	return root
}

func newSheetsCheckCommand() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "sheets-check",
		Short: "Verify the Google Sheets credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load(cmd.Flags())
			if !cfg.SheetsEnabled() {
				return errors.New("sheets not configured: set GOOGLE_SHEET_ID, GOOGLE_SHEETS_CLIENT_EMAIL and GOOGLE_SHEETS_PRIVATE_KEY")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			sheet, err := utils.NewGoogleSheet(ctx, sheetsConfig(cfg))
			if err != nil {
				return err
			}
			title, tabs, err := sheet.Describe(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "spreadsheet: %s\n", title)
			for _, t := range tabs {
				fmt.Fprintf(out, "  tab: %s\n", t)
			}
			if !write {
				return nil
			}
			row := utils.ContactRow(models.ContactSubmission{
				Name:    "Sheets Check",
				Email:   "sheets-check@makeyou.online",
				Message: "Connectivity test row",
			}, time.Now(), cfg.BusinessLocation())
			if err := sheet.AppendRow(ctx, row); err != nil {
				return err
			}
			fmt.Fprintln(out, "test row appended")
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "append a test row")
	return cmd
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample leads into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load(cmd.Flags())
			if !cfg.DatabaseEnabled() {
				return errors.New("DATABASE_URL is required for seeding")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			pool, err := database.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := database.EnsureSchema(ctx, pool); err != nil {
				return err
			}
			n, err := database.SeedLeads(ctx, database.NewPgLeadStore(pool))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d leads\n", n)
			return err
		},
	}
}

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := utils.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
