package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hellodocs/flashdeck/internal/auth"
	"github.com/hellodocs/flashdeck/internal/progress"
)

func newProgressCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "progress",
		Short: "Inspect and manage guest progress",
	}
	command.AddCommand(
		newProgressStatusCommand(),
		newProgressMigrateCommand(),
		newProgressClearCommand(),
	)
	return command
}

func newProgressStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show how much guest progress is waiting to be migrated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ledger, err := loadLedger(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("%d of %d guest progress records used\n", ledger.Count(), progress.Limit)
			if !ledger.CanAddMore() {
				fmt.Println("Guest progress is full. Login to save your progress and keep reviewing.")
			}
			return nil
		},
	}
}

func newProgressMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Retry sending guest progress to the active account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := restoreSessionStore(cfg)
			if err != nil {
				return err
			}
			ledger, err := loadLedger(cfg)
			if err != nil {
				return err
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			authenticator := auth.NewAuthenticator(client, store, ledger)
			count, err := authenticator.RetryMigration(cmd.Context())
			if err != nil {
				return err
			}
			if err := saveLedger(cfg, ledger); err != nil {
				return err
			}

			if count == 0 {
				fmt.Println("No guest progress to migrate")
				return nil
			}
			fmt.Printf("%d progress records saved\n", count)
			return nil
		},
	}
}

func newProgressClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard all guest progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ledger, err := loadLedger(cfg)
			if err != nil {
				return err
			}
			count := ledger.Count()
			ledger.Clear()
			if err := saveLedger(cfg, ledger); err != nil {
				return err
			}
			fmt.Printf("Discarded %d guest progress records\n", count)
			return nil
		},
	}
}
