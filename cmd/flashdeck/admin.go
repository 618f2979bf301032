package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hellodocs/flashdeck/internal/cli"
	"github.com/hellodocs/flashdeck/internal/config"
	"github.com/hellodocs/flashdeck/internal/flashcard"
	"github.com/hellodocs/flashdeck/internal/session"
)

var errAdminRequired = errors.New("this command requires an ADMIN session")

func requireAdmin(cfg *config.Config) (*session.Store, error) {
	store, err := restoreSessionStore(cfg)
	if err != nil {
		return nil, err
	}
	if store.IsGuest() || !store.Current().IsAdmin() {
		return nil, errAdminRequired
	}
	return store, nil
}

func newAdminCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "admin",
		Short: "Manage the flashcard collection (ADMIN only)",
	}
	command.AddCommand(
		newAdminCreateCommand(),
		newAdminDeleteCommand(),
	)
	return command
}

func newAdminCreateCommand() *cobra.Command {
	var card flashcard.Flashcard
	command := &cobra.Command{
		Use:   "create",
		Short: "Create a flashcard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := requireAdmin(cfg)
			if err != nil {
				return err
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			created, err := client.Create(cmd.Context(), store.Token(), card)
			if err != nil {
				return err
			}
			fmt.Printf("Created flashcard %d\n\n", created.ID)
			cli.RenderCard(os.Stdout, created)
			return nil
		},
	}
	command.Flags().StringVar(&card.FrontContent, "front", "", "front content")
	command.Flags().StringVar(&card.BackContent, "back", "", "back content")
	command.Flags().StringVar(&card.Category, "category", "", "category")
	command.Flags().StringVar(&card.DifficultyLevel, "difficulty", flashcard.DifficultyBeginner, "difficulty level")
	command.Flags().StringVar(&card.Language, "language", flashcard.DefaultLanguage, "programming language")
	command.Flags().StringVar(&card.ExampleCode, "example-code", "", "example code snippet")
	command.Flags().StringVar(&card.Tags, "tags", "", "comma separated tags")
	_ = command.MarkFlagRequired("front")
	_ = command.MarkFlagRequired("back")
	return command
}

func newAdminDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid flashcard id %q", args[0])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := requireAdmin(cfg)
			if err != nil {
				return err
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			if err := client.Delete(cmd.Context(), store.Token(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted flashcard %d\n", id)
			return nil
		},
	}
}
