package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hellodocs/flashdeck/internal/cli"
	"github.com/hellodocs/flashdeck/internal/flashcard"
)

func newBrowseCommand() *cobra.Command {
	var (
		difficulty string
		category   string
		language   string
		tag        string
		serverSide bool
	)
	command := &cobra.Command{
		Use:   "browse [query]",
		Short: "List and search flashcards",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			opts := flashcard.FilterOptions{
				DifficultyLevel: difficulty,
				Category:        category,
				Language:        language,
				Tag:             strings.ToLower(tag),
			}

			ctx := cmd.Context()
			var cards []flashcard.Flashcard
			if serverSide && !opts.IsZero() {
				// The server owns filtering semantics; text search stays
				// client-side either way.
				cards = client.GetWithFilters(ctx, opts)
				cards = flashcard.Filter(cards, query, flashcard.FilterOptions{})
			} else {
				cards = flashcard.Filter(client.GetAll(ctx), query, opts)
			}

			cli.RenderCardList(os.Stdout, cards)
			return nil
		},
	}
	command.Flags().StringVar(&difficulty, "difficulty", "", "filter by difficulty level")
	command.Flags().StringVar(&category, "category", "", "filter by category")
	command.Flags().StringVar(&language, "language", "", "filter by language")
	command.Flags().StringVar(&tag, "tag", "", "filter by tag")
	command.Flags().BoolVar(&serverSide, "remote-filter", false, "let the server apply the attribute filters")
	return command
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single flashcard",
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

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			card := client.GetByID(cmd.Context(), id)
			if card == nil {
				fmt.Printf("Flashcard %d not found\n", id)
				return nil
			}
			cli.RenderCard(os.Stdout, *card)
			return nil
		},
	}
}
