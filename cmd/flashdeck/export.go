package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hellodocs/flashdeck/internal/export"
	"github.com/hellodocs/flashdeck/internal/flashcard"
)

func newExportCommand() *cobra.Command {
	var (
		difficulty   string
		category     string
		language     string
		tag          string
		title        string
		name         string
		templatePath string
		toPDF        bool
	)
	command := &cobra.Command{
		Use:   "export [query]",
		Short: "Export flashcards to a markdown deck",
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
			cards := flashcard.Filter(client.GetAll(cmd.Context()), query, flashcard.FilterOptions{
				DifficultyLevel: difficulty,
				Category:        category,
				Language:        language,
				Tag:             strings.ToLower(tag),
			})
			if len(cards) == 0 {
				fmt.Println("No flashcards matched; nothing exported")
				return nil
			}

			deck := export.Deck(title, cards)
			markdownPath, err := export.WriteMarkdown(cfg.Outputs.ExportDirectory, name, templatePath, deck)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d cards to %s\n", len(cards), markdownPath)

			if toPDF {
				pdfPath, err := export.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return err
				}
				fmt.Printf("Converted to %s\n", pdfPath)
			}
			return nil
		},
	}
	command.Flags().StringVar(&difficulty, "difficulty", "", "filter by difficulty level")
	command.Flags().StringVar(&category, "category", "", "filter by category")
	command.Flags().StringVar(&language, "language", "", "filter by language")
	command.Flags().StringVar(&tag, "tag", "", "filter by tag")
	command.Flags().StringVar(&title, "title", "Flashcard deck", "deck title")
	command.Flags().StringVar(&name, "name", "deck", "output file name without extension")
	command.Flags().StringVar(&templatePath, "template", "", "custom deck template path")
	command.Flags().BoolVar(&toPDF, "pdf", false, "also convert the markdown deck to PDF")
	return command
}
