// Package export writes card sets to markdown deck files and optionally
// converts them to PDF.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mandolyte/mdtopdf"

	"github.com/hellodocs/flashdeck/internal/assets"
	"github.com/hellodocs/flashdeck/internal/flashcard"
)

// Deck prepares a card set for template rendering.
func Deck(title string, cards []flashcard.Flashcard) assets.DeckTemplate {
	deckCards := make([]assets.DeckCard, 0, len(cards))
	for _, card := range cards {
		deckCards = append(deckCards, assets.DeckCard{
			ID:          card.ID,
			Front:       card.FrontContent,
			Back:        card.BackContent,
			Category:    card.Category,
			Difficulty:  card.DifficultyLevel,
			Language:    card.Language,
			ExampleCode: card.ExampleCode,
			Tags:        card.TagList(),
		})
	}
	return assets.DeckTemplate{
		Title:       title,
		GeneratedAt: time.Now(),
		Cards:       deckCards,
	}
}

// WriteMarkdown renders the deck into outputDirectory/<name>.md and
// returns the written path.
func WriteMarkdown(outputDirectory, name, templatePath string, deck assets.DeckTemplate) (string, error) {
	if err := os.MkdirAll(outputDirectory, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDirectory, err)
	}

	outputFilename := filepath.Join(outputDirectory, name+".md")
	output, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", outputFilename, err)
	}
	defer func() {
		_ = output.Close()
	}()

	if err := assets.WriteDeck(output, templatePath, deck); err != nil {
		return "", fmt.Errorf("assets.WriteDeck(%s) > %w", outputFilename, err)
	}
	return outputFilename, nil
}

// ConvertMarkdownToPDF converts a markdown deck file to PDF next to it.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
