package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hellodocs/flashdeck/internal/flashcard"
)

var (
	boldText  = color.New(color.Bold)
	faintText = color.New(color.Faint)
)

// RenderCardList writes a one-line-per-card listing.
func RenderCardList(w io.Writer, cards []flashcard.Flashcard) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No flashcards found.")
		return
	}
	for _, card := range cards {
		_, _ = boldText.Fprintf(w, "#%d %s", card.ID, card.FrontContent)
		_, _ = faintText.Fprintf(w, "  [%s · %s · %s]\n", card.Category, card.DifficultyLevel, card.Language)
	}
	fmt.Fprintf(w, "\n%d card(s)\n", len(cards))
}

// RenderCard writes the full detail view of a single card.
func RenderCard(w io.Writer, card flashcard.Flashcard) {
	_, _ = boldText.Fprintf(w, "#%d %s\n", card.ID, card.FrontContent)
	fmt.Fprintln(w, card.BackContent)
	if card.ExampleCode != "" {
		fmt.Fprintf(w, "\n%s\n", card.ExampleCode)
	}
	fmt.Fprintln(w)
	_, _ = faintText.Fprintf(w, "category: %s\n", card.Category)
	_, _ = faintText.Fprintf(w, "difficulty: %s\n", card.DifficultyLevel)
	_, _ = faintText.Fprintf(w, "language: %s\n", card.Language)
	if tags := card.TagList(); len(tags) > 0 {
		_, _ = faintText.Fprintf(w, "tags: %s\n", strings.Join(tags, ", "))
	}
}
