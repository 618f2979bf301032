// Package assets renders flashcard decks to markdown through embedded
// templates, with an optional filesystem override.
package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"
)

//go:embed templates/flashcard-deck.md.go.tmpl
var fallbackDeckTemplate string

// DeckTemplate is the top-level data structure for deck templates.
type DeckTemplate struct {
	Title       string
	GeneratedAt time.Time
	Cards       []DeckCard
}

// DeckCard is a single card prepared for template rendering.
type DeckCard struct {
	ID          int
	Front       string
	Back        string
	Category    string
	Difficulty  string
	Language    string
	ExampleCode string
	Tags        []string
}

// WriteDeck renders the deck as markdown. templatePath may point to a
// custom template; when it is absent the embedded one is used.
func WriteDeck(output io.Writer, templatePath string, data DeckTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, fallbackDeckTemplate, "flashcard-deck.md.go.tmpl")
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
