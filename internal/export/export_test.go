package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellodocs/flashdeck/internal/flashcard"
)

func TestDeck(t *testing.T) {
	cards := []flashcard.Flashcard{
		{
			ID:              1,
			FrontContent:    "front",
			BackContent:     "back",
			Category:        "Basics",
			DifficultyLevel: flashcard.DifficultyBeginner,
			Tags:            "Go, Basics",
			Language:        "go",
		},
	}

	deck := Deck("My Deck", cards)
	assert.Equal(t, "My Deck", deck.Title)
	assert.False(t, deck.GeneratedAt.IsZero())
	require.Len(t, deck.Cards, 1)
	assert.Equal(t, 1, deck.Cards[0].ID)
	assert.Equal(t, []string{"go", "basics"}, deck.Cards[0].Tags)
}

func TestWriteMarkdown(t *testing.T) {
	outputDirectory := filepath.Join(t.TempDir(), "exports")
	deck := Deck("My Deck", []flashcard.Flashcard{
		{ID: 1, FrontContent: "front", BackContent: "back"},
	})

	path, err := WriteMarkdown(outputDirectory, "deck", "", deck)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDirectory, "deck.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# My Deck")
	assert.Contains(t, string(content), "## front")
}

func TestConvertMarkdownToPDF(t *testing.T) {
	t.Run("rejects non-markdown input", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF("deck.txt")
		assert.ErrorContains(t, err, ".md extension")
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF(filepath.Join(t.TempDir(), "missing.md"))
		assert.Error(t, err)
	})

	t.Run("converts a deck file", func(t *testing.T) {
		dir := t.TempDir()
		markdownPath := filepath.Join(dir, "deck.md")
		require.NoError(t, os.WriteFile(markdownPath, []byte("# Deck\n\nSome content\n"), 0o644))

		pdfPath, err := ConvertMarkdownToPDF(markdownPath)
		require.NoError(t, err)
		assert.FileExists(t, pdfPath)
		assert.Equal(t, ".pdf", filepath.Ext(pdfPath))
	})
}
