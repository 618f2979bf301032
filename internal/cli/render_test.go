package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hellodocs/flashdeck/internal/flashcard"
)

func TestRenderCardList(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		output := &bytes.Buffer{}
		RenderCardList(output, nil)
		assert.Contains(t, output.String(), "No flashcards found.")
	})

	t.Run("lists each card with a count", func(t *testing.T) {
		output := &bytes.Buffer{}
		RenderCardList(output, sampleCards())

		assert.Contains(t, output.String(), "#1 What is a slice?")
		assert.Contains(t, output.String(), "#2 What is a channel?")
		assert.Contains(t, output.String(), "2 card(s)")
	})
}

func TestRenderCard(t *testing.T) {
	output := &bytes.Buffer{}
	RenderCard(output, flashcard.Flashcard{
		ID:              3,
		FrontContent:    "front",
		BackContent:     "back",
		Category:        "Basics",
		DifficultyLevel: flashcard.DifficultyBeginner,
		ExampleCode:     "x := 1",
		Tags:            "go, basics",
		Language:        "go",
	})

	assert.Contains(t, output.String(), "#3 front")
	assert.Contains(t, output.String(), "back")
	assert.Contains(t, output.String(), "x := 1")
	assert.Contains(t, output.String(), "category: Basics")
	assert.Contains(t, output.String(), "tags: go, basics")
}
