// Package flashcard provides the canonical flashcard model, normalization of
// loosely-typed server records, and client-side browse filtering.
package flashcard

import (
	"strings"
)

// Difficulty levels the backend is known to use. The field itself is
// free-form; these are only the canonical values.
const (
	DifficultyBeginner     = "BEGINNER"
	DifficultyIntermediate = "INTERMEDIATE"
	DifficultyAdvanced     = "ADVANCED"
)

// DefaultLanguage is assigned when a record carries no language label.
const DefaultLanguage = "java"

// Flashcard is the canonical client-side card. Instances are read-only
// copies of backend records; the client never writes them back.
type Flashcard struct {
	ID              int    `json:"id"`
	FrontContent    string `json:"frontContent"`
	BackContent     string `json:"backContent"`
	Category        string `json:"category"`
	DifficultyLevel string `json:"difficultyLevel"`
	ExampleCode     string `json:"exampleCode,omitempty"`
	Tags            string `json:"tags,omitempty"`
	Language        string `json:"language"`
}

// TagList parses the comma-separated tags field into trimmed lowercase
// tokens, dropping empty entries.
func (f Flashcard) TagList() []string {
	if f.Tags == "" {
		return nil
	}
	parts := strings.Split(f.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// FilterOptions are optional equality predicates. Zero-valued fields are
// not applied.
type FilterOptions struct {
	DifficultyLevel string
	Category        string
	Language        string
	Tag             string
}

// IsZero reports whether no predicate is set.
func (o FilterOptions) IsZero() bool {
	return o == FilterOptions{}
}
