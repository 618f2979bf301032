package flashcard

import "strings"

// Filter returns the cards matching a free-text query and the set
// predicates, preserving input order. A card matches the query when the
// trimmed, case-insensitive query is a substring of its front text, back
// text, or any parsed tag token; an empty query matches everything.
// Predicates are exact-match AND conditions applied after text filtering.
func Filter(cards []Flashcard, query string, opts FilterOptions) []Flashcard {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]Flashcard, 0, len(cards))
	for _, card := range cards {
		if query != "" && !matchesQuery(card, query) {
			continue
		}
		if !matchesOptions(card, opts) {
			continue
		}
		filtered = append(filtered, card)
	}
	return filtered
}

func matchesQuery(card Flashcard, query string) bool {
	if strings.Contains(strings.ToLower(card.FrontContent), query) {
		return true
	}
	if strings.Contains(strings.ToLower(card.BackContent), query) {
		return true
	}
	for _, tag := range card.TagList() {
		if strings.Contains(tag, query) {
			return true
		}
	}
	return false
}

func matchesOptions(card Flashcard, opts FilterOptions) bool {
	if opts.DifficultyLevel != "" && card.DifficultyLevel != opts.DifficultyLevel {
		return false
	}
	if opts.Category != "" && card.Category != opts.Category {
		return false
	}
	if opts.Language != "" && card.Language != opts.Language {
		return false
	}
	if opts.Tag != "" {
		found := false
		for _, tag := range card.TagList() {
			if tag == opts.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
