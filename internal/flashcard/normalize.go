package flashcard

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Normalize coerces an arbitrary decoded record into a canonical Flashcard.
// Every field is defensively coerced so downstream code can treat all
// fields as present: missing text becomes "", an unparsable id becomes 0,
// difficulty defaults to BEGINNER and language to DefaultLanguage.
// Normalize never fails.
func Normalize(raw map[string]any) Flashcard {
	card := Flashcard{
		ID:              coerceID(raw["id"]),
		FrontContent:    coerceString(raw["frontContent"]),
		BackContent:     coerceString(raw["backContent"]),
		Category:        coerceString(raw["category"]),
		DifficultyLevel: coerceString(raw["difficultyLevel"]),
		ExampleCode:     coerceString(raw["exampleCode"]),
		Tags:            coerceString(raw["tags"]),
		Language:        coerceString(raw["language"]),
	}
	if card.DifficultyLevel == "" {
		card.DifficultyLevel = DifficultyBeginner
	}
	if card.Language == "" {
		card.Language = DefaultLanguage
	}
	return card
}

// UnmarshalJSON decodes a loosely-typed server record through Normalize,
// so every card arriving over the wire is canonical.
func (f *Flashcard) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	*f = Normalize(raw)
	return nil
}

func coerceID(v any) int {
	switch id := v.(type) {
	case float64:
		if math.IsNaN(id) || math.IsInf(id, 0) {
			return 0
		}
		return int(id)
	case int:
		return id
	case json.Number:
		n, err := id.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	case string:
		n, err := strconv.Atoi(id)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	default:
		return fmt.Sprintf("%v", s)
	}
}
