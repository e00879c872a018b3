package services

import (
	"strings"

	"finance-assistant-api/models"
)

// categoryKeywords is the classification dictionary. A slice, not a
// map: earlier sets win ties, so iteration order is part of the
// contract.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{models.CategoryFood, []string{"food", "restaurant", "hotel", "ate", "dinner", "lunch", "breakfast", "airport"}},
	{models.CategoryTransport, []string{"transport", "uber", "taxi", "bus", "train", "flight", "plane"}},
	{models.CategoryPersonal, []string{"clothes", "shirt", "shoes", "umbrella", "personal", "headset", "headphone"}},
	{models.CategoryHealthcare, []string{"medicine", "doctor", "hospital", "health"}},
	{models.CategoryEntertainment, []string{"movie", "entertainment", "game", "cinema"}},
	{models.CategoryShopping, []string{"grocery", "shopping", "market"}},
}

// ClassifyExpense maps a free-text description to a category by
// case-insensitive keyword membership. It always returns a valid
// category; descriptions matching nothing fall through to Other.
func ClassifyExpense(description string) string {
	description = strings.ToLower(description)
	for _, set := range categoryKeywords {
		for _, word := range set.keywords {
			if strings.Contains(description, word) {
				return set.category
			}
		}
	}
	return models.CategoryOther
}
