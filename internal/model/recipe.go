package model

import "encoding/json"

// Difficulty is derived from the provider's dish types, never supplied by it.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Recipe is the stable shape served to the front-end
type Recipe struct {
	ID           json.RawMessage `json:"id"`
	Name         string          `json:"name"`
	Ingredients  []string        `json:"ingredients"`
	Instructions string          `json:"instructions"`
	PrepTime     int             `json:"prepTime"`
	CookTime     int             `json:"cookTime"`
	Servings     int             `json:"servings"`
	Difficulty   Difficulty      `json:"difficulty"`
	Cuisine      string          `json:"cuisine"`
	Image        string          `json:"image"`
}

// RecipeFilter holds the query parameters accepted by the recipe listing
type RecipeFilter struct {
	Search     string
	Cuisine    string
	Difficulty string
	Offset     int
}

// Pagination describes the page a recipe listing belongs to
type Pagination struct {
	Offset  int  `json:"offset"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

// RecipeList is the response body of the recipe listing
type RecipeList struct {
	Recipes    []Recipe   `json:"recipes"`
	Pagination Pagination `json:"pagination"`
}
