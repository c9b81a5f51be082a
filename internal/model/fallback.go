package model

import "encoding/json"

// DefaultImage is used for recipes the provider returns without an image
const DefaultImage = "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=400"

// FallbackRecipes returns the sample recipes served while the recipe provider is unreachable.
// A new slice is built on every call so callers may modify the result.
func FallbackRecipes() []Recipe {
	return []Recipe{
		{
			ID:           json.RawMessage("1"),
			Name:         "Spaghetti Carbonara",
			Ingredients:  []string{"pasta", "eggs", "bacon", "parmesan", "black pepper"},
			Instructions: "Cook pasta, mix eggs with cheese, combine with hot pasta and bacon",
			PrepTime:     15,
			CookTime:     20,
			Servings:     4,
			Difficulty:   DifficultyMedium,
			Cuisine:      "Italian",
			Image:        "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=400",
		},
		{
			ID:           json.RawMessage("2"),
			Name:         "Chicken Stir Fry",
			Ingredients:  []string{"chicken breast", "vegetables", "soy sauce", "ginger", "garlic"},
			Instructions: "Stir fry chicken, add vegetables, season with soy sauce and spices",
			PrepTime:     10,
			CookTime:     15,
			Servings:     4,
			Difficulty:   DifficultyEasy,
			Cuisine:      "Asian",
			Image:        "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400",
		},
		{
			ID:           json.RawMessage("3"),
			Name:         "Simple Toast",
			Ingredients:  []string{"bread", "butter"},
			Instructions: "Toast bread and spread with butter",
			PrepTime:     2,
			CookTime:     3,
			Servings:     1,
			Difficulty:   DifficultyEasy,
			Cuisine:      "International",
			Image:        "https://images.unsplash.com/photo-1484723091739-30a097e8f929?w=400",
		},
		{
			ID:           json.RawMessage("4"),
			Name:         "Beef Wellington",
			Ingredients:  []string{"beef fillet", "puff pastry", "mushrooms", "shallots", "garlic", "prosciutto", "dijon mustard", "egg wash"},
			Instructions: "Prepare beef, wrap in mushroom mixture and prosciutto, encase in pastry, bake",
			PrepTime:     45,
			CookTime:     35,
			Servings:     6,
			Difficulty:   DifficultyHard,
			Cuisine:      "French",
			Image:        "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400",
		},
	}
}

// FallbackCuisines returns the cuisine names offered when the provider's list is unavailable
func FallbackCuisines() []string {
	return []string{"Italian", "Asian", "American", "Mexican", "Mediterranean", "Indian", "French", "Japanese", "Thai", "Greek"}
}

// FallbackJoke returns the joke served when the joke provider fails
func FallbackJoke() *Joke {
	return &Joke{
		Error: false,
		Type:  JokeTypeSingle,
		Joke:  "Why did the chef go to the doctor? Because he was feeling a little under the weather! 😄",
	}
}
