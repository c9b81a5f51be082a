package service

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/pageza/recipe-finder/backend/internal/model"
)

const (
	defaultInstructions = "Instructions not available"
	defaultCuisine      = "International"
	defaultPrepTime     = 15
	defaultCookTime     = 20
	defaultServings     = 4
)

var (
	easyDishKeywords = []string{"salad", "soup", "sandwich"}
	hardDishKeywords = []string{"cake", "bread", "pastry"}
)

// TransformRecipe reshapes one provider recipe document. Missing or unusable
// fields are replaced by defaults; it never fails.
func TransformRecipe(raw json.RawMessage) model.Recipe {
	doc := gjson.ParseBytes(raw)

	return model.Recipe{
		ID:           recipeID(doc.Get("id")),
		Name:         doc.Get("title").String(),
		Ingredients:  ingredientNames(doc.Get("extendedIngredients")),
		Instructions: stringOr(doc.Get("instructions"), defaultInstructions),
		PrepTime:     positiveOr(doc.Get("preparationMinutes"), defaultPrepTime),
		CookTime:     positiveOr(doc.Get("cookingMinutes"), defaultCookTime),
		Servings:     positiveOr(doc.Get("servings"), defaultServings),
		Difficulty:   DeriveDifficulty(doc.Get("dishTypes.0").String()),
		Cuisine:      stringOr(doc.Get("cuisines.0"), defaultCuisine),
		Image:        stringOr(doc.Get("image"), model.DefaultImage),
	}
}

// TransformRecipes transforms a page of provider documents, keeping order
func TransformRecipes(raws []json.RawMessage) []model.Recipe {
	recipes := make([]model.Recipe, 0, len(raws))
	for _, raw := range raws {
		recipes = append(recipes, TransformRecipe(raw))
	}
	return recipes
}

// DeriveDifficulty maps the first dish type of a recipe to a difficulty
func DeriveDifficulty(dishType string) model.Difficulty {
	dishType = strings.ToLower(dishType)
	switch {
	case dishType == "":
		return model.DifficultyMedium
	case containsAny(dishType, easyDishKeywords):
		return model.DifficultyEasy
	case containsAny(dishType, hardDishKeywords):
		return model.DifficultyHard
	default:
		return model.DifficultyMedium
	}
}

// FilterByDifficulty keeps recipes whose difficulty matches, ignoring case.
// An empty difficulty or "All" keeps everything.
func FilterByDifficulty(recipes []model.Recipe, difficulty string) []model.Recipe {
	out := make([]model.Recipe, 0, len(recipes))
	if difficulty == "" || strings.EqualFold(difficulty, "all") {
		return append(out, recipes...)
	}
	for _, r := range recipes {
		if strings.EqualFold(string(r.Difficulty), difficulty) {
			out = append(out, r)
		}
	}
	return out
}

// ParseJoke reads a joke provider payload, rejecting jokes flagged as errors
// and jokes without the text their type needs.
func ParseJoke(raw json.RawMessage) (*model.Joke, error) {
	doc := gjson.ParseBytes(raw)

	joke := &model.Joke{
		Error:    doc.Get("error").Bool(),
		Category: doc.Get("category").String(),
		Type:     model.JokeType(doc.Get("type").String()),
		Joke:     doc.Get("joke").String(),
		Setup:    doc.Get("setup").String(),
		Delivery: doc.Get("delivery").String(),
		ID:       int(doc.Get("id").Int()),
		Lang:     doc.Get("lang").String(),
	}
	if joke.Error {
		return nil, ErrJokeRejected
	}
	if !joke.Usable() {
		return nil, ErrUnusableJoke
	}
	return joke, nil
}

func recipeID(v gjson.Result) json.RawMessage {
	switch v.Type {
	case gjson.Number, gjson.String:
		return json.RawMessage(v.Raw)
	default:
		return nil
	}
}

func ingredientNames(v gjson.Result) []string {
	names := make([]string, 0)
	for _, ing := range v.Array() {
		if name := ing.Get("name").String(); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func stringOr(v gjson.Result, fallback string) string {
	if v.Type == gjson.String && v.Str != "" {
		return v.Str
	}
	return fallback
}

// positiveOr returns v as an int when it is a number of at least one
func positiveOr(v gjson.Result, fallback int) int {
	if v.Type != gjson.Number {
		return fallback
	}
	if n := v.Int(); n > 0 {
		return int(n)
	}
	return fallback
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
