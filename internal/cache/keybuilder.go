package cache

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	NamespaceRecipes = "recipes"
	NamespaceRecipe  = "recipe"
)

// SearchKey builds the key for a recipe search. Empty search and cuisine are
// left out; offset is always present. Pairs are sorted by name so equal
// queries map to the same key regardless of how they were written.
func SearchKey(search, cuisine string, offset int) string {
	params := url.Values{}
	if search != "" {
		params.Set("query", search)
	}
	if cuisine != "" {
		params.Set("cuisine", cuisine)
	}
	params.Set("offset", strconv.Itoa(offset))
	return NamespaceRecipes + "?" + params.Encode()
}

// RecipeKey builds the key for a single recipe lookup.
func RecipeKey(id string) string {
	return NamespaceRecipe + "_" + id
}

// namespaceOf returns the metrics namespace a key belongs to.
func namespaceOf(key string) string {
	if i := strings.IndexAny(key, "?_"); i > 0 {
		return key[:i]
	}
	return key
}
