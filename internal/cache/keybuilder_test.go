package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchKey(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		cuisine string
		offset  int
		want    string
	}{
		{name: "offset only", want: "recipes?offset=0"},
		{name: "search", search: "pasta", offset: 12, want: "recipes?offset=12&query=pasta"},
		{name: "all members sorted", search: "pasta", cuisine: "Italian", offset: 24, want: "recipes?cuisine=Italian&offset=24&query=pasta"},
		{name: "escaped", search: "mac & cheese", want: "recipes?offset=0&query=mac+%26+cheese"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchKey(tt.search, tt.cuisine, tt.offset))
		})
	}
}

func TestSearchKeyDistinct(t *testing.T) {
	assert.NotEqual(t, SearchKey("pasta", "", 0), SearchKey("", "pasta", 0))
	assert.NotEqual(t, SearchKey("pasta", "", 0), SearchKey("pasta", "", 12))
}

func TestRecipeKey(t *testing.T) {
	assert.Equal(t, "recipe_716429", RecipeKey("716429"))
}

func TestNamespaceOf(t *testing.T) {
	assert.Equal(t, NamespaceRecipes, namespaceOf(SearchKey("", "", 0)))
	assert.Equal(t, NamespaceRecipe, namespaceOf(RecipeKey("1")))
	assert.Equal(t, "other", namespaceOf("other"))
}
