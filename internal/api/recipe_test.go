package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/types"
)

func TestListRecipes(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		path  string
		slugs []string
	}{
		{"all", "/api/recipes", []string{"tea", "chicken-biryani", "paneer-butter-masala", "spaghetti-aglio-e-olio"}},
		{"cuisine", "/api/recipes?cuisine=italian", []string{"spaghetti-aglio-e-olio"}},
		{"difficulty", "/api/recipes?difficulty=Hard", []string{"chicken-biryani"}},
		{"search", "/api/recipes?q=paneer", []string{"paneer-butter-masala"}},
		{"no match", "/api/recipes?cuisine=french", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, tt.path, nil, "")
			require.Equal(t, http.StatusOK, w.Code)
			var recipes []types.Recipe
			decode(t, w, &recipes)
			slugs := make([]string, 0, len(recipes))
			for _, r := range recipes {
				slugs = append(slugs, r.ID)
			}
			assert.ElementsMatch(t, tt.slugs, slugs)
		})
	}
}

func TestGetRecipe(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/recipes/tea", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var recipe types.Recipe
	decode(t, w, &recipe)
	assert.Equal(t, "tea", recipe.ID)
	assert.Equal(t, "Tea", recipe.Title)
	assert.Equal(t, "tea.jpg", recipe.Img)
	assert.Equal(t, []string{}, recipe.Alternatives)

	w = env.do(t, http.MethodGet, "/api/recipes/spaghetti-aglio-e-olio", nil, "")
	decode(t, w, &recipe)
	assert.Equal(t, "20", recipe.Time)
	assert.Equal(t, "Easy", recipe.Difficulty)

	w = env.do(t, http.MethodGet, "/api/recipes/lasagna", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Recipe not found"}`, w.Body.String())
}

func TestGetRecipeRecordsViewForSignedInUser(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "cook@example.com")

	for i := 0; i < 2; i++ {
		w := env.do(t, http.MethodGet, "/api/recipes/tea", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	}
	env.do(t, http.MethodGet, "/api/recipes/paneer-butter-masala", nil, "")

	var views int64
	require.NoError(t, env.db.Model(&models.RecipeView{}).Count(&views).Error)
	assert.Equal(t, int64(1), views)

	w := env.do(t, http.MethodGet, "/api/users/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var profile types.ProfileResponse
	decode(t, w, &profile)
	assert.Equal(t, int64(1), profile.Stats.RecipesViewed)
}

func TestSubstitutes(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/substitutes?ingredient=Milk", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp types.SubstitutesResponse
	decode(t, w, &resp)
	assert.Equal(t, "Milk", resp.Ingredient)
	assert.NotEmpty(t, resp.Substitutes)

	w = env.do(t, http.MethodGet, "/api/substitutes?ingredient=saffron", nil, "")
	decode(t, w, &resp)
	assert.Equal(t, []string{"similar ingredient", "canned substitute", "omit & adjust"}, resp.Substitutes)

	w = env.do(t, http.MethodGet, "/api/substitutes", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Ingredient is required"}`, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/recipes/paneer-butter-masala/substitutes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var perRecipe struct {
		ID          string              `json:"id"`
		Substitutes map[string][]string `json:"substitutes"`
	}
	decode(t, w, &perRecipe)
	assert.Equal(t, "paneer-butter-masala", perRecipe.ID)
	assert.Len(t, perRecipe.Substitutes, 5)
	assert.Contains(t, perRecipe.Substitutes, "paneer")

	w = env.do(t, http.MethodGet, "/api/recipes/lasagna/substitutes", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
