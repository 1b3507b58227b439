package service_test

import (
	"context"
	"testing"

	"github.com/pageza/cookmate/backend/internal/service"
	"github.com/pageza/cookmate/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupVoiceService(t *testing.T, seed bool) *service.VoiceService {
	db := testhelpers.SetupTestDB(t)
	if seed {
		testhelpers.SeedRecipes(t, db)
	}
	return service.NewVoiceService(service.NewRecipeService(db))
}

func TestVoiceListsRecipes(t *testing.T) {
	svc := setupVoiceService(t, true)

	answer, err := svc.Answer(context.Background(), "Show me all recipes")
	require.NoError(t, err)
	assert.Equal(t, service.IntentList, answer.Intent)
	assert.Equal(t,
		"I found 4 recipes: Chicken Biryani (Indian), Paneer Butter Masala (Indian), Spaghetti Aglio e Olio (Italian), Tea (Indian)",
		answer.Response)
	assert.Nil(t, answer.Recipe)
}

func TestVoiceListEmptyCatalogue(t *testing.T) {
	svc := setupVoiceService(t, false)

	answer, err := svc.Answer(context.Background(), "list available recipes")
	require.NoError(t, err)
	assert.Equal(t, "I couldn't find any recipes yet.", answer.Response)
}

func TestVoiceDescribesDish(t *testing.T) {
	svc := setupVoiceService(t, true)

	answer, err := svc.Answer(context.Background(), "how to make tea")
	require.NoError(t, err)
	assert.Equal(t, service.IntentLookup, answer.Intent)
	require.NotNil(t, answer.Recipe)
	assert.Equal(t, "Tea", answer.Recipe.Name)
	assert.Equal(t,
		"Tea takes 10 mins. You'll need water, tea leaves, milk and other ingredients. First: Boil water. Then: Add tea leaves.",
		answer.Response)
}

func TestVoiceDescribesShortRecipe(t *testing.T) {
	svc := setupVoiceService(t, true)

	answer, err := svc.Answer(context.Background(), "spaghetti please")
	require.NoError(t, err)
	assert.Equal(t,
		"Spaghetti Aglio e Olio takes 20 minutes. You'll need spaghetti, garlic, olive oil and other ingredients. First: Boil pasta. Then: Sauté garlic.",
		answer.Response)

	answer, err = svc.Answer(context.Background(), "recipe for biryani")
	require.NoError(t, err)
	assert.Equal(t,
		"Chicken Biryani takes 60 mins. You'll need rice, chicken, yogurt. First: Marinate chicken. Then: Par-boil rice.",
		answer.Response)
}

func TestVoiceUnknownDish(t *testing.T) {
	svc := setupVoiceService(t, true)

	answer, err := svc.Answer(context.Background(), "how to make sushi")
	assert.ErrorIs(t, err, service.ErrNoRecipeMatch)
	require.NotNil(t, answer)
	assert.Equal(t, "Sorry, I couldn't find a recipe for 'sushi'.", answer.Response)
}

func TestVoiceHelp(t *testing.T) {
	svc := setupVoiceService(t, true)

	answer, err := svc.Answer(context.Background(), "please")
	require.NoError(t, err)
	assert.Equal(t, service.IntentHelp, answer.Intent)
	assert.Equal(t, service.VoiceHelpMessage, answer.Response)
}

func TestVoiceEmptyText(t *testing.T) {
	svc := setupVoiceService(t, true)

	_, err := svc.Answer(context.Background(), "   ")
	assert.ErrorIs(t, err, service.ErrEmptyQuery)
}

func TestDishFromQuery(t *testing.T) {
	assert.Equal(t, "tea", service.DishFromQuery("How to make tea?"))
	assert.Equal(t, "paneer butter masala", service.DishFromQuery("show me the recipe for paneer butter masala"))
	assert.Equal(t, "", service.DishFromQuery("recipes please"))
}
