package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookmate/backend/internal/testhelpers"
	"github.com/pageza/cookmate/backend/internal/types"
)

func TestFavoritesLifecycle(t *testing.T) {
	env := newTestEnv(t)
	testhelpers.CreateTestUser(t, env.db, "cook@example.com")
	const base = "/api/favorites?user=cook@example.com"

	w := env.do(t, http.MethodPost, base, map[string]string{"recipeId": "tea"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Favorite added"}`, w.Body.String())

	w = env.do(t, http.MethodPost, base, map[string]string{"recipeId": "tea"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Recipe already in favorites"}`, w.Body.String())

	w = env.do(t, http.MethodPost, base, map[string]string{"recipeId": "chicken-biryani"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, base, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var favs []types.Recipe
	decode(t, w, &favs)
	require.Len(t, favs, 2)
	assert.Equal(t, "tea", favs[0].ID)
	assert.Equal(t, "Tea", favs[0].Title)
	assert.Equal(t, "chicken-biryani", favs[1].ID)

	w = env.do(t, http.MethodDelete, "/api/favorites/tea?user=cook@example.com", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Favorite removed"}`, w.Body.String())

	w = env.do(t, http.MethodDelete, "/api/favorites/tea?user=cook@example.com", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Favorite not found"}`, w.Body.String())
}

func TestAddFavoriteErrors(t *testing.T) {
	env := newTestEnv(t)
	testhelpers.CreateTestUser(t, env.db, "cook@example.com")
	const base = "/api/favorites?user=cook@example.com"

	w := env.do(t, http.MethodPost, base, map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"recipeId is required"}`, w.Body.String())

	w = env.do(t, http.MethodPost, base, map[string]string{"recipeId": "lasagna"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Recipe not found"}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/favorites", map[string]string{"recipeId": "tea"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddFavoriteChecksIdentityBeforeBody(t *testing.T) {
	env := newTestEnv(t)
	testhelpers.CreateTestUser(t, env.db, "cook@example.com")

	w := env.do(t, http.MethodPost, "/api/favorites?user=ghost@example.com", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/favorites?user=ghost@example.com", "not json", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/favorites?user=cook@example.com", "not json", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestFavoritesAreScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "cook@example.com")
	testhelpers.CreateTestUser(t, env.db, "other@example.com")

	w := env.do(t, http.MethodPost, "/api/favorites", map[string]string{"recipeId": "tea"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/favorites?user=other@example.com", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/favorites",
		map[string]string{"user": "other@example.com", "recipeId": "tea"}, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
