package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/testhelpers"
	"github.com/pageza/cookmate/backend/internal/types"
)

func TestPantryAddAndList(t *testing.T) {
	env := newTestEnv(t)
	testhelpers.CreateTestUser(t, env.db, "cook@example.com")

	w := env.do(t, http.MethodPost, "/api/pantry?user=cook@example.com",
		map[string]interface{}{"name": " milk ", "expiry": "3"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var added struct {
		Message string           `json:"message"`
		Item    types.PantryItem `json:"item"`
	}
	decode(t, w, &added)
	assert.Equal(t, "Item added", added.Message)
	assert.Equal(t, "milk", added.Item.Name)
	assert.Equal(t, 3, added.Item.DaysLeft)
	assert.Equal(t, added.Item.ID, added.Item.LegacyID)

	// defaults to a week when expiry is left out; the body "user" works too
	w = env.do(t, http.MethodPost, "/api/pantry",
		map[string]interface{}{"user": "cook@example.com", "name": "eggs"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, env.db.Create(&models.PantryItem{
		UserEmail: "cook@example.com",
		Name:      "paneer",
		Expiry:    5,
		AddedAt:   time.Now().Add(-49 * time.Hour),
	}).Error)

	w = env.do(t, http.MethodGet, "/api/pantry?user=cook@example.com", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []types.PantryItem
	decode(t, w, &items)
	require.Len(t, items, 3)

	byName := map[string]types.PantryItem{}
	for _, it := range items {
		byName[it.Name] = it
	}
	assert.Equal(t, 7, byName["eggs"].DaysLeft)
	assert.Equal(t, 3, byName["paneer"].DaysLeft)
	assert.Equal(t, "paneer", items[2].Name)
}

func TestPantryValidation(t *testing.T) {
	env := newTestEnv(t)
	testhelpers.CreateTestUser(t, env.db, "cook@example.com")

	tests := []struct {
		name    string
		body    interface{}
		message string
	}{
		{"missing name", map[string]interface{}{"expiry": 3}, "Name is required"},
		{"zero expiry", map[string]interface{}{"name": "milk", "expiry": 0}, "Expiry must be a positive integer"},
		{"fractional expiry", map[string]interface{}{"name": "milk", "expiry": 1.5}, "Expiry must be a positive integer"},
		{"word expiry", map[string]interface{}{"name": "milk", "expiry": "soon"}, "Expiry must be a positive integer"},
		{"malformed", "{", "Invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/pantry?user=cook@example.com", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestPantryIdentity(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "cook@example.com")
	testhelpers.CreateTestUser(t, env.db, "other@example.com")

	tests := []struct {
		name  string
		path  string
		token string
		code  int
	}{
		{"no identity", "/api/pantry", "", http.StatusUnauthorized},
		{"unknown user", "/api/pantry?user=ghost@example.com", "", http.StatusUnauthorized},
		{"query user", "/api/pantry?user=cook@example.com", "", http.StatusOK},
		{"bearer only", "/api/pantry", token, http.StatusOK},
		{"bearer matching user", "/api/pantry?user=Cook@Example.com", token, http.StatusOK},
		{"bearer for someone else", "/api/pantry?user=other@example.com", token, http.StatusUnauthorized},
		{"bad bearer", "/api/pantry?user=cook@example.com", "garbage", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, tt.path, nil, tt.token)
			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
			}
		})
	}
}

func TestPantryAddChecksIdentityBeforeBody(t *testing.T) {
	env := newTestEnv(t)
	testhelpers.CreateTestUser(t, env.db, "cook@example.com")

	for _, body := range []interface{}{nil, "{", "[1,2]"} {
		w := env.do(t, http.MethodPost, "/api/pantry?user=ghost@example.com", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

		w = env.do(t, http.MethodPost, "/api/pantry", body, "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = env.do(t, http.MethodPost, "/api/pantry?user=cook@example.com", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestPantryDelete(t *testing.T) {
	env := newTestEnv(t)
	testhelpers.CreateTestUser(t, env.db, "cook@example.com")
	testhelpers.CreateTestUser(t, env.db, "other@example.com")

	w := env.do(t, http.MethodPost, "/api/pantry?user=cook@example.com",
		map[string]interface{}{"name": "milk", "expiry": 3}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var added struct {
		Item types.PantryItem `json:"item"`
	}
	decode(t, w, &added)
	path := "/api/pantry/" + added.Item.ID.String()

	w = env.do(t, http.MethodDelete, path+"?user=other@example.com", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Item not found"}`, w.Body.String())

	w = env.do(t, http.MethodDelete, "/api/pantry/not-an-id?user=cook@example.com", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, path+"?user=cook@example.com", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Item deleted"}`, w.Body.String())

	w = env.do(t, http.MethodDelete, path+"?user=cook@example.com", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
