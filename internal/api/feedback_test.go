package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedback(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/feedback", map[string]interface{}{
		"user":     "Cook@Example.com",
		"recipeId": "tea",
		"rating":   4,
		"spice":    2,
		"taste":    "lovely",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"message":"Feedback received"`)

	// anonymous feedback for an unknown recipe is still kept
	w = env.do(t, http.MethodPost, "/api/feedback", map[string]interface{}{"recipe": "mystery", "improve": "more salt"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/feedback?recipeId=tea", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Cook@Example.com", list[0]["user"])
	assert.Equal(t, float64(2), list[0]["spice"])

	w = env.do(t, http.MethodGet, "/api/feedback?recipe=mystery", nil, "")
	decode(t, w, &list)
	assert.Len(t, list, 1)

	w = env.do(t, http.MethodGet, "/api/feedback", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/feedback", "{", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackKeepsValuesAsSent(t *testing.T) {
	env := newTestEnv(t)
	long := strings.Repeat("needs more cardamom ", 10)

	tests := []struct {
		name  string
		body  string
		query string
	}{
		{"string rating", `{"recipeId":"tea","rating":"5"}`, "recipeId=tea"},
		{"numeric recipe id", `{"recipeId":7,"rating":4}`, "recipeId=7"},
		{"long descriptor", `{"recipe":"biryani","taste":"` + long + `","salt":true,"sweet":{"level":2}}`, "recipe=biryani"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/feedback", tt.body, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			w = env.do(t, http.MethodGet, "/api/feedback?"+tt.query, nil, "")
			require.Equal(t, http.StatusOK, w.Code)
			var list []map[string]json.RawMessage
			decode(t, w, &list)
			require.Len(t, list, 1)

			var sent map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(tt.body), &sent))
			for field, value := range sent {
				if field == "recipe" {
					field = "recipeId"
				}
				assert.JSONEq(t, string(value), string(list[0][field]), field)
			}
		})
	}
}
