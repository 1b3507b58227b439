package types

// RecipeFilter narrows a recipe listing. Empty fields match everything.
type RecipeFilter struct {
	Cuisine    string
	Difficulty string
	Query      string
}

// Recipe is the client-facing shape of a recipe. ID is the slug the web
// client routes on; RecipeID is the stable storage identifier.
type Recipe struct {
	ID               string   `json:"id"`
	RecipeID         string   `json:"recipe_id"`
	Title            string   `json:"title"`
	Name             string   `json:"name"`
	Cuisine          string   `json:"cuisine"`
	Time             string   `json:"time"`
	Difficulty       string   `json:"difficulty"`
	Ingredients      []string `json:"ingredients"`
	BasicIngredients []string `json:"basic_ingredients"`
	Steps            []string `json:"steps"`
	Alternatives     []string `json:"alternatives"`
	Img              string   `json:"img"`
}

type VoiceResponse struct {
	Response string  `json:"response"`
	Recipe   *Recipe `json:"recipe,omitempty"`
}

type SubstitutesResponse struct {
	Ingredient  string   `json:"ingredient"`
	Substitutes []string `json:"substitutes"`
}
