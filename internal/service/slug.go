package service

import (
	"regexp"
	"strings"

	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var timeWithUnit = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*[A-Za-z.]+\s*$`)

// Unslug reverses a slug to the display name it was most likely built
// from. Only used for rows stored before slugs were persisted.
func Unslug(slug string) string {
	// a Caser is stateful, so one per call
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// DisplayTime drops a trailing unit: "40 mins" becomes "40"
func DisplayTime(t string) string {
	if m := timeWithUnit.FindStringSubmatch(t); m != nil {
		return m[1]
	}
	return strings.TrimSpace(t)
}

const imagePrefix = "/static/images/"

// FormatRecipe converts a stored recipe into the client-facing shape.
// Missing optional fields get defaults rather than failing the read.
func FormatRecipe(r *models.Recipe) types.Recipe {
	slug := r.Slug
	if slug == "" {
		slug = models.Slugify(r.Name)
	}
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = "Easy"
	}
	return types.Recipe{
		ID:               slug,
		RecipeID:         r.ID.String(),
		Title:            r.Name,
		Name:             r.Name,
		Cuisine:          r.Cuisine,
		Time:             DisplayTime(r.Time),
		Difficulty:       difficulty,
		Ingredients:      nonNil(r.Ingredients),
		BasicIngredients: nonNil(r.BasicIngredients),
		Steps:            nonNil(r.Steps),
		Alternatives:     nonNil(r.Alternatives),
		Img:              strings.TrimPrefix(r.Img, imagePrefix),
	}
}

// FormatRecipes formats a list, never returning nil
func FormatRecipes(recipes []models.Recipe) []types.Recipe {
	out := make([]types.Recipe, 0, len(recipes))
	for i := range recipes {
		out = append(out, FormatRecipe(&recipes[i]))
	}
	return out
}

func nonNil(l models.StringList) []string {
	if l == nil {
		return []string{}
	}
	return l
}

// escapeLike escapes LIKE wildcards; pair with ESCAPE '\'
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
