package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/types"
)

const VoiceHelpMessage = "I can help you find recipes. Try saying 'show me all recipes' or ask about a specific dish like tea or biryani."

var (
	listKeywords   = []string{"recipe", "show", "list", "what"}
	listQualifiers = []string{"all", "available", "show me"}
	fillerPhrases  = regexp.MustCompile(`\b(how to make|recipes?|show|me|for|the|please)\b`)
	bareNumber     = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// VoiceIntent is the branch the matcher took
type VoiceIntent string

const (
	IntentList   VoiceIntent = "list"
	IntentLookup VoiceIntent = "lookup"
	IntentHelp   VoiceIntent = "help"
)

// VoiceAnswer is what the assistant says back
type VoiceAnswer struct {
	Intent   VoiceIntent
	Response string
	Recipe   *models.Recipe
}

// VoiceService is a rule-based matcher over the recipe catalogue
type VoiceService struct {
	recipes IRecipeService
}

// Ensure VoiceService implements IVoiceService
var _ IVoiceService = (*VoiceService)(nil)

func NewVoiceService(recipes IRecipeService) *VoiceService {
	return &VoiceService{recipes: recipes}
}

// Answer classifies text as a listing request, a dish lookup or neither.
// A failed lookup returns the spoken reply together with ErrNoRecipeMatch.
func (s *VoiceService) Answer(ctx context.Context, text string) (*VoiceAnswer, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil, ErrEmptyQuery
	}

	if containsAny(text, listKeywords) && containsAny(text, listQualifiers) {
		recipes, err := s.recipes.List(ctx, types.RecipeFilter{})
		if err != nil {
			return nil, err
		}
		return &VoiceAnswer{Intent: IntentList, Response: summarize(recipes)}, nil
	}

	dish := DishFromQuery(text)
	if dish == "" {
		return &VoiceAnswer{Intent: IntentHelp, Response: VoiceHelpMessage}, nil
	}

	recipe, err := s.recipes.FindByName(ctx, dish)
	if errors.Is(err, ErrRecipeNotFound) {
		return &VoiceAnswer{
			Intent:   IntentLookup,
			Response: fmt.Sprintf("Sorry, I couldn't find a recipe for '%s'.", dish),
		}, ErrNoRecipeMatch
	}
	if err != nil {
		return nil, err
	}

	return &VoiceAnswer{Intent: IntentLookup, Response: describe(recipe), Recipe: recipe}, nil
}

// DishFromQuery strips filler words, leaving the dish name
func DishFromQuery(text string) string {
	stripped := fillerPhrases.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Trim(strings.Join(strings.Fields(stripped), " "), "?!.,")
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func summarize(recipes []models.Recipe) string {
	if len(recipes) == 0 {
		return "I couldn't find any recipes yet."
	}
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		if r.Cuisine != "" {
			names = append(names, fmt.Sprintf("%s (%s)", r.Name, r.Cuisine))
		} else {
			names = append(names, r.Name)
		}
	}
	noun := "recipes"
	if len(recipes) == 1 {
		noun = "recipe"
	}
	return fmt.Sprintf("I found %d %s: %s", len(recipes), noun, strings.Join(names, ", "))
}

func describe(r *models.Recipe) string {
	var b strings.Builder
	b.WriteString(r.Name)

	if t := strings.TrimSpace(r.Time); t != "" {
		if bareNumber.MatchString(t) {
			t += " minutes"
		}
		fmt.Fprintf(&b, " takes %s.", t)
	} else {
		b.WriteString(".")
	}

	if len(r.Ingredients) > 0 {
		n := min(3, len(r.Ingredients))
		fmt.Fprintf(&b, " You'll need %s", strings.Join(r.Ingredients[:n], ", "))
		if len(r.Ingredients) > 3 {
			b.WriteString(" and other ingredients")
		}
		b.WriteString(".")
	}

	if len(r.Steps) > 0 {
		fmt.Fprintf(&b, " First: %s.", strings.TrimRight(r.Steps[0], "."))
	}
	if len(r.Steps) > 1 {
		fmt.Fprintf(&b, " Then: %s.", strings.TrimRight(r.Steps[1], "."))
	}
	return b.String()
}
