package service

import (
	"strings"

	"github.com/pageza/cookmate/backend/internal/models"
)

type substitution struct {
	key         string
	substitutes []string
}

// Checked in order; "buttermilk" matches milk before butter.
var substitutionTable = []substitution{
	{"milk", []string{"yogurt", "buttermilk", "almond milk"}},
	{"egg", []string{"applesauce", "banana", "flaxseed mix"}},
	{"butter", []string{"margarine", "olive oil", "ghee"}},
	{"paneer", []string{"tofu", "ricotta", "halloumi"}},
	{"cream", []string{"coconut cream", "yogurt", "cashew cream"}},
	{"tomato", []string{"red bell pepper", "tomato paste", "sundried tomato"}},
}

var fallbackSubstitutes = []string{"similar ingredient", "canned substitute", "omit & adjust"}

// SubstitutionService suggests swaps for ingredients from a fixed table
type SubstitutionService struct{}

// Ensure SubstitutionService implements ISubstitutionService
var _ ISubstitutionService = (*SubstitutionService)(nil)

func NewSubstitutionService() *SubstitutionService {
	return &SubstitutionService{}
}

// Suggest always returns three suggestions, falling back to generic advice
func (s *SubstitutionService) Suggest(ingredient string) ([]string, error) {
	ingredient = strings.ToLower(strings.TrimSpace(ingredient))
	if ingredient == "" {
		return nil, ErrMissingName
	}
	for _, sub := range substitutionTable {
		if strings.Contains(ingredient, sub.key) {
			return append([]string(nil), sub.substitutes...), nil
		}
	}
	return append([]string(nil), fallbackSubstitutes...), nil
}

// ForRecipe maps each of the recipe's ingredients to its suggestions
func (s *SubstitutionService) ForRecipe(recipe *models.Recipe) map[string][]string {
	out := make(map[string][]string, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		subs, err := s.Suggest(ing)
		if err != nil {
			continue
		}
		out[ing] = subs
	}
	return out
}
