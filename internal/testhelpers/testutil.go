package testhelpers

import (
	"testing"

	"github.com/pageza/cookmate/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const TestPassword = "testpassword123"

// SampleRecipes returns the fixture catalogue used across tests
func SampleRecipes() []models.Recipe {
	return []models.Recipe{
		{
			Name:             "Tea",
			Cuisine:          "Indian",
			Time:             "10 mins",
			Difficulty:       "Easy",
			Ingredients:      models.StringList{"water", "tea leaves", "milk", "sugar", "ginger"},
			BasicIngredients: models.StringList{"water", "tea leaves"},
			Steps:            models.StringList{"Boil water", "Add tea leaves", "Add milk and sugar", "Strain and serve"},
			Img:              "/static/images/tea.jpg",
		},
		{
			Name:        "Chicken Biryani",
			Cuisine:     "Indian",
			Time:        "60 mins",
			Difficulty:  "Hard",
			Ingredients: models.StringList{"rice", "chicken", "yogurt"},
			Steps:       models.StringList{"Marinate chicken", "Par-boil rice", "Layer and dum cook"},
			Img:         "biryani.jpg",
		},
		{
			Name:        "Paneer Butter Masala",
			Cuisine:     "Indian",
			Time:        "40 mins",
			Difficulty:  "Medium",
			Ingredients: models.StringList{"paneer", "butter", "tomato", "cream", "garam masala"},
			Steps:       models.StringList{"Heat butter", "Add spices", "Add tomato puree", "Add paneer & simmer"},
		},
		{
			Name:        "Spaghetti Aglio e Olio",
			Cuisine:     "Italian",
			Time:        "20",
			Ingredients: models.StringList{"spaghetti", "garlic", "olive oil", "chili"},
			Steps:       models.StringList{"Boil pasta", "Sauté garlic", "Toss with oil & chili"},
		},
	}
}

// SeedRecipes inserts SampleRecipes and returns them with IDs and slugs set
func SeedRecipes(t *testing.T, db *gorm.DB) []models.Recipe {
	t.Helper()
	recipes := SampleRecipes()
	for i := range recipes {
		if err := db.Create(&recipes[i]).Error; err != nil {
			t.Fatalf("failed to seed recipe %s: %v", recipes[i].Name, err)
		}
	}
	return recipes
}

// CreateTestUser inserts a user whose password is TestPassword
func CreateTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Preferences:  models.DefaultPreferences(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
