package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/pageza/cookmate/backend/internal/database"
	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/service"
)

// SeedFile is the YAML layout accepted by "cookmatectl seed"
type SeedFile struct {
	Recipes []SeedRecipe `yaml:"recipes"`
}

type SeedRecipe struct {
	Name             string   `yaml:"name"`
	Cuisine          string   `yaml:"cuisine"`
	Time             string   `yaml:"time"`
	Difficulty       string   `yaml:"difficulty"`
	Ingredients      []string `yaml:"ingredients"`
	BasicIngredients []string `yaml:"basic_ingredients"`
	Steps            []string `yaml:"steps"`
	Alternatives     []string `yaml:"alternatives"`
	Img              string   `yaml:"img"`
}

func (r SeedRecipe) toModel() models.Recipe {
	return models.Recipe{
		Name:             r.Name,
		Cuisine:          r.Cuisine,
		Time:             r.Time,
		Difficulty:       r.Difficulty,
		Ingredients:      r.Ingredients,
		BasicIngredients: r.BasicIngredients,
		Steps:            r.Steps,
		Alternatives:     r.Alternatives,
		Img:              r.Img,
	}
}

// LoadSeedFile parses a recipe seed file. Every recipe needs a name and
// names must be unique.
func LoadSeedFile(path string) ([]models.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(file.Recipes))
	recipes := make([]models.Recipe, 0, len(file.Recipes))
	for i, r := range file.Recipes {
		if r.Name == "" {
			return nil, fmt.Errorf("recipe %d in %s has no name", i+1, path)
		}
		slug := models.Slugify(r.Name)
		if seen[slug] {
			return nil, fmt.Errorf("recipe %q appears more than once in %s", r.Name, path)
		}
		seen[slug] = true
		recipes = append(recipes, r.toModel())
	}
	return recipes, nil
}

// SeedRecipes upserts recipes by slug. With replace, stored recipes that
// are not in the list are deleted. Returns created, updated and removed counts.
func SeedRecipes(ctx context.Context, db *gorm.DB, recipes []models.Recipe, replace bool) (int, int, int, error) {
	var created, updated, removed int
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		svc := service.NewRecipeService(tx)
		slugs := make([]string, 0, len(recipes))
		for i := range recipes {
			isNew, err := svc.Upsert(ctx, &recipes[i])
			if err != nil {
				return err
			}
			if isNew {
				created++
			} else {
				updated++
			}
			slugs = append(slugs, recipes[i].Slug)
		}

		if !replace {
			return nil
		}
		query := tx.Model(&models.Recipe{})
		if len(slugs) > 0 {
			query = query.Where("slug NOT IN ?", slugs)
		} else {
			query = query.Where("1 = 1")
		}
		res := query.Delete(&models.Recipe{})
		if res.Error != nil {
			return fmt.Errorf("failed to remove stale recipes: %w", res.Error)
		}
		removed = int(res.RowsAffected)
		return nil
	})
	if err != nil {
		return 0, 0, 0, err
	}
	return created, updated, removed, nil
}

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load recipes from a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   "data/recipes.yaml",
				Usage:   "Path to the recipe seed file",
			},
			&cli.BoolFlag{
				Name:  "replace",
				Usage: "Delete stored recipes that are not in the file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			recipes, err := LoadSeedFile(cmd.String("file"))
			if err != nil {
				return err
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.RunMigrations(db); err != nil {
				return err
			}

			created, updated, removed, err := SeedRecipes(ctx, db, recipes, cmd.Bool("replace"))
			if err != nil {
				return err
			}
			log.Printf("[Seed] %d created, %d updated, %d removed", created, updated, removed)
			return nil
		},
	}
}
