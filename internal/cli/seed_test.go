package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/testhelpers"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeed(t, `
recipes:
  - name: Tea
    cuisine: Indian
    time: 10 mins
    ingredients: [water, tea leaves]
    steps: [Boil water]
  - name: Masala Dosa
`)
	recipes, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Tea", recipes[0].Name)
	assert.Equal(t, models.StringList{"water", "tea leaves"}, recipes[0].Ingredients)
	assert.Equal(t, "Masala Dosa", recipes[1].Name)
}

func TestLoadSeedFileRejectsBadInput(t *testing.T) {
	_, err := LoadSeedFile(writeSeed(t, "recipes:\n  - cuisine: Indian\n"))
	assert.ErrorContains(t, err, "has no name")

	_, err = LoadSeedFile(writeSeed(t, "recipes:\n  - name: Tea\n  - name: tea\n"))
	assert.ErrorContains(t, err, "more than once")

	_, err = LoadSeedFile(writeSeed(t, "recipes: [\n"))
	assert.Error(t, err)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBundledSeedFileLoads(t *testing.T) {
	recipes, err := LoadSeedFile(filepath.Join("..", "..", "data", "recipes.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, recipes)
}

func TestSeedRecipes(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	created, updated, removed, err := SeedRecipes(ctx, db, []models.Recipe{
		{Name: "Tea", Time: "10 mins"},
		{Name: "Masala Dosa"},
	}, false)
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 0, 0}, [3]int{created, updated, removed})

	var tea models.Recipe
	require.NoError(t, db.Where("slug = ?", "tea").First(&tea).Error)

	created, updated, removed, err = SeedRecipes(ctx, db, []models.Recipe{
		{Name: "Tea", Time: "15 mins"},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, [3]int{0, 1, 1}, [3]int{created, updated, removed})

	var stored []models.Recipe
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, tea.ID, stored[0].ID)
	assert.Equal(t, "15 mins", stored[0].Time)
}

func TestNewCommandHasSubcommands(t *testing.T) {
	cmd := NewCommand()
	names := make([]string, 0, len(cmd.Commands))
	for _, c := range cmd.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"migrate", "seed", "images"}, names)
}
