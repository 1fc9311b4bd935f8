package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nohithkv/portfolio-backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }

func TestProjectPatchSemantics(t *testing.T) {
	repo := NewProjectRepo(setupTestDB(t))

	project := models.Project{
		Title:       "Original",
		Description: "Original description",
		TechStack:   datatypes.JSON(`["Go","React"]`),
		Category:    "Backend",
		GithubURL:   "https://github.com/example/x",
	}
	require.NoError(t, repo.Add(&project))

	// nil fields stay untouched
	require.NoError(t, repo.Patch(project.ID, models.ProjectPatch{Title: strPtr("Patched")}))

	stored := mustFindOne(t, repo)
	assert.Equal(t, "Patched", stored.Title)
	assert.Equal(t, "Original description", stored.Description)
	assert.Equal(t, "Backend", stored.Category)
	assert.Equal(t, "https://github.com/example/x", stored.GithubURL)

	// a pointer to the zero value clears
	require.NoError(t, repo.Patch(project.ID, models.ProjectPatch{GithubURL: strPtr("")}))
	stored = mustFindOne(t, repo)
	assert.Equal(t, "", stored.GithubURL)

	// an empty patch is a no-op, not an error
	require.NoError(t, repo.Patch(project.ID, models.ProjectPatch{}))
}

func TestProjectPatchMissingID(t *testing.T) {
	repo := NewProjectRepo(setupTestDB(t))

	err := repo.Patch(9999, models.ProjectPatch{Title: strPtr("Ghost")})
	assert.NoError(t, err)
}

func TestProjectDeleteIdempotent(t *testing.T) {
	repo := NewProjectRepo(setupTestDB(t))

	project := models.Project{Title: "Doomed"}
	require.NoError(t, repo.Add(&project))

	require.NoError(t, repo.Delete(project.ID))
	require.NoError(t, repo.Delete(project.ID))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Same display order: newest creation first breaks the tie.
	older := models.Project{Title: "older", DisplayOrder: 1, CreatedAt: base}
	newer := models.Project{Title: "newer", DisplayOrder: 1, CreatedAt: base.Add(time.Hour)}
	first := models.Project{Title: "first", DisplayOrder: 0, CreatedAt: base}
	require.NoError(t, repo.Add(&older))
	require.NoError(t, repo.Add(&newer))
	require.NoError(t, repo.Add(&first))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "first", projects[0].Title)
	assert.Equal(t, "newer", projects[1].Title)
	assert.Equal(t, "older", projects[2].Title)
}

func mustFindOne(t *testing.T, repo *ProjectRepo) *models.Project {
	t.Helper()

	projects, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	return projects[0]
}
