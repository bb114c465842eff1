package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/mqvi-directory/database/dbtest"
	"github.com/akinalp/mqvi-directory/pkg"
	"github.com/akinalp/mqvi-directory/repository"
)

func TestCategoryRepo_List(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewSQLiteCategoryRepo(db.Conn)

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)

	sc := dbtest.SeedScenario(t, db)
	categories, err = repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, sc.GamingCategoryID, categories[0].ID)
	assert.Equal(t, "music", categories[1].Name)
}

func TestUserRepo_GetByID(t *testing.T) {
	db := dbtest.New(t)
	sc := dbtest.SeedScenario(t, db)
	repo := repository.NewSQLiteUserRepo(db.Conn)

	user, err := repo.GetByID(context.Background(), sc.Alice)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}
