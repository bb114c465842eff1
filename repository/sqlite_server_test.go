package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/mqvi-directory/database/dbtest"
	"github.com/akinalp/mqvi-directory/models"
	"github.com/akinalp/mqvi-directory/pkg"
	"github.com/akinalp/mqvi-directory/repository"
)

func intPtr(n int) *int { return &n }

func ids(records []models.ServerRecord) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.ID)
	}
	return out
}

func TestServerRepo_List_Filters(t *testing.T) {
	db := dbtest.New(t)
	sc := dbtest.SeedScenario(t, db)
	repo := repository.NewSQLiteServerRepo(db.Conn)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter repository.ServerFilter
		want   []string
	}{
		{name: "no filter", filter: repository.ServerFilter{}, want: []string{sc.S1, sc.S2}},
		{name: "category by id", filter: repository.ServerFilter{Category: sc.GamingCategoryID}, want: []string{sc.S1}},
		{name: "category by name", filter: repository.ServerFilter{Category: "music"}, want: []string{sc.S2}},
		{name: "unknown category", filter: repository.ServerFilter{Category: "cooking"}, want: []string{}},
		{name: "member alice", filter: repository.ServerFilter{MemberID: sc.Alice}, want: []string{sc.S1}},
		{name: "member dave owns but is not a member", filter: repository.ServerFilter{MemberID: sc.Dave}, want: []string{}},
		{name: "member and category disjoint", filter: repository.ServerFilter{MemberID: sc.Alice, Category: "music"}, want: []string{}},
		{name: "limit zero", filter: repository.ServerFilter{Limit: intPtr(0)}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, ids(records))
		})
	}
}

func TestServerRepo_List_CategoryIDCollidingWithName(t *testing.T) {
	db := dbtest.New(t)
	dbtest.InsertUser(t, db, "owner", "owner")
	dbtest.InsertCategory(t, db, "music", "audio")
	dbtest.InsertCategory(t, db, "cat-2", "music")
	dbtest.InsertServer(t, db, models.Server{ID: "by-id", CategoryID: "music", Name: "a", OwnerID: "owner"})
	dbtest.InsertServer(t, db, models.Server{ID: "by-name", CategoryID: "cat-2", Name: "b", OwnerID: "owner"})

	records, err := repository.NewSQLiteServerRepo(db.Conn).List(context.Background(), repository.ServerFilter{Category: "music"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"by-id", "by-name"}, ids(records))
}

func TestServerRepo_List_LimitIsMinOfNAndQ(t *testing.T) {
	db := dbtest.New(t)
	dbtest.InsertUser(t, db, "owner", "owner")
	dbtest.InsertCategory(t, db, "cat", "misc")
	for i := 0; i < 5; i++ {
		dbtest.InsertServer(t, db, models.Server{ID: fmt.Sprintf("s%d", i), CategoryID: "cat", Name: "x", OwnerID: "owner"})
	}
	repo := repository.NewSQLiteServerRepo(db.Conn)

	for _, q := range []int{0, 1, 3, 5, 8} {
		t.Run(fmt.Sprintf("q=%d", q), func(t *testing.T) {
			records, err := repo.List(context.Background(), repository.ServerFilter{Limit: intPtr(q)})
			require.NoError(t, err)
			assert.Len(t, records, min(5, q))
		})
	}
}

func TestServerRepo_List_MemberCountIsTrueCardinality(t *testing.T) {
	db := dbtest.New(t)
	sc := dbtest.SeedScenario(t, db)
	repo := repository.NewSQLiteServerRepo(db.Conn)

	// Üyelik filtresi aktifken bile sayı sadece caller'ı değil tüm üyeleri sayar.
	records, err := repo.List(context.Background(), repository.ServerFilter{MemberID: sc.Alice})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].MemberCount)
	assert.Equal(t, 3, *records[0].MemberCount)

	records, err = repo.List(context.Background(), repository.ServerFilter{Category: "music"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].MemberCount)
	assert.Equal(t, 0, *records[0].MemberCount)
}

func TestServerRepo_List_ReturnsAllFields(t *testing.T) {
	db := dbtest.New(t)
	dbtest.InsertUser(t, db, "owner", "owner")
	dbtest.InsertCategory(t, db, "cat", "art")
	desc, icon, banner := "pixels", "/icons/a.png", "/banners/a.png"
	dbtest.InsertServer(t, db, models.Server{
		ID: "s1", CategoryID: "cat", Name: "Atelier", OwnerID: "owner",
		Description: &desc, IconURL: &icon, BannerURL: &banner,
	})

	records, err := repository.NewSQLiteServerRepo(db.Conn).List(context.Background(), repository.ServerFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Atelier", rec.Name)
	assert.Equal(t, "cat", rec.CategoryID)
	assert.Equal(t, "owner", rec.OwnerID)
	assert.Equal(t, &desc, rec.Description)
	assert.Equal(t, &icon, rec.IconURL)
	assert.Equal(t, &banner, rec.BannerURL)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestServerRepo_GetByID(t *testing.T) {
	db := dbtest.New(t)
	sc := dbtest.SeedScenario(t, db)
	repo := repository.NewSQLiteServerRepo(db.Conn)

	server, err := repo.GetByID(context.Background(), sc.S2)
	require.NoError(t, err)
	assert.Equal(t, "Lo-fi Corner", server.Name)
	assert.Equal(t, sc.MusicCategoryID, server.CategoryID)
	assert.Nil(t, server.Description)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestServerRepo_List_ContextCanceled(t *testing.T) {
	db := dbtest.New(t)
	dbtest.SeedScenario(t, db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repository.NewSQLiteServerRepo(db.Conn).List(ctx, repository.ServerFilter{})
	assert.Error(t, err)
}
