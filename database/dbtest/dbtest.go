// Package dbtest, testler için geçici SQLite veritabanı ve fixture helper'ları sağlar.
//
// Her test kendi t.TempDir() altındaki dosyasını kullanır, testler
// birbirinden izole ve paralel çalışabilir.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/mqvi-directory/database"
	"github.com/akinalp/mqvi-directory/models"
)

// New, migration'ları uygulanmış boş bir veritabanı açar.
// Test bitince bağlantı kapatılır.
func New(t testing.TB) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// InsertUser, users tablosuna bir kullanıcı ekler.
func InsertUser(t testing.TB, db *database.DB, id, username string) {
	t.Helper()
	exec(t, db, `INSERT INTO users (id, username) VALUES (?, ?)`, id, username)
}

// InsertCategory, categories tablosuna bir kategori ekler.
func InsertCategory(t testing.TB, db *database.DB, id, name string) {
	t.Helper()
	exec(t, db, `INSERT INTO categories (id, name) VALUES (?, ?)`, id, name)
}

// InsertServer, servers tablosuna bir sunucu ekler. CreatedAt DB default'u alır.
func InsertServer(t testing.TB, db *database.DB, s models.Server) {
	t.Helper()
	exec(t, db, `
		INSERT INTO servers (id, category_id, name, owner_id, description, icon_url, banner_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.CategoryID, s.Name, s.OwnerID, s.Description, s.IconURL, s.BannerURL,
	)
}

// AddMember, kullanıcıyı sunucuya üye yapar.
func AddMember(t testing.TB, db *database.DB, serverID, userID string) {
	t.Helper()
	exec(t, db, `INSERT INTO server_members (server_id, user_id) VALUES (?, ?)`, serverID, userID)
}

// InsertChannel, channels tablosuna bir kanal ekler. Type boşsa "text".
func InsertChannel(t testing.TB, db *database.DB, ch models.Channel) {
	t.Helper()
	if ch.Type == "" {
		ch.Type = models.ChannelTypeText
	}
	exec(t, db, `
		INSERT INTO channels (id, server_id, name, type, topic, position)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ch.ID, ch.ServerID, ch.Name, string(ch.Type), ch.Topic, ch.Position,
	)
}

// Scenario, standart iki sunuculu test verisi:
//
//	S1: kategori "gaming", 3 üye (alice, bob, carol), 2 kanal
//	S2: kategori "music",  0 üye, 0 kanal
//
// dave hiçbir sunucuya üye değildir.
type Scenario struct {
	GamingCategoryID string
	MusicCategoryID  string
	S1, S2           string
	Alice, Dave      string
	S1Channels       []string // position sırasıyla
}

// SeedScenario, Scenario verisini veritabanına yazar.
func SeedScenario(t testing.TB, db *database.DB) Scenario {
	t.Helper()

	sc := Scenario{
		GamingCategoryID: "cat-gaming",
		MusicCategoryID:  "cat-music",
		S1:               "srv-1",
		S2:               "srv-2",
		Alice:            "user-alice",
		Dave:             "user-dave",
		S1Channels:       []string{"ch-general", "ch-voice"},
	}

	InsertUser(t, db, sc.Alice, "alice")
	InsertUser(t, db, "user-bob", "bob")
	InsertUser(t, db, "user-carol", "carol")
	InsertUser(t, db, sc.Dave, "dave")

	InsertCategory(t, db, sc.GamingCategoryID, "gaming")
	InsertCategory(t, db, sc.MusicCategoryID, "music")

	InsertServer(t, db, models.Server{ID: sc.S1, CategoryID: sc.GamingCategoryID, Name: "Frag Hall", OwnerID: sc.Alice})
	InsertServer(t, db, models.Server{ID: sc.S2, CategoryID: sc.MusicCategoryID, Name: "Lo-fi Corner", OwnerID: sc.Dave})

	AddMember(t, db, sc.S1, sc.Alice)
	AddMember(t, db, sc.S1, "user-bob")
	AddMember(t, db, sc.S1, "user-carol")

	topic := "say hi"
	InsertChannel(t, db, models.Channel{ID: sc.S1Channels[0], ServerID: sc.S1, Name: "general", Topic: &topic, Position: 0})
	InsertChannel(t, db, models.Channel{ID: sc.S1Channels[1], ServerID: sc.S1, Name: "squad", Type: models.ChannelTypeVoice, Position: 1})

	return sc
}

func exec(t testing.TB, db *database.DB, query string, args ...any) {
	t.Helper()
	_, err := db.Conn.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
}
