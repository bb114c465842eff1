package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/akinalp/mqvi-directory/database"
	"github.com/akinalp/mqvi-directory/models"
)

// sqliteChannelRepo, ChannelRepository interface'inin SQLite implementasyonu.
type sqliteChannelRepo struct {
	db database.TxQuerier
}

// NewSQLiteChannelRepo, constructor, interface döner (Dependency Inversion).
func NewSQLiteChannelRepo(db database.TxQuerier) ChannelRepository {
	return &sqliteChannelRepo{db: db}
}

func (r *sqliteChannelRepo) ListByServerIDs(ctx context.Context, serverIDs []string) (map[string][]models.Channel, error) {
	grouped := make(map[string][]models.Channel, len(serverIDs))
	if len(serverIDs) == 0 {
		return grouped, nil
	}

	// IN (?, ?, ...), placeholder sayısı ID sayısı kadar.
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(serverIDs)), ", ")
	args := make([]any, len(serverIDs))
	for i, id := range serverIDs {
		args[i] = id
	}

	query := `
		SELECT id, server_id, name, type, topic, position, created_at
		FROM channels
		WHERE server_id IN (` + placeholders + `)
		ORDER BY position ASC, created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ch models.Channel
		if err := rows.Scan(&ch.ID, &ch.ServerID, &ch.Name, &ch.Type, &ch.Topic, &ch.Position, &ch.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan channel row: %w", err)
		}
		grouped[ch.ServerID] = append(grouped[ch.ServerID], ch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating channel rows: %w", err)
	}

	return grouped, nil
}
