// Package repository: ServerRepository'nin SQLite implementasyonu.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akinalp/mqvi-directory/database"
	"github.com/akinalp/mqvi-directory/models"
	"github.com/akinalp/mqvi-directory/pkg"
)

type sqliteServerRepo struct {
	db database.TxQuerier
}

// NewSQLiteServerRepo, constructor. *sql.DB veya *sql.Tx alabilir.
func NewSQLiteServerRepo(db database.TxQuerier) ServerRepository {
	return &sqliteServerRepo{db: db}
}

const serverColumns = `s.id, s.category_id, s.name, s.owner_id, s.description, s.icon_url, s.banner_url, s.created_at`

// List, filtreleri sırasıyla uygular: kategori → üyelik → annotation → LIMIT.
//
// member_count correlated subquery ile hesaplanır, JOIN ile değil:
// üyelik filtresi server_members'a join'leseydi COUNT sadece eşleşen
// satırı (caller'ı) sayardı. Subquery her zaman gerçek üye sayısını verir.
func (r *sqliteServerRepo) List(ctx context.Context, filter ServerFilter) ([]models.ServerRecord, error) {
	var (
		sb   strings.Builder
		args []any
		cond []string
	)

	sb.WriteString(`SELECT ` + serverColumns + `,
		(SELECT COUNT(*) FROM server_members sm WHERE sm.server_id = s.id) AS member_count
		FROM servers s`)

	if filter.Category != "" {
		cond = append(cond, `(s.category_id = ? OR s.category_id IN (SELECT c.id FROM categories c WHERE c.name = ?))`)
		args = append(args, filter.Category, filter.Category)
	}

	if filter.MemberID != "" {
		cond = append(cond, `EXISTS (SELECT 1 FROM server_members m WHERE m.server_id = s.id AND m.user_id = ?)`)
		args = append(args, filter.MemberID)
	}

	if len(cond) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(cond, " AND "))
	}

	if filter.Limit != nil {
		sb.WriteString(" LIMIT ?")
		args = append(args, *filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	defer rows.Close()

	records := []models.ServerRecord{}
	for rows.Next() {
		var (
			rec   models.ServerRecord
			count int
		)
		if err := rows.Scan(
			&rec.ID, &rec.CategoryID, &rec.Name, &rec.OwnerID,
			&rec.Description, &rec.IconURL, &rec.BannerURL, &rec.CreatedAt,
			&count,
		); err != nil {
			return nil, fmt.Errorf("failed to scan server row: %w", err)
		}
		rec.MemberCount = &count
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating server rows: %w", err)
	}

	return records, nil
}

func (r *sqliteServerRepo) GetByID(ctx context.Context, serverID string) (*models.Server, error) {
	query := `SELECT ` + serverColumns + ` FROM servers s WHERE s.id = ?`

	s := &models.Server{}
	err := r.db.QueryRowContext(ctx, query, serverID).Scan(
		&s.ID, &s.CategoryID, &s.Name, &s.OwnerID,
		&s.Description, &s.IconURL, &s.BannerURL, &s.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get server: %w", err)
	}

	return s, nil
}
