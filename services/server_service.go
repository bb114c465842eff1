// Package services: ServerService: sunucu listeleme ve getirme iş mantığı.
//
// List akışı: query doğrula → filtre kur → (tx) sunucular + kanallar → document.
// Document'a dönüşüm models.NewServerDocument'ta tek noktada yapılır.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akinalp/mqvi-directory/database"
	"github.com/akinalp/mqvi-directory/models"
	"github.com/akinalp/mqvi-directory/pkg"
	"github.com/akinalp/mqvi-directory/repository"
)

// ServerService, sunucu okuma iş mantığı interface'i.
type ServerService interface {
	// ListServers, query'ye uyan sunucuları member_count ile döner.
	// callerID boş string ise caller anonimdir.
	ListServers(ctx context.Context, callerID string, query *models.ServerListQuery) ([]models.ServerDocument, error)

	// GetServer, tek sunucuyu kanallarıyla döner. member_count içermez.
	GetServer(ctx context.Context, serverID string) (*models.ServerDocument, error)
}

type serverService struct {
	db          *sql.DB // List'te WithTx ile tutarlı snapshot için
	serverRepo  repository.ServerRepository
	channelRepo repository.ChannelRepository
}

// NewServerService, constructor.
//
// db: ListServers sunucu + kanal sorgularını tek transaction'da çalıştırır,
// bunun için tx-bound repo'lar oluşturulur. GetServer normal repo'ları kullanır.
func NewServerService(
	db *sql.DB,
	serverRepo repository.ServerRepository,
	channelRepo repository.ChannelRepository,
) ServerService {
	return &serverService{
		db:          db,
		serverRepo:  serverRepo,
		channelRepo: channelRepo,
	}
}

func (s *serverService) ListServers(ctx context.Context, callerID string, query *models.ServerListQuery) ([]models.ServerDocument, error) {
	if query == nil {
		query = &models.ServerListQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", pkg.ErrBadRequest, err)
	}

	// Anonim caller + ?user=true → boş liste (fails closed).
	// "Herkes" anlamına gelmez, hata da değildir.
	if query.MembershipOnly && callerID == "" {
		return []models.ServerDocument{}, nil
	}

	filter := repository.ServerFilter{
		Category: query.Category,
		Limit:    query.Limit,
	}
	if query.MembershipOnly {
		filter.MemberID = callerID
	}

	docs := []models.ServerDocument{}

	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		txServerRepo := repository.NewSQLiteServerRepo(tx)
		txChannelRepo := repository.NewSQLiteChannelRepo(tx)

		records, err := txServerRepo.List(ctx, filter)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}

		ids := make([]string, len(records))
		for i, rec := range records {
			ids[i] = rec.ID
		}

		channels, err := txChannelRepo.ListByServerIDs(ctx, ids)
		if err != nil {
			return err
		}

		docs = make([]models.ServerDocument, 0, len(records))
		for _, rec := range records {
			docs = append(docs, models.NewServerDocument(rec, channels[rec.ID]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	return docs, nil
}

func (s *serverService) GetServer(ctx context.Context, serverID string) (*models.ServerDocument, error) {
	server, err := s.serverRepo.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}

	channels, err := s.channelRepo.ListByServerIDs(ctx, []string{server.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to get server channels: %w", err)
	}

	// Annotation yok, MemberCount nil, document'ta key hiç görünmez.
	doc := models.NewServerDocument(models.ServerRecord{Server: *server}, channels[server.ID])
	return &doc, nil
}
