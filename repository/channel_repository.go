package repository

import (
	"context"

	"github.com/akinalp/mqvi-directory/models"
)

// ChannelRepository, kanal veritabanı işlemleri için interface.
type ChannelRepository interface {
	// ListByServerIDs, verilen sunucuların kanallarını tek sorguda getirir
	// ve server ID'ye göre gruplar (N+1 yok). Kanalı olmayan sunucu map'te yer almaz.
	ListByServerIDs(ctx context.Context, serverIDs []string) (map[string][]models.Channel, error)
}
