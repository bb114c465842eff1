// Package repository: ServerRepository interface.
//
// Sunucu verisi için okuma soyutlaması. Yazma yok: sunucular bu servisin
// dışında oluşturulur.
package repository

import (
	"context"

	"github.com/akinalp/mqvi-directory/models"
)

// ServerFilter, List sorgusunun daraltma kriterleri.
// Sıfır değerli alanlar "filtre yok" demektir.
type ServerFilter struct {
	// Category, kategori ID'si VEYA kategori adıyla tam eşleşme (OR).
	// Bir kategorinin ID'si başka bir kategorinin adıyla aynıysa
	// ("music" ID'li kategori + "music" adlı başka kategori) iki kategorinin
	// sunucuları birlikte döner.
	Category string
	// MemberID doluysa sadece bu kullanıcının üye olduğu sunucular.
	MemberID string
	// Limit nil değilse en fazla bu kadar satır döner. En son uygulanır.
	Limit *int
}

// ServerRepository, sunucu veritabanı işlemleri için interface.
type ServerRepository interface {
	// List, filtreye uyan sunucuları member_count annotation'ı ile döner.
	// Sıralama store-default'tur (ORDER BY yok).
	List(ctx context.Context, filter ServerFilter) ([]models.ServerRecord, error)

	// GetByID, tek sunucuyu annotation'sız döner. Yoksa pkg.ErrNotFound.
	GetByID(ctx context.Context, serverID string) (*models.Server, error)
}
