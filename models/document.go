package models

import (
	"fmt"
	"time"
)

// ChannelDocument, bir kanalın client'a giden JSON temsili.
//
// Sunucu referansı inline edilmez, sadece ID olarak taşınır,
// ServerDocument zaten kanalları içerdiği için sonsuz iç içelik oluşmaz.
type ChannelDocument struct {
	ID        string      `json:"id"`
	ServerID  string      `json:"server_id"`
	Name      string      `json:"name"`
	Type      ChannelType `json:"type"`
	Topic     *string     `json:"topic"`
	Position  int         `json:"position"`
	CreatedAt time.Time   `json:"created_at"`
}

// ServerDocument, bir sunucunun client'a giden JSON temsili.
//
// Üye kimlikleri ASLA dışarı çıkmaz, sadece member_count.
// MemberCount nil ise key JSON'da hiç yazılmaz (null veya 0 değil).
type ServerDocument struct {
	ID          string            `json:"id"`
	CategoryID  string            `json:"category_id"`
	Name        string            `json:"name"`
	OwnerID     string            `json:"owner_id"`
	Description *string           `json:"description"`
	IconURL     *string           `json:"icon_url"`
	BannerURL   *string           `json:"banner_url"`
	CreatedAt   time.Time         `json:"created_at"`
	Channels    []ChannelDocument `json:"channels"`
	MemberCount *int              `json:"member_count,omitempty"`
}

// NewChannelDocument, Channel → ChannelDocument.
func NewChannelDocument(ch Channel) ChannelDocument {
	return ChannelDocument{
		ID:        ch.ID,
		ServerID:  ch.ServerID,
		Name:      ch.Name,
		Type:      ch.Type,
		Topic:     ch.Topic,
		Position:  ch.Position,
		CreatedAt: ch.CreatedAt,
	}
}

// NewServerDocument, ServerRecord + kanalları → ServerDocument.
//
// member_count kuralı tek yerde: annotation varsa VE sıfırdan büyükse yazılır.
// Annotation'sız kayıt (retrieve) ile 0 üyeli kayıt (list) çıktıda aynı görünür.
//
// Başka sunucuya ait bir kanal gelirse bu çağıran tarafın hatasıdır → panic.
func NewServerDocument(rec ServerRecord, channels []Channel) ServerDocument {
	doc := ServerDocument{
		ID:          rec.ID,
		CategoryID:  rec.CategoryID,
		Name:        rec.Name,
		OwnerID:     rec.OwnerID,
		Description: rec.Description,
		IconURL:     rec.IconURL,
		BannerURL:   rec.BannerURL,
		CreatedAt:   rec.CreatedAt,
		Channels:    make([]ChannelDocument, 0, len(channels)),
	}

	for _, ch := range channels {
		if ch.ServerID != rec.ID {
			panic(fmt.Sprintf("models: channel %s belongs to server %s, not %s", ch.ID, ch.ServerID, rec.ID))
		}
		doc.Channels = append(doc.Channels, NewChannelDocument(ch))
	}

	if rec.MemberCount != nil && *rec.MemberCount > 0 {
		count := *rec.MemberCount
		doc.MemberCount = &count
	}

	return doc
}
