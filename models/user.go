// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Veritabanı satırları (Server, Channel) ile client'a giden dokümanlar
// (ServerDocument, ChannelDocument) ayrı tiplerdir, hangi alanın dışarı
// çıktığı document.go'da tek noktada belirlenir.
package models

import "time"

// User, bir kullanıcıyı temsil eder (üye kimliği ve sunucu sahibi).
// Kullanıcı kaydı auth servisinin sorumluluğundadır, burada sadece okunur.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
}
