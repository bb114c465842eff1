// Package models: Server domain modeli.
//
// Server, bir topluluk alanını temsil eder (Discord'daki "guild" benzeri).
// Her sunucu bir kategoriye ve bir owner'a bağlıdır, üye seti boş olabilir.
package models

import "time"

// Server, sunucu verisini temsil eder.
// DB'deki "servers" tablosunun Go karşılığıdır.
//
// Üye seti (server_members) bu struct'ta taşınmaz, üyelik API'de
// sadece toplam olarak (member_count) görünür.
type Server struct {
	ID          string
	CategoryID  string
	Name        string
	OwnerID     string
	Description *string // Nullable
	IconURL     *string
	BannerURL   *string
	CreatedAt   time.Time
}

// ServerRecord, bir sorgu sonucundaki sunucu satırıdır.
//
// MemberCount sadece list sorgusunda doldurulur (annotation).
// Tekil getirmede (retrieve) nil kalır, annotation yoktur.
type ServerRecord struct {
	Server
	MemberCount *int
}
