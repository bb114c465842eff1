package models

import "time"

// ChannelType, kanalın türünü temsil eder (text veya voice).
// Go'da enum yerine typed constant kullanılır.
type ChannelType string

const (
	ChannelTypeText  ChannelType = "text"
	ChannelTypeVoice ChannelType = "voice"
)

// Channel, bir sunucu kanalını temsil eder.
// ServerID zorunludur, her kanal tam olarak bir sunucuya aittir,
// sunucu silinince kanal da silinir (ON DELETE CASCADE, migration'da).
type Channel struct {
	ID        string
	ServerID  string
	Name      string
	Type      ChannelType
	Topic     *string // Nullable
	Position  int
	CreatedAt time.Time
}
