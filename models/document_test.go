package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func toMap(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestNewServerDocument_MemberCount(t *testing.T) {
	server := Server{ID: "s1", CategoryID: "c1", Name: "Frag Hall", OwnerID: "u1", CreatedAt: time.Now()}

	tests := []struct {
		name      string
		count     *int
		wantKey   bool
		wantValue float64
	}{
		{name: "no annotation (retrieve)", count: nil, wantKey: false},
		{name: "zero members", count: intPtr(0), wantKey: false},
		{name: "one member", count: intPtr(1), wantKey: true, wantValue: 1},
		{name: "three members", count: intPtr(3), wantKey: true, wantValue: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewServerDocument(ServerRecord{Server: server, MemberCount: tt.count}, nil)
			m := toMap(t, doc)

			value, ok := m["member_count"]
			assert.Equal(t, tt.wantKey, ok)
			if tt.wantKey {
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestNewServerDocument_OmitsMembersAndEmbedsChannels(t *testing.T) {
	topic := "welcome"
	rec := ServerRecord{Server: Server{ID: "s1", CategoryID: "c1", Name: "Frag Hall", OwnerID: "u1"}}
	channels := []Channel{
		{ID: "ch1", ServerID: "s1", Name: "general", Type: ChannelTypeText, Topic: &topic},
		{ID: "ch2", ServerID: "s1", Name: "squad", Type: ChannelTypeVoice, Position: 1},
	}

	doc := NewServerDocument(rec, channels)
	require.Len(t, doc.Channels, 2)
	for _, ch := range doc.Channels {
		assert.Equal(t, rec.ID, ch.ServerID)
	}
	assert.Equal(t, "ch1", doc.Channels[0].ID)
	assert.Equal(t, "ch2", doc.Channels[1].ID)

	m := toMap(t, doc)
	assert.NotContains(t, m, "member")
	assert.NotContains(t, m, "members")
	assert.Equal(t, "c1", m["category_id"])
	assert.Equal(t, "u1", m["owner_id"])

	embedded := m["channels"].([]any)
	first := embedded[0].(map[string]any)
	assert.Equal(t, "s1", first["server_id"])
	assert.Equal(t, "welcome", first["topic"])
	assert.Equal(t, "text", first["type"])
}

func TestNewServerDocument_EmptyChannelsIsArray(t *testing.T) {
	doc := NewServerDocument(ServerRecord{Server: Server{ID: "s2"}}, nil)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"channels":[]`)
	assert.NotContains(t, string(raw), "member_count")
}

func TestNewServerDocument_ForeignChannelPanics(t *testing.T) {
	rec := ServerRecord{Server: Server{ID: "s1"}}
	channels := []Channel{{ID: "ch9", ServerID: "s2"}}

	assert.Panics(t, func() { NewServerDocument(rec, channels) })
}

func TestNewServerDocument_DoesNotAliasCount(t *testing.T) {
	count := 4
	doc := NewServerDocument(ServerRecord{Server: Server{ID: "s1"}, MemberCount: &count}, nil)
	count = 0

	require.NotNil(t, doc.MemberCount)
	assert.Equal(t, 4, *doc.MemberCount)
}
