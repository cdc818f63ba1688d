package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-krushivishwa/models"
)

func TestRespond_Topics(t *testing.T) {
	tests := []struct {
		message string
		topic   string
	}{
		{"What's the WEATHER like?", "weather"},
		{"how do I grow onions", "crop"},
		{"current price of rice", "market"},
		{"which fertilizer", "soil"},
		{"aphids are a pest", "pest"},
		{"irrigation schedule", "irrigation"},
		{"modern agriculture", "farming"},
		{"hello there", "greeting"},
		{"thanks a lot", "thanks"},
		{"zzz", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			topic, reply := Respond(tt.message)
			assert.Equal(t, tt.topic, topic)
			assert.NotEmpty(t, reply)
		})
	}
}

func TestRespond_FirstRuleWins(t *testing.T) {
	// "water" 命中灌溉之前，"soil" 已先命中土壤规则
	topic, _ := Respond("soil water content")
	assert.Equal(t, "soil", topic)
}

func TestChatbot_Reply(t *testing.T) {
	bot := NewChatbot()
	bot.now = func() time.Time { return time.Date(2025, 1, 1, 7, 5, 0, 0, time.UTC) }

	reply, ok := bot.Reply(models.ChatRequest{QuickAction: "market-price"})
	require.True(t, ok)
	assert.Equal(t, "Show me current market prices for my crops", reply.Message)
	// 规则按顺序匹配，"crops" 先命中作物规则
	assert.Equal(t, "crop", reply.Topic)
	assert.Equal(t, "07:05", reply.Time)

	_, ok = bot.Reply(models.ChatRequest{QuickAction: "unknown"})
	assert.False(t, ok)

	_, ok = bot.Reply(models.ChatRequest{Message: "   "})
	assert.False(t, ok)
}

func TestQuickActions(t *testing.T) {
	actions := QuickActions()
	require.Len(t, actions, 3)
	actions[0].Message = "changed"
	assert.NotEqual(t, "changed", QuickActions()[0].Message, "callers get a copy")
}
