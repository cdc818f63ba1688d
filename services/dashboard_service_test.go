package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_WeatherRotates(t *testing.T) {
	svc := NewDashboardService()
	base := time.Unix(0, 0)

	tests := []struct {
		offset time.Duration
		want   string
	}{
		{0, "Sunny"},
		{29 * time.Second, "Sunny"},
		{30 * time.Second, "Partly Cloudy"},
		{60 * time.Second, "Overcast"},
		{90 * time.Second, "Light Rain"},
		{120 * time.Second, "Sunny"},
		{-30 * time.Second, "Light Rain"},
	}

	for _, tt := range tests {
		at := base.Add(tt.offset)
		svc.now = func() time.Time { return at }
		assert.Equal(t, tt.want, svc.Weather().Condition, tt.offset.String())
	}
}

func TestDashboardService_OverviewAndExportShareWeather(t *testing.T) {
	svc := NewDashboardService()
	at := time.Unix(60, 0)
	svc.now = func() time.Time { return at }

	overview := svc.Overview("farmer@krushi.com")
	assert.Equal(t, "Farmer", overview.DisplayName)
	assert.Equal(t, "Wheat", overview.Crop.Name)
	assert.Equal(t, "Overcast", overview.Weather.Condition)
	assert.Equal(t, "75% humidity", overview.Weather.Humidity)

	export := svc.Export()
	assert.Equal(t, overview.Weather, export.FarmingData.Weather)
	assert.Equal(t, "1970-01-01T00:01:00Z", export.Timestamp)
	require.Len(t, export.FarmingData.Tips, 3)
}

func TestDashboardService_ListsAreCopies(t *testing.T) {
	svc := NewDashboardService()

	trends := svc.MarketTrends()
	trends[0].Price = "changed"
	assert.Equal(t, "₹2,150", svc.MarketTrends()[0].Price)

	adv := svc.Advisories()
	require.Len(t, adv, 3)
	adv[0].Priority = "low"
	assert.Equal(t, "high", svc.Advisories()[0].Priority)
}
