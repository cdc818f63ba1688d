package services

import (
	"time"

	"go-krushivishwa/models"
)

var currentCrop = models.CropStatus{
	Name:          "Wheat",
	Status:        "Growing Season",
	YieldForecast: "2.5 tons/acre",
	YieldChange:   "+15% from last year",
}

// weatherConditions 天气轮播，每 weatherSlot 切换一次
var weatherConditions = []models.WeatherSnapshot{
	{Condition: "Sunny", Temperature: "28°C", Humidity: "45% humidity"},
	{Condition: "Partly Cloudy", Temperature: "25°C", Humidity: "60% humidity"},
	{Condition: "Overcast", Temperature: "22°C", Humidity: "75% humidity"},
	{Condition: "Light Rain", Temperature: "20°C", Humidity: "85% humidity"},
}

const weatherSlot = 30 * time.Second

var advisories = []models.Advisory{
	{
		Title:    "Irrigation Recommendation",
		Message:  "Based on current soil moisture and weather forecast, water your crops in the next 2 days.",
		Priority: "high",
	},
	{
		Title:    "Fertilizer Application",
		Message:  "Apply nitrogen-rich fertilizer as your wheat is in the tillering stage.",
		Priority: "medium",
	},
	{
		Title:    "Pest Watch",
		Message:  "Monitor for aphids as weather conditions are favorable for their growth.",
		Priority: "medium",
	},
}

var marketTrends = []models.MarketTrend{
	{Crop: "Wheat", Price: "₹2,150", Change: "+2.4%", Trend: "up"},
	{Crop: "Rice", Price: "₹1,890", Change: "-1.2%", Trend: "down"},
	{Crop: "Corn", Price: "₹1,675", Change: "+0.8%", Trend: "up"},
	{Crop: "Barley", Price: "₹1,420", Change: "+1.5%", Trend: "up"},
}

var farmingTips = []string{
	"Water crops early morning",
	"Check for pest infestation every 3 days",
	"Apply organic fertilizer during flowering",
}

// DashboardService 首页静态数据
type DashboardService struct {
	now func() time.Time
}

// NewDashboardService 创建首页服务
func NewDashboardService() *DashboardService {
	return &DashboardService{now: time.Now}
}

// Overview 作物和天气概况
func (s *DashboardService) Overview(username string) models.DashboardOverview {
	return models.DashboardOverview{
		DisplayName: DisplayName(username),
		Crop:        currentCrop,
		Weather:     s.Weather(),
	}
}

// Weather 当前时间段对应的天气
func (s *DashboardService) Weather() models.WeatherSnapshot {
	slot := s.now().UnixNano() / int64(weatherSlot)
	n := int64(len(weatherConditions))
	return weatherConditions[((slot%n)+n)%n]
}

// Advisories 农事建议
func (s *DashboardService) Advisories() []models.Advisory {
	return append([]models.Advisory(nil), advisories...)
}

// MarketTrends 市场行情
func (s *DashboardService) MarketTrends() []models.MarketTrend {
	return append([]models.MarketTrend(nil), marketTrends...)
}

// Export 导出农场数据
func (s *DashboardService) Export() models.DashboardExport {
	return models.DashboardExport{
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		FarmingData: models.FarmingData{
			CurrentCrop: currentCrop,
			Weather:     s.Weather(),
			Tips:        append([]string(nil), farmingTips...),
		},
	}
}
