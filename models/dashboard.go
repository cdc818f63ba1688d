package models

// CropStatus 当前作物概况
type CropStatus struct {
	Name          string `json:"name"`
	Status        string `json:"status"`
	YieldForecast string `json:"yieldForecast"`
	YieldChange   string `json:"yieldChange"`
}

// WeatherSnapshot 天气概况
type WeatherSnapshot struct {
	Condition   string `json:"condition"`
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
}

// Advisory 农事建议
type Advisory struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// MarketTrend 市场行情（每公担价格）
type MarketTrend struct {
	Crop   string `json:"crop"`
	Price  string `json:"price"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// DashboardOverview 首页数据
type DashboardOverview struct {
	DisplayName string          `json:"displayName"`
	Crop        CropStatus      `json:"crop"`
	Weather     WeatherSnapshot `json:"weather"`
}

// FarmingData 导出的农场数据
type FarmingData struct {
	CurrentCrop CropStatus      `json:"currentCrop"`
	Weather     WeatherSnapshot `json:"weather"`
	Tips        []string        `json:"tips"`
}

// DashboardExport 首页数据导出
type DashboardExport struct {
	Timestamp   string      `json:"timestamp"`
	FarmingData FarmingData `json:"farmingData"`
}

// ShellState 页面外壳状态
type ShellState struct {
	CurrentPage string `json:"currentPage"`
	Language    string `json:"language"`
}
