package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-krushivishwa/middleware"
	"go-krushivishwa/services"
	"go-krushivishwa/utils"
)

// DashboardController 首页数据
type DashboardController struct {
	Dashboard *services.DashboardService
}

// NewDashboardController 创建一个新的DashboardController实例
func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// Overview 作物和天气概况
func (c *DashboardController) Overview(ctx *gin.Context) {
	utils.Success(ctx, c.Dashboard.Overview(ctx.GetString(middleware.ContextUsername)))
}

// Advisories 农事建议
func (c *DashboardController) Advisories(ctx *gin.Context) {
	utils.Success(ctx, c.Dashboard.Advisories())
}

// MarketTrends 市场行情
func (c *DashboardController) MarketTrends(ctx *gin.Context) {
	utils.Success(ctx, c.Dashboard.MarketTrends())
}

// Export 导出农场数据
func (c *DashboardController) Export(ctx *gin.Context) {
	ctx.Header("Content-Disposition", `attachment; filename="farming-data.json"`)
	ctx.IndentedJSON(http.StatusOK, c.Dashboard.Export())
}
