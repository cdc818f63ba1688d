package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-krushivishwa/controllers"
	"go-krushivishwa/middleware"
	"go-krushivishwa/services"
)

// Services 路由依赖的服务
type Services struct {
	Auth      *services.AuthService
	Soil      *services.SoilService
	Dashboard *services.DashboardService
	Chatbot   *services.Chatbot
	Shell     *services.ShellService
}

// SetupRouter 配置所有路由
func SetupRouter(svc Services, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	// 创建控制器实例
	authController := controllers.NewAuthController(svc.Auth)
	soilController := controllers.NewSoilController(svc.Soil)
	dashboardController := controllers.NewDashboardController(svc.Dashboard)
	chatController := controllers.NewChatController(svc.Chatbot)
	shellController := controllers.NewShellController(svc.Shell)

	// 公共路由
	public := r.Group("/")
	{
		public.POST("/login", authController.Login)
		public.POST("/login/demo", authController.DemoLogin)
		public.POST("/register", authController.Register)
	}

	// 需要认证的路由
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(svc.Auth))
	{
		protected.POST("/logout", authController.Logout)

		// 首页
		protected.GET("/dashboard", dashboardController.Overview)
		protected.GET("/dashboard/advisories", dashboardController.Advisories)
		protected.GET("/dashboard/market", dashboardController.MarketTrends)
		protected.GET("/dashboard/export", dashboardController.Export)

		// 土壤健康
		protected.POST("/soil/analyze", soilController.Analyze)
		protected.POST("/soil/export", soilController.Export)
		protected.POST("/soil/report-image", soilController.UploadReport)
		protected.GET("/soil/last", soilController.LastSample)

		// 聊天机器人
		protected.POST("/chat", chatController.Send)
		protected.GET("/chat/quick-actions", chatController.QuickActions)

		// 页面外壳
		protected.GET("/shell/state", shellController.GetState)
		protected.PUT("/shell/state", shellController.UpdateState)
	}

	return r
}
