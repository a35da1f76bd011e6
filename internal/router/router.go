package router

import (
	"time"

	"formio/internal/database"
	"formio/internal/handlers"
	"formio/internal/middleware"
	"formio/internal/services"
	"formio/pkg/config"
	"formio/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter 设置路由，defaultTenantID由启动阶段解析后显式注入
func SetupRouter(defaultTenantID uint) *gin.Engine {
	router := gin.New()

	// 中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS())

	// 页面模板与静态资源
	router.LoadHTMLGlob("templates/*")
	router.Static("/static", "./static")

	// 注册路由
	registerRoutes(router, defaultTenantID)
	return router
}

// 注册所有路由
func registerRoutes(router *gin.Engine, defaultTenantID uint) {
	cfg := config.GetConfig()
	db := database.GetDB()

	tenantService := services.NewTenantService(db)
	formService := services.NewFormService(db, defaultTenantID)
	submissionService := services.NewSubmissionService(db)
	inviteService := services.NewInviteService(db, cfg.App.BaseURL)

	formHandler := handlers.NewFormHandler(formService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	systemHandler := handlers.NewSystemHandler(tenantService, formService, defaultTenantID)
	pageHandler := handlers.NewPageHandler(formService)

	// Prometheus指标
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 页面路由
	router.GET("/", pageHandler.Index)
	router.GET("/builder", pageHandler.Builder)
	router.GET("/builder/:id", pageHandler.BuilderEdit)
	router.GET("/forms/:id", pageHandler.Render)

	// API路由组
	api := router.Group("/api/v1")
	{
		// 健康检查接口
		api.GET("/health", healthCheck)
		api.GET("/ping", ping)

		// 调试接口
		api.GET("/debug/database", systemHandler.DebugDatabase)

		// 表单路由
		forms := api.Group("/forms")
		{
			forms.POST("", formHandler.Create)
			forms.GET("", formHandler.GetAll)
			forms.GET("/:id", formHandler.GetByID)
			forms.PUT("/:id", formHandler.Update)
			forms.DELETE("/:id", formHandler.Delete)

			// 提交记录
			forms.POST("/:id/submit", submissionHandler.Submit)
			forms.GET("/:id/submissions", submissionHandler.List)

			// 表单分享邀请
			forms.POST("/:id/send-email", inviteHandler.SendEmail)
		}
	}
}

func healthCheck(c *gin.Context) {
	data := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now(),
		"service":   "formio",
		"version":   "1.0.0",
	}
	response.Success(c, data)
}

func ping(c *gin.Context) {
	response.SuccessWithMessage(c, "pong", nil)
}
