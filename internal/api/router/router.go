package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JesusPaz145/nails-appointment-app/config"
	"github.com/JesusPaz145/nails-appointment-app/internal/api/handler"
	"github.com/JesusPaz145/nails-appointment-app/internal/api/middleware"
	"github.com/JesusPaz145/nails-appointment-app/internal/model"
	"github.com/JesusPaz145/nails-appointment-app/pkg/jwt"
	"github.com/JesusPaz145/nails-appointment-app/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 登录/注册接口单独限流，防止暴力破解
	authLimit := middleware.RateLimit(rdb, 10, time.Minute)
	// 预约创建限流
	bookingLimit := middleware.RateLimit(rdb, 20, time.Minute)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authLimit, h.Auth.Register)
			auth.POST("/login", authLimit, h.Auth.Login)
			auth.POST("/refresh", authLimit, h.Auth.RefreshToken)
		}

		// 公开查询：服务目录、营业时间、封锁日期、可约时段
		v1.GET("/services", h.Catalog.List)
		v1.GET("/services/:id", h.Catalog.Get)
		v1.GET("/business-hours", h.BusinessHours.List)
		v1.GET("/blocked-dates", h.BlockedDate.List)
		v1.GET("/appointments/availability", h.Appointment.Availability)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 预约模块
			appointments := authorized.Group("/appointments")
			{
				appointments.GET("", h.Appointment.List)
				appointments.POST("", bookingLimit, h.Appointment.Create)
				appointments.PATCH("/:id/status", h.Appointment.UpdateStatus)
				appointments.GET("/calendar.ics", h.Appointment.CalendarFeed)
			}

			// 用户管理（仅管理员）
			users := authorized.Group("/users", middleware.RoleAuth(model.RoleAdmin))
			{
				users.GET("", h.User.List)
				users.PATCH("/:id/role", h.User.UpdateRole)
			}

			// 服务目录管理（仅管理员）
			services := authorized.Group("/services", middleware.RoleAuth(model.RoleAdmin))
			{
				services.POST("", h.Catalog.Create)
				services.PATCH("/:id", h.Catalog.Update)
				services.DELETE("/:id", h.Catalog.Delete)
			}

			// 营业时间管理（仅管理员）
			authorized.PUT("/business-hours/:id", middleware.RoleAuth(model.RoleAdmin), h.BusinessHours.Update)

			// 封锁日期管理（仅管理员）
			blocked := authorized.Group("/blocked-dates", middleware.RoleAuth(model.RoleAdmin))
			{
				blocked.POST("", h.BlockedDate.Create)
				blocked.DELETE("/:id", h.BlockedDate.Delete)
			}

			// 导出模块（仅管理员）
			authorized.GET("/export/appointments", middleware.RoleAuth(model.RoleAdmin), h.Export.ExportAppointments)
		}
	}

	return r
}
