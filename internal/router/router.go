// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"project-manager/internal/cache"
	"project-manager/internal/database"
	"project-manager/internal/handler"
	"project-manager/internal/handler/auth"
	"project-manager/internal/handler/events"
	"project-manager/internal/handler/notifications"
	"project-manager/internal/handler/users"
	"project-manager/internal/message"
	"project-manager/internal/middleware"
	"project-manager/internal/service"
	"project-manager/internal/worker"
)

// Deps 是建立 service 所需的共用資源，於 main 中建立一次
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Tasks    worker.Pool
	Messages *message.Catalog
	Limiter  *middleware.RateLimiter
}

// Setup 建立 service 並註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	msgs := d.Messages
	userSvc := service.NewUserService(d.DB, d.Cache, d.Tasks, msgs)
	eventSvc := service.NewEventService(d.DB)
	notificationSvc := service.NewNotificationService(d.DB)
	limited := middleware.RateLimit(d.Limiter, msgs)

	api := e.Group("/api")

	// 健康檢查與診斷
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))
	api.GET("/debug-store", handler.DebugStoreHandler(userSvc, msgs))

	// 登入
	api.POST("/auth/login", auth.LoginHandler(userSvc, msgs), limited)
	api.GET("/auth/me", auth.MeHandler(userSvc, msgs), middleware.RequireAuth(msgs))

	apiUsers := api.Group("/users")
	apiUsers.GET("", users.ListUsersHandler(userSvc, msgs))
	apiUsers.POST("", users.CreateUserHandler(userSvc, msgs), limited)
	apiUsers.GET("/verify", users.VerifyUserHandler(userSvc, msgs))
	apiUsers.GET("/:id", users.GetUserHandler(userSvc, msgs))
	apiUsers.PUT("/:id", users.UpdateUserHandler(userSvc, msgs))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(userSvc, msgs))
	apiUsers.GET("/:id/notifications", users.ListNotificationsHandler(notificationSvc, msgs))

	apiEvents := api.Group("/events")
	apiEvents.GET("", events.ListEventsHandler(eventSvc, msgs))
	apiEvents.POST("", events.CreateEventHandler(eventSvc, msgs), middleware.OptionalAuth(msgs))
	apiEvents.GET("/:id", events.GetEventHandler(eventSvc, msgs))
	apiEvents.PUT("/:id", events.UpdateEventHandler(eventSvc, msgs))
	apiEvents.DELETE("/:id", events.DeleteEventHandler(eventSvc, msgs))
	apiEvents.POST("/:id/attendees", events.AddAttendeeHandler(eventSvc, msgs))
	apiEvents.DELETE("/:id/attendees/:userId", events.RemoveAttendeeHandler(eventSvc, msgs))

	apiNotifications := api.Group("/notifications")
	apiNotifications.POST("", notifications.CreateNotificationHandler(notificationSvc, msgs))
	apiNotifications.GET("/:id", notifications.GetNotificationHandler(notificationSvc, msgs))
	apiNotifications.PUT("/:id", notifications.UpdateNotificationHandler(notificationSvc, msgs))
	apiNotifications.DELETE("/:id", notifications.DeleteNotificationHandler(notificationSvc, msgs))
	// 其他方法由 echo 回傳 405 {message}
	apiNotifications.PUT("/:id/read", notifications.MarkAsReadHandler(notificationSvc, msgs))
}
