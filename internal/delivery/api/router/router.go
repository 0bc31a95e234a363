// Package router wires the API handlers to their paths and role guards.
package router

import (
	"foodbridge/internal/delivery/api/middleware"
	"foodbridge/internal/delivery/api/router/handler"
	"foodbridge/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ProductHandler      *handler.ProductHandler
	NonprofitHandler    *handler.NonprofitHandler
	NotificationHandler *handler.NotificationHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	DiscussionHandler   *handler.DiscussionHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

type router struct {
	auth          *handler.AuthHandler
	users         *handler.UserHandler
	products      *handler.ProductHandler
	nonprofits    *handler.NonprofitHandler
	notifications *handler.NotificationHandler
	analytics     *handler.AnalyticsHandler
	discussion    *handler.DiscussionHandler
	devices       *handler.DeviceHandler
	authMW        *middleware.AuthMiddleware
}

func NewRouter(params RouterParams) *router {
	return &router{
		auth:          params.AuthHandler,
		users:         params.UserHandler,
		products:      params.ProductHandler,
		nonprofits:    params.NonprofitHandler,
		notifications: params.NotificationHandler,
		analytics:     params.AnalyticsHandler,
		discussion:    params.DiscussionHandler,
		devices:       params.DeviceHandler,
		authMW:        params.AuthMiddleware,
	}
}

func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/refresh", r.auth.Refresh)
	}

	// Everything below requires an access token.
	authed := r.authMW.Authenticate
	operators := r.authMW.RequireRole(entity.RoleAdmin, entity.RoleStaff)

	e.PATCH("/item-availability", r.products.UpdateItemAvailability, authed,
		r.authMW.RequireRole(entity.RoleNonprofit, entity.RoleAdmin, entity.RoleStaff))

	nonprofits := e.Group("/nonprofits", authed)
	{
		nonprofits.PATCH("", r.nonprofits.SetApproval, r.authMW.RequireRoleUnauthorized(entity.RoleAdmin))
		nonprofits.GET("", r.nonprofits.ListNonprofits, operators)
		nonprofits.GET("/:id", r.nonprofits.GetNonprofit, operators)
	}

	documents := e.Group("/nonprofit-documents", authed,
		r.authMW.RequireRole(entity.RoleNonprofit, entity.RoleAdmin, entity.RoleStaff))
	{
		documents.POST("", r.nonprofits.UploadDocument)
		documents.GET("/:nonprofitId", r.nonprofits.GetDocument)
		documents.GET("/:nonprofitId/file", r.nonprofits.DownloadDocument)
	}

	e.POST("/nonprofit-approval-status-emails", r.notifications.SendApprovalStatus, authed, operators)
	e.POST("/product-availability-emails", r.notifications.SendProductAvailability, authed,
		r.authMW.RequireRole(entity.RoleSupplier, entity.RoleAdmin, entity.RoleStaff))
	e.POST("/product-request-claimed-emails", r.notifications.SendProductClaimed, authed,
		r.authMW.RequireRole(entity.RoleNonprofit, entity.RoleAdmin, entity.RoleStaff))

	analytics := e.Group("/analytics", authed)
	{
		analytics.GET("/system-health", r.analytics.SystemHealth, operators)
		analytics.GET("/nonprofit-engagement", r.analytics.NonprofitEngagement, operators)
		analytics.GET("/supplier-activity", r.analytics.SupplierActivity, operators)
		analytics.GET("/product-status-trends", r.analytics.ProductStatusTrends, operators)
		analytics.GET("/claims-over-time", r.analytics.ClaimsOverTime, operators)
		analytics.GET("/supplier-metrics", r.analytics.SupplierMetrics,
			r.authMW.RequireRole(entity.RoleAdmin, entity.RoleStaff, entity.RoleSupplier))
		analytics.GET("/nonprofit-metrics", r.analytics.NonprofitMetrics,
			r.authMW.RequireRole(entity.RoleAdmin, entity.RoleStaff, entity.RoleNonprofit))
	}

	products := e.Group("/product-requests", authed)
	{
		products.GET("", r.products.ListProducts)
		products.POST("/multiple", r.products.CreateProducts, r.authMW.RequireRole(entity.RoleSupplier))
		products.POST("/pickup-verification", r.products.VerifyPickup, r.authMW.RequireRole(entity.RoleSupplier))
		products.GET("/:id", r.products.GetProduct)
		products.DELETE("/:id", r.products.DeleteProduct)
		products.GET("/:id/pickup-pass", r.products.PickupPass, r.authMW.RequireRole(entity.RoleNonprofit))
	}

	users := e.Group("/users", authed)
	{
		users.GET("", r.users.ListUsers)
		users.POST("", r.users.CreateUser)
		users.GET("/me", r.users.GetMe)
		users.POST("/me/supplier", r.users.CreateSupplier)
		users.POST("/me/nonprofit", r.users.CreateNonprofit)
		users.PUT("/me/product-survey", r.users.SaveProductSurvey)
		users.GET("/:id", r.users.GetUser)
		users.PATCH("/:id", r.users.UpdateUser)
		users.DELETE("/:id", r.users.DeleteUser)
	}

	threads := e.Group("/threads", authed)
	{
		threads.GET("", r.discussion.ListThreads)
		threads.POST("", r.discussion.CreateThread)
		threads.GET("/:id", r.discussion.GetThread)
		threads.PATCH("/:id", r.discussion.UpdateThread)
		threads.DELETE("/:id", r.discussion.DeleteThread)
		threads.GET("/:id/comments", r.discussion.ListComments)
		threads.POST("/:id/comments", r.discussion.AddComment)
		threads.PATCH("/:id/comments/:commentId", r.discussion.UpdateComment)
		threads.DELETE("/:id/comments/:commentId", r.discussion.DeleteComment)
	}

	// Write access is checked in the usecase so non-operators get the legacy 401.
	announcements := e.Group("/admin-announcements", authed)
	{
		announcements.GET("", r.discussion.ListAnnouncements)
		announcements.POST("", r.discussion.CreateAnnouncement)
		announcements.GET("/:id", r.discussion.GetAnnouncement)
		announcements.PATCH("/:id", r.discussion.UpdateAnnouncement)
		announcements.DELETE("/:id", r.discussion.DeleteAnnouncement)
	}

	devices := e.Group("/devices", authed)
	{
		devices.POST("", r.devices.RegisterDevice)
		devices.GET("", r.devices.GetUserDevices)
		devices.PUT("/:id/token", r.devices.UpdateFCMToken)
		devices.DELETE("/:id", r.devices.DeactivateDevice)
	}
}
