// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inkpress/internal/delivery/http/middleware"
	"inkpress/internal/delivery/http/router/handler"
	"inkpress/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	RequestHandler  *handler.RequestHandler
	CategoryHandler *handler.CategoryHandler
	PackageHandler  *handler.PackageHandler
	PaymentHandler  *handler.PaymentHandler
	PostHandler     *handler.PostHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	requestHandler  *handler.RequestHandler
	categoryHandler *handler.CategoryHandler
	packageHandler  *handler.PackageHandler
	paymentHandler  *handler.PaymentHandler
	postHandler     *handler.PostHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		requestHandler:  params.RequestHandler,
		categoryHandler: params.CategoryHandler,
		packageHandler:  params.PackageHandler,
		paymentHandler:  params.PaymentHandler,
		postHandler:     params.PostHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	staffOnly := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSuperadmin)
	superadminOnly := r.authMiddleware.RequireRole(entity.RoleSuperadmin)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/google", r.userHandler.GoogleSignIn)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PUT("/me", r.userHandler.UpdateProfile)
		userGroup.POST("/me/device", r.userHandler.RegisterDevice)
	}

	// Approval request ledger and the admin roster
	requestGroup := e.Group("/requests")
	requestGroup.Use(r.authMiddleware.Authenticate)
	{
		requestGroup.POST("/admin", r.requestHandler.SubmitAdminRequest)
		requestGroup.GET("/my", r.requestHandler.ListMyRequests)
		requestGroup.GET("", r.requestHandler.ListRequests, superadminOnly)
		requestGroup.PATCH("/:id/decide", r.requestHandler.Decide, superadminOnly)
	}

	adminRecordGroup := e.Group("/admin-records")
	adminRecordGroup.Use(r.authMiddleware.Authenticate, superadminOnly)
	{
		adminRecordGroup.GET("", r.requestHandler.ListAdminRecords)
		adminRecordGroup.PATCH("/:userId/active", r.requestHandler.SetAdminActive)
	}

	// Category browsing is public, management is staff-gated
	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List, r.authMiddleware.OptionalAuthenticate)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.POST("", r.categoryHandler.Create, r.authMiddleware.Authenticate, staffOnly)
		categoryGroup.PUT("/:id", r.categoryHandler.Update, r.authMiddleware.Authenticate, superadminOnly)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete, r.authMiddleware.Authenticate, superadminOnly)
	}

	// Package browsing is public, management is superadmin-only
	packageGroup := e.Group("/packages")
	{
		packageGroup.GET("", r.packageHandler.List)
		packageGroup.GET("/:id", r.packageHandler.Get)
		packageGroup.POST("", r.packageHandler.Create, r.authMiddleware.Authenticate, superadminOnly)
		packageGroup.PUT("/:id", r.packageHandler.Update, r.authMiddleware.Authenticate, superadminOnly)
		packageGroup.DELETE("/:id", r.packageHandler.Delete, r.authMiddleware.Authenticate, superadminOnly)
	}

	// Payments. Verify stays public because the gateway redirects the
	// customer's browser there without our tokens.
	paymentGroup := e.Group("/payments")
	{
		paymentGroup.GET("/verify", r.paymentHandler.Verify)
		paymentGroup.POST("", r.paymentHandler.Initiate, r.authMiddleware.Authenticate)
		paymentGroup.GET("", r.paymentHandler.List, r.authMiddleware.Authenticate)
		paymentGroup.GET("/:id/qr", r.paymentHandler.CheckoutQR, r.authMiddleware.Authenticate)
	}

	subscriptionGroup := e.Group("/subscriptions")
	subscriptionGroup.Use(r.authMiddleware.Authenticate)
	{
		subscriptionGroup.GET("", r.paymentHandler.ListSubscriptions)
		subscriptionGroup.GET("/status", r.paymentHandler.SubscriptionStatus)
	}

	// Post browsing is public and authoring is staff-gated. Update and
	// delete stay open to any authenticated caller: the usecase lets staff
	// touch any post and everyone else only their own.
	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.postHandler.List)
		postGroup.GET("/:id", r.postHandler.Get)
		postGroup.GET("/slug/:slug", r.postHandler.GetBySlug)
		postGroup.POST("", r.postHandler.Create, r.authMiddleware.Authenticate, staffOnly)
		postGroup.PUT("/:id", r.postHandler.Update, r.authMiddleware.Authenticate)
		postGroup.DELETE("/:id", r.postHandler.Delete, r.authMiddleware.Authenticate)
	}
}
