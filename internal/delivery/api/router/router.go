// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecocart/config"
	"ecocart/internal/delivery/api/middleware"
	"ecocart/internal/delivery/api/router/handler"
	"ecocart/internal/domain/entity"
	"ecocart/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	OfferHandler   *handler.OfferHandler
	ListHandler    *handler.ListHandler
	ItemHandler    *handler.ItemHandler
	InsightHandler *handler.InsightHandler
	ContactHandler *handler.ContactHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	offerHandler   *handler.OfferHandler
	listHandler    *handler.ListHandler
	itemHandler    *handler.ItemHandler
	insightHandler *handler.InsightHandler
	contactHandler *handler.ContactHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		offerHandler:   params.OfferHandler,
		listHandler:    params.ListHandler,
		itemHandler:    params.ItemHandler,
		insightHandler: params.InsightHandler,
		contactHandler: params.ContactHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	// Public routes
	publicGroup := apiV1.Group("/public")
	{
		publicGroup.GET("/lists/:publicId", r.listHandler.GetPublicList)
		publicGroup.GET("/products/:id/image", r.catalogHandler.GetImage)
	}

	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	requireVendor := r.authMiddleware.RequireRole(entity.RoleVendor)
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Catalog routes
	{
		authed.GET("/categories", r.catalogHandler.ListCategories)
		authed.POST("/categories", r.catalogHandler.CreateCategory, requireAdmin)

		authed.GET("/suppliers", r.catalogHandler.ListSuppliers)
		authed.POST("/suppliers/me", r.catalogHandler.RegisterSupplier, requireVendor)

		authed.GET("/products", r.catalogHandler.SearchProducts)
		authed.POST("/products", r.catalogHandler.CreateProduct, requireVendor)
		authed.GET("/products/:id", r.catalogHandler.GetProduct)
		authed.GET("/products/:id/price", r.catalogHandler.GetPrice)
		authed.GET("/products/:id/image", r.catalogHandler.GetImage)
		authed.POST("/products/:id/image", r.catalogHandler.UploadImage, requireVendor)
	}

	// Vendor listing and discount routes
	listingsGroup := authed.Group("/listings", requireVendor)
	{
		listingsGroup.GET("", r.offerHandler.MyListings)
		listingsGroup.POST("", r.offerHandler.CreateListing)
		listingsGroup.PUT("/:id", r.offerHandler.UpdateListing)
		listingsGroup.DELETE("/:id", r.offerHandler.DeleteListing)
	}

	authed.GET("/discounts/active", r.offerHandler.ActiveDiscounts)
	discountsGroup := authed.Group("/discounts", requireVendor)
	{
		discountsGroup.GET("", r.offerHandler.MyDiscounts)
		discountsGroup.POST("", r.offerHandler.CreateDiscount)
		discountsGroup.PUT("/:id", r.offerHandler.UpdateDiscount)
		discountsGroup.DELETE("/:id", r.offerHandler.DeleteDiscount)
	}

	// Shopping list routes
	listsGroup := authed.Group("/lists")
	{
		listsGroup.GET("", r.listHandler.ListOwned)
		listsGroup.POST("", r.listHandler.CreateList)
		listsGroup.GET("/shared-with-me", r.listHandler.ListSharedWithMe)
		listsGroup.GET("/:id", r.listHandler.GetList)
		listsGroup.PATCH("/:id", r.listHandler.RenameList)
		listsGroup.DELETE("/:id", r.listHandler.DeleteList)
		listsGroup.POST("/:id/share", r.listHandler.ShareList)
		listsGroup.PUT("/:id/public", r.listHandler.SetPublic)
		listsGroup.GET("/:id/qrcode", r.listHandler.ShareQRCode)
		listsGroup.POST("/:id/items", r.listHandler.AddItem)
	}

	itemsGroup := authed.Group("/items")
	{
		itemsGroup.PATCH("/:id", r.itemHandler.UpdateItem)
		itemsGroup.DELETE("/:id", r.itemHandler.RemoveItem)
		itemsGroup.POST("/:id/purchase", r.itemHandler.MarkPurchased)
	}

	fridgeGroup := authed.Group("/fridge")
	{
		fridgeGroup.GET("", r.itemHandler.Fridge)
		fridgeGroup.GET("/expiring", r.itemHandler.Expiring)
		fridgeGroup.GET("/expired", r.itemHandler.Expired)
		fridgeGroup.POST("/expiring/mark-all-read", r.itemHandler.MarkAllExpiringRead)
		fridgeGroup.POST("/expired/mark-all-read", r.itemHandler.MarkAllExpiredRead)
	}

	authed.GET("/recommendations", r.insightHandler.Recommend)

	contactsGroup := authed.Group("/contacts")
	{
		contactsGroup.GET("", r.contactHandler.ListContacts)
		contactsGroup.POST("", r.contactHandler.AddContact)
		contactsGroup.DELETE("/:id", r.contactHandler.RemoveContact)
	}

	// Device management routes
	devicesGroup := authed.Group("/devices")
	{
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.PUT("/:id", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	adminGroup := authed.Group("/admin", requireAdmin)
	{
		adminGroup.GET("/dashboard", r.insightHandler.Dashboard)
	}
}
