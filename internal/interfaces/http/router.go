package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahulxkr/storekart-api/internal/application/auth"
	"github.com/rahulxkr/storekart-api/internal/application/usecase"
	"github.com/rahulxkr/storekart-api/internal/domain/entity"
	"github.com/rahulxkr/storekart-api/pkg/jwt"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	SessionUC       *auth.SessionUseCase
	AdminUC         *usecase.AdminUseCase
	PartnerUC       *usecase.PartnerUseCase
	StoreUC         *usecase.StoreUseCase
	RoleUC          *usecase.RoleUseCase
	CategoryUC      *usecase.CategoryUseCase
	StoreCategoryUC *usecase.StoreCategoryUseCase
	ProductUC       *usecase.ProductUseCase
	BannerUC        *usecase.BannerUseCase
	Tokens          jwt.Config
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (login and refresh are public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.SessionUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.Tokens))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	adminOnly := RequireRole(entity.RoleNameAdmin)

	// Admins (staff accounts, admin only)
	admins := protected.Group("/admins", adminOnly)
	adminHandler := NewAdminHandler(deps.AdminUC)
	admins.Post("/", adminHandler.Create)
	admins.Get("/", adminHandler.List)
	admins.Get("/:id", adminHandler.GetByID)
	admins.Put("/:id", adminHandler.Update)
	admins.Delete("/:id", adminHandler.Delete)

	// Partners (admin only)
	partners := protected.Group("/partners", adminOnly)
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Put("/:id/basic", partnerHandler.UpdateBasic)
	partners.Put("/:id/gst", partnerHandler.UpdateGST)
	partners.Put("/:id/firm", partnerHandler.UpdateFirm)
	partners.Put("/:id/bank", partnerHandler.UpdateBank)
	partners.Put("/:id/partners", partnerHandler.UpdatePartners)
	partners.Delete("/:id", partnerHandler.Delete)

	// Stores (reads open to any signed-in role, writes admin only)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Post("/", adminOnly, storeHandler.Create)
	stores.Put("/:id", RequireRole(entity.RoleNameAdmin, entity.RoleNameStore), storeHandler.Update)
	stores.Delete("/:id", adminOnly, storeHandler.Delete)

	// Roles (admin only)
	roles := protected.Group("/roles", adminOnly)
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	// Product categories (admin only)
	categories := protected.Group("/categories", adminOnly)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Store categories (admin only)
	storeCategories := protected.Group("/store-categories", adminOnly)
	storeCategoryHandler := NewStoreCategoryHandler(deps.StoreCategoryUC)
	storeCategories.Post("/", storeCategoryHandler.Create)
	storeCategories.Get("/", storeCategoryHandler.List)
	storeCategories.Get("/:id", storeCategoryHandler.GetByID)
	storeCategories.Put("/:id", storeCategoryHandler.Update)
	storeCategories.Delete("/:id", storeCategoryHandler.Delete)

	// Products (any signed-in role can manage its own catalog)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/mine", productHandler.ListMine)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Banners (admin only)
	banners := protected.Group("/banners", adminOnly)
	bannerHandler := NewBannerHandler(deps.BannerUC)
	banners.Post("/", bannerHandler.Create)
	banners.Get("/", bannerHandler.List)
	banners.Get("/:id", bannerHandler.GetByID)
	banners.Put("/:id", bannerHandler.Update)
	banners.Delete("/:id", bannerHandler.Delete)
}
