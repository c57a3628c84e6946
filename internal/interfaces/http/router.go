package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EzequielRindello/StockCore/internal/application/analytics"
	"github.com/EzequielRindello/StockCore/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	StockUC     *usecase.StockUseCase
	UserUC      *usecase.UserUseCase
	AuthUC      *usecase.AuthUseCase
	ComboUC     *usecase.ComboUseCase
	DashboardUC *analytics.DashboardUseCase
	CookieName  string
}

// Router registra las rutas de la API. Las lecturas son públicas; las
// mutaciones y las exportaciones exigen una sesión de usuario activo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	requireUser := RequireActiveUser(deps.AuthUC, deps.CookieName)
	optionalUser := OptionalActiveUser(deps.AuthUC, deps.CookieName)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/filter", categoryHandler.Filter)
	categories.Get("/export", requireUser, categoryHandler.ExportCsv)
	categories.Get("/:id/edit", categoryHandler.GetForEdit)
	categories.Get("/:id", categoryHandler.Details)
	categories.Post("/delete-many", requireUser, categoryHandler.DeleteMany)
	categories.Post("/", requireUser, categoryHandler.Create)
	categories.Put("/:id", requireUser, categoryHandler.Update)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/filter", productHandler.Filter)
	products.Get("/export", requireUser, productHandler.ExportCsv)
	products.Get("/:id/edit", productHandler.GetForEdit)
	products.Get("/:id", productHandler.Details)
	products.Post("/delete-many", requireUser, productHandler.DeleteMany)
	products.Post("/", requireUser, productHandler.Create)
	products.Put("/:id", requireUser, productHandler.Update)

	// Stock movements
	stock := api.Group("/stock-movements")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Post("/filter", stockHandler.Filter)
	stock.Get("/export", requireUser, stockHandler.ExportCsv)
	stock.Get("/:id/edit", stockHandler.GetForEdit)
	stock.Get("/:id", stockHandler.Details)
	stock.Post("/delete-many", requireUser, stockHandler.DeleteMany)
	stock.Post("/", requireUser, stockHandler.Create)
	stock.Put("/:id", requireUser, stockHandler.Update)

	// Users (el índice es público para que el login pueda listar cuentas;
	// el resto corre detrás de la sesión)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", optionalUser, userHandler.Index)
	users.Post("/filter", requireUser, userHandler.Filter)
	users.Get("/export", requireUser, userHandler.ExportCsv)
	users.Get("/:id/edit", requireUser, userHandler.GetForEdit)
	users.Post("/:id/change-password", requireUser, userHandler.ChangePassword)
	users.Post("/:id/password-reset", requireUser, userHandler.PasswordReset)
	users.Delete("/:id", requireUser, userHandler.Delete)
	users.Post("/", requireUser, userHandler.Create)
	users.Put("/:id", requireUser, userHandler.Update)

	// Combos (público, alimentan los selects de los formularios)
	combos := api.Group("/combos")
	comboHandler := NewComboHandler(deps.ComboUC)
	combos.Get("/categories", comboHandler.Categories)
	combos.Get("/products", comboHandler.Products)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.GetData)
	dashboard.Get("/export", requireUser, dashboardHandler.ExportCsv)
	dashboard.Get("/export/pdf", requireUser, dashboardHandler.ExportPdf)
}
