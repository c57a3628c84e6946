// seed puebla la base con datos iniciales de demostración: categorías,
// productos, movimientos de stock, proveedores, la empresa y el usuario
// administrador. Es idempotente: si ya hay usuarios no hace nada.
//
// Uso: go run ./cmd/seed
//
// El usuario inicial es admin@stockcore.local / "admin". La contraseña queda
// en texto plano a propósito: el primer login la migra a bcrypt.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/infrastructure/postgres"
	"github.com/EzequielRindello/StockCore/pkg/config"
	"github.com/EzequielRindello/StockCore/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	total, err := userRepo.Count()
	if err != nil {
		log.Fatal().Err(err).Msg("contar usuarios")
	}
	if total > 0 {
		log.Info().Int("users", total).Msg("la base ya tiene datos, no se siembra nada")
		return
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)

	now := time.Now().UTC()

	categories := demoCategories(now)
	for _, c := range categories {
		if err := categoryRepo.Create(c); err != nil {
			log.Fatal().Err(err).Str("category", c.Name).Msg("crear categoría")
		}
	}
	log.Info().Int("count", len(categories)).Msg("categorías creadas")

	products := demoProducts(now, categories)
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("crear producto")
		}
	}
	log.Info().Int("count", len(products)).Msg("productos creados")

	movements := demoMovements(now, products)
	for _, m := range movements {
		if err := movementRepo.Create(m); err != nil {
			log.Fatal().Err(err).Int64("product_id", m.ProductID).Msg("crear movimiento")
		}
	}
	log.Info().Int("count", len(movements)).Msg("movimientos creados")

	suppliers := demoSuppliers(now)
	for _, s := range suppliers {
		if err := supplierRepo.Create(s); err != nil {
			log.Fatal().Err(err).Str("supplier", s.Name).Msg("crear proveedor")
		}
	}
	log.Info().Int("count", len(suppliers)).Msg("proveedores creados")

	if err := companyRepo.Create(demoCompany(now)); err != nil {
		log.Fatal().Err(err).Msg("crear empresa")
	}

	admin := demoAdmin(now)
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear usuario admin")
	}

	log.Info().Str("email", admin.Email).Msg("seed completado")
}

func demoCategories(now time.Time) []*entity.Category {
	return []*entity.Category{
		{Name: "Electronics", Description: "Devices and accessories", IsActive: true, CreatedAt: now.AddDate(0, -5, 0)},
		{Name: "Office Supplies", Description: "Stationery and consumables", IsActive: true, CreatedAt: now.AddDate(0, -5, 0)},
		{Name: "Furniture", Description: "Desks, chairs and storage", IsActive: true, CreatedAt: now.AddDate(0, -4, 0)},
		{Name: "Cleaning", Description: "Cleaning products", IsActive: true, CreatedAt: now.AddDate(0, -3, 0)},
		{Name: "Discontinued", Description: "Lines no longer sold", IsActive: false, CreatedAt: now.AddDate(0, -5, 0)},
	}
}

// demoProducts escalona las fechas de alta para que el panel de productos
// recientes tenga un orden visible.
func demoProducts(now time.Time, categories []*entity.Category) []*entity.Product {
	return []*entity.Product{
		{Name: "Laptop 14\"", Description: "Business laptop", SKU: "ELE-001", CategoryID: categories[0].ID, IsActive: true, CreatedAt: now.AddDate(0, -5, 0)},
		{Name: "Wireless Mouse", Description: "2.4GHz mouse", SKU: "ELE-002", CategoryID: categories[0].ID, IsActive: true, CreatedAt: now.AddDate(0, -5, 0)},
		{Name: "USB-C Hub", Description: "7-in-1 hub", SKU: "ELE-003", CategoryID: categories[0].ID, IsActive: true, CreatedAt: now.AddDate(0, -4, 0)},
		{Name: "Notebook A5", Description: "Ruled, 80 pages", SKU: "OFF-001", CategoryID: categories[1].ID, IsActive: true, CreatedAt: now.AddDate(0, -3, 0)},
		{Name: "Ballpoint Pens x12", Description: "Blue ink", SKU: "OFF-002", CategoryID: categories[1].ID, IsActive: true, CreatedAt: now.AddDate(0, -3, 0)},
		{Name: "Printer Paper A4", Description: "500 sheets", SKU: "OFF-003", CategoryID: categories[1].ID, IsActive: true, CreatedAt: now.AddDate(0, -2, 0)},
		{Name: "Office Chair", Description: "Ergonomic, adjustable", SKU: "FUR-001", CategoryID: categories[2].ID, IsActive: true, CreatedAt: now.AddDate(0, -2, 0)},
		{Name: "Standing Desk", Description: "Electric height adjust", SKU: "FUR-002", CategoryID: categories[2].ID, IsActive: true, CreatedAt: now.AddDate(0, -1, 0)},
		{Name: "Glass Cleaner", Description: "750ml spray", SKU: "CLE-001", CategoryID: categories[3].ID, IsActive: true, CreatedAt: now.AddDate(0, 0, -7)},
		{Name: "Fax Machine", Description: "Legacy stock", SKU: "DIS-001", CategoryID: categories[4].ID, IsActive: false, CreatedAt: now.AddDate(0, -5, 0)},
	}
}

// demoMovements reparte el libro en los últimos meses: entradas viejas para
// la serie mensual y una entrada y una salida en el mes en curso para que
// los totales del mes no queden en cero.
func demoMovements(now time.Time, products []*entity.Product) []*entity.StockMovement {
	return []*entity.StockMovement{
		{ProductID: products[1].ID, Quantity: 50, MovementType: entity.MovementTypeIn, Reason: "Initial stock", CreatedAt: now.AddDate(0, -4, 0)},
		{ProductID: products[3].ID, Quantity: 100, MovementType: entity.MovementTypeIn, Reason: "Restock", CreatedAt: now.AddDate(0, -2, 0)},
		{ProductID: products[6].ID, Quantity: 8, MovementType: entity.MovementTypeIn, Reason: "Initial stock", CreatedAt: now.AddDate(0, -1, 0)},
		{ProductID: products[0].ID, Quantity: 20, MovementType: entity.MovementTypeIn, Reason: "Initial stock", CreatedAt: now},
		{ProductID: products[0].ID, Quantity: 3, MovementType: entity.MovementTypeOut, Reason: "Sold to walk-in customer", CreatedAt: now},
	}
}

func demoSuppliers(now time.Time) []*entity.Supplier {
	return []*entity.Supplier{
		{Name: "TechWare Distribution", ContactEmail: "sales@techware.example", Phone: "+54 11 4000-0001", IsActive: true, CreatedAt: now},
		{Name: "Paper & Co", ContactEmail: "orders@paperco.example", Phone: "+54 11 4000-0002", IsActive: true, CreatedAt: now},
		{Name: "CleanPro Wholesale", ContactEmail: "info@cleanpro.example", Phone: "+54 11 4000-0003", IsActive: true, CreatedAt: now},
	}
}

func demoCompany(now time.Time) *entity.Company {
	return &entity.Company{
		Name:      "StockCore Demo S.A.",
		Address:   "Av. Siempre Viva 742",
		Email:     "contact@stockcore.local",
		CreatedAt: now,
	}
}

func demoAdmin(now time.Time) *entity.User {
	return &entity.User{
		ID:             uuid.NewString(),
		UserName:       "admin",
		Email:          "admin@stockcore.local",
		PasswordHash:   "admin", // texto plano legacy, se migra a bcrypt en el primer login
		IsActive:       true,
		EmailConfirmed: true,
		CreatedAt:      now,
	}
}
