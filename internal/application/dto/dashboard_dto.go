package dto

import "time"

// DashboardData payload completo de GET /api/dashboard: los cuatro KPIs del
// resumen más las listas y series que consumen los gráficos de la UI.
type DashboardData struct {
	TotalProducts     int `json:"totalProducts"`
	TotalCategories   int `json:"totalCategories"`
	StockInThisMonth  int `json:"stockInThisMonth"`
	StockOutThisMonth int `json:"stockOutThisMonth"`

	RecentMovements    []RecentMovementItem  `json:"recentMovements"`
	LowStockProducts   []LowStockItem        `json:"lowStockProducts"`
	CategoriesOverview []CategoryCountItem   `json:"categoriesOverview"`
	RecentProducts     []RecentProductItem   `json:"recentProducts"`

	StockInOutChart         []TypeTotalItem       `json:"stockInOutChart"`
	MonthlyStockChart       []MonthlyBucketItem   `json:"monthlyStockChart"`
	ProductsByCategoryChart []CategoryCountItem   `json:"productsByCategoryChart"`
	StackedCategoryChart    []StackedCategoryItem `json:"stackedCategoryChart"`
}

// DashboardSummary los cuatro KPIs, reutilizados por los exports CSV y PDF.
type DashboardSummary struct {
	TotalProducts     int `json:"totalProducts"`
	TotalCategories   int `json:"totalCategories"`
	StockInThisMonth  int `json:"stockInThisMonth"`
	StockOutThisMonth int `json:"stockOutThisMonth"`
}

// RecentMovementItem movimiento reciente del widget.
type RecentMovementItem struct {
	ID           int64     `json:"id"`
	ProductName  string    `json:"productName"`
	Quantity     int       `json:"quantity"`
	MovementType string    `json:"movementType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LowStockItem producto bajo el umbral de stock.
type LowStockItem struct {
	Name  string `json:"name"`
	Sku   string `json:"sku"`
	Stock int    `json:"stock"`
}

// CategoryCountItem categoría con su conteo de productos.
type CategoryCountItem struct {
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}

// RecentProductItem producto recién creado.
type RecentProductItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Sku      string `json:"sku"`
	IsActive bool   `json:"isActive"`
}

// TypeTotalItem total del mes en curso por tipo de movimiento.
type TypeTotalItem struct {
	MovementType string `json:"movementType"`
	Total        int    `json:"total"`
}

// MonthlyBucketItem punto de la serie mensual.
type MonthlyBucketItem struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	MovementType string `json:"movementType"`
	Total        int    `json:"total"`
}

// StackedCategoryItem barras apiladas in/out por categoría.
type StackedCategoryItem struct {
	Category string `json:"category"`
	StockIn  int    `json:"stockIn"`
	StockOut int    `json:"stockOut"`
}
