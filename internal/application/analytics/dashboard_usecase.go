// Package analytics contiene los casos de uso de reportes: el dashboard de
// inventario y sus exports CSV y PDF.
package analytics

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
	"github.com/EzequielRindello/StockCore/internal/domain/stock"
)

// ReportPDFGenerator puerto de salida para el export PDF del dashboard.
type ReportPDFGenerator interface {
	GenerateDashboardPDF(ctx context.Context, company *entity.Company, data *dto.DashboardData) ([]byte, error)
}

// DashboardUseCase arma el resumen del inventario: cuatro KPIs, widgets de
// actividad reciente y las series de los gráficos.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Los agregados
// derivados (stock bajo, totales del mes, buckets mensuales) se calculan en
// el paquete stock sobre las filas crudas.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	companyRepo   repository.CompanyRepository
	pdfGen        ReportPDFGenerator
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	companyRepo repository.CompanyRepository,
	pdfGen ReportPDFGenerator,
) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, companyRepo: companyRepo, pdfGen: pdfGen}
}

// GetData construye el payload completo del dashboard.
//
// Ventana de la serie mensual: mes en curso más los cinco anteriores, desde
// el día 1 del mes más viejo. Los totales "de este mes" salen del mismo set
// de movimientos, acotados al día 1 del mes en curso.
//
// Siete consultas en paralelo:
//  1. CountProducts / CountCategories
//  2. MovementsSince(ventana)      → KPIs del mes + serie mensual
//  3. RecentMovements(5)
//  4. StockLevels                  → stock bajo (umbral 10, top 5)
//  5. CategoriesOverview(5) / ProductsByCategory
//  6. RecentProducts(5)
//  7. CategoryBreakdown
func (uc *DashboardUseCase) GetData(ctx context.Context) (*dto.DashboardData, error) {
	now := time.Now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	windowStart := monthStart.AddDate(0, -(stock.DefaultMonthsBack - 1), 0)

	// ── Goroutines para paralelizar las consultas DB ──────────────────────────
	type countsResult struct {
		products   int
		categories int
		err        error
	}
	type movementsResult struct {
		movements []entity.StockMovement
		err       error
	}
	type recentMovsResult struct {
		rows []repository.RecentMovementRow
		err  error
	}
	type levelsResult struct {
		levels []stock.ProductStock
		err    error
	}
	type categoriesResult struct {
		overview []repository.CategoryCountRow
		byCat    []repository.CategoryCountRow
		err      error
	}
	type recentProdsResult struct {
		rows []repository.RecentProductRow
		err  error
	}
	type breakdownResult struct {
		totals []stock.CategoryTotals
		err    error
	}

	countsCh := make(chan countsResult, 1)
	movsCh := make(chan movementsResult, 1)
	recentMovsCh := make(chan recentMovsResult, 1)
	levelsCh := make(chan levelsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)
	recentProdsCh := make(chan recentProdsResult, 1)
	breakdownCh := make(chan breakdownResult, 1)

	go func() {
		products, err := uc.analyticsRepo.CountProducts(ctx)
		if err != nil {
			countsCh <- countsResult{err: err}
			return
		}
		categories, err := uc.analyticsRepo.CountCategories(ctx)
		countsCh <- countsResult{products, categories, err}
	}()
	go func() {
		movements, err := uc.analyticsRepo.MovementsSince(ctx, windowStart)
		movsCh <- movementsResult{movements, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.RecentMovements(ctx, stock.DefaultLimit)
		recentMovsCh <- recentMovsResult{rows, err}
	}()
	go func() {
		levels, err := uc.analyticsRepo.StockLevels(ctx)
		levelsCh <- levelsResult{levels, err}
	}()
	go func() {
		overview, err := uc.analyticsRepo.CategoriesOverview(ctx, stock.DefaultLimit)
		if err != nil {
			categoriesCh <- categoriesResult{err: err}
			return
		}
		byCat, err := uc.analyticsRepo.ProductsByCategory(ctx)
		categoriesCh <- categoriesResult{overview, byCat, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.RecentProducts(ctx, stock.DefaultLimit)
		recentProdsCh <- recentProdsResult{rows, err}
	}()
	go func() {
		totals, err := uc.analyticsRepo.CategoryBreakdown(ctx)
		breakdownCh <- breakdownResult{totals, err}
	}()

	counts := <-countsCh
	movs := <-movsCh
	recentMovs := <-recentMovsCh
	levels := <-levelsCh
	categories := <-categoriesCh
	recentProds := <-recentProdsCh
	breakdown := <-breakdownCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if movs.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de la ventana: %w", movs.err)
	}
	if recentMovs.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", recentMovs.err)
	}
	if levels.err != nil {
		return nil, fmt.Errorf("dashboard: niveles de stock: %w", levels.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", categories.err)
	}
	if recentProds.err != nil {
		return nil, fmt.Errorf("dashboard: productos recientes: %w", recentProds.err)
	}
	if breakdown.err != nil {
		return nil, fmt.Errorf("dashboard: desglose por categoría: %w", breakdown.err)
	}

	// ── Agregados derivados ───────────────────────────────────────────────────
	monthEnd := monthStart.AddDate(0, 1, 0)
	stockIn := stock.PeriodTotal(movs.movements, entity.MovementTypeIn, monthStart, monthEnd)
	stockOut := stock.PeriodTotal(movs.movements, entity.MovementTypeOut, monthStart, monthEnd)
	lowStock := stock.LowStock(levels.levels, stock.DefaultLowStockThreshold, stock.DefaultLimit)
	buckets := stock.MonthlyBuckets(movs.movements, stock.DefaultMonthsBack, now)

	// ── Construir DTO ─────────────────────────────────────────────────────────
	data := &dto.DashboardData{
		TotalProducts:     counts.products,
		TotalCategories:   counts.categories,
		StockInThisMonth:  stockIn,
		StockOutThisMonth: stockOut,

		RecentMovements:    make([]dto.RecentMovementItem, 0, len(recentMovs.rows)),
		LowStockProducts:   make([]dto.LowStockItem, 0, len(lowStock)),
		CategoriesOverview: make([]dto.CategoryCountItem, 0, len(categories.overview)),
		RecentProducts:     make([]dto.RecentProductItem, 0, len(recentProds.rows)),

		StockInOutChart: []dto.TypeTotalItem{
			{MovementType: entity.MovementTypeIn, Total: stockIn},
			{MovementType: entity.MovementTypeOut, Total: stockOut},
		},
		MonthlyStockChart:       make([]dto.MonthlyBucketItem, 0, len(buckets)),
		ProductsByCategoryChart: make([]dto.CategoryCountItem, 0, len(categories.byCat)),
		StackedCategoryChart:    make([]dto.StackedCategoryItem, 0, len(breakdown.totals)),
	}
	for _, r := range recentMovs.rows {
		data.RecentMovements = append(data.RecentMovements, dto.RecentMovementItem{
			ID:           r.ID,
			ProductName:  r.ProductName,
			Quantity:     r.Quantity,
			MovementType: r.MovementType,
			CreatedAt:    r.CreatedAt,
		})
	}
	for _, l := range lowStock {
		data.LowStockProducts = append(data.LowStockProducts, dto.LowStockItem{
			Name:  l.Name,
			Sku:   l.SKU,
			Stock: l.Stock,
		})
	}
	for _, c := range categories.overview {
		data.CategoriesOverview = append(data.CategoriesOverview, dto.CategoryCountItem{
			Name:         c.Name,
			ProductCount: c.ProductCount,
		})
	}
	for _, p := range recentProds.rows {
		data.RecentProducts = append(data.RecentProducts, dto.RecentProductItem{
			Name:     p.Name,
			Category: p.Category,
			Sku:      p.SKU,
			IsActive: p.IsActive,
		})
	}
	for _, b := range buckets {
		data.MonthlyStockChart = append(data.MonthlyStockChart, dto.MonthlyBucketItem{
			Year:         b.Year,
			Month:        b.Month,
			MovementType: b.MovementType,
			Total:        b.Total,
		})
	}
	for _, c := range categories.byCat {
		data.ProductsByCategoryChart = append(data.ProductsByCategoryChart, dto.CategoryCountItem{
			Name:         c.Name,
			ProductCount: c.ProductCount,
		})
	}
	for _, t := range breakdown.totals {
		data.StackedCategoryChart = append(data.StackedCategoryChart, dto.StackedCategoryItem{
			Category: t.Category,
			StockIn:  t.StockIn,
			StockOut: t.StockOut,
		})
	}
	return data, nil
}

// ExportSummaryCsv genera el CSV del resumen: encabezado Metric,Value y una
// fila por KPI.
func (uc *DashboardUseCase) ExportSummaryCsv(ctx context.Context) (string, error) {
	data, err := uc.GetData(ctx)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"Metric", "Value"})
	_ = w.Write([]string{"Total Products", strconv.Itoa(data.TotalProducts)})
	_ = w.Write([]string{"Total Categories", strconv.Itoa(data.TotalCategories)})
	_ = w.Write([]string{"Stock In (This Month)", strconv.Itoa(data.StockInThisMonth)})
	_ = w.Write([]string{"Stock Out (This Month)", strconv.Itoa(data.StockOutThisMonth)})
	w.Flush()
	return sb.String(), w.Error()
}

// ExportPDF genera el reporte PDF del dashboard con los datos de la empresa
// en el encabezado.
func (uc *DashboardUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	data, err := uc.GetData(ctx)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("dashboard: empresa: %w", err)
	}
	return uc.pdfGen.GenerateDashboardPDF(ctx, company, data)
}
