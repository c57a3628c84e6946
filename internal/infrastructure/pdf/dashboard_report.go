// Package pdf genera el reporte imprimible del dashboard de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa  │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: 4 KPIs (productos, categorías, in/out del mes)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Productos con stock bajo (nombre, SKU, stock)       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Movimientos recientes (producto, tipo, cantidad)    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/EzequielRindello/StockCore/internal/application/analytics"
	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDashboardPDF genera el reporte y devuelve sus bytes. company puede
// ser nil si la fila aún no fue sembrada.
func (g *MarotoReportGenerator) GenerateDashboardPDF(
	_ context.Context,
	company *entity.Company,
	data *dto.DashboardData,
) ([]byte, error) {
	companyName := "StockCore"
	if company != nil {
		companyName = company.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventory Dashboard Report", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("Low stock products"))
	m.AddRows(lowStockHeaderRow())
	for _, r := range lowStockRows(data.LowStockProducts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow("Recent movements"))
	m.AddRows(recentMovementHeaderRow())
	for _, r := range recentMovementRows(data.RecentMovements) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y fecha de generación (der).
func headerRow(companyName string) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventory Dashboard", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generated: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

// summaryRows: los cuatro KPIs en dos columnas.
func summaryRows(data *dto.DashboardData) []core.Row {
	kpi := func(label string, value int) core.Col {
		return col.New(6).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(value), props.Text{Style: fontstyle.Bold, Size: 12, Top: 5}),
		)
	}
	return []core.Row{
		row.New(12).Add(
			kpi("Total Products", data.TotalProducts),
			kpi("Total Categories", data.TotalCategories),
		),
		row.New(12).Add(
			kpi("Stock In (This Month)", data.StockInThisMonth),
			kpi("Stock Out (This Month)", data.StockOutThisMonth),
		),
	}
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		})),
	)
}

func lowStockHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Product", 6, align.Left),
		tableHeader("SKU", 3, align.Left),
		tableHeader("Stock", 3, align.Right),
	)
}

func lowStockRows(items []dto.LowStockItem) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("No products below the threshold")}
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			tableCell(it.Name, 6, align.Left),
			tableCell(it.Sku, 3, align.Left),
			tableCell(strconv.Itoa(it.Stock), 3, align.Right),
		))
	}
	return result
}

func recentMovementHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Product", 5, align.Left),
		tableHeader("Type", 2, align.Center),
		tableHeader("Quantity", 2, align.Right),
		tableHeader("Date", 3, align.Right),
	)
}

func recentMovementRows(items []dto.RecentMovementItem) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("No recent movements")}
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			tableCell(it.ProductName, 5, align.Left),
			tableCell(it.MovementType, 2, align.Center),
			tableCell(strconv.Itoa(it.Quantity), 2, align.Right),
			tableCell(it.CreatedAt.Format("02/01/2006 15:04"), 3, align.Right),
		))
	}
	return result
}

// ── Helpers de tabla ──────────────────────────────────────────────────────────

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
	}))
}

func tableCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1})),
	)
}
