// Package stock deriva niveles de stock y agregados estadísticos a partir del
// libro de movimientos. El stock nunca se persiste: siempre es la suma con
// signo de los movimientos del producto. Las funciones son puras; los
// repositorios entregan las filas (un snapshot por consulta) y aquí vive la
// aritmética, el orden y el bucketing.
package stock

import (
	"sort"
	"time"

	"github.com/EzequielRindello/StockCore/internal/domain/entity"
)

// Valores por defecto del dashboard.
const (
	DefaultLowStockThreshold = 10
	DefaultLimit             = 5
	DefaultMonthsBack        = 6 // mes en curso más cinco anteriores
)

// ProductStock nivel de stock derivado de un producto.
type ProductStock struct {
	ProductID int64
	Name      string
	SKU       string
	Stock     int
}

// MonthlyBucket cantidad total por (año, mes, tipo) dentro de la ventana.
type MonthlyBucket struct {
	Year         int
	Month        int
	MovementType string
	Total        int
}

// CategoryTotals totales por categoría sobre todos los movimientos de sus
// productos, sin acotar por fecha. Una categoría sin productos aporta una
// fila en cero, no se omite.
type CategoryTotals struct {
	Category     string
	ProductCount int
	StockIn      int
	StockOut     int
}

// CurrentStock suma con signo de los movimientos. Sin movimientos devuelve 0.
// Puede ser negativo si las salidas superan a las entradas: no hay guarda.
func CurrentStock(movements []entity.StockMovement) int {
	total := 0
	for _, m := range movements {
		total += m.Signed()
	}
	return total
}

// PeriodTotal suma las cantidades de los movimientos del tipo dado creados en
// el intervalo semiabierto [from, to).
func PeriodTotal(movements []entity.StockMovement, movementType string, from, to time.Time) int {
	total := 0
	for _, m := range movements {
		if m.MovementType != movementType {
			continue
		}
		if m.CreatedAt.Before(from) || !m.CreatedAt.Before(to) {
			continue
		}
		total += m.Quantity
	}
	return total
}

// LowStock filtra los productos con stock estrictamente menor al umbral,
// ordena ascendente por stock y corta en limit. Un producto sin movimientos
// entra con stock 0 (0 < umbral).
func LowStock(levels []ProductStock, threshold, limit int) []ProductStock {
	low := make([]ProductStock, 0, len(levels))
	for _, l := range levels {
		if l.Stock < threshold {
			low = append(low, l)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })
	if len(low) > limit {
		low = low[:limit]
	}
	return low
}

// MonthlyBuckets agrupa por mes calendario y tipo los movimientos creados en
// la ventana móvil que arranca monthsBack-1 meses antes de now (mes en curso
// incluido). Orden cronológico ascendente; dentro de un mes, "in" antes que
// "out".
func MonthlyBuckets(movements []entity.StockMovement, monthsBack int, now time.Time) []MonthlyBucket {
	windowStart := now.AddDate(0, -(monthsBack - 1), 0)

	type key struct {
		year  int
		month int
		typ   string
	}
	totals := make(map[key]int)
	for _, m := range movements {
		if m.CreatedAt.Before(windowStart) {
			continue
		}
		k := key{m.CreatedAt.Year(), int(m.CreatedAt.Month()), m.MovementType}
		totals[k] += m.Quantity
	}

	buckets := make([]MonthlyBucket, 0, len(totals))
	for k, total := range totals {
		buckets = append(buckets, MonthlyBucket{
			Year:         k.year,
			Month:        k.month,
			MovementType: k.typ,
			Total:        total,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.MovementType < b.MovementType // "in" < "out"
	})
	return buckets
}
