package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/stock"
)

func mov(typ string, qty int, at time.Time) entity.StockMovement {
	return entity.StockMovement{ProductID: 1, Quantity: qty, MovementType: typ, CreatedAt: at}
}

// ──────────────────────────────────────────────────────────────────────────────
// CurrentStock
// ──────────────────────────────────────────────────────────────────────────────

// [In 10, In 5, Out 2] ⇒ 13.
func TestCurrentStock_SumaConSigno(t *testing.T) {
	now := time.Now()
	movs := []entity.StockMovement{
		mov(entity.MovementTypeIn, 10, now),
		mov(entity.MovementTypeIn, 5, now),
		mov(entity.MovementTypeOut, 2, now),
	}
	assert.Equal(t, 13, stock.CurrentStock(movs))
}

func TestCurrentStock_SinMovimientosEsCero(t *testing.T) {
	assert.Equal(t, 0, stock.CurrentStock(nil))
	assert.Equal(t, 0, stock.CurrentStock([]entity.StockMovement{}))
}

// El stock puede quedar negativo: no hay guarda contra salidas de más.
func TestCurrentStock_PuedeSerNegativo(t *testing.T) {
	now := time.Now()
	movs := []entity.StockMovement{
		mov(entity.MovementTypeIn, 3, now),
		mov(entity.MovementTypeOut, 8, now),
	}
	assert.Equal(t, -5, stock.CurrentStock(movs))
}

// ──────────────────────────────────────────────────────────────────────────────
// PeriodTotal — intervalo semiabierto [from, to)
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriodTotal_IntervaloSemiabierto(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	movs := []entity.StockMovement{
		mov(entity.MovementTypeIn, 10, from),                    // borde inferior: incluido
		mov(entity.MovementTypeIn, 7, from.AddDate(0, 0, 15)),   // dentro
		mov(entity.MovementTypeIn, 99, to),                      // borde superior: excluido
		mov(entity.MovementTypeIn, 99, from.Add(-time.Second)),  // antes: excluido
		mov(entity.MovementTypeOut, 4, from.AddDate(0, 0, 10)),  // otro tipo: excluido
	}

	assert.Equal(t, 17, stock.PeriodTotal(movs, entity.MovementTypeIn, from, to))
	assert.Equal(t, 4, stock.PeriodTotal(movs, entity.MovementTypeOut, from, to))
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_OrdenaAscendenteYCorta(t *testing.T) {
	levels := []stock.ProductStock{
		{ProductID: 1, Name: "A", Stock: 8},
		{ProductID: 2, Name: "B", Stock: 0},
		{ProductID: 3, Name: "C", Stock: 12}, // sobre el umbral: fuera
		{ProductID: 4, Name: "D", Stock: 3},
		{ProductID: 5, Name: "E", Stock: -2},
		{ProductID: 6, Name: "F", Stock: 5},
		{ProductID: 7, Name: "G", Stock: 9},
		{ProductID: 8, Name: "H", Stock: 1},
	}

	low := stock.LowStock(levels, 10, 5)

	require.Len(t, low, 5, "nunca más de limit elementos")
	got := make([]int, 0, len(low))
	for _, l := range low {
		got = append(got, l.Stock)
	}
	assert.Equal(t, []int{-2, 0, 1, 3, 5}, got, "orden ascendente por stock")
}

// Un producto exactamente en el umbral queda excluido (estrictamente <).
func TestLowStock_UmbralEstricto(t *testing.T) {
	levels := []stock.ProductStock{
		{ProductID: 1, Stock: 10},
		{ProductID: 2, Stock: 9},
	}
	low := stock.LowStock(levels, 10, 5)
	require.Len(t, low, 1)
	assert.Equal(t, int64(2), low[0].ProductID)
}

// Un producto sin movimientos (stock 0) sigue siendo candidato a low stock.
func TestLowStock_ProductoSinMovimientosEntraConCero(t *testing.T) {
	levels := []stock.ProductStock{{ProductID: 1, Name: "Nuevo", Stock: 0}}
	low := stock.LowStock(levels, stock.DefaultLowStockThreshold, stock.DefaultLimit)
	require.Len(t, low, 1)
	assert.Equal(t, 0, low[0].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthlyBuckets
// ──────────────────────────────────────────────────────────────────────────────

// Una sola entrada In 50 en el mes en curso ⇒ un único bucket
// (año, mes, in, 50).
func TestMonthlyBuckets_UnSoloMovimiento(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	movs := []entity.StockMovement{
		mov(entity.MovementTypeIn, 50, now.AddDate(0, 0, -3)),
	}

	buckets := stock.MonthlyBuckets(movs, stock.DefaultMonthsBack, now)

	require.Len(t, buckets, 1)
	assert.Equal(t, stock.MonthlyBucket{
		Year:         2026,
		Month:        9,
		MovementType: entity.MovementTypeIn,
		Total:        50,
	}, buckets[0])
}

func TestMonthlyBuckets_OrdenCronologicoYTiposSeparados(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	julio := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	agosto := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	movs := []entity.StockMovement{
		mov(entity.MovementTypeOut, 3, agosto),
		mov(entity.MovementTypeIn, 10, julio),
		mov(entity.MovementTypeIn, 5, agosto),
		mov(entity.MovementTypeIn, 2, agosto),
	}

	buckets := stock.MonthlyBuckets(movs, stock.DefaultMonthsBack, now)

	require.Len(t, buckets, 3)
	assert.Equal(t, stock.MonthlyBucket{Year: 2026, Month: 7, MovementType: "in", Total: 10}, buckets[0])
	assert.Equal(t, stock.MonthlyBucket{Year: 2026, Month: 8, MovementType: "in", Total: 7}, buckets[1])
	assert.Equal(t, stock.MonthlyBucket{Year: 2026, Month: 8, MovementType: "out", Total: 3}, buckets[2])
}

// Los movimientos anteriores a la ventana móvil no aportan buckets.
func TestMonthlyBuckets_FueraDeVentana(t *testing.T) {
	now := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	viejo := now.AddDate(0, -7, 0)

	buckets := stock.MonthlyBuckets([]entity.StockMovement{
		mov(entity.MovementTypeIn, 100, viejo),
	}, stock.DefaultMonthsBack, now)

	assert.Empty(t, buckets)
}
