package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/ledger"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
)

func seedReportInventory(t *testing.T, l *ledger.Ledger) {
	t.Helper()
	products := []entity.Product{
		{ID: "1", Code: "DC001", Type: "Dental Chair", Color: "White", Price: decimal.NewFromInt(12500), Quantity: 5},
		{ID: "2", Code: "XR001", Type: "X-Ray", Color: "White", Price: decimal.NewFromInt(45000), Quantity: 2},
		{ID: "3", Code: "SC001", Type: "Dental Scaler", Color: "Silver", Price: decimal.NewFromInt(850), Quantity: 15},
		{ID: "4", Code: "DC002", Type: "Dental Chair", Color: "Blue", Price: decimal.NewFromInt(10000), Quantity: 1},
	}
	for _, p := range products {
		seedProduct(t, l, p)
	}
}

func TestLowStock_UmbralesYPorcentaje(t *testing.T) {
	l, _, _ := newTestLedger(t)
	seedReportInventory(t, l)

	report := l.LowStock()

	assert.EqualValues(t, ledger.LowStockThreshold, report.Threshold)
	// Con stock <= 5: DC001 (5), XR001 (2) y DC002 (1). Críticos (<= 2): XR001 y DC002.
	assert.Equal(t, 3, report.LowStockCount)
	assert.Equal(t, 2, report.CriticalCount)
	require.Len(t, report.LowStockItems, 3)
	assert.Equal(t, "75", report.LowStockPercent.String())
}

func TestLowStock_InventarioVacio(t *testing.T) {
	l, _, _ := newTestLedger(t)

	report := l.LowStock()

	assert.Zero(t, report.LowStockCount)
	assert.Zero(t, report.CriticalCount)
	assert.Empty(t, report.LowStockItems)
	assert.True(t, report.LowStockPercent.IsZero())
}

func TestInventoryValue_TotalesYDesglose(t *testing.T) {
	l, _, _ := newTestLedger(t)
	seedReportInventory(t, l)

	report := l.InventoryValue()

	// 5*12500 + 2*45000 + 15*850 + 1*10000 = 175250 en 23 unidades.
	assert.EqualValues(t, 23, report.TotalUnits)
	decEqual(t, 175250, report.TotalValue)
	assert.Equal(t, "7619.57", report.AverageUnitValue.String())

	// El desglose respeta el orden de primera aparición del tipo.
	require.Len(t, report.ByType, 3)
	assert.Equal(t, "Dental Chair", report.ByType[0].Type)
	assert.Equal(t, "X-Ray", report.ByType[1].Type)
	assert.Equal(t, "Dental Scaler", report.ByType[2].Type)

	chairs := report.ByType[0]
	assert.EqualValues(t, 6, chairs.Units)
	decEqual(t, 72500, chairs.Value)
	assert.Equal(t, "41.4", chairs.Percent.String())
}

func TestInventoryValue_InventarioVacio(t *testing.T) {
	l, _, _ := newTestLedger(t)

	report := l.InventoryValue()

	assert.Zero(t, report.TotalUnits)
	assert.True(t, report.TotalValue.IsZero())
	assert.True(t, report.AverageUnitValue.IsZero())
	assert.Empty(t, report.ByType)
}
