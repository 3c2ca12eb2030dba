package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
)

// Umbrales del reporte de stock bajo.
const (
	LowStockThreshold      = 5
	CriticalStockThreshold = 2
)

// LowStockReport resume los productos con stock en o bajo el umbral.
type LowStockReport struct {
	Threshold       int64            `json:"threshold"`
	LowStockItems   []entity.Product `json:"lowStockItems"`
	LowStockCount   int              `json:"lowStockCount"`
	CriticalCount   int              `json:"criticalCount"`
	LowStockPercent decimal.Decimal  `json:"lowStockPercent"`
}

// TypeValue es el valor de inventario agrupado por tipo de producto.
type TypeValue struct {
	Type    string          `json:"type"`
	Units   int64           `json:"units"`
	Value   decimal.Decimal `json:"value"`
	Percent decimal.Decimal `json:"percent"`
}

// InventoryValueReport resume el valor del inventario: total, unidades,
// valor promedio por unidad y desglose por tipo.
type InventoryValueReport struct {
	TotalUnits       int64           `json:"totalUnits"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	AverageUnitValue decimal.Decimal `json:"averageUnitValue"`
	ByType           []TypeValue     `json:"byType"`
}

// LowStock calcula el reporte de stock bajo sobre el inventario actual.
func (l *Ledger) LowStock() LowStockReport {
	l.mu.Lock()
	defer l.mu.Unlock()

	report := LowStockReport{
		Threshold:       LowStockThreshold,
		LowStockItems:   []entity.Product{},
		LowStockPercent: decimal.Zero,
	}
	for _, p := range l.inventory {
		if p.Quantity <= LowStockThreshold {
			report.LowStockItems = append(report.LowStockItems, p)
			report.LowStockCount++
		}
		if p.Quantity <= CriticalStockThreshold {
			report.CriticalCount++
		}
	}
	if len(l.inventory) > 0 {
		report.LowStockPercent = decimal.NewFromInt(int64(report.LowStockCount * 100)).
			Div(decimal.NewFromInt(int64(len(l.inventory)))).
			Round(1)
	}
	return report
}

// InventoryValue calcula el reporte de valor del inventario actual.
func (l *Ledger) InventoryValue() InventoryValueReport {
	l.mu.Lock()
	defer l.mu.Unlock()

	report := InventoryValueReport{
		TotalValue:       decimal.Zero,
		AverageUnitValue: decimal.Zero,
		ByType:           []TypeValue{},
	}

	// El orden del desglose sigue la primera aparición de cada tipo en el catálogo.
	index := map[string]int{}
	for _, p := range l.inventory {
		value := p.Price.Mul(decimal.NewFromInt(p.Quantity))
		report.TotalUnits += p.Quantity
		report.TotalValue = report.TotalValue.Add(value)

		i, ok := index[p.Type]
		if !ok {
			i = len(report.ByType)
			index[p.Type] = i
			report.ByType = append(report.ByType, TypeValue{Type: p.Type, Value: decimal.Zero})
		}
		report.ByType[i].Units += p.Quantity
		report.ByType[i].Value = report.ByType[i].Value.Add(value)
	}

	if report.TotalUnits > 0 {
		report.AverageUnitValue = report.TotalValue.
			Div(decimal.NewFromInt(report.TotalUnits)).
			Round(2)
	}
	if report.TotalValue.IsPositive() {
		for i := range report.ByType {
			report.ByType[i].Percent = report.ByType[i].Value.
				Mul(decimal.NewFromInt(100)).
				Div(report.TotalValue).
				Round(1)
		}
	}
	return report
}
