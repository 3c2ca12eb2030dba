package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/ledger"
)

// ReportHandler expone los reportes de inventario.
type ReportHandler struct {
	ledger *ledger.Ledger
}

// NewReportHandler construye el handler.
func NewReportHandler(l *ledger.Ledger) *ReportHandler {
	return &ReportHandler{ledger: l}
}

// LowStock productos en o bajo el umbral de stock.
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(h.ledger.LowStock())
}

// InventoryValue valor total del inventario y desglose por tipo.
func (h *ReportHandler) InventoryValue(c *fiber.Ctx) error {
	return c.JSON(h.ledger.InventoryValue())
}
