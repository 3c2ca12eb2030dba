package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/dto"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/ledger"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain"
)

// InvoiceHandler maneja facturas, devoluciones por código y reembolsos por factura.
type InvoiceHandler struct {
	ledger *ledger.Ledger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(l *ledger.Ledger) *InvoiceHandler {
	return &InvoiceHandler{ledger: l}
}

// Create factura el carrito actual.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	inv, err := h.ledger.CreateInvoice(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "no se puede facturar un carrito vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// List devuelve el historial de facturas.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.ledger.Invoices())
}

// GetByNumber devuelve una factura por su número.
func (h *InvoiceHandler) GetByNumber(c *fiber.Ctx) error {
	number := c.Params("number")
	inv, ok := h.ledger.InvoiceByNumber(number)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(inv)
}

// Refund devuelve al inventario las líneas seleccionadas de una factura.
// La factura no se modifica.
func (h *InvoiceHandler) Refund(c *fiber.Ctx) error {
	number := c.Params("number")
	var in dto.RefundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.ItemIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_ids es requerido"})
	}
	if err := h.ledger.RefundInvoice(c.Context(), number, in.ItemIDs); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Return devuelve unidades al inventario por código de producto.
func (h *InvoiceHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	if err := h.ledger.ProcessReturn(c.Context(), in.Code, in.Quantity); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "el código de producto no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
