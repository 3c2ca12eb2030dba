package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/dto"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/ledger"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain"
)

// CartHandler maneja el carrito de la venta en curso.
type CartHandler struct {
	ledger *ledger.Ledger
}

// NewCartHandler construye el handler.
func NewCartHandler(l *ledger.Ledger) *CartHandler {
	return &CartHandler{ledger: l}
}

// Get devuelve el carrito con su total.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.CartResponse{
		Items: h.ledger.Cart(),
		Total: h.ledger.CartTotal(),
	})
}

// AddItem agrega unidades de un producto al carrito.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	if err := h.ledger.AddToCart(c.Context(), in.ProductID, in.Quantity); err != nil {
		return cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CartResponse{
		Items: h.ledger.Cart(),
		Total: h.ledger.CartTotal(),
	})
}

// UpdateItem fija la cantidad de una línea del carrito.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ledger.UpdateCartItemQuantity(c.Context(), id, in.Quantity); err != nil {
		return cartError(c, err)
	}
	return c.JSON(dto.CartResponse{
		Items: h.ledger.Cart(),
		Total: h.ledger.CartTotal(),
	})
}

// RemoveItem elimina una línea del carrito; idempotente.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	h.ledger.RemoveFromCart(c.Context(), id)
	return c.SendStatus(fiber.StatusNoContent)
}

// Clear vacía el carrito.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.ledger.ClearCart(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

// cartError mapea los errores de dominio del carrito a códigos HTTP.
func cartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser mayor que 0"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "el producto no existe en el inventario"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la cantidad solicitada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
