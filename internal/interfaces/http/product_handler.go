package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/dto"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/ledger"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
)

// ProductHandler maneja el catálogo y el filtro de inventario.
type ProductHandler struct {
	ledger *ledger.Ledger
}

// NewProductHandler construye el handler.
func NewProductHandler(l *ledger.Ledger) *ProductHandler {
	return &ProductHandler{ledger: l}
}

// List devuelve el inventario aplicando el filtro vigente.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.ledger.FilteredInventory())
}

// Get devuelve un producto por su ID.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	p, ok := h.ledger.ProductByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "el producto no existe en el inventario"})
	}
	return c.JSON(p)
}

// Create agrega un producto al catálogo.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y type son requeridos"})
	}
	out := h.ledger.AddProduct(c.Context(), entity.Product{
		Code:     in.Code,
		Type:     in.Type,
		Color:    in.Color,
		Price:    in.Price,
		Quantity: in.Quantity,
	})
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza el producto con el ID de la ruta. Si el ID no existe, la
// operación queda en no-op (semántica del motor) y se responde 200 igual.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	p := entity.Product{
		ID:       id,
		Code:     in.Code,
		Type:     in.Type,
		Color:    in.Color,
		Price:    in.Price,
		Quantity: in.Quantity,
	}
	h.ledger.UpdateProduct(c.Context(), p)
	return c.JSON(p)
}

// Delete elimina un producto del catálogo.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	h.ledger.RemoveProduct(c.Context(), id)
	return c.SendStatus(fiber.StatusNoContent)
}

// SetFilter mezcla una actualización parcial con el filtro vigente.
func (h *ProductHandler) SetFilter(c *fiber.Ctx) error {
	var in ledger.FilterUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.ledger.SetFilter(in))
}

// ResetFilter vuelve al filtro sin restricciones.
func (h *ProductHandler) ResetFilter(c *fiber.Ctx) error {
	return c.JSON(h.ledger.ResetFilter())
}
