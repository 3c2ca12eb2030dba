package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/dto"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/ledger"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
)

// ClientHandler maneja el directorio de clientes.
type ClientHandler struct {
	ledger *ledger.Ledger
}

// NewClientHandler construye el handler.
func NewClientHandler(l *ledger.Ledger) *ClientHandler {
	return &ClientHandler{ledger: l}
}

// List devuelve todos los clientes.
func (h *ClientHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.ledger.Clients())
}

// Create registra un cliente nuevo.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out := h.ledger.AddClient(c.Context(), entity.Client{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	})
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza los datos del cliente con el ID de la ruta.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client := entity.Client{
		ID:      id,
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	}
	h.ledger.UpdateClient(c.Context(), client)
	return c.JSON(client)
}

// Delete elimina un cliente.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	h.ledger.RemoveClient(c.Context(), id)
	return c.SendStatus(fiber.StatusNoContent)
}
