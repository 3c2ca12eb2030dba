package dto

import (
	"github.com/shopspring/decimal"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProductRequest alta o reemplazo completo de un producto.
type ProductRequest struct {
	Code     string          `json:"code"`
	Type     string          `json:"type"`
	Color    string          `json:"color"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// AddToCartRequest agrega unidades de un producto al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// UpdateCartQuantityRequest fija la cantidad de una línea del carrito.
type UpdateCartQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// CartResponse carrito con su total.
type CartResponse struct {
	Items []entity.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// ReturnRequest devolución de unidades por código de producto.
type ReturnRequest struct {
	Code     string `json:"code"`
	Quantity int64  `json:"quantity"`
}

// RefundRequest devolución de líneas seleccionadas de una factura.
type RefundRequest struct {
	ItemIDs []string `json:"item_ids"`
}

// ClientRequest alta o reemplazo completo de un cliente.
type ClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
