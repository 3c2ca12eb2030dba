package entity

import "github.com/shopspring/decimal"

// CartItem es la instantánea de un producto dentro del carrito.
// Subtotal = Price * CartQuantity y se recalcula en cada cambio de cantidad.
// Hay a lo sumo una línea por producto.
type CartItem struct {
	Product
	CartQuantity int64           `json:"cartQuantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// NewCartItem crea la línea de carrito con el subtotal calculado.
func NewCartItem(p Product, quantity int64) CartItem {
	return CartItem{
		Product:      p,
		CartQuantity: quantity,
		Subtotal:     p.Price.Mul(decimal.NewFromInt(quantity)),
	}
}
