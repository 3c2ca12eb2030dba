package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice es el registro inmutable de una venta completada.
// Items es una copia del carrito al momento de crearla, no una referencia viva.
// Las facturas nunca se modifican ni se borran: una devolución ajusta el
// inventario pero deja la factura intacta.
type Invoice struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          time.Time       `json:"date"`
	Items         []CartItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
}
