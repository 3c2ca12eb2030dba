package entity

import "github.com/shopspring/decimal"

// Product representa un equipo dental del catálogo.
// Code es el identificador de negocio (se usa para buscar en devoluciones);
// Quantity es el stock disponible en unidades.
type Product struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Type     string          `json:"type"`
	Color    string          `json:"color"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}
