package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los cuatro primeros son condiciones esperadas de cara al usuario: la operación
// que los produce no deja ninguna mutación parcial.
var (
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrEmptyCart         = errors.New("el carrito está vacío")

	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)
