package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound indica que la clave no existe todavía en el almacén.
// El llamador decide el valor por defecto; no es una condición de error de usuario.
var ErrKeyNotFound = errors.New("clave no encontrada")

// Store es el colaborador de persistencia: blobs JSON con nombre.
// Claves usadas por el motor: inventory, cart, invoices, clients,
// nextInvoiceNumber y users.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
