package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
)

func chair() entity.Product {
	return entity.Product{
		ID:    "1",
		Code:  "DC001",
		Type:  "Dental Chair",
		Color: "White",
		Price: decimal.NewFromInt(12500),
	}
}

func TestDefaultFilter_NoRestringe(t *testing.T) {
	assert.True(t, entity.DefaultFilter().Matches(chair()))
}

func TestMatches_PorTipoYColor(t *testing.T) {
	p := chair()

	assert.True(t, entity.InventoryFilter{Type: "Dental Chair", Color: entity.FilterAll}.Matches(p))
	assert.False(t, entity.InventoryFilter{Type: "Dental Scaler", Color: entity.FilterAll}.Matches(p))
	assert.True(t, entity.InventoryFilter{Type: entity.FilterAll, Color: "White"}.Matches(p))
	assert.False(t, entity.InventoryFilter{Type: entity.FilterAll, Color: "Blue"}.Matches(p))

	// Tipo y color vacíos se comportan como el comodín.
	assert.True(t, entity.InventoryFilter{}.Matches(p))
}

func TestMatches_BusquedaSinDistinguirMayusculas(t *testing.T) {
	p := chair()
	f := entity.DefaultFilter()

	for _, term := range []string{"dc001", "CHAIR", "whi"} {
		f.SearchTerm = term
		assert.True(t, f.Matches(p), "término %q debe matchear", term)
	}

	f.SearchTerm = "scaler"
	assert.False(t, f.Matches(p))
}

// El término de búsqueda y las restricciones de tipo/color se combinan con AND.
func TestMatches_CombinaRestricciones(t *testing.T) {
	p := chair()

	f := entity.InventoryFilter{SearchTerm: "chair", Type: entity.FilterAll, Color: "Blue"}
	assert.False(t, f.Matches(p))

	f.Color = "White"
	assert.True(t, f.Matches(p))
}

func TestNewCartItem_CalculaSubtotal(t *testing.T) {
	item := entity.NewCartItem(chair(), 2)

	assert.EqualValues(t, 2, item.CartQuantity)
	assert.True(t, decimal.NewFromInt(25000).Equal(item.Subtotal))
}
