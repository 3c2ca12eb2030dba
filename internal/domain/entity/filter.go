package entity

import "strings"

// FilterAll es el comodín de Type y Color: no restringe nada.
const FilterAll = "All"

// InventoryFilter es una proyección transitoria de la vista de inventario.
// No se persiste ni participa en ningún invariante.
type InventoryFilter struct {
	SearchTerm string `json:"searchTerm"`
	Type       string `json:"type"`
	Color      string `json:"color"`
}

// DefaultFilter devuelve el filtro sin restricciones.
func DefaultFilter() InventoryFilter {
	return InventoryFilter{Type: FilterAll, Color: FilterAll}
}

// Matches indica si el producto pasa el filtro. El término de búsqueda se
// compara sin distinguir mayúsculas contra código, tipo y color.
func (f InventoryFilter) Matches(p Product) bool {
	if f.Type != "" && f.Type != FilterAll && p.Type != f.Type {
		return false
	}
	if f.Color != "" && f.Color != FilterAll && p.Color != f.Color {
		return false
	}
	if f.SearchTerm == "" {
		return true
	}
	term := strings.ToLower(f.SearchTerm)
	return strings.Contains(strings.ToLower(p.Code), term) ||
		strings.Contains(strings.ToLower(p.Type), term) ||
		strings.Contains(strings.ToLower(p.Color), term)
}
