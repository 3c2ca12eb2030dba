package entity

// Client representa un cliente del almacén. Es una entidad independiente:
// no se guarda ningún vínculo referencial con las facturas.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
