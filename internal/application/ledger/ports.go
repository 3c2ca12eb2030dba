package ledger

// Tipos de notificación de cara al usuario.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Notifier es el colaborador de notificaciones: fire-and-forget, el motor no
// consume ningún valor de retorno.
type Notifier interface {
	Notify(kind, title, message string)
}

// NopNotifier descarta las notificaciones.
type NopNotifier struct{}

// Notify no hace nada.
func (NopNotifier) Notify(kind, title, message string) {}
