package notify

import (
	"sync"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/ledger"
	"github.com/yousefroshhdy/dental-pos-harmony/pkg/logger"
)

var _ ledger.Notifier = (*LogNotifier)(nil)

// LogNotifier emite las notificaciones del motor como eventos estructurados
// de log en lugar de avisos en pantalla.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el adaptador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify registra la notificación; error -> warn, éxito -> info.
func (n *LogNotifier) Notify(kind, title, message string) {
	ev := n.log.Info()
	if kind == ledger.KindError {
		ev = n.log.Warn()
	}
	ev.Str("kind", kind).Str("title", title).Msg(message)
}

// Notification es una notificación capturada por el Recorder.
type Notification struct {
	Kind    string
	Title   string
	Message string
}

var _ ledger.Notifier = (*Recorder)(nil)

// Recorder captura las notificaciones en memoria; para tests.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

// Notify guarda la notificación.
func (r *Recorder) Notify(kind, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, Notification{Kind: kind, Title: title, Message: message})
}

// All devuelve una copia de lo capturado.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Last devuelve la última notificación (o cero si no hay).
func (r *Recorder) Last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return Notification{}
	}
	return r.notifications[len(r.notifications)-1]
}

// Reset descarta lo capturado.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = nil
}
