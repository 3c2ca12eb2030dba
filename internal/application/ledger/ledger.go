package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/repository"
	"github.com/yousefroshhdy/dental-pos-harmony/pkg/logger"
)

// Claves del almacén de estado.
const (
	KeyInventory   = "inventory"
	KeyCart        = "cart"
	KeyInvoices    = "invoices"
	KeyClients     = "clients"
	KeyNextInvoice = "nextInvoiceNumber"
)

// DefaultCounterSeed es el consecutivo inicial de factura cuando no hay estado persistido.
const DefaultCounterSeed = 1000

// Config del motor.
type Config struct {
	CounterSeed int64
}

// Ledger es el motor transaccional del punto de venta: es dueño del catálogo,
// del carrito, del historial de facturas y de los clientes, y mantiene sus
// invariantes. Cada operación se evalúa de forma atómica contra el estado
// actual: las colecciones se reemplazan completas (copy-on-write), la
// persistencia se escribe después de confirmar en memoria y un fallo de
// escritura no revierte nada (el estado en memoria sigue siendo el autoritativo).
type Ledger struct {
	mu sync.Mutex

	store    repository.Store
	notifier Notifier
	log      *logger.Logger
	now      func() time.Time

	inventory   []entity.Product
	cart        []entity.CartItem
	invoices    []entity.Invoice
	clients     []entity.Client
	filter      entity.InventoryFilter
	nextInvoice int64
}

// New construye el motor sin cargar estado; llamar Load antes de operar.
func New(store repository.Store, notifier Notifier, log *logger.Logger, cfg Config) *Ledger {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if log == nil {
		log = logger.Nop()
	}
	seed := cfg.CounterSeed
	if seed <= 0 {
		seed = DefaultCounterSeed
	}
	return &Ledger{
		store:       store,
		notifier:    notifier,
		log:         log,
		now:         time.Now,
		filter:      entity.DefaultFilter(),
		nextInvoice: seed,
	}
}

// Load carga las colecciones persistidas. Una clave ausente o corrupta deja el
// valor por defecto; el fallo se registra pero no se propaga al usuario.
func (l *Ledger) Load(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadInto(ctx, KeyInventory, &l.inventory)
	l.loadInto(ctx, KeyCart, &l.cart)
	l.loadInto(ctx, KeyInvoices, &l.invoices)
	l.loadInto(ctx, KeyClients, &l.clients)
	l.loadInto(ctx, KeyNextInvoice, &l.nextInvoice)
}

func (l *Ledger) loadInto(ctx context.Context, key string, v any) {
	b, err := l.store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			l.log.Warn().Err(err).Str("key", key).Msg("cargar estado persistido")
		}
		return
	}
	if err := json.Unmarshal(b, v); err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("estado persistido ilegible, se conserva el valor por defecto")
	}
}

// persist serializa y guarda una clave. Un fallo se registra, no se revierte.
func (l *Ledger) persist(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		l.log.Error().Err(err).Str("key", key).Msg("serializar estado")
		return
	}
	if err := l.store.Save(ctx, key, b); err != nil {
		l.log.Error().Err(err).Str("key", key).Msg("guardar estado")
	}
}

func (l *Ledger) notifyOK(title, message string) {
	l.notifier.Notify(KindSuccess, title, message)
}

func (l *Ledger) notifyErr(title, message string) {
	l.notifier.Notify(KindError, title, message)
}

// ── Inventario ────────────────────────────────────────────────────────────────

// AddProduct inserta un producto nuevo. Si no trae ID se le asigna uno.
// No valida duplicados de código.
func (l *Ledger) AddProduct(ctx context.Context, p entity.Product) entity.Product {
	l.mu.Lock()
	defer l.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	l.inventory = append(cloneSlice(l.inventory), p)
	l.persist(ctx, KeyInventory, l.inventory)
	l.notifyOK("Producto agregado", "el producto fue agregado al inventario")
	return p
}

// UpdateProduct reemplaza el producto con el mismo ID. Si el ID no existe la
// operación es un no-op silencioso; la notificación de éxito se emite igual.
func (l *Ledger) UpdateProduct(ctx context.Context, p entity.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inventory := cloneSlice(l.inventory)
	for i := range inventory {
		if inventory[i].ID == p.ID {
			inventory[i] = p
		}
	}
	l.inventory = inventory
	l.persist(ctx, KeyInventory, l.inventory)
	l.notifyOK("Producto actualizado", "el producto fue actualizado en el inventario")
}

// RemoveProduct elimina el producto con el ID dado si existe. No hay cascada
// sobre el carrito: una línea puede quedar huérfana (CreateInvoice la tolera).
func (l *Ledger) RemoveProduct(ctx context.Context, id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inventory := make([]entity.Product, 0, len(l.inventory))
	for _, p := range l.inventory {
		if p.ID != id {
			inventory = append(inventory, p)
		}
	}
	l.inventory = inventory
	l.persist(ctx, KeyInventory, l.inventory)
	l.notifyOK("Producto eliminado", "el producto fue eliminado del inventario")
}

// ── Carrito ──────────────────────────────────────────────────────────────────

// AddToCart agrega unidades de un producto al carrito.
// Falla con ErrInvalidQuantity si quantity <= 0, con ErrProductNotFound si el
// producto no está en inventario y con ErrInsufficientStock si supera el stock.
// Si ya hay una línea para el producto, delega en la actualización de cantidad
// con la suma acumulada (que vuelve a validar contra el stock actual).
func (l *Ledger) AddToCart(ctx context.Context, productID string, quantity int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if quantity <= 0 {
		l.notifyErr("Cantidad inválida", "la cantidad debe ser mayor que 0")
		return domain.ErrInvalidQuantity
	}
	product, ok := l.findProduct(productID)
	if !ok {
		l.notifyErr("Producto no encontrado", "el producto no existe en el inventario")
		return domain.ErrProductNotFound
	}
	if quantity > product.Quantity {
		l.notifyErr("Stock insuficiente", fmt.Sprintf("solo hay %d unidades disponibles", product.Quantity))
		return domain.ErrInsufficientStock
	}

	if existing, ok := l.findCartItem(productID); ok {
		return l.updateCartItemQuantityLocked(ctx, productID, existing.CartQuantity+quantity)
	}

	item := entity.NewCartItem(product, quantity)
	l.cart = append(cloneSlice(l.cart), item)
	l.persist(ctx, KeyCart, l.cart)
	l.notifyOK("Artículo agregado", fmt.Sprintf("%d x %s agregado al carrito", quantity, product.Type))
	return nil
}

// RemoveFromCart elimina la línea del carrito si existe. La notificación de
// éxito se emite aunque el ID no estuviera presente.
func (l *Ledger) RemoveFromCart(ctx context.Context, id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cart := make([]entity.CartItem, 0, len(l.cart))
	for _, item := range l.cart {
		if item.ID != id {
			cart = append(cart, item)
		}
	}
	l.cart = cart
	l.persist(ctx, KeyCart, l.cart)
	l.notifyOK("Artículo eliminado", "el artículo fue eliminado del carrito")
}

// ClearCart vacía el carrito sin notificar (también se invoca al crear factura).
func (l *Ledger) ClearCart(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearCartLocked(ctx)
}

func (l *Ledger) clearCartLocked(ctx context.Context) {
	l.cart = nil
	l.persist(ctx, KeyCart, []entity.CartItem{})
}

// UpdateCartItemQuantity fija la cantidad de una línea y recalcula su subtotal.
// Cantidad 0 se acepta (queda una línea degenerada con subtotal 0).
func (l *Ledger) UpdateCartItemQuantity(ctx context.Context, id string, quantity int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.updateCartItemQuantityLocked(ctx, id, quantity)
}

func (l *Ledger) updateCartItemQuantityLocked(ctx context.Context, id string, quantity int64) error {
	product, ok := l.findProduct(id)
	if !ok {
		l.notifyErr("Error", "el producto no existe en el inventario")
		return domain.ErrProductNotFound
	}
	if quantity > product.Quantity {
		l.notifyErr("Stock insuficiente", fmt.Sprintf("solo hay %d unidades disponibles", product.Quantity))
		return domain.ErrInsufficientStock
	}

	cart := cloneSlice(l.cart)
	for i := range cart {
		if cart[i].ID == id {
			cart[i].CartQuantity = quantity
			cart[i].Subtotal = product.Price.Mul(decimal.NewFromInt(quantity))
		}
	}
	l.cart = cart
	l.persist(ctx, KeyCart, l.cart)
	l.notifyOK("Carrito actualizado", "la cantidad del artículo fue actualizada")
	return nil
}

// ── Facturación ──────────────────────────────────────────────────────────────

// CreateInvoice crea una factura con la instantánea del carrito: asigna el
// consecutivo, descuenta el stock de cada línea, incrementa el contador y
// vacía el carrito, todo en una sola transición. Con el carrito vacío falla
// con ErrEmptyCart sin mutar nada.
func (l *Ledger) CreateInvoice(ctx context.Context) (*entity.Invoice, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.cart) == 0 {
		l.notifyErr("Carrito vacío", "no se puede crear una factura con el carrito vacío")
		return nil, domain.ErrEmptyCart
	}

	items := cloneSlice(l.cart)
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}

	inv := entity.Invoice{
		InvoiceNumber: FormatInvoiceNumber(l.nextInvoice),
		Date:          l.now(),
		Items:         items,
		Total:         total,
	}
	l.invoices = append(cloneSlice(l.invoices), inv)

	// Descontar stock. Una línea cuyo producto ya no existe se ignora
	// (defensivo: las líneas provienen del inventario).
	inventory := cloneSlice(l.inventory)
	for i := range inventory {
		for _, item := range items {
			if item.ID == inventory[i].ID {
				inventory[i].Quantity -= item.CartQuantity
			}
		}
	}
	l.inventory = inventory
	l.nextInvoice++
	l.clearCartLocked(ctx)

	l.persist(ctx, KeyInventory, l.inventory)
	l.persist(ctx, KeyInvoices, l.invoices)
	l.persist(ctx, KeyNextInvoice, l.nextInvoice)

	l.notifyOK("Factura creada", fmt.Sprintf("se creó la factura #%s", inv.InvoiceNumber))
	return &inv, nil
}

// ProcessReturn devuelve unidades al stock del producto con el código dado.
// No valida el signo ni un tope de cantidad.
func (l *Ledger) ProcessReturn(ctx context.Context, code string, quantity int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.processReturnLocked(ctx, code, quantity)
}

func (l *Ledger) processReturnLocked(ctx context.Context, code string, quantity int64) error {
	idx := -1
	for i, p := range l.inventory {
		if p.Code == code {
			idx = i
			break
		}
	}
	if idx == -1 {
		l.notifyErr("Producto no encontrado", "el código de producto no existe en el inventario")
		return domain.ErrProductNotFound
	}

	inventory := cloneSlice(l.inventory)
	inventory[idx].Quantity += quantity
	l.inventory = inventory
	l.persist(ctx, KeyInventory, l.inventory)
	l.notifyOK("Devolución procesada", fmt.Sprintf("%d unidades de %s devueltas al inventario", quantity, code))
	return nil
}

// RefundInvoice procesa la devolución de las líneas seleccionadas de una
// factura existente: cada línea vuelve al inventario vía ProcessReturn. La
// factura en sí nunca se modifica ni se elimina. IDs que no pertenecen a la
// factura se ignoran.
func (l *Ledger) RefundInvoice(ctx context.Context, invoiceNumber string, itemIDs []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var inv *entity.Invoice
	for i := range l.invoices {
		if l.invoices[i].InvoiceNumber == invoiceNumber {
			inv = &l.invoices[i]
			break
		}
	}
	if inv == nil {
		l.notifyErr("Factura no encontrada", "el número de factura no existe")
		return domain.ErrNotFound
	}

	for _, id := range itemIDs {
		for _, item := range inv.Items {
			if item.ID == id {
				// El producto pudo haberse eliminado del catálogo; el error ya
				// fue notificado y la devolución de esa línea se descarta.
				_ = l.processReturnLocked(ctx, item.Code, item.CartQuantity)
				break
			}
		}
	}
	return nil
}

// ── Filtro ───────────────────────────────────────────────────────────────────

// FilterUpdate actualización parcial del filtro: los campos nil no cambian.
type FilterUpdate struct {
	SearchTerm *string `json:"searchTerm"`
	Type       *string `json:"type"`
	Color      *string `json:"color"`
}

// SetFilter mezcla la actualización parcial con el filtro actual.
// Estado transitorio: no se persiste ni se notifica.
func (l *Ledger) SetFilter(update FilterUpdate) entity.InventoryFilter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if update.SearchTerm != nil {
		l.filter.SearchTerm = *update.SearchTerm
	}
	if update.Type != nil {
		l.filter.Type = *update.Type
	}
	if update.Color != nil {
		l.filter.Color = *update.Color
	}
	return l.filter
}

// ResetFilter vuelve al filtro sin restricciones.
func (l *Ledger) ResetFilter() entity.InventoryFilter {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter = entity.DefaultFilter()
	return l.filter
}

// ── Clientes ─────────────────────────────────────────────────────────────────

// AddClient inserta un cliente nuevo. Si no trae ID se le asigna uno.
func (l *Ledger) AddClient(ctx context.Context, c entity.Client) entity.Client {
	l.mu.Lock()
	defer l.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	l.clients = append(cloneSlice(l.clients), c)
	l.persist(ctx, KeyClients, l.clients)
	l.notifyOK("Cliente agregado", "el cliente fue registrado")
	return c
}

// UpdateClient reemplaza el cliente con el mismo ID; no-op silencioso si no existe.
func (l *Ledger) UpdateClient(ctx context.Context, c entity.Client) {
	l.mu.Lock()
	defer l.mu.Unlock()

	clients := cloneSlice(l.clients)
	for i := range clients {
		if clients[i].ID == c.ID {
			clients[i] = c
		}
	}
	l.clients = clients
	l.persist(ctx, KeyClients, l.clients)
	l.notifyOK("Cliente actualizado", "los datos del cliente fueron actualizados")
}

// RemoveClient elimina el cliente con el ID dado si existe.
func (l *Ledger) RemoveClient(ctx context.Context, id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	clients := make([]entity.Client, 0, len(l.clients))
	for _, c := range l.clients {
		if c.ID != id {
			clients = append(clients, c)
		}
	}
	l.clients = clients
	l.persist(ctx, KeyClients, l.clients)
	l.notifyOK("Cliente eliminado", "el cliente fue eliminado")
}

// ── Lecturas ─────────────────────────────────────────────────────────────────

// Inventory devuelve una copia del catálogo.
func (l *Ledger) Inventory() []entity.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneSlice(l.inventory)
}

// FilteredInventory devuelve los productos que pasan el filtro actual.
func (l *Ledger) FilteredInventory() []entity.Product {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entity.Product, 0, len(l.inventory))
	for _, p := range l.inventory {
		if l.filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// ProductByID busca un producto por su ID.
func (l *Ledger) ProductByID(id string) (entity.Product, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.findProduct(id)
}

// Cart devuelve una copia del carrito.
func (l *Ledger) Cart() []entity.CartItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneSlice(l.cart)
}

// CartTotal devuelve la suma de subtotales del carrito.
func (l *Ledger) CartTotal() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := decimal.Zero
	for _, item := range l.cart {
		total = total.Add(item.Subtotal)
	}
	return total
}

// Invoices devuelve una copia del historial de facturas.
func (l *Ledger) Invoices() []entity.Invoice {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneSlice(l.invoices)
}

// InvoiceByNumber busca una factura por su número.
func (l *Ledger) InvoiceByNumber(number string) (entity.Invoice, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, inv := range l.invoices {
		if inv.InvoiceNumber == number {
			return inv, true
		}
	}
	return entity.Invoice{}, false
}

// Clients devuelve una copia del directorio de clientes.
func (l *Ledger) Clients() []entity.Client {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneSlice(l.clients)
}

// Filter devuelve el filtro actual.
func (l *Ledger) Filter() entity.InventoryFilter {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// ── Internos ─────────────────────────────────────────────────────────────────

// FormatInvoiceNumber arma el número de factura: INV- + consecutivo de 6 dígitos.
func FormatInvoiceNumber(n int64) string {
	return fmt.Sprintf("INV-%06d", n)
}

func (l *Ledger) findProduct(id string) (entity.Product, bool) {
	for _, p := range l.inventory {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (l *Ledger) findCartItem(productID string) (entity.CartItem, bool) {
	for _, item := range l.cart {
		if item.ID == productID {
			return item, true
		}
	}
	return entity.CartItem{}, false
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
