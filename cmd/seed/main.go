// Siembra el catálogo dental de demostración, tres facturas históricas y un
// usuario administrador en el Store configurado. Pensado para entornos de
// desarrollo; sobreescribe las claves existentes.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/auth"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/ledger"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/repository"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/infrastructure/storage"
	"github.com/yousefroshhdy/dental-pos-harmony/pkg/config"
	"github.com/yousefroshhdy/dental-pos-harmony/pkg/logger"
)

func product(id, code, ptype, color string, price int64, quantity int64) entity.Product {
	return entity.Product{
		ID:       id,
		Code:     code,
		Type:     ptype,
		Color:    color,
		Price:    decimal.NewFromInt(price),
		Quantity: quantity,
	}
}

func catalog() []entity.Product {
	return []entity.Product{
		product("1", "DC001", "Dental Chair", "White", 12500, 5),
		product("2", "DL001", "LED Dental Light", "Silver", 3200, 8),
		product("3", "DU001", "Complete Dental Unit", "White", 25000, 3),
		product("4", "XR001", "Digital X-Ray Machine", "White/Blue", 45000, 2),
		product("5", "AC001", "Class B Autoclave 18L", "Silver", 7800, 6),
		product("6", "DS001", "Doctor Stool", "Black", 1350, 10),
		product("7", "AS001", "Assistant Stool", "Blue", 1150, 8),
		product("8", "SC001", "Dental Scaler", "Silver", 850, 15),
		product("9", "CM001", "Dental Compressor", "White", 6500, 4),
		product("10", "SU001", "Surgical Handpiece", "Silver", 3500, 12),
		product("11", "HS001", "High-Speed Handpiece", "Silver/Gold", 2200, 20),
		product("12", "LS001", "Low-Speed Handpiece", "Silver", 1800, 15),
		product("13", "LC001", "LED Curing Light", "Blue", 950, 25),
		product("14", "AV001", "Amalgamator", "White", 1250, 7),
		product("15", "IM001", "Intra-oral Camera", "White", 3800, 5),
		product("16", "US001", "Ultrasonic Cleaner", "Silver", 2500, 6),
		product("17", "AP001", "Apex Locator", "Black", 1750, 8),
		product("18", "RU001", "Root Canal Treatment Unit", "White", 4500, 3),
		product("19", "CS001", "Cabinet Set", "White/Wood", 8500, 2),
		product("20", "OS001", "Oral Suction Machine", "White", 1950, 7),
	}
}

// invoices devuelve el historial de demostración; los números quedan por
// debajo del consecutivo inicial (1000) para no chocar con facturas nuevas.
func invoices(products []entity.Product) []entity.Invoice {
	byID := map[string]entity.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	line := func(id string, qty int64) entity.CartItem {
		return entity.NewCartItem(byID[id], qty)
	}
	sum := func(items []entity.CartItem) decimal.Decimal {
		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.Subtotal)
		}
		return total
	}

	inv1Items := []entity.CartItem{line("1", 1), line("5", 1)}
	inv2Items := []entity.CartItem{line("13", 2)}
	inv3Items := []entity.CartItem{line("10", 1), line("11", 2), line("12", 2)}

	return []entity.Invoice{
		{
			InvoiceNumber: "INV-000997",
			Date:          time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
			Items:         inv1Items,
			Total:         sum(inv1Items),
		},
		{
			InvoiceNumber: "INV-000998",
			Date:          time.Date(2024, 5, 2, 14, 15, 0, 0, time.UTC),
			Items:         inv2Items,
			Total:         sum(inv2Items),
		},
		{
			InvoiceNumber: "INV-000999",
			Date:          time.Date(2024, 5, 3, 11, 45, 0, 0, time.UTC),
			Items:         inv3Items,
			Total:         sum(inv3Items),
		},
	}
}

func save(ctx context.Context, log *logger.Logger, store repository.Store, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Fatal().Err(err).Str("key", key).Msg("serializar datos de siembra")
	}
	if err := store.Save(ctx, key, b); err != nil {
		log.Fatal().Err(err).Str("key", key).Msg("guardar datos de siembra")
	}
	log.Info().Str("key", key).Msg("clave sembrada")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	store, closeStore, err := storage.New(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de estado")
	}
	defer closeStore()

	products := catalog()
	save(ctx, log, store, ledger.KeyInventory, products)
	save(ctx, log, store, ledger.KeyCart, []entity.CartItem{})
	save(ctx, log, store, ledger.KeyInvoices, invoices(products))
	save(ctx, log, store, ledger.KeyClients, []entity.Client{})
	save(ctx, log, store, ledger.KeyNextInvoice, ledger.DefaultCounterSeed)

	// Usuario administrador inicial. La contraseña viene de SEED_ADMIN_PASSWORD.
	password := "admin123"
	if v := os.Getenv("SEED_ADMIN_PASSWORD"); v != "" {
		password = v
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña del admin")
	}
	admin := entity.User{
		ID:           uuid.New().String(),
		Email:        "admin@dental-pos.local",
		Name:         "Administrador",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	save(ctx, log, store, auth.KeyUsers, []entity.User{admin})

	log.Info().Int("products", len(products)).Msg("siembra completada")
}
