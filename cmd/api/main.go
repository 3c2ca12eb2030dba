package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/auth"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/ledger"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/infrastructure/notify"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/infrastructure/storage"
	httpRouter "github.com/yousefroshhdy/dental-pos-harmony/internal/interfaces/http"
	"github.com/yousefroshhdy/dental-pos-harmony/pkg/config"
	"github.com/yousefroshhdy/dental-pos-harmony/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := storage.New(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de estado")
	}
	defer closeStore()

	notifier := notify.NewLogNotifier(log)
	posLedger := ledger.New(store, notifier, log, ledger.Config{
		CounterSeed: cfg.Ledger.CounterSeed,
	})
	posLedger.Load(ctx)

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:    posLedger,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
