package storage

import (
	"context"
	"fmt"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/repository"
	"github.com/yousefroshhdy/dental-pos-harmony/pkg/config"
)

// New construye el Store según el driver configurado: file, memory, postgres o redis.
// Devuelve además una función de cierre (no-op para file y memory).
func New(ctx context.Context, cfg config.StoreConfig) (repository.Store, func(), error) {
	switch cfg.Driver {
	case "file":
		s, err := NewFileStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	case "memory", "mem":
		return NewMemoryStore(), func() {}, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL requerido para el driver postgres")
		}
		s, err := NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "redis":
		s, err := NewRedisStore(ctx, RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("driver de store desconocido: %s", cfg.Driver)
	}
}
