package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/repository"
)

var _ repository.Store = (*FileStore)(nil)

// FileStore guarda cada clave como un archivo JSON dentro de un directorio.
// La escritura usa archivo temporal + rename para no dejar archivos a medias.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore construye el store sobre el directorio dado (se crea si no existe).
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store: directorio requerido")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load lee el valor de una clave; repository.ErrKeyNotFound si el archivo no existe.
func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrKeyNotFound
		}
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	return b, nil
}

// Save escribe el valor de una clave de forma atómica.
func (s *FileStore) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renombrar %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
