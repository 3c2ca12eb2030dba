package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yousefroshhdy/dental-pos-harmony/internal/application/dto"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/entity"
	"github.com/yousefroshhdy/dental-pos-harmony/internal/domain/repository"
	"github.com/yousefroshhdy/dental-pos-harmony/pkg/jwt"
)

// KeyUsers clave del almacén donde viven los usuarios.
const KeyUsers = "users"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro y login. Los usuarios se persisten como colección JSON
// en el mismo Store que el resto del estado del punto de venta.
type AuthUseCase struct {
	mu     sync.Mutex
	store  repository.Store
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(store repository.Store, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: store, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea la contraseña con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	if role != entity.RoleAdmin && role != entity.RoleVendedor {
		return nil, domain.ErrInvalidInput
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	users, err := uc.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(in.Email)
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return nil, domain.ErrEmailAlreadyExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	users = append(users, user)
	if err := uc.saveUsers(ctx, users); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login valida credenciales y emite un JWT. Email inexistente y contraseña
// incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	users, err := uc.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(in.Email)
	for _, u := range users {
		if strings.ToLower(u.Email) != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
			return nil, domain.ErrUnauthorized
		}
		token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, fmt.Errorf("generar token: %w", err)
		}
		return &dto.AuthResponse{Token: token, User: *toUserResponse(u)}, nil
	}
	return nil, domain.ErrUnauthorized
}

func (uc *AuthUseCase) loadUsers(ctx context.Context) ([]entity.User, error) {
	b, err := uc.store.Load(ctx, KeyUsers)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("cargar usuarios: %w", err)
	}
	var users []entity.User
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, fmt.Errorf("usuarios persistidos ilegibles: %w", err)
	}
	return users, nil
}

func (uc *AuthUseCase) saveUsers(ctx context.Context, users []entity.User) error {
	b, err := json.Marshal(users)
	if err != nil {
		return err
	}
	if err := uc.store.Save(ctx, KeyUsers, b); err != nil {
		return fmt.Errorf("guardar usuarios: %w", err)
	}
	return nil
}

func toUserResponse(u entity.User) *dto.UserResponse {
	return &dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
