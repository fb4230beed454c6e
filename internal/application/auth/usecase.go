package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/leave-api/internal/application/dto"
	"github.com/jhoicas/leave-api/internal/domain"
	"github.com/jhoicas/leave-api/internal/domain/entity"
	"github.com/jhoicas/leave-api/internal/domain/repository"
	"github.com/jhoicas/leave-api/pkg/jwt"
)

// TokenTTL vigencia fija de los tokens emitidos.
const TokenTTL = 24 * time.Hour

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro, login y seed del admin inicial.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrMissingFields si falta algún campo y ErrEmailAlreadyExists si el
// email ya está tomado. Roles no reconocidos se fuerzan a employee.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if !entity.ValidRole(role) {
		role = entity.RoleEmployee
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecto devuelven exactamente el mismo
// ErrInvalidCredentials para no permitir enumeración de cuentas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, TokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// SeedResult indica qué hizo EnsureSeedAdmin.
type SeedResult int

const (
	SeedSkipped SeedResult = iota // email vacío, seed desactivado
	SeedExists                    // el admin ya existía
	SeedCreated                   // se creó la cuenta admin
)

// EnsureSeedAdmin crea la cuenta admin inicial si no existe.
// Con email vacío no hace nada (seed desactivado por configuración).
func (uc *AuthUseCase) EnsureSeedAdmin(name, email, password string) (SeedResult, error) {
	if strings.TrimSpace(email) == "" {
		return SeedSkipped, nil
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return SeedSkipped, err
	}
	if existing != nil {
		return SeedExists, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return SeedSkipped, err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(admin); err != nil {
		// Otra réplica pudo ganar la carrera del insert; el admin existe igual.
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return SeedExists, nil
		}
		return SeedSkipped, err
	}
	return SeedCreated, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
