package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leave-api/internal/application/auth"
	"github.com/jhoicas/leave-api/internal/application/dto"
	"github.com/jhoicas/leave-api/internal/domain"
	"github.com/jhoicas/leave-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/leave-api/pkg/jwt"
)

// memUserRepo repositorio de usuarios en memoria para los tests del use case.
type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func newAuthUC(repo *memUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "secret-de-test", Issuer: "leave-api-test"})
}

func TestRegisterUser_CamposFaltantes(t *testing.T) {
	uc := newAuthUC(&memUserRepo{})
	casos := []dto.RegisterRequest{
		{Email: "a@b.co", Password: "pw"},
		{Name: "Ana", Password: "pw"},
		{Name: "Ana", Email: "a@b.co"},
		{},
	}
	for _, in := range casos {
		_, err := uc.RegisterUser(in)
		assert.ErrorIs(t, err, domain.ErrMissingFields, "entrada: %+v", in)
	}
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta1"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Name: "Otra Ana", Email: "ana@example.com", Password: "secreta2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1, "el store debe conservar exactamente un registro para ese email")
}

func TestRegisterUser_RolNoReconocidoSeFuerzaAEmployee(t *testing.T) {
	uc := newAuthUC(&memUserRepo{})
	casos := map[string]string{
		"":           entity.RoleEmployee,
		"employee":   entity.RoleEmployee,
		"admin":      entity.RoleAdmin,
		"superadmin": entity.RoleEmployee,
		"Admin":      entity.RoleEmployee, // sensible a mayúsculas
	}
	for requested, want := range casos {
		out, err := uc.RegisterUser(dto.RegisterRequest{
			Name: "Ana", Email: "ana+" + requested + "@example.com", Password: "secreta1", Role: requested,
		})
		require.NoError(t, err)
		assert.Equal(t, want, out.Role, "rol solicitado: %q", requested)
	}
}

func TestRegisterUser_NoExponeElHash(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo)

	out, err := uc.RegisterUser(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta1"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Ana", out.Name)
	// El hash queda en el store, nunca en la proyección, y nunca es el texto plano.
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "secreta1", repo.users[0].PasswordHash)
	assert.NotEmpty(t, repo.users[0].PasswordHash)
}

func TestLogin_MismoErrorParaEmailYPasswordIncorrectos(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo)
	_, err := uc.RegisterUser(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta1"})
	require.NoError(t, err)

	// Password incorrecto
	_, errPw := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	// Email inexistente
	_, errEmail := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreta1"})

	assert.ErrorIs(t, errPw, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errEmail, domain.ErrInvalidCredentials)
	// La misma forma de error en ambos casos: sin enumeración de cuentas.
	assert.Equal(t, errPw, errEmail)
}

func TestLogin_EmiteTokenConRol(t *testing.T) {
	uc := newAuthUC(&memUserRepo{})
	_, err := uc.RegisterUser(dto.RegisterRequest{Name: "Root", Email: "root@example.com", Password: "secreta1", Role: "admin"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "root@example.com", Password: "secreta1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.User.Role)

	userID, role, err := pkgjwt.Parse("secret-de-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "admin", role)
}

func TestEnsureSeedAdmin(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo)

	res, err := uc.EnsureSeedAdmin("Root", "root@example.com", "cambiar-yá")
	require.NoError(t, err)
	assert.Equal(t, auth.SeedCreated, res)
	require.Len(t, repo.users, 1)
	assert.Equal(t, entity.RoleAdmin, repo.users[0].Role)

	// Segunda corrida: idempotente
	res, err = uc.EnsureSeedAdmin("Root", "root@example.com", "cambiar-yá")
	require.NoError(t, err)
	assert.Equal(t, auth.SeedExists, res)
	assert.Len(t, repo.users, 1)

	// Email vacío: seed desactivado
	res, err = uc.EnsureSeedAdmin("Root", "   ", "pw")
	require.NoError(t, err)
	assert.Equal(t, auth.SeedSkipped, res)
}
