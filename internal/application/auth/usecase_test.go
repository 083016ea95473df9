package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/his-bodega/bodega-api/internal/application/auth"
	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/domain"
	"github.com/his-bodega/bodega-api/internal/domain/entity"
	pkgjwt "github.com/his-bodega/bodega-api/pkg/jwt"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
	nextID   int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario), nextID: 1}
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	u.ID = f.nextID
	f.nextID++
	f.usuarios[u.Email] = u
	return nil
}

func (f *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	u, ok := f.usuarios[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

var jwtCfg = auth.JWTConfig{Secret: "test-secret-key", ExpMinutes: 60, Issuer: "bodega-api-test"}

func newUseCase() (*auth.AuthUseCase, *fakeUsuarioRepo) {
	repo := newFakeUsuarioRepo()
	return auth.NewAuthUseCase(repo, jwtCfg), repo
}

func TestRegister_HasheaPasswordYAsignaRolEmpleado(t *testing.T) {
	uc, repo := newUseCase()

	resp, err := uc.Register(dto.RegisterRequest{
		Nombre:   "Ana",
		Email:    "ana@bodega.local",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolEmpleado, resp.Rol, "sin rol explícito se asigna empleado")

	guardado := repo.usuarios["ana@bodega.local"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreta123", guardado.PasswordHash, "la password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("secreta123")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@bodega.local", Password: "x12345"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@bodega.local", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_SinEmailNiPassword(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(dto.RegisterRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmiteTokenParseable(t *testing.T) {
	uc, _ := newUseCase()
	reg, err := uc.Register(dto.RegisterRequest{Email: "ana@bodega.local", Password: "secreta123", Rol: entity.RolAdmin})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@bodega.local", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.Type)
	assert.Equal(t, reg.ID, resp.Usuario.ID)

	usuarioID, rol, err := pkgjwt.Parse(jwtCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, usuarioID)
	assert.Equal(t, entity.RolAdmin, rol)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@bodega.local", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@bodega.local", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@bodega.local", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMe_DevuelvePerfil(t *testing.T) {
	uc, _ := newUseCase()
	reg, err := uc.Register(dto.RegisterRequest{Nombre: "Ana", Email: "ana@bodega.local", Password: "secreta123"})
	require.NoError(t, err)

	perfil, err := uc.Me(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", perfil.Nombre)

	_, err = uc.Me(999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
