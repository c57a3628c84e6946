package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/application/usecase"
	"github.com/EzequielRindello/StockCore/internal/domain"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
)

func buildAuthUseCase(t *testing.T) (*usecase.AuthUseCase, *fakeUserRepo, *fakeSessionStore) {
	t.Helper()
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	return usecase.NewAuthUseCase(users, sessions), users, sessions
}

func seedAuthUser(t *testing.T, users *fakeUserRepo, password string, active bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(&entity.User{
		ID: "u1", UserName: "ezequiel", Email: "eze@stockcore.dev",
		PasswordHash: string(hash), IsActive: active,
	}))
}

func TestLogin_CaminoFelizAbreSesion(t *testing.T) {
	uc, users, sessions := buildAuthUseCase(t)
	seedAuthUser(t, users, "secreta1", true)

	res, token := uc.Login(dto.LoginRequest{Email: "eze@stockcore.dev", Password: "secreta1"})

	assert.True(t, res.Success)
	assert.Equal(t, "u1", res.UserID)
	assert.Equal(t, "ezequiel", res.UserName)
	require.NotEmpty(t, token)
	userID, ok := sessions.Get(token)
	assert.True(t, ok)
	assert.Equal(t, "u1", userID)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, users, _ := buildAuthUseCase(t)
	seedAuthUser(t, users, "secreta1", true)

	res, token := uc.Login(dto.LoginRequest{Email: "eze@stockcore.dev", Password: "incorrecta"})

	assert.False(t, res.Success)
	assert.Equal(t, "Invalid credentials", res.Message)
	assert.Empty(t, token)
}

func TestLogin_EmailInexistenteMismoMensaje(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)

	res, _ := uc.Login(dto.LoginRequest{Email: "nadie@stockcore.dev", Password: "x"})

	assert.Equal(t, "Invalid credentials", res.Message,
		"email inexistente y contraseña incorrecta no deben distinguirse")
}

func TestLogin_UsuarioInactivoConCredencialesValidas(t *testing.T) {
	uc, users, _ := buildAuthUseCase(t)
	seedAuthUser(t, users, "secreta1", false)

	res, token := uc.Login(dto.LoginRequest{Email: "eze@stockcore.dev", Password: "secreta1"})

	assert.False(t, res.Success)
	assert.Equal(t, "User account is inactive", res.Message)
	assert.Empty(t, token)
}

func TestLogin_PasswordLegadaEnClaroMigraABcrypt(t *testing.T) {
	uc, users, _ := buildAuthUseCase(t)
	require.NoError(t, users.Create(&entity.User{
		ID: "u1", UserName: "admin", Email: "admin@stockcore.dev",
		PasswordHash: "admin", IsActive: true,
	}))

	res, token := uc.Login(dto.LoginRequest{Email: "admin@stockcore.dev", Password: "admin"})

	assert.True(t, res.Success, "la fila legada en claro debe seguir pudiendo loguearse")
	assert.NotEmpty(t, token)
	saved := users.users["u1"]
	assert.NotEqual(t, "admin", saved.PasswordHash, "el acierto legado debe re-hashear la fila")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("admin")))
}

// Un re-hash que falla no bloquea el login: la fila queda en claro y la
// migración reintenta en el próximo acierto.
func TestLogin_FallaDeRehashNoBloqueaElLogin(t *testing.T) {
	uc, users, _ := buildAuthUseCase(t)
	require.NoError(t, users.Create(&entity.User{
		ID: "u1", UserName: "admin", Email: "admin@stockcore.dev",
		PasswordHash: "admin", IsActive: true,
	}))
	users.rehashErr = errors.New("connection reset")

	res, token := uc.Login(dto.LoginRequest{Email: "admin@stockcore.dev", Password: "admin"})

	assert.True(t, res.Success)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", users.users["u1"].PasswordHash,
		"la fila sigue en claro hasta que un re-hash prospere")

	users.rehashErr = nil
	res, _ = uc.Login(dto.LoginRequest{Email: "admin@stockcore.dev", Password: "admin"})
	assert.True(t, res.Success)
	assert.NotEqual(t, "admin", users.users["u1"].PasswordHash,
		"el siguiente acierto completa la migración")
}

func TestLogout_DestruyeLaSesion(t *testing.T) {
	uc, users, sessions := buildAuthUseCase(t)
	seedAuthUser(t, users, "secreta1", true)
	_, token := uc.Login(dto.LoginRequest{Email: "eze@stockcore.dev", Password: "secreta1"})

	uc.Logout(token)

	_, ok := sessions.Get(token)
	assert.False(t, ok, "el token no debe resolver después del logout")
}

func TestCurrentUser_TokenInvalidoDevuelveNil(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)

	user, err := uc.CurrentUser("token-falso")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestResolveActiveUser_CaminoFeliz(t *testing.T) {
	uc, users, sessions := buildAuthUseCase(t)
	seedAuthUser(t, users, "secreta1", true)
	token := sessions.Create("u1")

	userID, err := uc.ResolveActiveUser(token)

	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestResolveActiveUser_SinSesion(t *testing.T) {
	uc, _, _ := buildAuthUseCase(t)

	_, err := uc.ResolveActiveUser("token-falso")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolveActiveUser_UsuarioDesactivadoPierdeLaSesion(t *testing.T) {
	uc, users, sessions := buildAuthUseCase(t)
	seedAuthUser(t, users, "secreta1", false)
	token := sessions.Create("u1")

	_, err := uc.ResolveActiveUser(token)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, ok := sessions.Get(token)
	assert.False(t, ok, "la sesión del usuario desactivado debe destruirse en el acto")
}

func TestResolveActiveUser_UsuarioBorradoPierdeLaSesion(t *testing.T) {
	uc, _, sessions := buildAuthUseCase(t)
	token := sessions.Create("fantasma")

	_, err := uc.ResolveActiveUser(token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, ok := sessions.Get(token)
	assert.False(t, ok)
}
