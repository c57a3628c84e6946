package usecase

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/application/ports"
	"github.com/EzequielRindello/StockCore/internal/domain"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

// AuthUseCase autenticación y sesiones. El resultado de un login fallido
// nunca distingue entre email inexistente y contraseña incorrecta.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions ports.SessionStore
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, sessions ports.SessionStore) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions}
}

// Login verifica credenciales y abre una sesión. Acepta dos caminos de
// contraseña: bcrypt y texto plano legado; un acierto por el camino legado
// re-hashea la fila en el momento, de modo que la flota migra sola a bcrypt.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (dto.AuthResult, string) {
	fail := func(msg string) (dto.AuthResult, string) {
		return dto.AuthResult{Success: false, Message: msg}, ""
	}
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return fail(dto.MsgErrorDoing("authenticating", "user"))
	}
	if user == nil || !uc.passwordMatches(user, in.Password) {
		return fail(dto.MsgInvalidCredentials)
	}
	if !user.IsActive {
		return fail(dto.MsgInactiveAccount)
	}
	token := uc.sessions.Create(user.ID)
	return dto.AuthResult{
		Success:  true,
		UserID:   user.ID,
		UserName: user.UserName,
		Message:  "Login successful",
	}, token
}

// Logout destruye la sesión. Con token vacío o desconocido es un no-op.
func (uc *AuthUseCase) Logout(token string) {
	if token != "" {
		uc.sessions.Destroy(token)
	}
}

// CurrentUser resuelve la sesión al usuario autenticado, o (nil, nil) si el
// token no corresponde a una sesión viva.
func (uc *AuthUseCase) CurrentUser(token string) (*dto.UserDetail, error) {
	userID, ok := uc.sessions.Get(token)
	if !ok {
		return nil, nil
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserDetail(user), nil
}

// ResolveActiveUser valida el token contra la sesión y re-verifica que el
// usuario siga existiendo y activo. Un usuario desactivado pierde la sesión
// en su próximo request, no recién al expirar.
func (uc *AuthUseCase) ResolveActiveUser(token string) (string, error) {
	userID, ok := uc.sessions.Get(token)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		uc.sessions.Destroy(token)
		return "", domain.ErrUnauthorized
	}
	if !user.IsActive {
		uc.sessions.Destroy(token)
		return "", domain.ErrForbidden
	}
	return userID, nil
}

// passwordMatches prueba bcrypt primero y texto plano legado después.
func (uc *AuthUseCase) passwordMatches(user *entity.User, password string) bool {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil {
		return true
	}
	if user.PasswordHash == password {
		// Migración perezosa: la fila legada pasa a bcrypt en este acierto.
		// Si el re-hash falla el login sigue, pero queda registrado: la fila
		// reintenta en el próximo acierto.
		if hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
			if err := uc.users.UpdatePasswordHash(user.ID, string(hash)); err != nil {
				log.Warn().Err(err).Str("user_id", user.ID).Msg("re-hash de contraseña legada falló")
			}
		}
		return true
	}
	return false
}
