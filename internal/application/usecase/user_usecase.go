package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/application/ports"
	"github.com/EzequielRindello/StockCore/internal/domain"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. Además del contrato Result
// hace cumplir los invariantes de administración: nadie se borra a sí mismo
// y siempre queda al menos un usuario activo.
type UserUseCase struct {
	users repository.UserRepository
	tx    ports.TxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, tx ports.TxRunner) *UserUseCase {
	return &UserUseCase{users: users, tx: tx}
}

// IndexView arma la vista principal: estado de sesión, usuario actual y
// listado completo. currentUserID vacío significa visitante anónimo.
func (uc *UserUseCase) IndexView(currentUserID string) (dto.UserIndexView, error) {
	view := dto.UserIndexView{Users: []dto.UserListItem{}}
	if currentUserID != "" {
		current, err := uc.users.GetByID(currentUserID)
		if err != nil {
			return view, err
		}
		if current != nil {
			view.IsLoggedIn = true
			view.CurrentUser = toUserDetail(current)
		}
	}
	users, err := uc.Filter(dto.UserFilterRequest{})
	if err != nil {
		return view, err
	}
	view.Users = users
	return view, nil
}

// Filter lista usuarios por substring sobre nombre de usuario y email.
func (uc *UserUseCase) Filter(in dto.UserFilterRequest) ([]dto.UserListItem, error) {
	users, err := uc.users.List(in.Search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserListItem{
			ID:        u.ID,
			UserName:  u.UserName,
			Email:     u.Email,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
		})
	}
	return items, nil
}

// GetForEdit devuelve la proyección de formulario, o (nil, nil) si no existe.
// La contraseña nunca viaja de vuelta.
func (uc *UserUseCase) GetForEdit(id string) (*dto.UserForm, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dto.UserForm{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		IsActive: user.IsActive,
	}, nil
}

// Create da de alta un usuario con contraseña bcrypt. La unicidad de email y
// username se verifica antes de insertar; el índice único de la BD respalda
// la verificación ante carreras.
func (uc *UserUseCase) Create(ctx context.Context, form dto.UserForm) dto.Result {
	switch {
	case form.Password == "":
		return dto.Fail(dto.MsgPasswordRequired)
	case len(form.Password) < 6:
		return dto.Fail(dto.MsgPasswordMin6)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.Fail(dto.MsgErrorDoing("creating", "user"))
	}
	err = uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if err := checkUserUniqueness(r.Users, form.Email, form.UserName, ""); err != nil {
			return err
		}
		return r.Users.Create(&entity.User{
			ID:           uuid.NewString(),
			UserName:     form.UserName,
			Email:        form.Email,
			PasswordHash: string(hash),
			IsActive:     form.IsActive,
			CreatedAt:    time.Now().UTC(),
		})
	})
	switch {
	case err == nil:
		return dto.Ok(dto.MsgCreated("User"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return dto.Fail(dto.MsgEmailExists)
	case errors.Is(err, domain.ErrUserNameAlreadyExists):
		return dto.Fail(dto.MsgUserNameExists)
	default:
		return dto.Fail(dto.MsgErrorDoing("creating", "user"))
	}
}

// Update modifica nombre, email y estado de un usuario existente. La
// contraseña no se toca por este camino.
func (uc *UserUseCase) Update(ctx context.Context, form dto.UserForm) (dto.UserForm, dto.Result) {
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		user, err := r.Users.GetByID(form.ID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if err := checkUserUniqueness(r.Users, form.Email, form.UserName, form.ID); err != nil {
			return err
		}
		user.UserName = form.UserName
		user.Email = form.Email
		user.IsActive = form.IsActive
		return r.Users.Update(user)
	})
	switch {
	case err == nil:
		return form, dto.Ok(dto.MsgSaved("User"))
	case errors.Is(err, domain.ErrUserNotFound):
		return form, dto.Fail(dto.MsgNotFound("User"))
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return form, dto.Fail(dto.MsgEmailExists)
	case errors.Is(err, domain.ErrUserNameAlreadyExists):
		return form, dto.Fail(dto.MsgUserNameExists)
	default:
		return form, dto.Fail(dto.MsgErrorDoing("saving", "user"))
	}
}

// Delete elimina un usuario respetando los invariantes de administración,
// verificados en orden: no borrarse a sí mismo, que quede al menos un
// usuario, que quede al menos un usuario activo.
func (uc *UserUseCase) Delete(ctx context.Context, id, currentUserID string) dto.Result {
	if id == currentUserID {
		return dto.Fail(dto.MsgCannotDeleteSelf)
	}
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		total, err := r.Users.Count()
		if err != nil {
			return err
		}
		if total <= 1 {
			return domain.ErrConflict
		}
		activeOthers, err := r.Users.CountActiveExcept(id)
		if err != nil {
			return err
		}
		if activeOthers == 0 {
			return domain.ErrForbidden
		}
		user, err := r.Users.GetByID(id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		return r.Users.Delete(id)
	})
	switch {
	case err == nil:
		return dto.Ok(dto.MsgDeleted("User"))
	case errors.Is(err, domain.ErrConflict):
		return dto.Fail(dto.MsgLastUser)
	case errors.Is(err, domain.ErrForbidden):
		return dto.Fail(dto.MsgLastActiveUser)
	case errors.Is(err, domain.ErrUserNotFound):
		return dto.Fail(dto.MsgNotFound("User"))
	default:
		return dto.Fail(dto.MsgErrorDoing("deleting", "user"))
	}
}

// ChangePassword fija una nueva contraseña bcrypt para el usuario dado.
func (uc *UserUseCase) ChangePassword(ctx context.Context, id string, in dto.ChangePasswordRequest) dto.Result {
	switch {
	case in.NewPassword == "":
		return dto.Fail(dto.MsgPasswordRequired)
	case len(in.NewPassword) < 6:
		return dto.Fail(dto.MsgPasswordMin6)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return dto.Fail(dto.MsgErrorDoing("changing", "password"))
	}
	err = uc.tx.Run(ctx, func(r ports.TxRepos) error {
		user, err := r.Users.GetByID(id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		return r.Users.UpdatePasswordHash(id, string(hash))
	})
	switch {
	case err == nil:
		return dto.Ok(dto.MsgPasswordChanged)
	case errors.Is(err, domain.ErrUserNotFound):
		return dto.Fail(dto.MsgNotFound("User"))
	default:
		return dto.Fail(dto.MsgErrorDoing("changing", "password"))
	}
}

// SendPasswordReset verifica que el usuario exista y dispara el envío del
// correo de restablecimiento. El envío real queda a cargo del proveedor de
// correo del deployment; aquí solo se confirma la operación.
func (uc *UserUseCase) SendPasswordReset(id string) dto.Result {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return dto.Fail(dto.MsgErrorDoing("resetting", "password"))
	}
	if user == nil {
		return dto.Fail(dto.MsgNotFound("User"))
	}
	return dto.Ok(dto.MsgPasswordResetSent)
}

// ExportCsv genera el CSV del listado aplicando el mismo filtro.
func (uc *UserUseCase) ExportCsv(in dto.UserFilterRequest) (string, error) {
	items, err := uc.Filter(in)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"Id", "UserName", "Email", "Active", "CreatedAt"})
	for _, u := range items {
		_ = w.Write([]string{
			u.ID,
			u.UserName,
			u.Email,
			strconv.FormatBool(u.IsActive),
			u.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	w.Flush()
	return sb.String(), w.Error()
}

// checkUserUniqueness traduce una colisión de email o username al error de
// dominio correspondiente. El email tiene prioridad si colisionan ambos.
func checkUserUniqueness(users repository.UserRepository, email, userName, excludeID string) error {
	existing, err := users.FindByEmailOrUserName(email, userName, excludeID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if existing.Email == email {
		return domain.ErrEmailAlreadyExists
	}
	return domain.ErrUserNameAlreadyExists
}

func toUserDetail(u *entity.User) *dto.UserDetail {
	return &dto.UserDetail{
		ID:             u.ID,
		UserName:       u.UserName,
		Email:          u.Email,
		EmailConfirmed: u.EmailConfirmed,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
	}
}
