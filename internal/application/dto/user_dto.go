package dto

import (
	"strings"
	"time"
)

// UserForm proyección plana de un usuario para alta y edición.
// Password solo se usa en el alta; en la edición se ignora.
type UserForm struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Validate devuelve los errores de validación por campo (vacío si es válido).
// La contraseña se valida aparte en el use case de alta.
func (f UserForm) Validate() map[string]string {
	errs := map[string]string{}
	switch {
	case f.UserName == "":
		errs["userName"] = MsgUserNameRequired
	case len(f.UserName) > 100:
		errs["userName"] = MsgNameMax100
	}
	switch {
	case f.Email == "":
		errs["email"] = MsgEmailRequired
	case !strings.Contains(f.Email, "@") || len(f.Email) > 150:
		errs["email"] = MsgInvalidEmail
	}
	return errs
}

// UserListItem fila del listado de usuarios.
type UserListItem struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserDetail vista del usuario autenticado.
type UserDetail struct {
	ID             string    `json:"id"`
	UserName       string    `json:"userName"`
	Email          string    `json:"email"`
	EmailConfirmed bool      `json:"emailConfirmed"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserIndexView composición de la vista principal de usuarios.
type UserIndexView struct {
	IsLoggedIn  bool           `json:"isLoggedIn"`
	CurrentUser *UserDetail    `json:"currentUser,omitempty"`
	Users       []UserListItem `json:"users"`
}

// UserFilterRequest filtro del listado (substring sobre username y email).
type UserFilterRequest struct {
	Search string `json:"search" query:"search"`
}

// ChangePasswordRequest cambio de contraseña de un usuario existente.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}
