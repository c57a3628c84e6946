package entity

import "time"

// User representa una cuenta del sistema.
// Invariantes (aplicadas en el use case de usuarios):
//   - siempre debe existir al menos un usuario,
//   - siempre debe existir al menos un usuario activo,
//   - un usuario no puede eliminarse a sí mismo.
type User struct {
	ID             string // uuid, opaco
	UserName       string // máx 100, único
	Email          string // máx 150, único
	PasswordHash   string // bcrypt; filas legacy pueden traer texto plano y se migran en el login
	IsActive       bool
	EmailConfirmed bool
	CreatedAt      time.Time
}
