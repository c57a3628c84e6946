package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/EzequielRindello/StockCore/internal/domain"
	"github.com/EzequielRindello/StockCore/internal/domain/entity"
	"github.com/EzequielRindello/StockCore/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, user_name, email, password_hash, email_confirmed, is_active, created_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable
// con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Los índices únicos de email y user_name
// respaldan la verificación de unicidad del use case.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, user_name, email, password_hash, email_confirmed, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.UserName, user.Email, user.PasswordHash,
		user.EmailConfirmed, user.IsActive, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, o (nil, nil) si no existe. La
// comparación es por texto: un id que no es UUID simplemente no matchea,
// en vez de reventar el cast en Postgres.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id::text = $1`, id)
}

// GetByEmail obtiene un usuario por email (comparación exacta).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// FindByEmailOrUserName busca colisiones de unicidad, excluyendo al propio
// usuario en updates.
func (r *UserRepo) FindByEmailOrUserName(email, userName, excludeID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE (email = $1 OR user_name = $2) AND id::text <> $3 LIMIT 1`
	return r.getOne(query, email, userName, excludeID)
}

// List filtra por substring sobre nombre de usuario y email.
func (r *UserRepo) List(search string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	args := []any{}
	if search != "" {
		query += ` WHERE user_name LIKE $1 OR email LIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY user_name`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := []*entity.User{}
	for rows.Next() {
		var u entity.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// Update modifica nombre, email y estado. El hash se cambia solo por
// UpdatePasswordHash.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET user_name = $2, email = $3, email_confirmed = $4, is_active = $5
		WHERE id::text = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.UserName, user.Email, user.EmailConfirmed, user.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdatePasswordHash reemplaza el hash de contraseña.
func (r *UserRepo) UpdatePasswordHash(id, hash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET password_hash = $2 WHERE id::text = $1`, id, hash,
	)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	return nil
}

// Delete elimina un usuario.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Count cuenta todos los usuarios.
func (r *UserRepo) Count() (int, error) {
	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// CountActiveExcept cuenta los usuarios activos distintos del indicado.
func (r *UserRepo) CountActiveExcept(id string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE is_active AND id::text <> $1`, id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active users: %w", err)
	}
	return count, nil
}

func (r *UserRepo) getOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.UserName, &u.Email, &u.PasswordHash,
		&u.EmailConfirmed, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func scanUser(rows pgx.Rows, u *entity.User) error {
	if err := rows.Scan(
		&u.ID, &u.UserName, &u.Email, &u.PasswordHash,
		&u.EmailConfirmed, &u.IsActive, &u.CreatedAt,
	); err != nil {
		return fmt.Errorf("scan user: %w", err)
	}
	return nil
}
