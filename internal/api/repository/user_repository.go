package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"user-microservice/internal/api/models"

	"github.com/jmoiron/sqlx"
)

// UserRepository defines the interface for user data operations. Every call
// is its own unit of work; absence of a row is reported as (nil, nil), not as
// an error.
type UserRepository interface {
	NextID(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Ping(ctx context.Context) error
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// NextID returns max(id)+1, or 1 when the table is empty.
func (r *sqliteUserRepository) NextID(ctx context.Context) (int64, error) {
	var next int64
	if err := r.db.GetContext(ctx, &next, `SELECT COALESCE(MAX(id), 0) + 1 FROM users`); err != nil {
		return 0, fmt.Errorf("failed to compute next user id: %w", err)
	}
	return next, nil
}

// GetByID retrieves a user by id.
func (r *sqliteUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, first_name, last_name, password, avatar, token FROM users WHERE id = ?`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No user found is not an application error
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email; the first match wins when the table
// holds duplicates.
func (r *sqliteUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, first_name, last_name, password, avatar, token FROM users WHERE email = ? LIMIT 1`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// List returns all users ordered by id.
func (r *sqliteUserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT id, email, first_name, last_name, password, avatar, token FROM users ORDER BY id`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Create persists a new user. When the caller supplied no id, the next one is
// computed inside the same transaction as the insert.
func (r *sqliteUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if user.ID == 0 {
		var next int64
		if err := tx.GetContext(ctx, &next, `SELECT COALESCE(MAX(id), 0) + 1 FROM users`); err != nil {
			return nil, fmt.Errorf("failed to compute next user id: %w", err)
		}
		user.ID = next
	}

	query := `INSERT INTO users (id, email, first_name, last_name, password, avatar, token)
	          VALUES (:id, :email, :first_name, :last_name, :password, :avatar, :token)`
	if _, err := tx.NamedExecContext(ctx, query, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit user create: %w", err)
	}
	return user, nil
}

// Update loads the row for id, merges the fields present in patch onto it and
// persists the result, all in one transaction so a concurrent delete cannot
// slip between the load and the write. An absent row is reported as (nil, nil).
func (r *sqliteUserRepository) Update(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var user models.User
	query := `SELECT id, email, first_name, last_name, password, avatar, token FROM users WHERE id = ?`
	if err := tx.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	applyPatch(&user, patch)

	update := `UPDATE users
	           SET email = :email, first_name = :first_name, last_name = :last_name,
	               password = :password, avatar = :avatar, token = :token
	           WHERE id = :id`
	if _, err := tx.NamedExecContext(ctx, update, &user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit user update: %w", err)
	}
	return &user, nil
}

// Delete removes the row for id. It reports whether a row was removed.
func (r *sqliteUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// Ping performs a trivial round trip against the database.
func (r *sqliteUserRepository) Ping(ctx context.Context) error {
	var one int
	return r.db.GetContext(ctx, &one, `SELECT 1`)
}

// applyPatch copies the fields that were present in the request onto the
// stored row.
func applyPatch(user *models.User, patch *models.UserPatch) {
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Token != nil {
		user.Token = *patch.Token
	}
}
