package repo

import (
	"context"

	dom "github.com/shazzad098/Personal-Knowledge-Tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	Create(ctx context.Context, email, passwordHash, name, provider string) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByEmail returns the user by email. Emails are stored lowercase.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, name, provider, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Provider, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, email, passwordHash, name, provider string) (dom.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name, provider)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password_hash, name, provider, created_at, updated_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, email, passwordHash, name, provider).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Provider, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}
