package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implementación del puerto TokenRepository sobre PostgreSQL.
type TokenRepo struct {
	db Querier
}

// NewTokenRepository construye el adaptador de persistencia de tokens.
func NewTokenRepository(db Querier) *TokenRepo {
	return &TokenRepo{db: db}
}

// Create persiste el token de un usuario. ErrDuplicate si el usuario ya
// tiene uno (dos primeros logins concurrentes).
func (r *TokenRepo) Create(ctx context.Context, tok *entity.AuthToken) error {
	query := `INSERT INTO auth_tokens (key, user_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, tok.Key, tok.UserID, tok.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// GetByUser devuelve el token del usuario; (nil, nil) si nunca inició sesión.
func (r *TokenRepo) GetByUser(ctx context.Context, userID string) (*entity.AuthToken, error) {
	query := `SELECT key, user_id, created_at FROM auth_tokens WHERE user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID), "get token by user")
}

// GetByKey resuelve una clave de token; (nil, nil) si no existe.
func (r *TokenRepo) GetByKey(ctx context.Context, key string) (*entity.AuthToken, error) {
	query := `SELECT key, user_id, created_at FROM auth_tokens WHERE key = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, key), "get token by key")
}

func (r *TokenRepo) scanOne(row pgx.Row, op string) (*entity.AuthToken, error) {
	var t entity.AuthToken
	if err := row.Scan(&t.Key, &t.UserID, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}
