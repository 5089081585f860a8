package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vmos0/cloud-mail/internal/apperrors"
	"github.com/vmos0/cloud-mail/internal/core/domain"
	portsrepo "github.com/vmos0/cloud-mail/internal/core/ports/repositories"
	"github.com/vmos0/cloud-mail/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsDel:        m.IsDel != 0,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.UpdatedAt,
		},
	}
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64, includeDeleted bool) (*domain.User, error) {
	query := `
		SELECT user_id, email, password_hash, is_del, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`
	if !includeDeleted {
		query += ` AND is_del = 0`
	}

	var m models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.IsDel,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}

	user := toDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string, includeDeleted bool) (*domain.User, error) {
	query := `
		SELECT user_id, email, password_hash, is_del, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	if !includeDeleted {
		query += ` AND is_del = 0`
	}

	var m models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.IsDel,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, err)
	}

	user := toDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	now := time.Now()
	query := `
		INSERT INTO users (email, password_hash, is_del, created_at, updated_at)
		VALUES ($1, $2, 0, $3, $3)
		RETURNING user_id;
	`
	var userID int64
	err := r.db.QueryRow(ctx, query, user.Email, user.PasswordHash, now).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	saved := user
	saved.UserID = userID
	saved.IsDel = false
	saved.CreatedAt = now
	saved.LastUpdatedAt = now
	return &saved, nil
}
