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
	"github.com/jackc/pgx/v5/pgxpool"
)

const oauthIdentityColumns = `oauth_id, provider, external_user_id, user_id, username, display_name, avatar_url, trust_level, active, silenced, created_at, updated_at`

type PgxOAuthRepository struct {
	db *pgxpool.Pool
}

func newPgxOAuthRepository(db *pgxpool.Pool) portsrepo.OAuthIdentityRepositoryFacade {
	return &PgxOAuthRepository{db: db}
}

// Ensure PgxOAuthRepository implements portsrepo.OAuthIdentityRepositoryFacade
var _ portsrepo.OAuthIdentityRepositoryFacade = (*PgxOAuthRepository)(nil)

// Helper to convert models.OAuthIdentity to domain.OAuthIdentity
func toDomainOAuthIdentity(m models.OAuthIdentity) domain.OAuthIdentity {
	return domain.OAuthIdentity{
		OAuthID:        m.OAuthID,
		Provider:       domain.Provider(m.Provider),
		ExternalUserID: m.ExternalUserID,
		UserID:         m.UserID,
		Username:       m.Username,
		DisplayName:    m.DisplayName,
		AvatarURL:      m.AvatarURL,
		TrustLevel:     m.TrustLevel,
		Active:         m.Active,
		Silenced:       m.Silenced,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.UpdatedAt,
		},
	}
}

func scanOAuthIdentity(row pgx.Row) (*domain.OAuthIdentity, error) {
	var m models.OAuthIdentity
	err := row.Scan(
		&m.OAuthID,
		&m.Provider,
		&m.ExternalUserID,
		&m.UserID,
		&m.Username,
		&m.DisplayName,
		&m.AvatarURL,
		&m.TrustLevel,
		&m.Active,
		&m.Silenced,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	identity := toDomainOAuthIdentity(m)
	return &identity, nil
}

// UpsertIdentity inserts the (provider, external_user_id) row with user_id = 0
// or refreshes its profile snapshot when it already exists. The conflict
// target is the unique index, so a concurrent login from the same external
// identity degrades to an update of the surviving row instead of an error.
// user_id is deliberately absent from the update list.
func (r *PgxOAuthRepository) UpsertIdentity(ctx context.Context, identity domain.ExternalIdentity) (*domain.OAuthIdentity, error) {
	now := time.Now()
	query := `
		INSERT INTO oauth_identity
			(provider, external_user_id, user_id, username, display_name, avatar_url, trust_level, active, silenced, created_at, updated_at)
		VALUES ($1, $2, 0, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (provider, external_user_id) DO UPDATE SET
			username = EXCLUDED.username,
			display_name = EXCLUDED.display_name,
			avatar_url = EXCLUDED.avatar_url,
			trust_level = EXCLUDED.trust_level,
			active = EXCLUDED.active,
			silenced = EXCLUDED.silenced,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + oauthIdentityColumns + `;
	`
	row := r.db.QueryRow(ctx, query,
		identity.Provider.String(),
		identity.ExternalUserID,
		identity.Username,
		identity.DisplayName,
		identity.AvatarURL,
		identity.TrustLevel,
		identity.Active,
		identity.Silenced,
		now,
	)
	saved, err := scanOAuthIdentity(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert oauth identity: %w", err)
	}
	return saved, nil
}

func (r *PgxOAuthRepository) FindIdentityByID(ctx context.Context, oauthID int64) (*domain.OAuthIdentity, error) {
	query := `SELECT ` + oauthIdentityColumns + ` FROM oauth_identity WHERE oauth_id = $1;`
	identity, err := scanOAuthIdentity(r.db.QueryRow(ctx, query, oauthID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find oauth identity %d: %w", oauthID, err)
	}
	return identity, nil
}

func (r *PgxOAuthRepository) FindIdentityByProviderUser(ctx context.Context, provider domain.Provider, externalUserID string) (*domain.OAuthIdentity, error) {
	query := `SELECT ` + oauthIdentityColumns + ` FROM oauth_identity WHERE provider = $1 AND external_user_id = $2;`
	identity, err := scanOAuthIdentity(r.db.QueryRow(ctx, query, provider.String(), externalUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find oauth identity for %s/%s: %w", provider, externalUserID, err)
	}
	return identity, nil
}

func (r *PgxOAuthRepository) FindLinkedByExternalUserID(ctx context.Context, externalUserID string) (*domain.OAuthIdentity, error) {
	query := `
		SELECT ` + oauthIdentityColumns + `
		FROM oauth_identity
		WHERE external_user_id = $1 AND user_id <> 0
		ORDER BY oauth_id
		LIMIT 1;
	`
	identity, err := scanOAuthIdentity(r.db.QueryRow(ctx, query, externalUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find linked identity for external user %s: %w", externalUserID, err)
	}
	return identity, nil
}

func (r *PgxOAuthRepository) SetIdentityUser(ctx context.Context, oauthID int64, userID int64) error {
	query := `UPDATE oauth_identity SET user_id = $2, updated_at = $3 WHERE oauth_id = $1;`
	tag, err := r.db.Exec(ctx, query, oauthID, userID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set user on oauth identity %d: %w", oauthID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOAuthRepository) DeleteByProviderAndUser(ctx context.Context, provider domain.Provider, userID int64) error {
	query := `DELETE FROM oauth_identity WHERE provider = $1 AND user_id = $2;`
	if _, err := r.db.Exec(ctx, query, provider.String(), userID); err != nil {
		return fmt.Errorf("failed to delete oauth identities for %s/%d: %w", provider, userID, err)
	}
	return nil
}

func (r *PgxOAuthRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	query := `DELETE FROM oauth_identity WHERE user_id = 0;`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete orphan oauth identities: %w", err)
	}
	return tag.RowsAffected(), nil
}
