package pgsql

import (
	portsrepo "github.com/vmos0/cloud-mail/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:  newPgxUserRepository(pool),
		OAuthRepo: newPgxOAuthRepository(pool),
	}
}
