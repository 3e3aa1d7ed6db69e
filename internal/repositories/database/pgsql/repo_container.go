package pgsql

import (
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	"github.com/SscSPs/finstatements/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL-backed repositories. The provider client
// factory is not database backed and is supplied by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, cipher mapping.TokenCipher, factory portsrepo.AccountingProviderFactory) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CredentialRepo:  newPgxCredentialRepository(dbPool, cipher),
		ProviderFactory: factory,
	}
}
