package pgsql

import (
	portsrepo "github.com/SscSPs/pricex_locale/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPreferenceRepository returns the Postgres preference store.
func NewPreferenceRepository(dbPool *pgxpool.Pool) portsrepo.PreferenceRepositoryFacade {
	return newPgxPreferenceRepository(dbPool)
}
