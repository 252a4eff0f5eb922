package pgsql

import (
	portsrepo "github.com/NidhiSetu/fund_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgsql repositories for injection into the
// service layer.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkRepo:    NewWorkRepository(pool),
		DemandRepo:  NewDemandRepository(pool),
		VendorRepo:  NewVendorRepository(pool),
		TaxRateRepo: NewTaxRateRepository(pool),
	}
}
