package repositories

import (
	"context"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// WorkReader defines read operations for sanctioned work data.
type WorkReader interface {
	// FindWorkByID retrieves a specific work by its unique identifier.
	FindWorkByID(ctx context.Context, workID string) (*domain.Work, error)

	// ListWorks retrieves a paginated list of works, newest sanction first.
	ListWorks(ctx context.Context, limit int, offset int) ([]domain.Work, error)
}

// WorkWriter defines write operations for work data. Sanctioned amounts are
// immutable after creation; there is no update operation by design.
type WorkWriter interface {
	// SaveWork persists a newly sanctioned work.
	SaveWork(ctx context.Context, work domain.Work) error
}

// WorkLocker provides the serialized-append primitive for the demand ledger:
// locking the work row guarantees each demand commit evaluates against the
// freshest demand-derived balance.
type WorkLocker interface {
	// FindWorkByIDForUpdate retrieves a work within tx, locking its row until
	// the transaction completes.
	FindWorkByIDForUpdate(ctx context.Context, tx pgx.Tx, workID string) (*domain.Work, error)
}

// WorkRepositoryFacade combines all work-related repository interfaces.
type WorkRepositoryFacade interface {
	WorkReader
	WorkWriter
	WorkLocker
}
