package repositories

import (
	"context"
	"time"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// DemandReader defines read operations for fund demand data.
type DemandReader interface {
	// FindDemandByID retrieves a demand with its tax lines.
	FindDemandByID(ctx context.Context, demandID string) (*domain.Demand, error)

	// FindDemandsByWorkID retrieves all demands raised against a work,
	// oldest first, with tax lines attached.
	FindDemandsByWorkID(ctx context.Context, workID string) ([]domain.Demand, error)

	// FindDemandsByVendorID retrieves all demands raised against works
	// assigned to the given vendor, with tax lines attached.
	FindDemandsByVendorID(ctx context.Context, vendorID string) ([]domain.Demand, error)

	// FindDemandsByWorkIDTx reads the demand collection inside tx. Used with
	// WorkLocker so the balance is computed against the freshest collection
	// while the work row is held.
	FindDemandsByWorkIDTx(ctx context.Context, tx pgx.Tx, workID string) ([]domain.Demand, error)
}

// DemandWriter defines write operations for demand data. Demands are
// append-only: besides SaveDemandTx the only mutation is the status
// transition owned by the approval workflow.
type DemandWriter interface {
	// SaveDemandTx persists a demand and its tax lines inside tx.
	SaveDemandTx(ctx context.Context, tx pgx.Tx, demand domain.Demand) error

	// UpdateDemandStatus transitions a demand's status, stamping the audit
	// fields. Returns apperrors.ErrConflict when the demand is not in
	// expectedStatus.
	UpdateDemandStatus(ctx context.Context, demandID string, expectedStatus, newStatus domain.DemandStatus, updatedBy string, updatedAt time.Time) error
}

// DemandRepositoryFacade combines all demand-related repository interfaces.
type DemandRepositoryFacade interface {
	DemandReader
	DemandWriter
}

// DemandRepositoryWithTx extends DemandRepositoryFacade with transaction
// control for the serialized raise-demand append.
type DemandRepositoryWithTx interface {
	DemandRepositoryFacade
	TransactionManager
}
