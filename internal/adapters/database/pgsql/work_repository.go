package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/NidhiSetu/fund_management_app/internal/apperrors"
	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	portsrepo "github.com/NidhiSetu/fund_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxWorkRepository persists sanctioned works.
type PgxWorkRepository struct {
	BaseRepository
}

// NewWorkRepository creates a new repository for work data.
func NewWorkRepository(pool *pgxpool.Pool) portsrepo.WorkRepositoryFacade {
	return &PgxWorkRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkRepositoryFacade = (*PgxWorkRepository)(nil)

const workColumns = `
	work_id, scheme_name, name, sanctioned_date, financial_year,
	admin_approved_amount, work_portion_amount, tax_deduction_amount,
	vendor_id, vendor_name, status,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveWork persists a newly sanctioned work.
func (r *PgxWorkRepository) SaveWork(ctx context.Context, work domain.Work) error {
	query := `
		INSERT INTO works (` + workColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		work.WorkID,
		work.SchemeName,
		work.Name,
		work.SanctionedDate,
		work.FinancialYear,
		work.AdminApprovedAmount,
		work.WorkPortionAmount,
		work.TaxDeductionAmount,
		work.VendorID,
		work.VendorName,
		work.Status,
		work.CreatedAt,
		work.CreatedBy,
		work.LastUpdatedAt,
		work.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert work %s: %w", work.WorkID, err)
	}
	return nil
}

// FindWorkByID retrieves a work by its ID.
func (r *PgxWorkRepository) FindWorkByID(ctx context.Context, workID string) (*domain.Work, error) {
	query := `SELECT ` + workColumns + ` FROM works WHERE work_id = $1;`
	return scanWork(r.Pool.QueryRow(ctx, query, workID), workID)
}

// FindWorkByIDForUpdate retrieves a work within tx, locking its row. This is
// the serialization point for demand appends against the same work.
func (r *PgxWorkRepository) FindWorkByIDForUpdate(ctx context.Context, tx pgx.Tx, workID string) (*domain.Work, error) {
	query := `SELECT ` + workColumns + ` FROM works WHERE work_id = $1 FOR UPDATE;`
	return scanWork(tx.QueryRow(ctx, query, workID), workID)
}

// ListWorks retrieves a page of works, newest sanction first.
func (r *PgxWorkRepository) ListWorks(ctx context.Context, limit int, offset int) ([]domain.Work, error) {
	query := `
		SELECT ` + workColumns + `
		FROM works
		ORDER BY sanctioned_date DESC, work_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query works: %w", err)
	}
	defer rows.Close()

	works := []domain.Work{}
	for rows.Next() {
		work, err := scanWorkRow(rows)
		if err != nil {
			return nil, err
		}
		works = append(works, *work)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work rows: %w", err)
	}
	return works, nil
}

func scanWork(row pgx.Row, workID string) (*domain.Work, error) {
	work, err := scanWorkRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find work %s: %w", workID, err)
	}
	return work, nil
}

func scanWorkRow(row pgx.Row) (*domain.Work, error) {
	var work domain.Work
	err := row.Scan(
		&work.WorkID,
		&work.SchemeName,
		&work.Name,
		&work.SanctionedDate,
		&work.FinancialYear,
		&work.AdminApprovedAmount,
		&work.WorkPortionAmount,
		&work.TaxDeductionAmount,
		&work.VendorID,
		&work.VendorName,
		&work.Status,
		&work.CreatedAt,
		&work.CreatedBy,
		&work.LastUpdatedAt,
		&work.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &work, nil
}
