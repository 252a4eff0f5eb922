package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NidhiSetu/fund_management_app/internal/apperrors"
	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	portsrepo "github.com/NidhiSetu/fund_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxDemandRepository persists fund demands and their tax lines.
type PgxDemandRepository struct {
	BaseRepository
}

// NewDemandRepository creates a new repository for demand data.
func NewDemandRepository(pool *pgxpool.Pool) portsrepo.DemandRepositoryWithTx {
	return &PgxDemandRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.DemandRepositoryWithTx = (*PgxDemandRepository)(nil)

const demandColumns = `
	demand_id, demand_code, work_id, vendor_name, amount, net_payable,
	status, remarks, demand_date,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveDemandTx persists a demand and its tax lines inside tx. The caller owns
// the transaction; pairing this with a FOR UPDATE lock on the work row keeps
// demand appends per work serialized.
func (r *PgxDemandRepository) SaveDemandTx(ctx context.Context, tx pgx.Tx, demand domain.Demand) error {
	demandQuery := `
		INSERT INTO demands (` + demandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, demandQuery,
		demand.DemandID,
		demand.DemandCode,
		demand.WorkID,
		demand.VendorName,
		demand.Amount,
		netPayableParam(demand.NetPayable),
		demand.Status,
		demand.Remarks,
		demand.DemandDate,
		demand.CreatedAt,
		demand.CreatedBy,
		demand.LastUpdatedAt,
		demand.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert demand %s: %w", demand.DemandID, err)
	}

	if len(demand.Taxes) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO demand_taxes (tax_line_id, demand_id, tax_rate_id, name, percentage, amount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, line := range demand.Taxes {
		batch.Queue(lineQuery,
			line.TaxLineID,
			line.DemandID,
			line.TaxRateID,
			line.Name,
			line.Percentage,
			line.Amount,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert tax lines for demand %s: %w", demand.DemandID, err)
	}
	return nil
}

// UpdateDemandStatus transitions a demand's status with a compare-and-set on
// the expected current status.
func (r *PgxDemandRepository) UpdateDemandStatus(ctx context.Context, demandID string, expectedStatus, newStatus domain.DemandStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE demands
		SET status = $1, last_updated_by = $2, last_updated_at = $3
		WHERE demand_id = $4 AND status = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, newStatus, updatedBy, updatedAt, demandID, expectedStatus)
	if err != nil {
		return fmt.Errorf("failed to update status of demand %s: %w", demandID, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing demand from a concurrent/previous transition.
		var current domain.DemandStatus
		err := r.Pool.QueryRow(ctx, `SELECT status FROM demands WHERE demand_id = $1;`, demandID).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check status of demand %s: %w", demandID, err)
		}
		return fmt.Errorf("%w: demand %s is %s, expected %s", apperrors.ErrConflict, demandID, current, expectedStatus)
	}
	return nil
}

// FindDemandByID retrieves a demand with its tax lines.
func (r *PgxDemandRepository) FindDemandByID(ctx context.Context, demandID string) (*domain.Demand, error) {
	query := `SELECT ` + demandColumns + ` FROM demands WHERE demand_id = $1;`
	demand, err := scanDemandRow(r.Pool.QueryRow(ctx, query, demandID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find demand %s: %w", demandID, err)
	}

	taxesByDemand, err := r.findTaxLines(ctx, r.Pool, []string{demandID})
	if err != nil {
		return nil, err
	}
	demand.Taxes = taxesByDemand[demandID]
	return demand, nil
}

// FindDemandsByWorkID retrieves all demands for a work, oldest first.
func (r *PgxDemandRepository) FindDemandsByWorkID(ctx context.Context, workID string) ([]domain.Demand, error) {
	query := `
		SELECT ` + demandColumns + `
		FROM demands
		WHERE work_id = $1
		ORDER BY created_at, demand_id;
	`
	return r.queryDemands(ctx, r.Pool, query, workID)
}

// FindDemandsByWorkIDTx reads the demand collection inside tx so the balance
// is derived from the freshest collection while the work row is held.
func (r *PgxDemandRepository) FindDemandsByWorkIDTx(ctx context.Context, tx pgx.Tx, workID string) ([]domain.Demand, error) {
	query := `
		SELECT ` + demandColumns + `
		FROM demands
		WHERE work_id = $1
		ORDER BY created_at, demand_id;
	`
	return r.queryDemands(ctx, tx, query, workID)
}

// FindDemandsByVendorID retrieves demands across all works assigned to a vendor.
func (r *PgxDemandRepository) FindDemandsByVendorID(ctx context.Context, vendorID string) ([]domain.Demand, error) {
	query := `
		SELECT d.demand_id, d.demand_code, d.work_id, d.vendor_name, d.amount, d.net_payable,
		       d.status, d.remarks, d.demand_date,
		       d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
		FROM demands d
		JOIN works w ON w.work_id = d.work_id
		WHERE w.vendor_id = $1
		ORDER BY d.created_at, d.demand_id;
	`
	return r.queryDemands(ctx, r.Pool, query, vendorID)
}

func (r *PgxDemandRepository) queryDemands(ctx context.Context, q querier, query string, arg any) ([]domain.Demand, error) {
	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query demands: %w", err)
	}
	defer rows.Close()

	demands := []domain.Demand{}
	demandIDs := []string{}
	for rows.Next() {
		demand, err := scanDemandRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan demand row: %w", err)
		}
		demands = append(demands, *demand)
		demandIDs = append(demandIDs, demand.DemandID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating demand rows: %w", err)
	}

	if len(demands) == 0 {
		return demands, nil
	}

	taxesByDemand, err := r.findTaxLines(ctx, q, demandIDs)
	if err != nil {
		return nil, err
	}
	for i := range demands {
		demands[i].Taxes = taxesByDemand[demands[i].DemandID]
	}
	return demands, nil
}

// findTaxLines loads tax lines for the given demands, grouped by demand ID.
func (r *PgxDemandRepository) findTaxLines(ctx context.Context, q querier, demandIDs []string) (map[string][]domain.TaxLine, error) {
	query := `
		SELECT tax_line_id, demand_id, tax_rate_id, name, percentage, amount
		FROM demand_taxes
		WHERE demand_id = ANY($1)
		ORDER BY demand_id, tax_line_id;
	`
	rows, err := q.Query(ctx, query, demandIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax lines: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.TaxLine)
	for rows.Next() {
		var line domain.TaxLine
		if err := rows.Scan(
			&line.TaxLineID,
			&line.DemandID,
			&line.TaxRateID,
			&line.Name,
			&line.Percentage,
			&line.Amount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tax line row: %w", err)
		}
		result[line.DemandID] = append(result[line.DemandID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tax line rows: %w", err)
	}
	return result, nil
}

func scanDemandRow(row pgx.Row) (*domain.Demand, error) {
	var demand domain.Demand
	var netPayable decimal.NullDecimal
	err := row.Scan(
		&demand.DemandID,
		&demand.DemandCode,
		&demand.WorkID,
		&demand.VendorName,
		&demand.Amount,
		&netPayable,
		&demand.Status,
		&demand.Remarks,
		&demand.DemandDate,
		&demand.CreatedAt,
		&demand.CreatedBy,
		&demand.LastUpdatedAt,
		&demand.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if netPayable.Valid {
		demand.NetPayable = &netPayable.Decimal
	}
	return &demand, nil
}

func netPayableParam(netPayable *decimal.Decimal) decimal.NullDecimal {
	if netPayable == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *netPayable, Valid: true}
}
