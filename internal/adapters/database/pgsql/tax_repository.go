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

// PgxTaxRateRepository persists the tax catalog.
type PgxTaxRateRepository struct {
	BaseRepository
}

// NewTaxRateRepository creates a new repository for tax catalog data.
func NewTaxRateRepository(pool *pgxpool.Pool) portsrepo.TaxRateRepositoryFacade {
	return &PgxTaxRateRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TaxRateRepositoryFacade = (*PgxTaxRateRepository)(nil)

const taxRateColumns = `
	tax_rate_id, name, percentage, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveTaxRate persists a new tax catalog entry.
func (r *PgxTaxRateRepository) SaveTaxRate(ctx context.Context, rate domain.TaxRate) error {
	query := `
		INSERT INTO tax_rates (` + taxRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		rate.TaxRateID,
		rate.Name,
		rate.Percentage,
		rate.IsActive,
		rate.CreatedAt,
		rate.CreatedBy,
		rate.LastUpdatedAt,
		rate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert tax rate %s: %w", rate.TaxRateID, err)
	}
	return nil
}

// FindTaxRateByID retrieves a tax rate by its ID.
func (r *PgxTaxRateRepository) FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	query := `SELECT ` + taxRateColumns + ` FROM tax_rates WHERE tax_rate_id = $1;`
	rate, err := scanTaxRateRow(r.Pool.QueryRow(ctx, query, taxRateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tax rate %s: %w", taxRateID, err)
	}
	return rate, nil
}

// ListTaxRates retrieves the catalog, optionally only active entries.
func (r *PgxTaxRateRepository) ListTaxRates(ctx context.Context, activeOnly bool) ([]domain.TaxRate, error) {
	query := `
		SELECT ` + taxRateColumns + `
		FROM tax_rates
		WHERE ($1 = false OR is_active)
		ORDER BY name, tax_rate_id;
	`
	rows, err := r.Pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.TaxRate{}
	for rows.Next() {
		rate, err := scanTaxRateRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax rate row: %w", err)
		}
		rates = append(rates, *rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tax rate rows: %w", err)
	}
	return rates, nil
}

func scanTaxRateRow(row pgx.Row) (*domain.TaxRate, error) {
	var rate domain.TaxRate
	err := row.Scan(
		&rate.TaxRateID,
		&rate.Name,
		&rate.Percentage,
		&rate.IsActive,
		&rate.CreatedAt,
		&rate.CreatedBy,
		&rate.LastUpdatedAt,
		&rate.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
