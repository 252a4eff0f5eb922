package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/NidhiSetu/fund_management_app/internal/apperrors"
	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	portsrepo "github.com/NidhiSetu/fund_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxVendorRepository persists vendor registry data.
type PgxVendorRepository struct {
	BaseRepository
}

// NewVendorRepository creates a new repository for vendor data.
func NewVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const vendorColumns = `
	vendor_id, name, aadhaar_number, gstin, contact_number, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveVendor persists a new vendor. A duplicate Aadhaar number maps to
// apperrors.ErrDuplicate.
func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		vendor.VendorID,
		vendor.Name,
		vendor.AadhaarNumber,
		vendor.GSTIN,
		vendor.ContactNumber,
		vendor.IsActive,
		vendor.CreatedAt,
		vendor.CreatedBy,
		vendor.LastUpdatedAt,
		vendor.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: vendor with this Aadhaar number", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert vendor %s: %w", vendor.VendorID, err)
	}
	return nil
}

// FindVendorByID retrieves a vendor by its ID.
func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1;`
	vendor, err := scanVendorRow(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}
	return vendor, nil
}

// ListVendors retrieves a page of vendors ordered by name.
func (r *PgxVendorRepository) ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		ORDER BY name, vendor_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		vendor, err := scanVendorRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		vendors = append(vendors, *vendor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendor rows: %w", err)
	}
	return vendors, nil
}

func scanVendorRow(row pgx.Row) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := row.Scan(
		&vendor.VendorID,
		&vendor.Name,
		&vendor.AadhaarNumber,
		&vendor.GSTIN,
		&vendor.ContactNumber,
		&vendor.IsActive,
		&vendor.CreatedAt,
		&vendor.CreatedBy,
		&vendor.LastUpdatedAt,
		&vendor.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}
