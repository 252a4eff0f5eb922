package services

import (
	"context"

	"github.com/NidhiSetu/fund_management_app/internal/core/domain"
	"github.com/NidhiSetu/fund_management_app/internal/dto"
)

// WorkReaderSvc defines read operations for sanctioned works.
type WorkReaderSvc interface {
	// GetWorkByID retrieves a specific work by its ID.
	GetWorkByID(ctx context.Context, workID string) (*domain.Work, error)

	// ListWorks retrieves a paginated list of works.
	ListWorks(ctx context.Context, params dto.ListWorksParams) ([]domain.Work, error)

	// GetWorkSummary computes the derived financial aggregates for a work
	// from the freshest demand collection.
	GetWorkSummary(ctx context.Context, workID string) (*domain.Work, domain.WorkAggregates, error)
}

// WorkWriterSvc defines write operations for sanctioned works.
type WorkWriterSvc interface {
	// CreateWork registers a newly sanctioned work.
	CreateWork(ctx context.Context, req dto.CreateWorkRequest, creatorUserID string) (*domain.Work, error)
}

// WorkSvcFacade combines all work-related service interfaces.
type WorkSvcFacade interface {
	WorkReaderSvc
	WorkWriterSvc
}
