package services

import (
	portsrepo "github.com/NidhiSetu/fund_management_app/internal/core/ports/repositories"
	portssvc "github.com/NidhiSetu/fund_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Vendor = NewVendorService(repos.VendorRepo)
	container.TaxRate = NewTaxRateService(repos.TaxRateRepo)
	container.Work = NewWorkService(repos.WorkRepo, repos.DemandRepo, repos.VendorRepo)
	container.Demand = NewDemandService(repos.DemandRepo, repos.WorkRepo, repos.VendorRepo, repos.TaxRateRepo)

	return container
}
