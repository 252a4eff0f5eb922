package repositories

// RepositoryProvider aggregates the repository facades for injection into the
// service layer.
type RepositoryProvider struct {
	WorkRepo    WorkRepositoryFacade
	DemandRepo  DemandRepositoryWithTx
	VendorRepo  VendorRepositoryFacade
	TaxRateRepo TaxRateRepositoryFacade
}
