package services

// ServiceContainer aggregates the service facades for injection into the
// HTTP layer.
type ServiceContainer struct {
	Work    WorkSvcFacade
	Demand  DemandSvcFacade
	Vendor  VendorSvcFacade
	TaxRate TaxRateSvcFacade
}
