package services

import (
	portsrepo "github.com/SscSPs/finstatements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Reporting: NewReportingService(repos,
			WithTaxPolicy(cfg.TaxPolicy),
			WithCashFlowHeuristic(cfg.CashFlow),
			WithFetchTimeout(cfg.ProviderFetchTimeout),
		),
	}
}
