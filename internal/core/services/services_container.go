package services

import (
	portsrepo "github.com/SscSPs/fxcalc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fxcalc/internal/core/ports/services"
	"github.com/SscSPs/fxcalc/internal/platform/config"
	"github.com/SscSPs/fxcalc/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The rate service comes first since conversion depends on it
	container.Rates = NewRateService(
		repos.RateSources,
		WithFetchTimeout(cfg.FetchTimeout),
		WithMetalOrientationFix(cfg.FixMetalOrientation),
		WithRateMetrics(m),
	)

	container.Conversion = NewConversionService(
		container.Rates,
		repos.ConversionRepo,
		WithConversionMetrics(m),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RateSvcFacade       = (*rateService)(nil)
	_ portssvc.ConversionSvcFacade = (*conversionService)(nil)
)
