package services

import (
	"github.com/SscSPs/iso4217/internal/adapters/isoxml"
	portsrepo "github.com/SscSPs/iso4217/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/iso4217/internal/core/ports/services"
	"github.com/SscSPs/iso4217/internal/platform/config"
	"github.com/SscSPs/iso4217/internal/units"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// repos may be nil when database sync is disabled.
func NewServiceContainer(cfg *config.Config, sources isoxml.Sources, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Catalog first since every other service reads from it
	container.Catalog = NewCatalogService(sources)

	var registry units.Registry
	if cfg.UnitsEnabled {
		registry = units.NewDecimalRegistry()
	}
	container.Units = NewUnitsService(units.NewBridge(registry, container.Catalog))

	if repos != nil && repos.SnapshotRepo != nil {
		container.Snapshot = NewSnapshotService(container.Catalog, repos.SnapshotRepo)
	}

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CatalogSvcFacade = (*catalogService)(nil)
	_ portssvc.UnitsSvc         = (*unitsService)(nil)
	_ portssvc.SnapshotSvc      = (*snapshotService)(nil)
	_ units.DatasetProvider     = (*catalogService)(nil)
)
