package modules

import (
	"context"

	"github.com/riverqueue/river"

	"github.com/dediamond1/mechanic/internal/api/handlers"
	"github.com/dediamond1/mechanic/internal/service"
	"github.com/dediamond1/mechanic/internal/usecase"
)

// ShopModule wires the registry side of the shop: customers, vehicles,
// employees, the service catalog, and the parts inventory.
type ShopModule struct {
	infra           *Infrastructure
	customers       *service.CustomerService
	vehicles        *service.VehicleService
	employees       *service.EmployeeService
	catalog         *service.CatalogService
	parts           *service.PartService
	deleteVehicleUC *usecase.DeleteVehicleUseCase
}

// NewShopModule creates the shop registry module with explicit constructor wiring.
func NewShopModule(infra *Infrastructure) *ShopModule {
	return &ShopModule{
		infra:           infra,
		customers:       service.NewCustomerService(infra.EntClient),
		vehicles:        service.NewVehicleService(infra.EntClient),
		employees:       service.NewEmployeeService(infra.EntClient),
		catalog:         service.NewCatalogService(infra.EntClient),
		parts:           service.NewPartService(infra.EntClient),
		deleteVehicleUC: usecase.NewDeleteVehicleUseCase(infra.EntClient),
	}
}

func (m *ShopModule) Name() string { return "shop" }

// Vehicles exposes the vehicle service for modules that need vehicle lookups.
func (m *ShopModule) Vehicles() *service.VehicleService { return m.vehicles }

func (m *ShopModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Customers = m.customers
	deps.Vehicles = m.vehicles
	deps.Employees = m.employees
	deps.Catalog = m.catalog
	deps.Parts = m.parts
	deps.DeleteVehicleUC = m.deleteVehicleUC
}

func (m *ShopModule) RegisterWorkers(_ *river.Workers) {}

func (m *ShopModule) Shutdown(context.Context) error { return nil }
