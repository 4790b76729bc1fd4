// ABOUTME: Component constructors and catalogs shared by service tests
// ABOUTME: Keeps test tables focused on the attribute under test

package services

import (
	"testing"

	"github.com/markalston/pc-build-advisor/catalog"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

func price(p int64) decimal.Decimal {
	return decimal.NewFromInt(p)
}

func newCPU(id, brand, socket string, tdp int, p int64, tier models.Tier) models.Component {
	return models.Component{
		ID: id, Category: models.CategoryCPU, Brand: brand, Model: id, Price: price(p), Tier: tier,
		CPU: &models.CPUSpec{Socket: socket, Cores: 8, Threads: 16, BoostClockGHz: 5.0, TDPWatts: tdp},
	}
}

func newBoard(id, socket, memType string, ff models.FormFactor, p int64, tier models.Tier) models.Component {
	return models.Component{
		ID: id, Category: models.CategoryMotherboard, Brand: "MSI", Model: id, Price: price(p), Tier: tier,
		Motherboard: &models.MotherboardSpec{Socket: socket, FormFactor: ff, MemoryType: memType, MaxMemoryGB: 128, MemorySlots: 4},
	}
}

func newMemory(id, memType string, gb int, p int64, tier models.Tier) models.Component {
	return models.Component{
		ID: id, Category: models.CategoryMemory, Brand: "Corsair", Model: id, Price: price(p), Tier: tier,
		Memory: &models.MemorySpec{Type: memType, CapacityGB: gb, SpeedMHz: 6000},
	}
}

func newGPU(id, brand string, tdp int, p int64, tier models.Tier) models.Component {
	return models.Component{
		ID: id, Category: models.CategoryGPU, Brand: brand, Model: id, Price: price(p), Tier: tier,
		GPU: &models.GPUSpec{VRAMGB: 12, TDPWatts: tdp},
	}
}

func newStorage(id string, iface models.StorageInterface, gb int, p int64, tier models.Tier) models.Component {
	return models.Component{
		ID: id, Category: models.CategoryStorage, Brand: "Samsung", Model: id, Price: price(p), Tier: tier,
		Storage: &models.StorageSpec{Kind: "SSD", Interface: iface, CapacityGB: gb},
	}
}

func newPSU(id string, watts int, eff models.Efficiency, modular bool, p int64) models.Component {
	return models.Component{
		ID: id, Category: models.CategoryPSU, Brand: "Seasonic", Model: id, Price: price(p), Tier: models.TierMid,
		PSU: &models.PSUSpec{Wattage: watts, Efficiency: eff, Modular: modular},
	}
}

func newCase(id string, ff models.FormFactor, p int64) models.Component {
	return models.Component{
		ID: id, Category: models.CategoryCase, Brand: "NZXT", Model: id, Price: price(p), Tier: models.TierMid,
		Case: &models.CaseSpec{FormFactor: ff},
	}
}

func newCooler(id string, kind models.CoolerType, rating int, p int64, sockets ...string) models.Component {
	return models.Component{
		ID: id, Category: models.CategoryCooling, Brand: "Noctua", Model: id, Price: price(p), Tier: models.TierMid,
		Cooling: &models.CoolingSpec{Type: kind, TDPRating: rating, Sockets: sockets},
	}
}

func ptr(c models.Component) *models.Component {
	return &c
}

// validBuild is a complete AM5 build that passes every rule with no warnings:
// 105W CPU + 200W GPU + 100W headroom = 405W against a 500W Gold PSU
func validBuild() models.CandidateBuild {
	gpu := newGPU("gpu", "NVIDIA", 200, 599, models.TierHigh)
	gpu.GPU.RecommendedPSUWatts = 500
	return models.CandidateBuild{
		CPU:         ptr(newCPU("cpu", "AMD", "AM5", 105, 349, models.TierHigh)),
		Motherboard: ptr(newBoard("mb", "AM5", "DDR5", models.FormFactorATX, 229, models.TierMid)),
		Memory:      []models.Component{newMemory("ram", "DDR5", 32, 109, models.TierMid)},
		GPU:         &gpu,
		Storage:     []models.Component{newStorage("ssd", models.InterfaceNVMe, 1000, 109, models.TierMid)},
		PSU:         ptr(newPSU("psu", 500, models.EfficiencyGold, true, 99)),
		Case:        ptr(newCase("case", models.FormFactorATX, 94)),
		Cooling:     ptr(newCooler("cooler", models.CoolerLiquid, 250, 99, "AM5")),
	}
}

func newCatalog(t *testing.T, comps ...models.Component) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New("test", comps)
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}
	return c
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("Failed to load embedded catalog: %v", err)
	}
	return c
}

func prefsWithBudget(max int64, level models.PerformanceLevel, uses ...models.UseCase) *models.UserPreferences {
	return &models.UserPreferences{
		ID:          "prefs-1",
		PrimaryUse:  uses,
		Budget:      models.BudgetRange{Max: price(max)},
		Performance: level,
	}
}
