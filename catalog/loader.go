// ABOUTME: Loads component catalogs from YAML or JSON files and the embedded default
// ABOUTME: Normalises unit-suffixed strings like "105W" or "2TB" into typed fields

package catalog

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed data/components.yaml
var embedded embed.FS

const defaultCatalogPath = "data/components.yaml"

// DefaultSource names the embedded catalog in Source()
const DefaultSource = "embedded"

// record is one catalog entry as written in a catalog file. Numeric
// attributes are strings so vendors can keep their unit suffixes.
type record struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Brand    string `yaml:"brand"`
	Model    string `yaml:"model"`
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Tier     string `yaml:"performance_tier"`

	Socket             string `yaml:"socket"`
	Cores              string `yaml:"cores"`
	Threads            string `yaml:"threads"`
	BaseClock          string `yaml:"base_clock"`
	BoostClock         string `yaml:"boost_clock"`
	TDP                string `yaml:"tdp"`
	IntegratedGraphics bool   `yaml:"integrated_graphics"`

	VRAM           string `yaml:"vram"`
	RecommendedPSU string `yaml:"recommended_psu"`
	RayTracing     bool   `yaml:"ray_tracing"`

	Chipset     string `yaml:"chipset"`
	FormFactor  string `yaml:"form_factor"`
	MemoryType  string `yaml:"memory_type"`
	MaxMemory   string `yaml:"max_memory"`
	MemorySlots string `yaml:"memory_slots"`

	Capacity  string `yaml:"capacity"`
	Speed     string `yaml:"speed"`
	Modules   string `yaml:"modules"`
	Type      string `yaml:"type"`
	Interface string `yaml:"interface"`
	ReadSpeed string `yaml:"read_speed"`

	Wattage    string `yaml:"wattage"`
	Efficiency string `yaml:"efficiency"`
	Modular    bool   `yaml:"modular"`

	TDPRating    string   `yaml:"tdp_rating"`
	Sockets      []string `yaml:"sockets"`
	IncludedWith []string `yaml:"included_with"`
}

type document struct {
	Components []record `yaml:"components"`
}

// Load reads a catalog file. JSON is accepted since it parses as YAML.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	cat, err := Parse(path, data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	slog.Info("Catalog loaded", "path", path, "components", cat.Len())
	return cat, nil
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	data, err := embedded.ReadFile(defaultCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("reading embedded catalog: %w", err)
	}
	return Parse(DefaultSource, data)
}

// Parse decodes catalog bytes, either a {components: [...]} document or a bare list
func Parse(source string, data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil || doc.Components == nil {
		var list []record
		if listErr := yaml.Unmarshal(data, &list); listErr != nil {
			if err != nil {
				return nil, fmt.Errorf("parsing catalog: %w", err)
			}
			return nil, fmt.Errorf("parsing catalog: %w", listErr)
		}
		doc.Components = list
	}

	components := make([]models.Component, 0, len(doc.Components))
	for i, r := range doc.Components {
		comp, err := r.normalise()
		if err != nil {
			return nil, fmt.Errorf("component %d (%s): %w", i, r.ID, err)
		}
		components = append(components, comp)
	}
	return New(source, components)
}

func (r record) normalise() (models.Component, error) {
	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return models.Component{}, err
	}

	price, err := parsePrice(r.Price)
	if err != nil {
		return models.Component{}, fmt.Errorf("price: %w", err)
	}

	tier := models.TierMid
	if r.Tier != "" {
		if tier, err = models.ParseTier(r.Tier); err != nil {
			return models.Component{}, err
		}
	}

	model := r.Model
	if model == "" {
		model = r.Name
	}

	c := models.Component{
		ID:       r.ID,
		Category: category,
		Brand:    r.Brand,
		Model:    model,
		Price:    price,
		Tier:     tier,
	}

	p := &unitParser{}
	switch category {
	case models.CategoryCPU:
		c.CPU = &models.CPUSpec{
			Socket:             r.Socket,
			Cores:              p.count("cores", r.Cores),
			Threads:            p.count("threads", r.Threads),
			BaseClockGHz:       p.quantity("base_clock", r.BaseClock, frequencyGHz),
			BoostClockGHz:      p.quantity("boost_clock", r.BoostClock, frequencyGHz),
			TDPWatts:           p.round("tdp", r.TDP, power),
			IntegratedGraphics: r.IntegratedGraphics,
		}
	case models.CategoryGPU:
		c.GPU = &models.GPUSpec{
			VRAMGB:              p.round("vram", r.VRAM, capacityGB),
			BoostClockMHz:       p.round("boost_clock", r.BoostClock, frequencyMHz),
			TDPWatts:            p.round("tdp", r.TDP, power),
			RecommendedPSUWatts: p.round("recommended_psu", r.RecommendedPSU, power),
			RayTracing:          r.RayTracing,
		}
	case models.CategoryMotherboard:
		ff, ffErr := models.ParseFormFactor(r.FormFactor)
		if ffErr != nil {
			return c, ffErr
		}
		c.Motherboard = &models.MotherboardSpec{
			Socket:      r.Socket,
			Chipset:     r.Chipset,
			FormFactor:  ff,
			MemoryType:  r.MemoryType,
			MaxMemoryGB: p.round("max_memory", r.MaxMemory, capacityGB),
			MemorySlots: p.count("memory_slots", r.MemorySlots),
		}
	case models.CategoryMemory:
		c.Memory = &models.MemorySpec{
			Type:       r.MemoryType,
			CapacityGB: p.round("capacity", r.Capacity, capacityGB),
			SpeedMHz:   p.round("speed", r.Speed, frequencyMHz),
			Modules:    p.count("modules", r.Modules),
		}
		if c.Memory.Type == "" {
			c.Memory.Type = r.Type
		}
	case models.CategoryStorage:
		c.Storage = &models.StorageSpec{
			Kind:          storageKind(r.Type, r.Interface),
			Interface:     storageInterface(r.Interface),
			CapacityGB:    p.round("capacity", r.Capacity, capacityGB),
			ReadSpeedMBps: p.round("read_speed", r.ReadSpeed, throughputMBps),
		}
	case models.CategoryPSU:
		c.PSU = &models.PSUSpec{
			Wattage:    p.round("wattage", r.Wattage, power),
			Efficiency: models.ParseEfficiency(r.Efficiency),
			Modular:    r.Modular,
		}
	case models.CategoryCase:
		ff, ffErr := models.ParseFormFactor(r.FormFactor)
		if ffErr != nil {
			return c, ffErr
		}
		c.Case = &models.CaseSpec{FormFactor: ff}
	case models.CategoryCooling:
		coolerType := models.CoolerAir
		if strings.EqualFold(r.Type, string(models.CoolerLiquid)) || strings.Contains(strings.ToLower(r.Type), "aio") {
			coolerType = models.CoolerLiquid
		}
		c.Cooling = &models.CoolingSpec{
			Type:         coolerType,
			TDPRating:    p.round("tdp_rating", r.TDPRating, power),
			Sockets:      r.Sockets,
			IncludedWith: r.IncludedWith,
		}
	}

	return c, p.err
}

func storageInterface(s string) models.StorageInterface {
	if strings.Contains(strings.ToLower(s), "nvme") {
		return models.InterfaceNVMe
	}
	return models.InterfaceSATA
}

func storageKind(kind, iface string) string {
	if kind != "" {
		return strings.ToUpper(kind)
	}
	if storageInterface(iface) == models.InterfaceNVMe {
		return "SSD"
	}
	return "HDD"
}

func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
}

// Unit tables map lower-cased suffixes to multipliers into the target unit.
// The empty suffix is the target unit itself.
var (
	power          = map[string]float64{"": 1, "w": 1, "watt": 1, "watts": 1}
	capacityGB     = map[string]float64{"": 1, "gb": 1, "g": 1, "tb": 1000, "t": 1000, "mb": 0.001}
	frequencyGHz   = map[string]float64{"": 1, "ghz": 1, "mhz": 0.001}
	frequencyMHz   = map[string]float64{"": 1, "mhz": 1, "mt/s": 1, "mts": 1, "ghz": 1000}
	throughputMBps = map[string]float64{"": 1, "mb/s": 1, "mbps": 1, "gb/s": 1000}
)

// unitParser accumulates the first parse failure so normalise can read
// every attribute without an error check per field
type unitParser struct {
	err error
}

func (p *unitParser) quantity(field, s string, units map[string]float64) float64 {
	if p.err != nil {
		return 0
	}
	v, err := parseQuantity(s, units)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", field, err)
	}
	return v
}

func (p *unitParser) round(field, s string, units map[string]float64) int {
	v := p.quantity(field, s, units)
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func (p *unitParser) count(field, s string) int {
	return p.round(field, s, map[string]float64{"": 1})
}

// parseQuantity splits "105W" into 105 and "w" and scales by the unit
func parseQuantity(s string, units map[string]float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.' || s[end] == '-') {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("no numeric value in %q", s)
	}

	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in %q", s)
	}

	unit := strings.ToLower(strings.ReplaceAll(s[end:], " ", ""))
	mult, ok := units[unit]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q in %q", s[end:], s)
	}
	return n * mult, nil
}
