// ABOUTME: Catalog component model with per-category spec variants
// ABOUTME: Defines categories, performance tiers, form factors, and efficiency ratings

package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category identifies which slot of a build a component fills
type Category string

const (
	CategoryCPU         Category = "cpu"
	CategoryGPU         Category = "gpu"
	CategoryMotherboard Category = "motherboard"
	CategoryMemory      Category = "memory"
	CategoryStorage     Category = "storage"
	CategoryPSU         Category = "psu"
	CategoryCase        Category = "case"
	CategoryCooling     Category = "cooling"
)

// Categories lists every category in build-dependency order
var Categories = []Category{
	CategoryCPU,
	CategoryMotherboard,
	CategoryMemory,
	CategoryGPU,
	CategoryStorage,
	CategoryPSU,
	CategoryCase,
	CategoryCooling,
}

// MandatoryCategories must resolve to a component for a full build
var MandatoryCategories = []Category{
	CategoryCPU,
	CategoryMotherboard,
	CategoryMemory,
	CategoryStorage,
	CategoryPSU,
}

// ParseCategory accepts canonical names plus the aliases seen in catalog exports
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu", "processor":
		return CategoryCPU, nil
	case "gpu", "graphics", "video-card":
		return CategoryGPU, nil
	case "motherboard", "mobo":
		return CategoryMotherboard, nil
	case "memory", "ram":
		return CategoryMemory, nil
	case "storage", "ssd", "hdd":
		return CategoryStorage, nil
	case "psu", "power-supply", "power supply":
		return CategoryPSU, nil
	case "case", "chassis":
		return CategoryCase, nil
	case "cooling", "cooler":
		return CategoryCooling, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Tier is the ordered performance classification of a component
type Tier int

const (
	TierBudget Tier = iota
	TierMid
	TierHigh
	TierEnthusiast
)

var tierNames = []string{"budget", "mid", "high", "enthusiast"}

func (t Tier) String() string {
	if t < TierBudget || t > TierEnthusiast {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// Valid reports whether t is one of the four defined tiers
func (t Tier) Valid() bool {
	return t >= TierBudget && t <= TierEnthusiast
}

// Distance returns the absolute number of steps between two tiers
func (t Tier) Distance(other Tier) int {
	d := int(t) - int(other)
	if d < 0 {
		return -d
	}
	return d
}

// Within reports whether t lies within one step of target
func (t Tier) Within(target Tier) bool {
	return t.Distance(target) <= 1
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTier parses a tier name
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "budget", "entry":
		return TierBudget, nil
	case "mid", "mid-range", "midrange", "mainstream":
		return TierMid, nil
	case "high", "high-end":
		return TierHigh, nil
	case "enthusiast", "flagship":
		return TierEnthusiast, nil
	}
	return TierBudget, fmt.Errorf("unknown performance tier %q", s)
}

// FormFactor is the ordered board/case size, smallest first
type FormFactor int

const (
	FormFactorUnknown FormFactor = iota
	FormFactorMiniITX
	FormFactorMicroATX
	FormFactorATX
	FormFactorEATX
)

var formFactorNames = map[FormFactor]string{
	FormFactorUnknown:  "",
	FormFactorMiniITX:  "Mini-ITX",
	FormFactorMicroATX: "Micro-ATX",
	FormFactorATX:      "ATX",
	FormFactorEATX:     "E-ATX",
}

func (f FormFactor) String() string {
	return formFactorNames[f]
}

// Fits reports whether a board of form factor board fits a case of form factor f
func (f FormFactor) Fits(board FormFactor) bool {
	if f == FormFactorUnknown || board == FormFactorUnknown {
		return true
	}
	return board <= f
}

func (f FormFactor) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FormFactor) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*f = FormFactorUnknown
		return nil
	}
	parsed, err := ParseFormFactor(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormFactor normalises the spellings used by vendors
func ParseFormFactor(s string) (FormFactor, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	switch key {
	case "miniitx", "mitx", "itx":
		return FormFactorMiniITX, nil
	case "microatx", "matx", "uatx":
		return FormFactorMicroATX, nil
	case "atx", "midtower", "atxmidtower":
		return FormFactorATX, nil
	case "eatx", "extendedatx", "fulltower":
		return FormFactorEATX, nil
	}
	return FormFactorUnknown, fmt.Errorf("unknown form factor %q", s)
}

// Efficiency is the 80 PLUS certification of a power supply
type Efficiency int

const (
	EfficiencyNone Efficiency = iota
	EfficiencyWhite
	EfficiencyBronze
	EfficiencySilver
	EfficiencyGold
	EfficiencyPlatinum
	EfficiencyTitanium
)

var efficiencyNames = []string{"", "80+", "80+ Bronze", "80+ Silver", "80+ Gold", "80+ Platinum", "80+ Titanium"}

func (e Efficiency) String() string {
	if e < EfficiencyNone || e > EfficiencyTitanium {
		return ""
	}
	return efficiencyNames[e]
}

// BelowGold reports whether the rating is missing or under 80+ Gold
func (e Efficiency) BelowGold() bool {
	return e < EfficiencyGold
}

func (e Efficiency) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Efficiency) UnmarshalText(b []byte) error {
	*e = ParseEfficiency(string(b))
	return nil
}

// ParseEfficiency maps "80+ Gold", "Gold", "80 PLUS Gold" and similar to a rating.
// Unrecognised text is treated as no rating.
func ParseEfficiency(s string) Efficiency {
	key := strings.ToLower(s)
	switch {
	case strings.Contains(key, "titanium"):
		return EfficiencyTitanium
	case strings.Contains(key, "platinum"):
		return EfficiencyPlatinum
	case strings.Contains(key, "gold"):
		return EfficiencyGold
	case strings.Contains(key, "silver"):
		return EfficiencySilver
	case strings.Contains(key, "bronze"):
		return EfficiencyBronze
	case strings.Contains(key, "80"):
		return EfficiencyWhite
	}
	return EfficiencyNone
}

// StorageInterface is the bus a drive connects over
type StorageInterface string

const (
	InterfaceNVMe StorageInterface = "NVMe"
	InterfaceSATA StorageInterface = "SATA"
)

// CoolerType distinguishes air from liquid coolers
type CoolerType string

const (
	CoolerAir    CoolerType = "Air"
	CoolerLiquid CoolerType = "Liquid"
)

// CPUSpec holds processor attributes
type CPUSpec struct {
	Socket             string  `json:"socket"`
	Cores              int     `json:"cores"`
	Threads            int     `json:"threads"`
	BaseClockGHz       float64 `json:"base_clock_ghz"`
	BoostClockGHz      float64 `json:"boost_clock_ghz"`
	TDPWatts           int     `json:"tdp_watts"`
	IntegratedGraphics bool    `json:"integrated_graphics"`
}

// GPUSpec holds graphics card attributes
type GPUSpec struct {
	VRAMGB              int  `json:"vram_gb"`
	BoostClockMHz       int  `json:"boost_clock_mhz,omitempty"`
	TDPWatts            int  `json:"tdp_watts"`
	RecommendedPSUWatts int  `json:"recommended_psu_watts,omitempty"`
	RayTracing          bool `json:"ray_tracing"`
}

// MotherboardSpec holds board attributes
type MotherboardSpec struct {
	Socket      string     `json:"socket"`
	Chipset     string     `json:"chipset,omitempty"`
	FormFactor  FormFactor `json:"form_factor"`
	MemoryType  string     `json:"memory_type"`
	MaxMemoryGB int        `json:"max_memory_gb"`
	MemorySlots int        `json:"memory_slots"`
}

// MemorySpec holds a memory kit's attributes
type MemorySpec struct {
	Type       string `json:"type"`
	CapacityGB int    `json:"capacity_gb"`
	SpeedMHz   int    `json:"speed_mhz"`
	Modules    int    `json:"modules,omitempty"`
}

// StorageSpec holds drive attributes
type StorageSpec struct {
	Kind          string           `json:"kind"` // SSD or HDD
	Interface     StorageInterface `json:"interface"`
	CapacityGB    int              `json:"capacity_gb"`
	ReadSpeedMBps int              `json:"read_speed_mbps,omitempty"`
}

// PSUSpec holds power supply attributes
type PSUSpec struct {
	Wattage    int        `json:"wattage"`
	Efficiency Efficiency `json:"efficiency"`
	Modular    bool       `json:"modular"`
}

// CaseSpec holds chassis attributes. FormFactor is the largest board it accepts.
type CaseSpec struct {
	FormFactor FormFactor `json:"form_factor"`
}

// CoolingSpec holds CPU cooler attributes
type CoolingSpec struct {
	Type         CoolerType `json:"type"`
	TDPRating    int        `json:"tdp_rating_watts"`
	Sockets      []string   `json:"sockets,omitempty"`
	IncludedWith []string   `json:"included_with,omitempty"`
}

// Component is one catalog entry. Exactly one spec pointer is set, matching Category.
// Components are shared read-only across generations and must not be mutated.
type Component struct {
	ID       string          `json:"id"`
	Category Category        `json:"category"`
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	Price    decimal.Decimal `json:"price"`
	Tier     Tier            `json:"performance_tier"`

	CPU         *CPUSpec         `json:"cpu,omitempty"`
	GPU         *GPUSpec         `json:"gpu,omitempty"`
	Motherboard *MotherboardSpec `json:"motherboard,omitempty"`
	Memory      *MemorySpec      `json:"memory,omitempty"`
	Storage     *StorageSpec     `json:"storage,omitempty"`
	PSU         *PSUSpec         `json:"psu,omitempty"`
	Case        *CaseSpec        `json:"case,omitempty"`
	Cooling     *CoolingSpec     `json:"cooling,omitempty"`
}

// Name returns the display name "Brand Model"
func (c Component) Name() string {
	if c.Brand == "" || strings.HasPrefix(c.Model, c.Brand) {
		return c.Model
	}
	return c.Brand + " " + c.Model
}

// Validate checks that the component carries exactly the spec its category requires
func (c Component) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("component has no id")
	}
	if c.Price.IsNegative() {
		return fmt.Errorf("component %s has negative price %s", c.ID, c.Price)
	}
	if !c.Tier.Valid() {
		return fmt.Errorf("component %s has invalid tier %d", c.ID, int(c.Tier))
	}

	set := map[Category]bool{
		CategoryCPU:         c.CPU != nil,
		CategoryGPU:         c.GPU != nil,
		CategoryMotherboard: c.Motherboard != nil,
		CategoryMemory:      c.Memory != nil,
		CategoryStorage:     c.Storage != nil,
		CategoryPSU:         c.PSU != nil,
		CategoryCase:        c.Case != nil,
		CategoryCooling:     c.Cooling != nil,
	}
	present, ok := set[c.Category]
	if !ok {
		return fmt.Errorf("component %s has unknown category %q", c.ID, c.Category)
	}
	if !present {
		return fmt.Errorf("component %s is missing its %s attributes", c.ID, c.Category)
	}
	for cat, isSet := range set {
		if isSet && cat != c.Category {
			return fmt.Errorf("component %s (%s) carries %s attributes", c.ID, c.Category, cat)
		}
	}
	return nil
}

// TDP returns the thermal design power for CPUs and GPUs, 0 otherwise
func (c Component) TDP() int {
	switch c.Category {
	case CategoryCPU:
		return c.CPU.TDPWatts
	case CategoryGPU:
		return c.GPU.TDPWatts
	}
	return 0
}

// Socket returns the CPU or motherboard socket, empty for other categories
func (c Component) Socket() string {
	switch c.Category {
	case CategoryCPU:
		return c.CPU.Socket
	case CategoryMotherboard:
		return c.Motherboard.Socket
	}
	return ""
}
