// ABOUTME: Per-category component selection heuristics
// ABOUTME: Filters by compatibility, budget, and tier window with progressive relaxation

package services

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"

	"github.com/markalston/pc-build-advisor/catalog"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

// budgetSlack lets a candidate exceed its envelope by 20% during selection
var budgetSlack = decimal.RequireFromString("1.2")

// Outcome distinguishes a selection from a miss or an intentional skip
type Outcome int

const (
	OutcomeSelected Outcome = iota
	OutcomeNotFound
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeNotFound:
		return "not found"
	case OutcomeSkipped:
		return "skipped"
	}
	return "unknown"
}

// Relaxation labels recorded when a selection constraint is dropped
const (
	RelaxedTierWindow  = "tier window"
	RelaxedBudgetCap   = "budget cap"
	RelaxedPowerMargin = "recommended power margin"
)

// Selection is the result of selecting one category. Components holds one
// entry, or a short ordered list for memory and storage.
type Selection struct {
	Components  []models.Component
	Outcome     Outcome
	Relaxations []string
}

// First returns the top-ranked component, nil when nothing was selected
func (s Selection) First() *models.Component {
	if len(s.Components) == 0 {
		return nil
	}
	c := s.Components[0]
	return &c
}

// Selector picks components for one generation. It only reads the catalog.
type Selector struct {
	catalog *catalog.Catalog
	prefs   *models.UserPreferences
	opts    models.ResolvedOptions
	tier    models.Tier
	alloc   Allocation
}

// NewSelector prepares a selector with the envelopes for opts.Budget
func NewSelector(cat *catalog.Catalog, prefs *models.UserPreferences, opts models.ResolvedOptions) *Selector {
	tier := prefs.Performance.Tier()
	return &Selector{
		catalog: cat,
		prefs:   prefs,
		opts:    opts,
		tier:    tier,
		alloc:   AllocateBudget(opts.Budget.Max, tier),
	}
}

// Tier is the target tier derived from the preferences
func (s *Selector) Tier() models.Tier {
	return s.tier
}

// Allocation returns the per-category envelopes in use
func (s *Selector) Allocation() Allocation {
	return s.alloc
}

// query describes one category's candidate pipeline
type query struct {
	category   models.Category
	compatible func(models.Component) bool
	fallback   func(models.Component) bool // weaker hard filter tried last
	tierWindow bool
	brands     bool
	prefer     []func(models.Component) bool // soft filters, applied in order
	less       func(a, b models.Component) int
}

// candidates runs the filter ladder: compatibility, then budget and tier,
// relaxing the tier window first and the budget cap second. Soft
// preferences narrow each level but never empty it.
func (s *Selector) candidates(q query) ([]models.Component, []string) {
	all := s.catalog.ByCategory(q.category)
	limit := s.alloc.Envelope(q.category).Mul(budgetSlack)

	inBudget := func(c models.Component) bool { return !c.Price.GreaterThan(limit) }
	inWindow := func(c models.Component) bool { return !q.tierWindow || c.Tier.Within(s.tier) }

	type level struct {
		relaxed string
		keep    func(models.Component) bool
	}
	levels := []level{
		{"", func(c models.Component) bool { return q.compatible(c) && inBudget(c) && inWindow(c) }},
		{RelaxedTierWindow, func(c models.Component) bool { return q.compatible(c) && inBudget(c) }},
		{RelaxedBudgetCap, q.compatible},
	}
	if q.fallback != nil {
		levels = append(levels, level{RelaxedPowerMargin, q.fallback})
	}
	if !q.tierWindow {
		levels = slices.Delete(levels, 1, 2)
	}

	var relaxed []string
	for _, lvl := range levels {
		if lvl.relaxed != "" {
			relaxed = append(relaxed, lvl.relaxed)
		}
		found := keep(all, lvl.keep)
		if len(found) == 0 {
			continue
		}
		if q.brands {
			found = s.applyBrandPreferences(found)
		}
		for _, pref := range q.prefer {
			found = soft(found, pref)
		}
		slices.SortStableFunc(found, q.less)

		slog.Debug("Selected candidates",
			"category", q.category,
			"candidates", len(found),
			"relaxations", relaxed,
			"top", found[0].ID)
		return found, relaxed
	}

	slog.Debug("No candidates", "category", q.category, "catalog_size", len(all))
	return nil, relaxed
}

func (s *Selector) applyBrandPreferences(in []models.Component) []models.Component {
	out := in
	if len(s.prefs.Brands.Preferred) > 0 {
		out = soft(out, func(c models.Component) bool { return containsFold(s.prefs.Brands.Preferred, c.Brand) })
	}
	if len(s.prefs.Brands.Avoid) > 0 {
		out = soft(out, func(c models.Component) bool { return !containsFold(s.prefs.Brands.Avoid, c.Brand) })
	}
	return out
}

func (s *Selector) result(q query) Selection {
	found, relaxed := s.candidates(q)
	if len(found) == 0 {
		return Selection{Outcome: OutcomeNotFound, Relaxations: relaxed}
	}
	return Selection{Components: found[:1], Outcome: OutcomeSelected, Relaxations: relaxed}
}

// SelectCPU ranks CPUs by performance per price, or raw performance when
// performance is prioritized
func (s *Selector) SelectCPU() Selection {
	return s.result(query{
		category:   models.CategoryCPU,
		compatible: always,
		tierWindow: true,
		brands:     true,
		less: func(a, b models.Component) int {
			if s.opts.PrioritizePerformance {
				return cmp.Compare(CPUScore(b), CPUScore(a))
			}
			return cmp.Compare(CPUScore(b)/rankingPrice(b), CPUScore(a)/rankingPrice(a))
		},
	})
}

// SelectMotherboard requires the CPU socket and prefers the target tier
func (s *Selector) SelectMotherboard(cpu models.Component) Selection {
	prefer := []func(models.Component) bool{
		func(c models.Component) bool { return c.Tier == s.tier },
	}
	if s.prefs.WantsCompact() {
		prefer = append(prefer, func(c models.Component) bool {
			return c.Motherboard.FormFactor <= models.FormFactorMicroATX
		})
	}
	return s.result(query{
		category:   models.CategoryMotherboard,
		compatible: func(c models.Component) bool { return strings.EqualFold(c.Motherboard.Socket, cpu.CPU.Socket) },
		tierWindow: true,
		prefer:     prefer,
		less: func(a, b models.Component) int {
			if s.opts.PrioritizeValue {
				return a.Price.Cmp(b.Price)
			}
			return b.Price.Cmp(a.Price)
		},
	})
}

// SelectMemory requires the board's memory type. Capacity counts fully up
// to a use-case threshold and at a quarter beyond it.
func (s *Selector) SelectMemory(board models.Component) Selection {
	threshold := 16
	if s.prefs.NeedsHighMemory() {
		threshold = recommendedMemoryGB
	}
	effective := func(c models.Component) float64 {
		gb := c.Memory.CapacityGB
		if gb <= threshold {
			return float64(gb)
		}
		return float64(threshold) + float64(gb-threshold)/4
	}
	mb := board.Motherboard

	return s.result(query{
		category: models.CategoryMemory,
		compatible: func(c models.Component) bool {
			return strings.EqualFold(c.Memory.Type, mb.MemoryType) &&
				(mb.MaxMemoryGB == 0 || c.Memory.CapacityGB <= mb.MaxMemoryGB)
		},
		tierWindow: true,
		prefer: []func(models.Component) bool{
			func(c models.Component) bool { return c.Memory.CapacityGB >= threshold },
		},
		less: func(a, b models.Component) int {
			if d := cmp.Compare(effective(b), effective(a)); d != 0 {
				return d
			}
			if d := cmp.Compare(b.Memory.SpeedMHz, a.Memory.SpeedMHz); d != 0 {
				return d
			}
			return a.Price.Cmp(b.Price)
		},
	})
}

// SelectGPU is skipped when no primary use needs a dedicated card
func (s *Selector) SelectGPU() Selection {
	if !s.prefs.NeedsGPU() {
		return Selection{Outcome: OutcomeSkipped}
	}

	var prefer []func(models.Component) bool
	if s.prefs.Uses(models.UseGamingAAA) {
		prefer = append(prefer, func(c models.Component) bool { return c.Tier > models.TierBudget })
	}

	return s.result(query{
		category:   models.CategoryGPU,
		compatible: always,
		tierWindow: true,
		brands:     true,
		prefer:     prefer,
		less: func(a, b models.Component) int {
			if s.opts.PrioritizeValue && !s.opts.PrioritizePerformance {
				return cmp.Compare(GPUScore(b)/rankingPrice(b), GPUScore(a)/rankingPrice(a))
			}
			if d := cmp.Compare(GPUScore(b), GPUScore(a)); d != 0 {
				return d
			}
			return a.Price.Cmp(b.Price)
		},
	})
}

// SelectStorage prefers NVMe and the largest capacity. Content-creation
// builds add a bulk drive when it fits the remaining storage envelope.
func (s *Selector) SelectStorage() Selection {
	sel := s.result(query{
		category:   models.CategoryStorage,
		compatible: always,
		tierWindow: true,
		prefer: []func(models.Component) bool{
			func(c models.Component) bool { return c.Storage.Interface == models.InterfaceNVMe },
		},
		less: byCapacityThenSpeed,
	})
	if sel.Outcome != OutcomeSelected || !s.prefs.NeedsBulkStorage() {
		return sel
	}

	primary := sel.Components[0]
	remaining := s.alloc.Envelope(models.CategoryStorage).Mul(budgetSlack).Sub(primary.Price)
	var bulk []models.Component
	for _, c := range s.catalog.ByCategory(models.CategoryStorage) {
		if c.ID != primary.ID && c.Storage.CapacityGB > primary.Storage.CapacityGB && !c.Price.GreaterThan(remaining) {
			bulk = append(bulk, c)
		}
	}
	if len(bulk) > 0 {
		slices.SortStableFunc(bulk, func(a, b models.Component) int {
			if d := cmp.Compare(b.Storage.CapacityGB, a.Storage.CapacityGB); d != 0 {
				return d
			}
			return a.Price.Cmp(b.Price)
		})
		sel.Components = append(sel.Components, bulk[0])
	}
	return sel
}

// PSU, case, and cooling queries leave tierWindow off: wattage, fit, and
// TDP rating decide those parts, not the catalog tier.

// SelectPSU requires the recommended 20% margin over estimated draw and
// falls back to the hard floor. Ranked by efficiency, then modularity.
func (s *Selector) SelectPSU(cpu models.Component, gpu *models.Component) Selection {
	partial := &models.CandidateBuild{CPU: &cpu, GPU: gpu}
	required := EstimatedPower(partial)
	recommended := RecommendedPower(partial)

	return s.result(query{
		category:   models.CategoryPSU,
		compatible: func(c models.Component) bool { return c.PSU.Wattage >= recommended },
		fallback:   func(c models.Component) bool { return c.PSU.Wattage >= required },
		less: func(a, b models.Component) int {
			if d := cmp.Compare(b.PSU.Efficiency, a.PSU.Efficiency); d != 0 {
				return d
			}
			if a.PSU.Modular != b.PSU.Modular {
				if a.PSU.Modular {
					return -1
				}
				return 1
			}
			return a.Price.Cmp(b.Price)
		},
	})
}

// SelectCase picks the cheapest case that accepts the board
func (s *Selector) SelectCase(board models.Component) Selection {
	boardForm := board.Motherboard.FormFactor
	var prefer []func(models.Component) bool
	if s.prefs.WantsCompact() {
		prefer = append(prefer, func(c models.Component) bool { return c.Case.FormFactor == boardForm })
	}
	return s.result(query{
		category:   models.CategoryCase,
		compatible: func(c models.Component) bool { return c.Case.FormFactor.Fits(boardForm) },
		prefer:     prefer,
		less:       func(a, b models.Component) int { return a.Price.Cmp(b.Price) },
	})
}

// SelectCooling uses the bundled stock cooler for low-TDP AMD CPUs when the
// catalog models one, otherwise the highest-rated compatible cooler
func (s *Selector) SelectCooling(cpu, board models.Component) Selection {
	socket := board.Motherboard.Socket
	tdp := cpu.CPU.TDPWatts

	if strings.EqualFold(cpu.Brand, "AMD") && tdp <= stockCoolerMaxTDP {
		for _, c := range s.catalog.ByCategory(models.CategoryCooling) {
			if c.Price.IsZero() && containsFold(c.Cooling.IncludedWith, socket) && catalog.SupportsSocket(c, socket) {
				slog.Debug("Using stock cooler", "cooler", c.ID, "socket", socket)
				return Selection{Components: []models.Component{c}, Outcome: OutcomeSelected}
			}
		}
	}

	var prefer []func(models.Component) bool
	if tdp > 100 {
		prefer = append(prefer, func(c models.Component) bool { return c.Cooling.Type == models.CoolerLiquid })
	}

	return s.result(query{
		category: models.CategoryCooling,
		compatible: func(c models.Component) bool {
			return c.Price.IsPositive() && catalog.SupportsSocket(c, socket) && c.Cooling.TDPRating >= tdp
		},
		prefer: prefer,
		less: func(a, b models.Component) int {
			if d := cmp.Compare(b.Cooling.TDPRating, a.Cooling.TDPRating); d != 0 {
				return d
			}
			return a.Price.Cmp(b.Price)
		},
	})
}

func byCapacityThenSpeed(a, b models.Component) int {
	if d := cmp.Compare(b.Storage.CapacityGB, a.Storage.CapacityGB); d != 0 {
		return d
	}
	if d := cmp.Compare(b.Storage.ReadSpeedMBps, a.Storage.ReadSpeedMBps); d != 0 {
		return d
	}
	return a.Price.Cmp(b.Price)
}

func always(models.Component) bool { return true }

// keep returns the elements matching pred in order
func keep(in []models.Component, pred func(models.Component) bool) []models.Component {
	var out []models.Component
	for _, c := range in {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// soft narrows in to the elements matching pred unless none do
func soft(in []models.Component, pred func(models.Component) bool) []models.Component {
	if narrowed := keep(in, pred); len(narrowed) > 0 {
		return narrowed
	}
	return in
}

func containsFold(list []string, brand string) bool {
	for _, b := range list {
		if strings.EqualFold(strings.TrimSpace(b), strings.TrimSpace(brand)) {
			return true
		}
	}
	return false
}
