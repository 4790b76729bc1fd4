// ABOUTME: Build generator driving selection in dependency order as a state machine
// ABOUTME: Validates the assembled build and falls back to a minimal build on failure

package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/markalston/pc-build-advisor/catalog"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrIncompleteCatalog means a mandatory category (CPU, motherboard,
	// memory, storage, PSU) has no components at all
	ErrIncompleteCatalog = errors.New("catalog is missing a mandatory category")

	// ErrNoCompatibleBuild means not even a CPU and socket-matching motherboard exist
	ErrNoCompatibleBuild = errors.New("no compatible CPU and motherboard pair in catalog")
)

const (
	fallbackName             = "Base Configuration"
	fallbackPerformanceScore = 30
	fallbackValueScore       = 50
)

// fallbackCPUShare caps the fallback CPU at 20% of the budget
var fallbackCPUShare = decimal.RequireFromString("0.2")

var buildTierNames = map[models.Tier]string{
	models.TierBudget:     "Starter",
	models.TierMid:        "Gaming",
	models.TierHigh:       "Enthusiast",
	models.TierEnthusiast: "Ultimate",
}

// BuildGenerator turns preferences into a finished build. It holds no
// per-generation state and is safe for concurrent use.
type BuildGenerator struct {
	catalog                 *catalog.Catalog
	ids                     IDGenerator
	prioritizeCompatibility bool
}

// NewBuildGenerator creates a generator over an immutable catalog
func NewBuildGenerator(cat *catalog.Catalog, ids IDGenerator) *BuildGenerator {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &BuildGenerator{catalog: cat, ids: ids, prioritizeCompatibility: true}
}

// WithDefaultCompatibilityPriority sets the value used when options leave
// PrioritizeCompatibility unset
func (g *BuildGenerator) WithDefaultCompatibilityPriority(v bool) *BuildGenerator {
	g.prioritizeCompatibility = v
	return g
}

// Catalog returns the catalog the generator reads
func (g *BuildGenerator) Catalog() *catalog.Catalog {
	return g.catalog
}

// Generate runs one generation. It returns ErrIncompleteCatalog or
// ErrNoCompatibleBuild when no build can be produced at all; every other
// outcome, including an invalid build, is a FinishedBuild.
func (g *BuildGenerator) Generate(prefs *models.UserPreferences, opts *models.GenerationOptions) (*models.FinishedBuild, error) {
	for _, cat := range models.MandatoryCategories {
		if len(g.catalog.ByCategory(cat)) == 0 {
			return nil, fmt.Errorf("%w: no %s components", ErrIncompleteCatalog, cat)
		}
	}

	run := &generation{
		gen:   g,
		prefs: prefs,
		opts:  opts.Resolve(prefs, g.prioritizeCompatibility),
	}
	return run.execute()
}

type state int

const (
	stateAllocateBudget state = iota
	stateSelectCPU
	stateSelectMotherboard
	stateSelectMemory
	stateSelectGPU
	stateSelectStorage
	stateSelectPSU
	stateSelectCase
	stateSelectCooling
	stateValidate
	stateFinalize
	stateFallback
	stateDone
)

var stateNames = [...]string{
	"AllocateBudget", "SelectCPU", "SelectMotherboard", "SelectMemory", "SelectGPU",
	"SelectStorage", "SelectPSU", "SelectCase", "SelectCooling", "Validate",
	"Finalize", "Fallback", "Done",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// generation is the working state of one Generate call
type generation struct {
	gen         *BuildGenerator
	prefs       *models.UserPreferences
	opts        models.ResolvedOptions
	selector    *Selector
	build       models.CandidateBuild
	compat      models.CompatibilityResult
	relaxations []models.Relaxation
	reason      string
	result      *models.FinishedBuild
}

func (r *generation) execute() (*models.FinishedBuild, error) {
	return r.run(stateAllocateBudget)
}

// run drives the state machine from st until Done
func (r *generation) run(st state) (*models.FinishedBuild, error) {
	for ; st != stateDone; st = r.step(st) {
		slog.Debug("Build generation step", "state", st.String())
		if st == stateFallback {
			if err := r.fallback(); err != nil {
				return nil, err
			}
			return r.result, nil
		}
	}
	return r.result, nil
}

// step performs the work of st and returns the next state
func (r *generation) step(st state) state {
	switch st {
	case stateAllocateBudget:
		r.selector = NewSelector(r.gen.catalog, r.prefs, r.opts)
		return stateSelectCPU

	case stateSelectCPU:
		sel := r.record(models.CategoryCPU, r.selector.SelectCPU())
		if r.build.CPU = sel.First(); r.build.CPU == nil {
			return r.abort("no CPU candidate")
		}
		return stateSelectMotherboard

	case stateSelectMotherboard:
		sel := r.record(models.CategoryMotherboard, r.selector.SelectMotherboard(*r.build.CPU))
		if r.build.Motherboard = sel.First(); r.build.Motherboard == nil {
			return r.abort("no motherboard matches socket " + r.build.CPU.CPU.Socket)
		}
		return stateSelectMemory

	case stateSelectMemory:
		sel := r.record(models.CategoryMemory, r.selector.SelectMemory(*r.build.Motherboard))
		if sel.Outcome != OutcomeSelected {
			return r.abort("no memory matches " + r.build.Motherboard.Motherboard.MemoryType)
		}
		r.build.Memory = sel.Components
		return stateSelectGPU

	case stateSelectGPU:
		sel := r.record(models.CategoryGPU, r.selector.SelectGPU())
		r.build.GPU = sel.First()
		return stateSelectStorage

	case stateSelectStorage:
		sel := r.record(models.CategoryStorage, r.selector.SelectStorage())
		if sel.Outcome != OutcomeSelected {
			return r.abort("no storage candidate")
		}
		r.build.Storage = sel.Components
		return stateSelectPSU

	case stateSelectPSU:
		sel := r.record(models.CategoryPSU, r.selector.SelectPSU(*r.build.CPU, r.build.GPU))
		if r.build.PSU = sel.First(); r.build.PSU == nil {
			return r.abort(fmt.Sprintf("no power supply delivers %dW", EstimatedPower(&r.build)))
		}
		return stateSelectCase

	case stateSelectCase:
		if r.opts.IncludeCase {
			sel := r.record(models.CategoryCase, r.selector.SelectCase(*r.build.Motherboard))
			r.build.Case = sel.First()
		}
		return stateSelectCooling

	case stateSelectCooling:
		if r.opts.IncludeCooling {
			sel := r.record(models.CategoryCooling, r.selector.SelectCooling(*r.build.CPU, *r.build.Motherboard))
			r.build.Cooling = sel.First()
		}
		return stateValidate

	case stateValidate:
		r.compat = CheckCompatibility(&r.build, r.prefs.PrimaryUse...)
		if !r.compat.IsValid && r.opts.PrioritizeCompatibility {
			r.reason = strings.Join(r.compat.Errors, "; ")
			slog.Warn("Build failed validation, falling back", "errors", r.compat.Errors)
			return stateFallback
		}
		return stateFinalize

	case stateFinalize:
		r.result = r.finish(r.build, r.compat)
		return stateDone
	}
	return stateDone
}

func (r *generation) abort(reason string) state {
	r.reason = reason
	slog.Warn("Build generation falling back", "reason", reason)
	return stateFallback
}

func (r *generation) record(cat models.Category, sel Selection) Selection {
	for _, dropped := range sel.Relaxations {
		r.relaxations = append(r.relaxations, models.Relaxation{Category: cat, Dropped: dropped})
	}
	return sel
}

func (r *generation) finish(b models.CandidateBuild, compat models.CompatibilityResult) *models.FinishedBuild {
	total := TotalPrice(&b)
	perf := PerformanceScore(&b)
	fb := &models.FinishedBuild{
		ID:               r.gen.ids.NewID(),
		Name:             buildName(&b, r.selector.Tier()),
		Components:       b,
		TotalPrice:       total,
		EstimatedPower:   EstimatedPower(&b),
		Compatibility:    compat,
		PerformanceScore: perf,
		ValueScore:       ValueScore(perf, total),
		Description:      describe(&b, r.prefs),
		Relaxations:      r.relaxations,
	}
	fb.Recommendations = Recommend(fb, r.prefs, r.opts.Budget)
	return fb
}

// fallback assembles CPU plus socket-matching motherboard with a CPU
// within 20% of budget, then adds the cheapest essentials the catalog
// offers. Optional categories are skipped.
func (r *generation) fallback() error {
	cat := r.gen.catalog
	cpuCap := r.opts.Budget.Max.Mul(fallbackCPUShare)

	cpu, board := findPair(cat, func(c models.Component) bool { return !c.Price.GreaterThan(cpuCap) })
	if cpu == nil {
		cpu, board = findPair(cat, always)
	}
	if cpu == nil {
		return ErrNoCompatibleBuild
	}

	b := models.CandidateBuild{CPU: cpu, Motherboard: board}
	if mem := cheapest(cat.Filter(models.CategoryMemory, catalog.Filter{MemoryType: board.Motherboard.MemoryType})); mem != nil {
		b.Memory = []models.Component{*mem}
	}
	if storage := cheapest(cat.ByCategory(models.CategoryStorage)); storage != nil {
		b.Storage = []models.Component{*storage}
	}
	b.PSU = cheapest(cat.Filter(models.CategoryPSU, catalog.Filter{MinWattage: EstimatedPower(&b)}))

	compat := CheckCompatibility(&b, r.prefs.PrimaryUse...)
	total := TotalPrice(&b)
	fb := &models.FinishedBuild{
		ID:               r.gen.ids.NewID(),
		Name:             fallbackName,
		Components:       b,
		TotalPrice:       total,
		EstimatedPower:   EstimatedPower(&b),
		Compatibility:    compat,
		PerformanceScore: fallbackPerformanceScore,
		ValueScore:       fallbackValueScore,
		Description:      "Minimal working configuration within your budget.",
		Fallback:         true,
		Relaxations:      r.relaxations,
	}
	fb.Recommendations = Recommend(fb, r.prefs, r.opts.Budget)
	r.result = fb
	slog.Info("Fallback build assembled", "reason", r.reason, "cpu", cpu.ID, "motherboard", board.ID)
	return nil
}

// findPair returns the first CPU accepted by ok, in catalog order, that has
// a socket-matching motherboard, together with the cheapest such board
func findPair(cat *catalog.Catalog, ok func(models.Component) bool) (*models.Component, *models.Component) {
	for _, cpu := range cat.ByCategory(models.CategoryCPU) {
		if !ok(cpu) {
			continue
		}
		if board := cheapest(cat.Filter(models.CategoryMotherboard, catalog.Filter{Socket: cpu.CPU.Socket})); board != nil {
			return &cpu, board
		}
	}
	return nil, nil
}

// cheapest returns the lowest-priced component, earliest on ties
func cheapest(in []models.Component) *models.Component {
	if len(in) == 0 {
		return nil
	}
	best := in[0]
	for _, c := range in[1:] {
		if c.Price.LessThan(best.Price) {
			best = c
		}
	}
	return &best
}

func buildName(b *models.CandidateBuild, tier models.Tier) string {
	brand := "Custom"
	if b.CPU != nil && b.CPU.Brand != "" {
		brand = b.CPU.Brand
	}
	return fmt.Sprintf("%s %s Build", brand, buildTierNames[tier])
}

func describe(b *models.CandidateBuild, prefs *models.UserPreferences) string {
	uses := make([]string, 0, len(prefs.PrimaryUse))
	for _, u := range prefs.PrimaryUse {
		uses = append(uses, string(u))
	}
	if len(uses) == 0 {
		uses = append(uses, string(models.UseGeneral))
	}
	graphics := "integrated graphics"
	if b.GPU != nil {
		graphics = "a dedicated " + b.GPU.Name()
	}
	return fmt.Sprintf("Optimized for %s. Built around %s with %s within your budget.",
		strings.Join(uses, ", "), b.CPU.Name(), graphics)
}
