// ABOUTME: Compatibility rules for complete or partial builds
// ABOUTME: Sorts findings into blocking errors, warnings, and optimization suggestions

package services

import (
	"fmt"
	"strings"

	"github.com/markalston/pc-build-advisor/catalog"
	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

const (
	// PowerHeadroomWatts covers the motherboard, fans, and drives
	PowerHeadroomWatts = 100

	// stockCoolerMaxTDP is the highest AMD CPU TDP a bundled cooler handles
	stockCoolerMaxTDP = 65

	// recommendedMemoryGB pairs with high and enthusiast tier CPUs
	recommendedMemoryGB = 32
)

// EstimatedPower is CPU TDP plus GPU TDP plus fixed headroom
func EstimatedPower(b *models.CandidateBuild) int {
	watts := PowerHeadroomWatts
	if b.CPU != nil {
		watts += b.CPU.TDP()
	}
	if b.GPU != nil {
		watts += b.GPU.TDP()
	}
	return watts
}

// RecommendedPower is EstimatedPower with a 20% margin, rounded up
func RecommendedPower(b *models.CandidateBuild) int {
	return recommendedWatts(EstimatedPower(b))
}

func recommendedWatts(required int) int {
	return (required*12 + 9) / 10
}

// TotalPrice sums the price of every selected component
func TotalPrice(b *models.CandidateBuild) decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Parts() {
		total = total.Add(c.Price)
	}
	return total
}

// CheckCompatibility evaluates every rule independently. Use cases are
// optional context for suggestions and never affect validity.
func CheckCompatibility(b *models.CandidateBuild, uses ...models.UseCase) models.CompatibilityResult {
	c := &checker{build: b, uses: uses}
	c.checkRequired()
	c.checkSocket()
	c.checkMemory()
	c.checkPower()
	c.checkCase()
	c.checkCooling()
	c.checkBalance()
	c.suggest()

	return models.CompatibilityResult{
		IsValid:     len(c.errors) == 0,
		Errors:      c.errors,
		Warnings:    c.warnings,
		Suggestions: c.suggestions,
	}
}

type checker struct {
	build       *models.CandidateBuild
	uses        []models.UseCase
	errors      []string
	warnings    []string
	suggestions []string
}

func (c *checker) errorf(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

func (c *checker) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func (c *checker) suggestf(format string, args ...any) {
	c.suggestions = append(c.suggestions, fmt.Sprintf(format, args...))
}

func (c *checker) checkRequired() {
	b := c.build
	if b.CPU == nil {
		c.errorf("No CPU selected")
	}
	if b.Motherboard == nil {
		c.errorf("No motherboard selected")
	}
	if len(b.Memory) == 0 {
		c.errorf("No memory selected")
	}
	if b.PSU == nil {
		c.errorf("No power supply selected")
	}
	if b.Case == nil {
		c.warnf("No case selected")
	}
}

func (c *checker) checkSocket() {
	b := c.build
	if b.CPU == nil || b.Motherboard == nil {
		return
	}
	if !strings.EqualFold(b.CPU.CPU.Socket, b.Motherboard.Motherboard.Socket) {
		c.errorf("CPU socket %s does not match motherboard socket %s",
			b.CPU.CPU.Socket, b.Motherboard.Motherboard.Socket)
	}
}

func (c *checker) checkMemory() {
	b := c.build
	if b.Motherboard == nil || len(b.Memory) == 0 {
		return
	}
	mb := b.Motherboard.Motherboard
	for _, m := range b.Memory {
		if !strings.EqualFold(m.Memory.Type, mb.MemoryType) {
			c.errorf("Memory %s is %s but motherboard supports %s", m.Name(), m.Memory.Type, mb.MemoryType)
		}
	}
	if capacity := b.MemoryCapacityGB(); mb.MaxMemoryGB > 0 && capacity > mb.MaxMemoryGB {
		c.warnf("Memory capacity %dGB exceeds motherboard maximum of %dGB", capacity, mb.MaxMemoryGB)
	}
}

func (c *checker) checkPower() {
	b := c.build
	if b.PSU == nil {
		return
	}
	psu := b.PSU.PSU
	required := EstimatedPower(b)
	recommended := recommendedWatts(required)

	switch {
	case psu.Wattage < required:
		c.errorf("Power supply %dW is below the %dW required", psu.Wattage, required)
	case psu.Wattage < recommended:
		c.warnf("PSU near limit: %dW is below the recommended %dW", psu.Wattage, recommended)
	}

	if psu.Efficiency.BelowGold() {
		if psu.Efficiency == models.EfficiencyNone {
			c.warnf("Power supply has no efficiency rating")
		} else {
			c.warnf("Power supply efficiency %s is below 80+ Gold", psu.Efficiency)
		}
	}
}

func (c *checker) checkCase() {
	b := c.build
	if b.Case == nil || b.Motherboard == nil {
		return
	}
	caseForm := b.Case.Case.FormFactor
	boardForm := b.Motherboard.Motherboard.FormFactor
	if !caseForm.Fits(boardForm) {
		c.errorf("Motherboard form factor %s does not fit in %s case", boardForm, caseForm)
	}
}

func (c *checker) checkCooling() {
	b := c.build
	if b.Cooling == nil {
		return
	}
	socket := ""
	switch {
	case b.Motherboard != nil:
		socket = b.Motherboard.Motherboard.Socket
	case b.CPU != nil:
		socket = b.CPU.CPU.Socket
	}
	if socket != "" && !catalog.SupportsSocket(*b.Cooling, socket) {
		c.errorf("Cooler %s does not support socket %s", b.Cooling.Name(), socket)
	}
	if b.CPU != nil && b.Cooling.Cooling.TDPRating < b.CPU.CPU.TDPWatts {
		c.warnf("Cooler rated for %dW is below CPU TDP of %dW", b.Cooling.Cooling.TDPRating, b.CPU.CPU.TDPWatts)
	}
}

func (c *checker) checkBalance() {
	b := c.build
	if b.CPU == nil || b.GPU == nil {
		return
	}
	cpuTier, gpuTier := b.CPU.Tier, b.GPU.Tier
	if cpuTier.Distance(gpuTier) <= 1 {
		return
	}
	if cpuTier < gpuTier {
		c.warnf("CPU (%s tier) may bottleneck the GPU (%s tier)", cpuTier, gpuTier)
	} else {
		c.warnf("GPU (%s tier) may bottleneck the CPU (%s tier)", gpuTier, cpuTier)
	}
}

func (c *checker) suggest() {
	b := c.build

	if b.CPU != nil && b.Cooling == nil {
		tdp := b.CPU.CPU.TDPWatts
		if strings.EqualFold(b.CPU.Brand, "AMD") && tdp <= stockCoolerMaxTDP {
			c.suggestf("The bundled AMD stock cooler should be sufficient for this CPU")
		}
		if tdp > stockCoolerMaxTDP {
			c.suggestf("A %dW CPU needs an aftermarket cooler", tdp)
		}
	}

	if b.GPU != nil && b.PSU != nil {
		rec := b.GPU.GPU.RecommendedPSUWatts
		if rec > 0 && rec != b.PSU.PSU.Wattage {
			c.suggestf("GPU manufacturer recommends a %dW power supply (selected %dW)", rec, b.PSU.PSU.Wattage)
		}
	}

	if b.PSU != nil && !b.PSU.PSU.Modular {
		c.suggestf("A modular power supply would simplify cable management")
	}

	if !b.HasNVMe() {
		c.suggestf("An NVMe SSD would significantly improve load times")
	}

	if b.CPU != nil && b.CPU.Tier >= models.TierHigh && b.MemoryCapacityGB() < recommendedMemoryGB {
		c.suggestf("%dGB of memory is recommended for a %s tier CPU", recommendedMemoryGB, b.CPU.Tier)
	}

	if b.GPU != nil && b.GPU.Tier == models.TierBudget && c.demandingGraphics() {
		c.suggestf("A budget GPU will struggle with high-resolution gaming and ray tracing")
	}
}

func (c *checker) demandingGraphics() bool {
	for _, u := range c.uses {
		if u == models.UseGamingAAA {
			return true
		}
	}
	return false
}
