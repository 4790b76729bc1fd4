// ABOUTME: Deterministic performance and value scoring for components and builds
// ABOUTME: Shared by the selector for ranking and the generator for final scores

package services

import (
	"math"

	"github.com/markalston/pc-build-advisor/models"
	"github.com/shopspring/decimal"
)

var gpuTierScores = map[models.Tier]float64{
	models.TierBudget:     20,
	models.TierMid:        40,
	models.TierHigh:       70,
	models.TierEnthusiast: 100,
}

const (
	nvmeBonus    = 10
	storageBonus = 5
	memoryCap    = 16 // points; reached at 64GB
)

// CPUScore is the processor performance proxy
func CPUScore(c models.Component) float64 {
	if c.CPU == nil {
		return 0
	}
	return float64(c.CPU.Cores)*1.5 + float64(c.CPU.Threads) + c.CPU.BoostClockGHz*2
}

// GPUScore is the graphics performance proxy: tier lookup plus VRAM and clock
func GPUScore(c models.Component) float64 {
	if c.GPU == nil {
		return 0
	}
	return gpuTierScores[c.Tier] + float64(c.GPU.VRAMGB)*1.5 + float64(c.GPU.BoostClockMHz)/200
}

// PerformanceScore weights CPU, GPU tier, memory, and storage into one number.
// Typical builds land in 0-100 but the scale is not clamped.
func PerformanceScore(b *models.CandidateBuild) int {
	score := 0.0
	if b.CPU != nil {
		score += CPUScore(*b.CPU) * 0.3
	}
	if b.GPU != nil {
		score += gpuTierScores[b.GPU.Tier] * 0.4
	}
	if len(b.Memory) > 0 {
		score += math.Min(float64(b.MemoryCapacityGB())/4, memoryCap) * 0.2
	}
	if len(b.Storage) > 0 {
		if b.HasNVMe() {
			score += nvmeBonus
		} else {
			score += storageBonus
		}
	}
	return roundHalfUp(score)
}

// ValueScore is performance per 1000 currency units. Zero or negative
// totals score zero.
func ValueScore(performance int, totalPrice decimal.Decimal) int {
	if !totalPrice.IsPositive() {
		return 0
	}
	return int(decimal.NewFromInt(int64(performance)).
		Mul(decimal.NewFromInt(1000)).
		Div(totalPrice).
		Round(0).
		IntPart())
}

func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}

// rankingPrice floors the price at 1 for ratio ranking
func rankingPrice(c models.Component) float64 {
	p := c.Price.InexactFloat64()
	if p < 1 {
		return 1
	}
	return p
}
