// ABOUTME: Tests for component enums, parsing, and per-category validation
// ABOUTME: Covers tier ordering, form factor fit, and efficiency parsing

package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTier_Ordering(t *testing.T) {
	if !(TierBudget < TierMid && TierMid < TierHigh && TierHigh < TierEnthusiast) {
		t.Fatal("Expected budget < mid < high < enthusiast")
	}
	if TierBudget.Distance(TierEnthusiast) != 3 {
		t.Errorf("Expected distance 3, got %d", TierBudget.Distance(TierEnthusiast))
	}
	if !TierMid.Within(TierHigh) {
		t.Error("Expected mid to be within one step of high")
	}
	if TierBudget.Within(TierHigh) {
		t.Error("Expected budget not to be within one step of high")
	}
}

func TestTier_JSON(t *testing.T) {
	data, err := json.Marshal(TierHigh)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(data) != `"high"` {
		t.Errorf("Expected \"high\", got %s", data)
	}

	var tier Tier
	if err := json.Unmarshal([]byte(`"enthusiast"`), &tier); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if tier != TierEnthusiast {
		t.Errorf("Expected enthusiast, got %s", tier)
	}

	if err := json.Unmarshal([]byte(`"ludicrous"`), &tier); err == nil {
		t.Error("Expected error for unknown tier")
	}
}

func TestParseFormFactor(t *testing.T) {
	tests := []struct {
		input string
		want  FormFactor
	}{
		{"Mini ITX", FormFactorMiniITX},
		{"Mini-ITX", FormFactorMiniITX},
		{"Micro ATX", FormFactorMicroATX},
		{"mATX", FormFactorMicroATX},
		{"ATX", FormFactorATX},
		{"E-ATX", FormFactorEATX},
		{"EATX", FormFactorEATX},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormFactor(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}

	if _, err := ParseFormFactor("BTX"); err == nil {
		t.Error("Expected error for unknown form factor")
	}
}

func TestFormFactor_Fits(t *testing.T) {
	tests := []struct {
		name      string
		caseForm  FormFactor
		boardForm FormFactor
		want      bool
	}{
		{"equal", FormFactorATX, FormFactorATX, true},
		{"smaller board", FormFactorATX, FormFactorMiniITX, true},
		{"larger board", FormFactorMiniITX, FormFactorATX, false},
		{"eatx board in atx case", FormFactorATX, FormFactorEATX, false},
		{"unknown case", FormFactorUnknown, FormFactorEATX, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.caseForm.Fits(tt.boardForm); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseEfficiency(t *testing.T) {
	tests := []struct {
		input string
		want  Efficiency
	}{
		{"80+ Gold", EfficiencyGold},
		{"80 PLUS Platinum", EfficiencyPlatinum},
		{"Bronze", EfficiencyBronze},
		{"80+", EfficiencyWhite},
		{"", EfficiencyNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseEfficiency(tt.input); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}

	if !EfficiencyBronze.BelowGold() || EfficiencyGold.BelowGold() {
		t.Error("Expected Bronze below Gold and Gold not below Gold")
	}
}

func TestComponent_Validate(t *testing.T) {
	valid := Component{
		ID:       "cpu-1",
		Category: CategoryCPU,
		Brand:    "AMD",
		Model:    "Ryzen 5 7600",
		Price:    decimal.NewFromInt(199),
		Tier:     TierMid,
		CPU:      &CPUSpec{Socket: "AM5", Cores: 6, Threads: 12, TDPWatts: 65},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected valid component, got %v", err)
	}

	missing := valid
	missing.CPU = nil
	if err := missing.Validate(); err == nil {
		t.Error("Expected error for missing CPU attributes")
	}

	mixed := valid
	mixed.GPU = &GPUSpec{VRAMGB: 8}
	if err := mixed.Validate(); err == nil {
		t.Error("Expected error for component carrying another category's attributes")
	}

	negative := valid
	negative.Price = decimal.NewFromInt(-1)
	if err := negative.Validate(); err == nil {
		t.Error("Expected error for negative price")
	}
}

func TestComponent_Name(t *testing.T) {
	c := Component{Brand: "AMD", Model: "Ryzen 7 7800X3D"}
	if c.Name() != "AMD Ryzen 7 7800X3D" {
		t.Errorf("Expected 'AMD Ryzen 7 7800X3D', got %q", c.Name())
	}

	c.Model = "AMD Wraith Stealth"
	if c.Name() != "AMD Wraith Stealth" {
		t.Errorf("Expected brand not duplicated, got %q", c.Name())
	}
}
