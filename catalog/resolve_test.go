// ABOUTME: Tests for resolving component ids into a candidate build
// ABOUTME: Uses the embedded default catalog

package catalog

import (
	"errors"
	"testing"

	"github.com/markalston/pc-build-advisor/models"
)

func TestResolve(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	b, err := c.Resolve(models.BuildSelection{
		CPU:         "cpu-ryzen5-7600",
		Motherboard: "mb-b650-tomahawk",
		Memory:      []string{"ram-ddr5-32-6000"},
		Storage:     []string{"ssd-990pro-1tb", "hdd-barracuda-4tb"},
		PSU:         "psu-rm750e",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if b.CPU == nil || b.CPU.ID != "cpu-ryzen5-7600" {
		t.Errorf("Expected CPU cpu-ryzen5-7600, got %v", b.CPU)
	}
	if len(b.Storage) != 2 || b.Storage[1].ID != "hdd-barracuda-4tb" {
		t.Errorf("Expected two storage devices in order, got %v", b.Storage)
	}
	if b.GPU != nil || b.Case != nil || b.Cooling != nil {
		t.Error("Expected empty slots to stay empty")
	}
}

func TestResolve_Errors(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	tests := []struct {
		name    string
		sel     models.BuildSelection
		wantErr error
	}{
		{"unknown id", models.BuildSelection{CPU: "cpu-does-not-exist"}, ErrUnknownComponent},
		{"unknown memory", models.BuildSelection{Memory: []string{"ram-missing"}}, ErrUnknownComponent},
		{"wrong slot", models.BuildSelection{CPU: "gpu-rtx4060"}, ErrWrongCategory},
		{"wrong list slot", models.BuildSelection{Storage: []string{"ram-ddr5-16-5600"}}, ErrWrongCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Resolve(tt.sel); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
