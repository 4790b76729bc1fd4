// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Maps component categories and check results to terminal glyphs

package icons

import (
	"os"
	"strings"
	"sync"

	"github.com/markalston/pc-build-advisor/models"
)

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts() bool {
	// Explicit override via environment variable
	if env := os.Getenv("PCBUILD_NERD_FONTS"); env != "" {
		return env == "1" || strings.ToLower(env) == "true"
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	nerdFontTerminals := []string{
		"iTerm.app",
		"alacritty",
		"WezTerm",
		"kitty",
		"ghostty",
	}

	for _, t := range nerdFontTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	return os.Getenv("NERD_FONTS") == "1"
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

var (
	// Component categories
	CPU         = Icon{"", "●"} // nf-oct-cpu
	GPU         = Icon{"󰢮", "▦"} // nf-md-expansion_card
	Motherboard = Icon{"󰍛", "▤"} // nf-md-memory
	Memory      = Icon{"󰘚", "◆"} // nf-md-chip
	Storage     = Icon{"󰋊", "■"} // nf-md-harddisk
	PSU         = Icon{"󱐋", "⚡"} // nf-md-lightning_bolt
	Case        = Icon{"󰇄", "▢"} // nf-md-desktop_classic
	Cooling     = Icon{"󰈐", "❄"} // nf-md-fan

	// Status indicators
	CheckOK  = Icon{"", "✓"} // nf-oct-check_circle
	Warning  = Icon{"", "⚠"} // nf-oct-alert
	Critical = Icon{"", "✗"} // nf-oct-x_circle
	Info     = Icon{"", "ℹ"} // nf-oct-info

	App = Icon{"󰟀", "◈"} // nf-md-desktop_tower
)

// ForCategory returns the icon for a component category
func ForCategory(c models.Category) Icon {
	switch c {
	case models.CategoryCPU:
		return CPU
	case models.CategoryGPU:
		return GPU
	case models.CategoryMotherboard:
		return Motherboard
	case models.CategoryMemory:
		return Memory
	case models.CategoryStorage:
		return Storage
	case models.CategoryPSU:
		return PSU
	case models.CategoryCase:
		return Case
	case models.CategoryCooling:
		return Cooling
	}
	return Info
}
