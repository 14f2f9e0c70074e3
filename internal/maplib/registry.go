package maplib

import (
	"strings"

	"github.com/oletizi/audio-control/internal/resolve"
)

// registry holds per-model controller quirks keyed by folded
// manufacturer/model strings.
var registry = map[string]resolve.ControllerContext{
	foldKey("Korg", "nanoKONTROL2"): {
		Manufacturer:    "Korg",
		Model:           "nanoKONTROL2",
		NeedsDeviceInfo: true,
		BankSize:        8,
	},
	foldKey("Behringer", "X-Touch Mini"): {
		Manufacturer:     "Behringer",
		Model:            "X-Touch Mini",
		PreferURIRouting: true,
		NeedsDeviceInfo:  true,
		BankSize:         8,
	},
	foldKey("Behringer", "X-Touch"): {
		Manufacturer:     "Behringer",
		Model:            "X-Touch",
		PreferURIRouting: true,
		NeedsDeviceInfo:  true,
		BankSize:         8,
		MotorizedFaders:  true,
	},
	foldKey("Arturia", "MiniLab 3"): {
		Manufacturer: "Arturia",
		Model:        "MiniLab 3",
	},
	foldKey("Novation", "Launch Control XL"): {
		Manufacturer:    "Novation",
		Model:           "Launch Control XL",
		NeedsDeviceInfo: true,
		BankSize:        8,
	},
}

// foldKey folds case, spacing, and punctuation out of a manufacturer/model
// pair so catalog lookups tolerate cosmetic naming differences.
func foldKey(manufacturer, model string) string {
	fold := func(s string) string {
		s = strings.ToLower(s)
		for _, cut := range []string{" ", "-", "_"} {
			s = strings.ReplaceAll(s, cut, "")
		}

		return s
	}

	return fold(manufacturer) + "/" + fold(model)
}

// Lookup returns the catalog context for a controller, or a generic context
// carrying just the given names when the model is unknown.
func Lookup(manufacturer, model string) resolve.ControllerContext {
	if ctx, ok := registry[foldKey(manufacturer, model)]; ok {
		return ctx
	}

	return resolve.ControllerContext{
		Manufacturer: manufacturer,
		Model:        model,
	}
}
