package resolve

import (
	"strconv"

	"github.com/oletizi/audio-control/internal/target"
)

// ControllerContext carries the device metadata resolution depends on. It is
// supplied by the surrounding tooling (the maps catalog or the CLI), never
// derived by the core.
type ControllerContext struct {
	Manufacturer string
	Model        string

	// PreferURIRouting selects addressable parameter paths over symbolic
	// functions for plain parameter targets. Set for controller families
	// whose target runtime routes per-strip plugin parameters.
	PreferURIRouting bool

	// NeedsDeviceInfo marks controller families whose target map requires a
	// device-descriptor block.
	NeedsDeviceInfo bool

	// BankSize is the strip bank width emitted in the device descriptor
	// when NeedsDeviceInfo is set.
	BankSize int

	// MotorizedFaders marks surfaces with motorized faders; emitted as a
	// device-descriptor attribute when present.
	MotorizedFaders bool
}

// DeviceInfo builds the device-descriptor block for this context, or nil
// when the controller family does not need one.
func (c ControllerContext) DeviceInfo() *target.DeviceInfo {
	if !c.NeedsDeviceInfo {
		return nil
	}

	info := &target.DeviceInfo{}

	bankSize := c.BankSize
	if bankSize <= 0 {
		bankSize = 8
	}

	info.Set("bank-size", strconv.Itoa(bankSize))

	if c.MotorizedFaders {
		info.Set("motorized", "yes")
	}

	return info
}
