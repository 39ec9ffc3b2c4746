// Package engine morphs between two parameter snapshots: it advances a
// position from 0 to 1 over a configurable time span, interpolates every
// eligible parameter and emits only the control changes the hardware has not
// already received.
package engine

import (
	"github.com/analogue/morph/pkg/morph/catalog"
)

// Strategy governs how a discrete parameter's value depends on morph
// position. Discrete values have no meaningful in-between, so they either
// hold one side or snap at a threshold.
type Strategy int

const (
	// Ignore keeps discrete parameters out of the morph entirely.
	Ignore Strategy = iota
	// UseSource holds the source value for the whole morph.
	UseSource
	// UseDestination resolves to the destination value at every position,
	// including 0.
	UseDestination
	// SnapAtThreshold holds the source value until the raw position reaches
	// Config.SnapThreshold, then snaps to the destination value.
	SnapAtThreshold
)

func (s Strategy) String() string {
	switch s {
	case Ignore:
		return "ignore"
	case UseSource:
		return "use-source"
	case UseDestination:
		return "use-destination"
	case SnapAtThreshold:
		return "snap-at-threshold"
	}
	return "unknown"
}

// Config selects which parameters take part in a morph and how discrete
// parameters behave.
//
// Precedence for a single parameter: force-enable wins over both the disable
// list and a disabled group; the disable list wins over an enabled group.
// A parameter listed as both disabled and force-enabled is enabled.
type Config struct {
	EnabledGroups map[catalog.Group]bool
	Disabled      map[catalog.ID]bool
	ForceEnabled  map[catalog.ID]bool

	Strategy      Strategy
	SnapThreshold float64

	// Include flags gate the device's discrete parameters. Each defaults to
	// false: a discrete parameter whose flag is off is never interpolated
	// and never emitted.
	IncludeModShape      bool
	IncludeTriggerSource bool
	IncludeTriggerMode   bool
}

// DefaultConfig enables every group, holds discrete parameters at their
// source value and snaps at the halfway point when SnapAtThreshold is chosen.
func DefaultConfig() Config {
	enabled := make(map[catalog.Group]bool)
	for _, g := range catalog.Groups() {
		enabled[g] = true
	}
	return Config{
		EnabledGroups: enabled,
		Disabled:      make(map[catalog.ID]bool),
		ForceEnabled:  make(map[catalog.ID]bool),
		Strategy:      UseSource,
		SnapThreshold: 0.5,
	}
}

// includes applies the flag gate and the group/force/disable precedence.
func (c Config) includes(d catalog.Descriptor) bool {
	if d.ModSource || d.Kind == catalog.Discrete {
		if !c.flagSet(d.Flag) {
			return false
		}
	}
	if c.ForceEnabled[d.ID] {
		return true
	}
	if c.Disabled[d.ID] {
		return false
	}
	return c.EnabledGroups[d.Group]
}

func (c Config) flagSet(f catalog.IncludeFlag) bool {
	switch f {
	case catalog.FlagModShape:
		return c.IncludeModShape
	case catalog.FlagTriggerSource:
		return c.IncludeTriggerSource
	case catalog.FlagTriggerMode:
		return c.IncludeTriggerMode
	}
	return false
}

func (c Config) snapThreshold() float64 {
	return clampUnit(c.SnapThreshold)
}
