// Package catalog defines the static parameter table of the hardware
// filter synthesizer: every parameter's identity, value kind and group
// membership. The table is built once at startup and never mutated.
package catalog

// ID identifies a parameter. It doubles as the device's control-change
// number, so it is always in the 0-127 range.
type ID uint8

// Kind describes a parameter's value domain.
type Kind int

const (
	// Continuous parameters have a numeric range where interpolation is
	// musically meaningful.
	Continuous Kind = iota
	// Discrete parameters have a small enumerated domain (waveform shapes,
	// trigger modes) with no meaningful in-between value.
	Discrete
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	}
	return "unknown"
}

// Group is one of the eight parameter clusters used for bulk enable/disable.
type Group int

const (
	GroupFilter Group = iota
	GroupFilterEnvelope
	GroupAmpEnvelope
	GroupOutput
	GroupLFO
	GroupTiming
	GroupModulation
	GroupTrigger

	numGroups
)

var groupNames = [numGroups]string{
	"filter",
	"filter envelope",
	"amp envelope",
	"output",
	"lfo",
	"timing",
	"modulation",
	"trigger",
}

func (g Group) String() string {
	if g < 0 || g >= numGroups {
		return "unknown"
	}
	return groupNames[g]
}

// Groups returns all groups in declaration order.
func Groups() []Group {
	gs := make([]Group, numGroups)
	for i := range gs {
		gs[i] = Group(i)
	}
	return gs
}

// IncludeFlag ties a discrete parameter to the configuration flag that must
// be set before it participates in a morph. Discrete parameters without a
// flag are never morphed.
type IncludeFlag int

const (
	FlagNone IncludeFlag = iota
	FlagModShape
	FlagTriggerSource
	FlagTriggerMode
)

// Descriptor is the static metadata for one parameter.
type Descriptor struct {
	ID    ID
	Name  string
	Kind  Kind
	Group Group

	// ModSource marks a modulation source selector (off/LFO/envelope/...),
	// a special case of Discrete.
	ModSource bool

	Flag IncludeFlag
}
