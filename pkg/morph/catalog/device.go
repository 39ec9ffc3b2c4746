package catalog

// Device builds the parameter table of the filter box: 29 parameters across
// the eight groups, 26 continuous and 3 discrete. Ids are the control-change
// numbers the hardware listens on.
func Device() *Catalog {
	c := New()

	// The device definition is fixed; Add can only fail on a duplicate id,
	// which the catalog tests pin down.
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(c.Add(
		Descriptor{ID: 74, Name: "Cutoff", Kind: Continuous, Group: GroupFilter},
		Descriptor{ID: 71, Name: "Resonance", Kind: Continuous, Group: GroupFilter},
		Descriptor{ID: 76, Name: "Filter Drive", Kind: Continuous, Group: GroupFilter},
		Descriptor{ID: 77, Name: "Key Track", Kind: Continuous, Group: GroupFilter},
	))
	must(c.Add(
		Descriptor{ID: 81, Name: "Filter Env Attack", Kind: Continuous, Group: GroupFilterEnvelope},
		Descriptor{ID: 82, Name: "Filter Env Decay", Kind: Continuous, Group: GroupFilterEnvelope},
		Descriptor{ID: 83, Name: "Filter Env Sustain", Kind: Continuous, Group: GroupFilterEnvelope},
		Descriptor{ID: 84, Name: "Filter Env Release", Kind: Continuous, Group: GroupFilterEnvelope},
		Descriptor{ID: 85, Name: "Filter Env Amount", Kind: Continuous, Group: GroupFilterEnvelope},
	))
	must(c.Add(
		Descriptor{ID: 86, Name: "Amp Env Attack", Kind: Continuous, Group: GroupAmpEnvelope},
		Descriptor{ID: 87, Name: "Amp Env Decay", Kind: Continuous, Group: GroupAmpEnvelope},
		Descriptor{ID: 88, Name: "Amp Env Sustain", Kind: Continuous, Group: GroupAmpEnvelope},
		Descriptor{ID: 89, Name: "Amp Env Release", Kind: Continuous, Group: GroupAmpEnvelope},
	))
	must(c.Add(
		Descriptor{ID: 7, Name: "Volume", Kind: Continuous, Group: GroupOutput},
		Descriptor{ID: 10, Name: "Pan", Kind: Continuous, Group: GroupOutput},
		Descriptor{ID: 3, Name: "Input Gain", Kind: Continuous, Group: GroupOutput},
		Descriptor{ID: 9, Name: "Output Drive", Kind: Continuous, Group: GroupOutput},
	))
	must(c.Add(
		Descriptor{ID: 16, Name: "LFO Rate", Kind: Continuous, Group: GroupLFO},
		Descriptor{ID: 17, Name: "LFO Depth", Kind: Continuous, Group: GroupLFO},
		Descriptor{ID: 18, Name: "LFO Delay", Kind: Continuous, Group: GroupLFO},
	))
	must(c.Add(
		Descriptor{ID: 5, Name: "Glide Time", Kind: Continuous, Group: GroupTiming},
		Descriptor{ID: 19, Name: "Gate Time", Kind: Continuous, Group: GroupTiming},
		Descriptor{ID: 20, Name: "Swing", Kind: Continuous, Group: GroupTiming},
	))
	must(c.Add(
		Descriptor{ID: 21, Name: "Mod Shape", Kind: Discrete, Group: GroupModulation, Flag: FlagModShape},
		Descriptor{ID: 22, Name: "Mod Depth", Kind: Continuous, Group: GroupModulation},
		Descriptor{ID: 23, Name: "Mod Speed", Kind: Continuous, Group: GroupModulation},
	))
	must(c.Add(
		Descriptor{ID: 24, Name: "Trigger Source", Kind: Discrete, Group: GroupTrigger, ModSource: true, Flag: FlagTriggerSource},
		Descriptor{ID: 25, Name: "Trigger Mode", Kind: Discrete, Group: GroupTrigger, Flag: FlagTriggerMode},
		Descriptor{ID: 26, Name: "Trigger Sensitivity", Kind: Continuous, Group: GroupTrigger},
	))

	return c
}
