package decider

import "github.com/supremind/permit/types"

type deciderWithPresets struct {
	presets []types.PresetPolicy
	types.Decider
}

func newWithPresetPolicies(d types.Decider, presets ...types.PresetPolicy) *deciderWithPresets {
	return &deciderWithPresets{
		presets: presets,
		Decider: d,
	}
}

func (d *deciderWithPresets) HasPermission(user types.User, res types.Resource, act types.Action) bool {
	for _, p := range d.presets {
		if p(d, user, res, act) {
			return true
		}
	}

	return d.Decider.HasPermission(user, res, act)
}
