package permit

import "github.com/supremind/permit/types"

// SuperRole specifies that any holder of role could do anything
func SuperRole(role types.Role) types.PresetPolicy {
	return func(_ types.Decider, user types.User, _ types.Resource, _ types.Action) bool {
		return user.HasRole(role)
	}
}

// PublicAccess specifies that everybody could do act on res,
// roles or no roles. Pairs the schema does not declare stay refused.
func PublicAccess(res types.Resource, act types.Action) types.PresetPolicy {
	return func(d types.Decider, _ types.User, rres types.Resource, ract types.Action) bool {
		if res != rres || act != ract {
			return false
		}
		for _, a := range d.Actions(res) {
			if a == act {
				return true
			}
		}
		return false
	}
}
