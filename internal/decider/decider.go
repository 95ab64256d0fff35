package decider

import (
	"github.com/go-logr/logr"
	"github.com/supremind/permit/types"
)

var _ types.Decider = (*decider)(nil)

// decider answers checks by plain lookups in an immutable table.
// It holds private deep copies of the schema and table, so nothing the caller
// keeps a reference to can change a decision after construction.
type decider struct {
	schema types.Schema
	table  types.Table
	l      logr.Logger
}

// New creates a decider over schema and table.
// Callers must have validated the pair first: the decider itself trusts the
// completeness invariant and only falls back to deny if it is ever broken.
func New(schema types.Schema, table types.Table, l logr.Logger, presets ...types.PresetPolicy) types.Decider {
	var d types.Decider
	d = &decider{
		schema: schema.Clone(),
		table:  table.Clone(),
		l:      l,
	}

	d = newWithPresetPolicies(d, presets...)

	return d
}

// HasPermission ORs the rules of every role the user holds: the first role
// allowing (res, act) settles it. Role order never matters, evaluation stops
// at the first allow only because further rules cannot flip the answer back.
func (d *decider) HasPermission(user types.User, res types.Resource, act types.Action) bool {
	for _, role := range user.Roles {
		if d.shall(user, role, res, act) {
			d.l.V(4).Info("allowed", "user", user, "role", role, "resource", res, "action", act)
			return true
		}
	}

	d.l.V(4).Info("refused", "user", user, "resource", res, "action", act)
	return false
}

// shall resolves the single rule one role holds for (res, act).
// Every lookup miss denies: an unregistered role can only appear if the
// caller bypassed the declared enumerations, and a missing rule cannot happen
// for a validated table, so neither is worth more than a log line.
func (d *decider) shall(user types.User, role types.Role, res types.Resource, act types.Action) bool {
	def, ok := d.table[role]
	if !ok {
		d.l.V(4).Info("unregistered role", "role", role)
		return false
	}

	rules, ok := def[res]
	if !ok {
		d.l.V(4).Info("unregistered resource", "role", role, "resource", res)
		return false
	}

	rule, ok := rules[act]
	if !ok {
		d.l.V(4).Info("unregistered action", "role", role, "resource", res, "action", act)
		return false
	}

	return rule.Allows(user)
}

// Roles lists all registered roles in lexical order
func (d *decider) Roles() []types.Role {
	return d.table.Roles()
}

// Resources lists all registered resources in lexical order
func (d *decider) Resources() []types.Resource {
	return d.schema.Resources()
}

// Actions lists the actions declared for res in lexical order
func (d *decider) Actions(res types.Resource) []types.Action {
	return d.schema.Actions(res)
}

// Rule returns the rule role holds for (res, act)
func (d *decider) Rule(role types.Role, res types.Resource, act types.Action) (types.Rule, bool) {
	rules, ok := d.table[role][res]
	if !ok {
		return types.Rule{}, false
	}
	rule, ok := rules[act]
	return rule, ok
}
