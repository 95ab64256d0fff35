package types

import "sort"

// RuleSet is the definition of a single role: one rule for every
// (resource, action) pair the schema declares. No omissions are allowed,
// the table is validated against its schema before any check runs.
type RuleSet map[Resource]map[Action]Rule

// Table maps every role to its rule set. Built once, immutable thereafter.
type Table map[Role]RuleSet

// Roles lists the declared roles in lexical order
func (t Table) Roles() []Role {
	out := make([]Role, 0, len(t))
	for role := range t {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a deep copy, so the original cannot be changed through it
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for role, def := range t {
		cp := make(RuleSet, len(def))
		for res, rules := range def {
			rs := make(map[Action]Rule, len(rules))
			for act, rule := range rules {
				rs[act] = rule
			}
			cp[res] = rs
		}
		out[role] = cp
	}
	return out
}
