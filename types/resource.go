package types

import "sort"

// Resource is a protected subject-area with its own closed set of actions
type Resource string

func (r Resource) String() string {
	return string(r)
}

// Action is an operation defined on a specific resource.
// Actions belong to the resource declaring them: an action valid for one
// resource cannot be asked about another, the Schema decides which pairs exist.
type Action string

func (a Action) String() string {
	return string(a)
}

// Schema declares the closed set of resources and, per resource, the closed
// set of actions. It is fixed at build time and never changes afterward.
type Schema map[Resource][]Action

// Defines tells if the (resource, action) pair exists in the schema
func (s Schema) Defines(res Resource, act Action) bool {
	for _, a := range s[res] {
		if a == act {
			return true
		}
	}
	return false
}

// Resources lists the declared resources in lexical order
func (s Schema) Resources() []Resource {
	out := make([]Resource, 0, len(s))
	for res := range s {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Actions lists the actions declared for res in lexical order,
// nil for an unknown resource
func (s Schema) Actions(res Resource) []Action {
	acts, ok := s[res]
	if !ok {
		return nil
	}
	out := make([]Action, len(acts))
	copy(out, acts)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a deep copy, so the original cannot be changed through it
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	for res, acts := range s {
		cp := make([]Action, len(acts))
		copy(cp, acts)
		out[res] = cp
	}
	return out
}
