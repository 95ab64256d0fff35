package types

// Decider is the top level interface for end use.
// It answers whether a user may perform an action on a resource, based on a
// schema and a rule table fixed at construction. All methods are read only
// and safe for concurrent use without locks.
type Decider interface {
	// HasPermission tells if at least one of the user's roles allows action
	// on resource. A user with no roles is always refused. Anything the
	// table does not know, an unregistered role, resource, or action, is
	// refused as well, never an error.
	HasPermission(user User, res Resource, act Action) bool

	SchemaReader
}

// SchemaReader exposes the closed enumerations to collaborators,
// a request router choosing what to ask, an admin view rendering the matrix
type SchemaReader interface {
	// Roles lists all registered roles in lexical order
	Roles() []Role

	// Resources lists all registered resources in lexical order
	Resources() []Resource

	// Actions lists the actions declared for res in lexical order
	Actions(res Resource) []Action

	// Rule returns the rule one role holds for (res, act),
	// false if the triple is not registered
	Rule(role Role, res Resource, act Action) (Rule, bool)
}

// PresetPolicy is consulted before the rule table on every check,
// the first policy answering true allows the action
type PresetPolicy func(d Decider, user User, res Resource, act Action) bool
