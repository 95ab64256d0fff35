package types

// Role is a named bundle of permission rules assignable to a user.
// The set of valid roles is closed: every Role used in a Table must be
// declared there, and the table is checked for completeness on construction.
type Role string

func (r Role) String() string {
	return string(r)
}

// User is whoever is asking for permission. It is supplied by an outer
// authentication layer per check; this package never creates or stores users.
// A user may hold any number of roles, duplicates carry no extra meaning.
type User struct {
	ID    string
	Roles []Role
}

// HasRole tells if the user holds the given role directly
func (u User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u User) String() string {
	return "user:" + u.ID
}
