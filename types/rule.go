package types

// Effect is the tag of a Rule variant
type Effect uint8

// rule variants: a rule either always allows, always denies,
// or asks a predicate about the requesting user
const (
	Denied Effect = iota
	Granted
	Conditional
)

var effectNames = map[Effect]string{
	Denied:      "denied",
	Granted:     "granted",
	Conditional: "conditional",
}

func (e Effect) String() string {
	n, ok := effectNames[e]
	if !ok {
		n = "unknown"
	}
	return n
}

// Predicate decides a conditional rule against the requesting user.
// It must be pure: read the user's fields, touch nothing else, so checks can
// run repeatedly and concurrently without synchronization.
type Predicate func(User) bool

// Rule is the decision for one (role, resource, action) triple.
// The zero value denies, so a rule that was somehow never set fails closed.
type Rule struct {
	effect Effect
	cond   Predicate
}

// Grant returns a rule that always allows
func Grant() Rule {
	return Rule{effect: Granted}
}

// Deny returns a rule that always denies
func Deny() Rule {
	return Rule{effect: Denied}
}

// When returns a rule deferring to pred at query time.
// A nil pred denies.
func When(pred Predicate) Rule {
	return Rule{effect: Conditional, cond: pred}
}

// Effect returns the variant tag
func (r Rule) Effect() Effect {
	return r.effect
}

// Allows resolves the rule for user. Anything malformed, an unknown tag or a
// conditional without a predicate, resolves to deny rather than failing.
func (r Rule) Allows(user User) bool {
	switch r.effect {
	case Granted:
		return true
	case Denied:
		return false
	case Conditional:
		if r.cond == nil {
			return false
		}
		return r.cond(user)
	}

	return false
}

func (r Rule) String() string {
	return r.effect.String()
}
