package decider

import (
	"fmt"
	"strings"

	"github.com/supremind/permit/types"
)

// Validate checks table is total over schema: every declared role carries
// exactly the (resource, action) pairs the schema declares, nothing missing,
// nothing unknown. It walks the whole space and reports every defect at once,
// a broken table should fail process start with the full list, not die one
// triple at a time.
func Validate(schema types.Schema, table types.Table) error {
	if len(schema) == 0 {
		return types.ErrEmptySchema
	}
	if len(table) == 0 {
		return types.ErrEmptyTable
	}

	var unknownRes, unknownAct, missing []string

	for _, role := range table.Roles() {
		def := table[role]

		for res, rules := range def {
			if _, ok := schema[res]; !ok {
				unknownRes = append(unknownRes, fmt.Sprintf("%s/%s", role, res))
				continue
			}
			for act := range rules {
				if !schema.Defines(res, act) {
					unknownAct = append(unknownAct, fmt.Sprintf("%s/%s/%s", role, res, act))
				}
			}
		}

		for _, res := range schema.Resources() {
			for _, act := range schema.Actions(res) {
				if _, ok := def[res][act]; !ok {
					missing = append(missing, fmt.Sprintf("%s/%s/%s", role, res, act))
				}
			}
		}
	}

	switch {
	case len(unknownRes) > 0:
		return fmt.Errorf("%s: %w", strings.Join(unknownRes, ", "), types.ErrUnknownResource)
	case len(unknownAct) > 0:
		return fmt.Errorf("%s: %w", strings.Join(unknownAct, ", "), types.ErrUnknownAction)
	case len(missing) > 0:
		return fmt.Errorf("%s: %w", strings.Join(missing, ", "), types.ErrIncompleteTable)
	}

	return nil
}
