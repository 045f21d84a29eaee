package utils

import "fmt"

// EnumValidator restricts a string field to a fixed value set. Status
// columns use this instead of ent enums so new values ship without a
// column migration.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q not in %v", s, allowed)
	}
}
