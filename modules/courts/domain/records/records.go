// Package records holds the row types for every editable sub-collection of a
// court. A row is "real" when at least one significant field is populated;
// identity and the new-row flag never count as significant.
package records

import "strings"

func allEmpty(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func trimmed(v string) string {
	return strings.TrimSpace(v)
}
