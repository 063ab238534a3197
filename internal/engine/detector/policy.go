package detector

import "strings"

// preReleaseMarkers flag upstream versions that are not finished releases.
var preReleaseMarkers = []string{"alpha", "beta", "rc", "preview"}

// Stable reports whether the jump from old to new looks like a regular
// release step. A new version is rejected when it carries a pre-release
// marker, when its dotted shape differs from the old one, or when a
// component switches between numeric and non-numeric.
func Stable(oldVersion, newVersion string) bool {
	lowered := strings.ToLower(newVersion)
	for _, marker := range preReleaseMarkers {
		if strings.Contains(lowered, marker) {
			return false
		}
	}

	oldParts := strings.Split(oldVersion, ".")
	newParts := strings.Split(newVersion, ".")
	if len(oldParts) != len(newParts) {
		return false
	}

	for i := range oldParts {
		if isNumeric(oldParts[i]) != isNumeric(newParts[i]) {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
