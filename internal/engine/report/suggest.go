package report

import (
	"regexp"
	"strings"
)

// SuggestURL scans a formula source text for a download URL line containing
// the old version string and returns that URL with every occurrence of the
// old version replaced by the new one. The second return is false when no
// such line exists.
func SuggestURL(source, oldVersion, newVersion string) (string, bool) {
	pattern := regexp.MustCompile(
		`(?m)^\s*url "([^ ]*` + regexp.QuoteMeta(oldVersion) + `[^ ]*)"`,
	)
	match := pattern.FindStringSubmatch(source)
	if match == nil {
		return "", false
	}
	return strings.ReplaceAll(match[1], oldVersion, newVersion), true
}
