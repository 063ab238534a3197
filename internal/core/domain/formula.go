// Package domain contains the core domain models for update batch planning.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DefaultTap is the tap a bare formula name belongs to.
const DefaultTap = "homebrew/core"

// FormulaRef is a canonical, fully qualified formula identifier.
// Equality is by value; two refs are the same formula iff tap and name match.
type FormulaRef struct {
	Tap  string
	Name string
}

// ParseFormulaRef canonicalizes a user or collaborator supplied formula
// reference. A bare name belongs to the default tap, "user/tap/name" is
// explicit, anything else is malformed.
func ParseFormulaRef(token string) (FormulaRef, error) {
	switch strings.Count(token, "/") {
	case 0:
		return FormulaRef{Tap: DefaultTap, Name: token}, nil
	case 2:
		idx := strings.LastIndex(token, "/")
		return FormulaRef{Tap: token[:idx], Name: token[idx+1:]}, nil
	default:
		err := zerr.Wrap(ErrInvalidReference, "cannot parse formula reference")
		return FormulaRef{}, zerr.With(err, "reference", token)
	}
}

// String returns the fully qualified "tap/name" form.
func (f FormulaRef) String() string {
	return f.Tap + "/" + f.Name
}

// VersionPair records the currently packaged and the newly detected version
// of a formula. Immutable once recorded.
type VersionPair struct {
	Old string
	New string
}
