package detector

import (
	"strings"

	"go.trai.ch/tapplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// ErrUnparseable is returned when the upstream check tool reports an update
// in a shape the "<noise> : <old> ==> <new>" contract does not cover.
var ErrUnparseable = zerr.New("unexpected output from upstream version check")

// ParseLivecheck extracts the version pair from a non-empty livecheck report
// line. Everything before the first " : " separator is tool noise and is
// discarded.
func ParseLivecheck(line string) (domain.VersionPair, error) {
	_, rest, ok := strings.Cut(line, " : ")
	if !ok {
		return domain.VersionPair{}, unparseable(line)
	}

	oldVersion, newVersion, ok := strings.Cut(rest, " ==> ")
	if !ok {
		return domain.VersionPair{}, unparseable(line)
	}

	pair := domain.VersionPair{
		Old: strings.TrimSpace(oldVersion),
		New: strings.TrimSpace(newVersion),
	}
	if pair.Old == "" || pair.New == "" {
		return domain.VersionPair{}, unparseable(line)
	}
	return pair, nil
}

func unparseable(line string) error {
	err := zerr.Wrap(ErrUnparseable, "cannot extract version pair")
	return zerr.With(err, "output", line)
}
