// Package resolver turns user tokens into the working set of formulae and
// expands it with transitive build- and test-time dependencies.
package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/tapplan/internal/core/domain"
	"go.trai.ch/tapplan/internal/core/ports"
	"go.trai.ch/zerr"
)

// formulaDirs are the conventional tap subfolders holding formula files,
// searched in order; the first existing one wins.
var formulaDirs = []string{"Formula", "HomebrewFormula", "."}

// Resolver builds the working set from user-specified taps and formulae.
type Resolver struct {
	brew   ports.Homebrew
	logger ports.Logger
}

// New creates a Resolver using the given package manager.
func New(brew ports.Homebrew, logger ports.Logger) *Resolver {
	return &Resolver{brew: brew, logger: logger}
}

// Resolve processes the user tokens into a working set. Each token is
// either a known tap (every formula file in it joins the set) or a formula
// reference. The returned tap is the single tap scope the run is restricted
// to; unless allTaps is set, touching a second tap fails with ErrCrossTap.
func (r *Resolver) Resolve(
	ctx context.Context,
	tokens []string,
	skip domain.SkipList,
	allTaps bool,
) (*domain.WorkingSet, string, error) {
	knownTaps, err := r.brew.Taps(ctx)
	if err != nil {
		return nil, "", err
	}
	r.logger.Info(fmt.Sprintf("found %d local taps", len(knownTaps)))

	ws := domain.NewWorkingSet()
	scope := ""

	for _, token := range tokens {
		if skip.MatchesToken(token) {
			r.logger.Debug(fmt.Sprintf("%s is in the skip list", token))
			continue
		}

		var tap string
		if slices.Contains(knownTaps, token) {
			tap = token
			if err := r.resolveTap(ctx, ws, token, skip); err != nil {
				return nil, "", err
			}
		} else {
			ref, added, err := r.resolveFormula(ctx, ws, token, skip)
			if err != nil {
				return nil, "", err
			}
			if !added {
				continue
			}
			tap = ref.Tap
		}

		if !allTaps {
			if scope != "" && scope != tap {
				err := zerr.Wrap(domain.ErrCrossTap, "run is scoped to a single tap")
				err = zerr.With(err, "token", token)
				err = zerr.With(err, "tap", tap)
				return nil, "", zerr.With(err, "previous_tap", scope)
			}
			scope = tap
		}
	}

	return ws, scope, nil
}

// resolveTap adds every formula file found in the tap to the working set.
func (r *Resolver) resolveTap(
	ctx context.Context,
	ws *domain.WorkingSet,
	tap string,
	skip domain.SkipList,
) error {
	r.logger.Info(fmt.Sprintf("processing %s (tap)", tap))

	tapPath, err := r.brew.TapPath(ctx, tap)
	if err != nil {
		return err
	}
	r.logger.Debug("tap location: " + tapPath)

	files, err := findFormulaFiles(tapPath)
	if err != nil {
		return err
	}
	r.logger.Debug(fmt.Sprintf("found %d formula files in %s", len(files), tapPath))

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".rb")
		ref := domain.FormulaRef{Tap: tap, Name: name}
		if skip.Matches(ref) {
			r.logger.Debug("skipping " + ref.String())
			continue
		}
		if err := ws.RecordPath(ref, file); err != nil {
			return err
		}
		ws.Add(ref)
	}
	return nil
}

// resolveFormula canonicalizes a single formula token and records its
// description file location. A formula suppressed by the skip list is not
// added and must not influence the tap scope of the run; added reports
// whether the formula joined the working set.
func (r *Resolver) resolveFormula(
	ctx context.Context,
	ws *domain.WorkingSet,
	token string,
	skip domain.SkipList,
) (ref domain.FormulaRef, added bool, err error) {
	ref, err = domain.ParseFormulaRef(token)
	if err != nil {
		return domain.FormulaRef{}, false, err
	}

	path, err := r.brew.FormulaPath(ctx, ref.String())
	if err != nil {
		return domain.FormulaRef{}, false, zerr.Wrap(err, domain.ErrResolution.Error())
	}

	if skip.Matches(ref) {
		r.logger.Debug("skipping " + ref.String())
		return ref, false, nil
	}

	if err := ws.RecordPath(ref, path); err != nil {
		return domain.FormulaRef{}, false, err
	}
	ws.Add(ref)
	return ref, true, nil
}

// findFormulaFiles returns the formula files of a tap, searching the
// conventional subfolders in order and taking the first that exists.
func findFormulaFiles(tapPath string) ([]string, error) {
	for _, sub := range formulaDirs {
		dir := filepath.Join(tapPath, sub)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to read tap folder"), "path", dir)
		}

		var files []string
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".rb") {
				continue
			}
			files = append(files, filepath.Join(dir, entry.Name()))
		}
		return files, nil
	}
	return nil, zerr.With(zerr.New("no formula folder found in tap"), "path", tapPath)
}
