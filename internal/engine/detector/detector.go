// Package detector checks every formula in the working set against its
// upstream and collects the outdated ones with their version pairs and
// in-set dependencies.
package detector

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.trai.ch/tapplan/internal/core/domain"
	"go.trai.ch/tapplan/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options tune a detection run.
type Options struct {
	// RawVersions disables the release-stability policy so that any
	// reported version jump counts as an update.
	RawVersions bool

	// Jobs is the number of formulae checked concurrently. Values below
	// two mean sequential checking.
	Jobs int
}

// Detector runs upstream version checks over a working set.
type Detector struct {
	brew   ports.Homebrew
	logger ports.Logger
}

// New creates a Detector using the given package manager.
func New(brew ports.Homebrew, logger ports.Logger) *Detector {
	return &Detector{brew: brew, logger: logger}
}

// Check queries upstream versions for every formula in the working set and
// returns the set of outdated ones. Skipped formulae are never queried. Any
// formula whose check fails aborts the whole run; a cancelled context
// surfaces as ErrInterrupted naming the formula in flight.
func (d *Detector) Check(
	ctx context.Context,
	ws *domain.WorkingSet,
	skip domain.SkipList,
	opts Options,
) (*domain.UpdateSet, error) {
	refs := ws.Refs()
	d.logger.Info(fmt.Sprintf("checking %d formulae for updates", len(refs)))

	set := domain.NewUpdateSet()
	if opts.Jobs > 1 {
		if err := d.checkParallel(ctx, refs, ws, skip, opts, set); err != nil {
			return nil, err
		}
	} else {
		for _, ref := range refs {
			if err := d.checkOne(ctx, ref, ws, skip, opts, set, nil); err != nil {
				return nil, err
			}
		}
	}

	d.logger.Info(fmt.Sprintf("%d formulae are outdated", set.Len()))
	return set, nil
}

func (d *Detector) checkParallel(
	ctx context.Context,
	refs []domain.FormulaRef,
	ws *domain.WorkingSet,
	skip domain.SkipList,
	opts Options,
	set *domain.UpdateSet,
) error {
	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(opts.Jobs)

	for _, ref := range refs {
		group.Go(func() error {
			return d.checkOne(ctx, ref, ws, skip, opts, set, &mu)
		})
	}
	return group.Wait()
}

// checkOne runs the full per-formula pipeline: upstream query, report
// parsing, stability policy, dependency lookup. The update set is only
// touched once all of it succeeded, under mu when one is given.
func (d *Detector) checkOne(
	ctx context.Context,
	ref domain.FormulaRef,
	ws *domain.WorkingSet,
	skip domain.SkipList,
	opts Options,
	set *domain.UpdateSet,
	mu *sync.Mutex,
) error {
	if skip.Matches(ref) {
		d.logger.Debug(fmt.Sprintf("%s is in the skip list", ref))
		return nil
	}
	d.logger.Debug("checking " + ref.String())

	report, err := d.brew.Livecheck(ctx, ref.String())
	if err != nil {
		if ctx.Err() != nil {
			return interrupted(ref)
		}
		return zerr.Wrap(err, "upstream version check failed")
	}

	if strings.TrimSpace(report) == "" {
		return nil
	}

	pair, err := ParseLivecheck(report)
	if err != nil {
		d.logger.Warn(fmt.Sprintf(
			"cannot read upstream report for %s, treating it as current: %q", ref, report,
		))
		return nil
	}

	if !opts.RawVersions && !Stable(pair.Old, pair.New) {
		d.logger.Warn(fmt.Sprintf(
			"ignoring version jump %s ==> %s for %s, pass --raw-versions to accept it",
			pair.Old, pair.New, ref,
		))
		return nil
	}

	rawDeps, err := d.brew.Deps(ctx, ref.String())
	if err != nil {
		if ctx.Err() != nil {
			return interrupted(ref)
		}
		return zerr.Wrap(err, "dependency lookup failed")
	}

	deps := make([]domain.FormulaRef, 0, len(rawDeps))
	for _, raw := range rawDeps {
		dep, err := domain.ParseFormulaRef(raw)
		if err != nil {
			return zerr.Wrap(err, "unexpected dependency reference from package manager")
		}
		if ws.Contains(dep) {
			deps = append(deps, dep)
		}
	}

	d.logger.Info(fmt.Sprintf("%s: %s ==> %s", ref, pair.Old, pair.New))

	if mu != nil {
		mu.Lock()
		defer mu.Unlock()
	}
	set.Record(ref, pair, deps)
	return nil
}

// interrupted names the formula that was in flight when the run was
// cancelled, keeping ErrInterrupted in the unwrap chain.
func interrupted(ref domain.FormulaRef) error {
	err := zerr.Wrap(domain.ErrInterrupted, "update check cancelled")
	return zerr.With(err, "formula", ref.String())
}
