package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/tapplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Expand grows the working set with every build- and test-time dependency
// reachable from it. Unless allTaps is set, dependencies outside the tap
// scope are discarded. Each surviving dependency gets its description file
// location resolved and recorded; a location that conflicts with an earlier
// record fails the run.
func (r *Resolver) Expand(
	ctx context.Context,
	ws *domain.WorkingSet,
	tap string,
	allTaps bool,
) error {
	if ws.Len() == 0 {
		return nil
	}

	r.logger.Info("obtaining dependencies (including those necessary for building and testing)")

	names := make([]string, 0, ws.Len())
	for _, ref := range ws.Refs() {
		names = append(names, ref.String())
	}

	raw, err := r.brew.DepsUnion(ctx, names)
	if err != nil {
		return err
	}

	var extra []domain.FormulaRef
	for _, dep := range raw {
		ref, err := domain.ParseFormulaRef(dep)
		if err != nil {
			return zerr.Wrap(err, "unexpected dependency reference from package manager")
		}
		if ws.Contains(ref) {
			continue
		}
		if !allTaps && ref.Tap != tap {
			continue
		}
		extra = append(extra, ref)
	}

	r.logger.Info(fmt.Sprintf("adding %d build- and test-time dependencies", len(extra)))

	for _, ref := range extra {
		r.logger.Debug("  " + ref.String())

		path, err := r.brew.FormulaPath(ctx, ref.String())
		if err != nil {
			return zerr.Wrap(err, domain.ErrResolution.Error())
		}
		if err := ws.RecordPath(ref, path); err != nil {
			return err
		}
		ws.Add(ref)
	}

	return nil
}
