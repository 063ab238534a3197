// Package scheduler partitions outdated formulae into an ordered sequence
// of update batches.
package scheduler

import (
	"cmp"
	"slices"

	"go.trai.ch/tapplan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Plan orders the outdated formulae into batches. Formulae are visited by
// ascending outdated-dependency count, names breaking ties. A formula joins
// the batch currently being filled unless one of its outdated dependencies
// is already in it; then it opens the next batch. Updating a whole batch is
// safe once every batch before it has been applied.
func Plan(items []domain.OutdatedFormula) []domain.Batch {
	ordered := sortItems(items)

	var batches []domain.Batch
	var current map[domain.FormulaRef]struct{}

	for _, item := range ordered {
		if current != nil && !anyIn(item.OutdatedDeps, current) {
			last := len(batches) - 1
			batches[last].Formulae = append(batches[last].Formulae, item.Ref)
			current[item.Ref] = struct{}{}
			continue
		}
		current = map[domain.FormulaRef]struct{}{item.Ref: {}}
		batches = append(batches, domain.Batch{
			Index:    len(batches) + 1,
			Formulae: []domain.FormulaRef{item.Ref},
		})
	}
	return batches
}

// Blocked reports whether every outdated formula waits on at least one
// other outdated formula. That shape points at a cyclic or inconsistent
// dependency set; the plan is still produced, but deserves a closer look.
func Blocked(items []domain.OutdatedFormula) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if len(item.OutdatedDeps) == 0 {
			return false
		}
	}
	return true
}

// PlanStrict layers the outdated formulae so that every outdated dependency
// of a formula sits in a strictly earlier batch, not merely outside the
// current one. Unlike Plan it refuses cyclic inputs.
func PlanStrict(items []domain.OutdatedFormula) ([]domain.Batch, error) {
	ordered := sortItems(items)

	pending := make(map[domain.FormulaRef][]domain.FormulaRef, len(ordered))
	for _, item := range ordered {
		pending[item.Ref] = item.OutdatedDeps
	}

	placed := make(map[domain.FormulaRef]struct{}, len(ordered))
	var batches []domain.Batch

	for len(placed) < len(ordered) {
		var ready []domain.FormulaRef
		for _, item := range ordered {
			if _, done := placed[item.Ref]; done {
				continue
			}
			if allIn(pending[item.Ref], placed) {
				ready = append(ready, item.Ref)
			}
		}
		if len(ready) == 0 {
			var stuck []string
			for _, item := range ordered {
				if _, done := placed[item.Ref]; !done {
					stuck = append(stuck, item.Ref.String())
				}
			}
			err := zerr.Wrap(domain.ErrDependencyCycle, "no formula has all dependencies placed")
			return nil, zerr.With(err, "formulae", stuck)
		}

		batches = append(batches, domain.Batch{Index: len(batches) + 1, Formulae: ready})
		for _, ref := range ready {
			placed[ref] = struct{}{}
		}
	}
	return batches, nil
}

func sortItems(items []domain.OutdatedFormula) []domain.OutdatedFormula {
	ordered := slices.Clone(items)
	slices.SortFunc(ordered, func(a, b domain.OutdatedFormula) int {
		if c := cmp.Compare(len(a.OutdatedDeps), len(b.OutdatedDeps)); c != 0 {
			return c
		}
		return cmp.Compare(a.Ref.String(), b.Ref.String())
	})
	return ordered
}

func anyIn(refs []domain.FormulaRef, set map[domain.FormulaRef]struct{}) bool {
	for _, ref := range refs {
		if _, ok := set[ref]; ok {
			return true
		}
	}
	return false
}

func allIn(refs []domain.FormulaRef, set map[domain.FormulaRef]struct{}) bool {
	for _, ref := range refs {
		if _, ok := set[ref]; !ok {
			return false
		}
	}
	return true
}
