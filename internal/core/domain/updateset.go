package domain

import (
	"cmp"
	"slices"
)

// UpdateSet collects the results of update detection: one VersionPair and
// one scope-filtered dependency list per outdated formula. Entries are
// written once during detection and never mutated afterwards.
type UpdateSet struct {
	pairs map[FormulaRef]VersionPair
	deps  map[FormulaRef][]FormulaRef
}

// NewUpdateSet creates an empty UpdateSet.
func NewUpdateSet() *UpdateSet {
	return &UpdateSet{
		pairs: make(map[FormulaRef]VersionPair),
		deps:  make(map[FormulaRef][]FormulaRef),
	}
}

// Record stores the detected versions and dependency list for a formula.
func (u *UpdateSet) Record(ref FormulaRef, pair VersionPair, deps []FormulaRef) {
	u.pairs[ref] = pair
	u.deps[ref] = deps
}

// Has reports whether an update was recorded for the formula.
func (u *UpdateSet) Has(ref FormulaRef) bool {
	_, ok := u.pairs[ref]
	return ok
}

// Versions returns the recorded version pair for a formula.
func (u *UpdateSet) Versions(ref FormulaRef) (VersionPair, bool) {
	p, ok := u.pairs[ref]
	return p, ok
}

// Len returns the number of outdated formulae.
func (u *UpdateSet) Len() int {
	return len(u.pairs)
}

// OutdatedFormula pairs an outdated formula with the subset of its
// dependencies that are themselves outdated. This is the planner's input.
type OutdatedFormula struct {
	Ref          FormulaRef
	Versions     VersionPair
	OutdatedDeps []FormulaRef
}

// Outdated derives the outdated-dependency view: for every formula with a
// recorded update, its dependency list restricted to formulae that also have
// one. The result is sorted by ascending outdated-dependency count, names
// breaking ties, the same order the planner fills batches in.
func (u *UpdateSet) Outdated() []OutdatedFormula {
	out := make([]OutdatedFormula, 0, len(u.pairs))
	for ref, pair := range u.pairs {
		var outdated []FormulaRef
		for _, dep := range u.deps[ref] {
			if _, ok := u.pairs[dep]; ok {
				outdated = append(outdated, dep)
			}
		}
		out = append(out, OutdatedFormula{Ref: ref, Versions: pair, OutdatedDeps: outdated})
	}
	slices.SortFunc(out, func(a, b OutdatedFormula) int {
		if c := cmp.Compare(len(a.OutdatedDeps), len(b.OutdatedDeps)); c != 0 {
			return c
		}
		return cmp.Compare(a.Ref.String(), b.Ref.String())
	})
	return out
}

// Batch is one group of formulae that can be updated together once all
// preceding batches have been applied. Indices start at 1.
type Batch struct {
	Index    int
	Formulae []FormulaRef
}
