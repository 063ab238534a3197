package domain

import (
	"cmp"
	"slices"

	"go.trai.ch/zerr"
)

// WorkingSet accumulates the formulae under analysis together with the
// location of each formula's description file. It only grows: the resolver
// seeds it from user tokens and the expander adds transitive dependencies.
type WorkingSet struct {
	refs  map[FormulaRef]struct{}
	paths map[FormulaRef]string
}

// NewWorkingSet creates an empty WorkingSet.
func NewWorkingSet() *WorkingSet {
	return &WorkingSet{
		refs:  make(map[FormulaRef]struct{}),
		paths: make(map[FormulaRef]string),
	}
}

// Add inserts a formula into the set. Adding an existing member is a no-op.
func (ws *WorkingSet) Add(ref FormulaRef) {
	ws.refs[ref] = struct{}{}
}

// Contains reports whether the formula is a member of the set.
func (ws *WorkingSet) Contains(ref FormulaRef) bool {
	_, ok := ws.refs[ref]
	return ok
}

// Len returns the number of formulae in the set.
func (ws *WorkingSet) Len() int {
	return len(ws.refs)
}

// Refs returns the members sorted by fully qualified name, so every stage
// downstream of the resolver iterates in a reproducible order.
func (ws *WorkingSet) Refs() []FormulaRef {
	refs := make([]FormulaRef, 0, len(ws.refs))
	for ref := range ws.refs {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, func(a, b FormulaRef) int {
		return cmp.Compare(a.String(), b.String())
	})
	return refs
}

// RecordPath stores the description file location for a formula. A formula
// must map to exactly one location for the duration of a run; recording a
// different path for a known formula fails with ErrLocationConflict.
func (ws *WorkingSet) RecordPath(ref FormulaRef, path string) error {
	if old, ok := ws.paths[ref]; ok && old != path {
		err := zerr.Wrap(ErrLocationConflict, "formula already resolved to another location")
		err = zerr.With(err, "formula", ref.String())
		err = zerr.With(err, "old_location", old)
		return zerr.With(err, "new_location", path)
	}
	ws.paths[ref] = path
	return nil
}

// Path returns the recorded description file location for a formula.
func (ws *WorkingSet) Path(ref FormulaRef) (string, bool) {
	p, ok := ws.paths[ref]
	return p, ok
}
