package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidReference is returned when a formula token has a slash count
	// that cannot be interpreted as either a bare or a fully qualified name.
	ErrInvalidReference = zerr.New("invalid formula reference")

	// ErrCrossTap is returned when the requested formulae span more than one
	// tap and all-taps mode was not requested.
	ErrCrossTap = zerr.New("cannot process formulae from different taps, consider using --all")

	// ErrResolution is returned when the package manager cannot resolve a
	// formula reference to its description file.
	ErrResolution = zerr.New("failed to resolve formula")

	// ErrLocationConflict is returned when a formula resolves to a location
	// that differs from one recorded earlier in the same run.
	ErrLocationConflict = zerr.New("formula location conflict")

	// ErrInterrupted is returned when the user cancels the run while a
	// formula is being processed.
	ErrInterrupted = zerr.New("interrupted")

	// ErrDependencyCycle is returned by strict planning when the outdated
	// dependency graph cannot be layered.
	ErrDependencyCycle = zerr.New("cycle in outdated dependency graph")
)
