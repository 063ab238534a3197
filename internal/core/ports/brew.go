// Package ports defines the core interfaces for the application.
package ports

import "context"

// Homebrew is the narrow surface of the external package manager the
// pipeline depends on. Every method blocks until the underlying tool has
// exited and its output has been read in full; failures are terminal for
// the run because a partially trusted dataset would invalidate batching.
//
//go:generate go run go.uber.org/mock/mockgen -source=brew.go -destination=mocks/mock_brew.go -package=mocks
type Homebrew interface {
	// Taps lists the names of all locally known taps.
	Taps(ctx context.Context) ([]string, error)

	// TapPath resolves a tap name to its repository location on disk.
	TapPath(ctx context.Context, tap string) (string, error)

	// FormulaPath resolves a formula reference to its description file.
	FormulaPath(ctx context.Context, formula string) (string, error)

	// Deps returns the build- and test-time dependencies of one formula,
	// fully qualified where the tool reports them that way.
	Deps(ctx context.Context, formula string) ([]string, error)

	// DepsUnion returns the deduplicated union of build- and test-time
	// dependencies over many formulae.
	DepsUnion(ctx context.Context, formulae []string) ([]string, error)

	// Livecheck reports whether a newer upstream version exists. An empty
	// string means the formula is up to date; any other text follows the
	// "<noise> : <old> ==> <new>" contract or is unparseable.
	Livecheck(ctx context.Context, formula string) (string, error)
}
