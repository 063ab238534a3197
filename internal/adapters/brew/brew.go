package brew

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/tapplan/internal/core/ports"
	"go.trai.ch/zerr"
)

// depsChunkSize limits how many formulae a single union dependency query
// names. brew accepts long argument lists, but keeping invocations small
// bounds the cost of re-running one after a transient tool failure.
const depsChunkSize = 5

var depsArgs = []string{"deps", "--include-build", "--include-test", "--full-name"}

// Brew implements ports.Homebrew by invoking brew through a CommandRunner.
type Brew struct {
	runner ports.CommandRunner
}

// New creates a Brew adapter on top of the given runner.
func New(runner ports.CommandRunner) *Brew {
	return &Brew{runner: runner}
}

// Taps lists all locally known taps via `brew tap`.
func (b *Brew) Taps(ctx context.Context) ([]string, error) {
	out, err := b.runner.Run(ctx, "brew", "tap")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list taps")
	}
	return strings.Fields(out), nil
}

// TapPath resolves a tap to its repository directory via `brew --repo`.
func (b *Brew) TapPath(ctx context.Context, tap string) (string, error) {
	out, err := b.runner.Run(ctx, "brew", "--repo", tap)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to locate tap"), "tap", tap)
	}
	return strings.TrimSpace(out), nil
}

// FormulaPath resolves a formula reference to its description file via
// `brew formula`.
func (b *Brew) FormulaPath(ctx context.Context, formula string) (string, error) {
	out, err := b.runner.Run(ctx, "brew", "formula", formula)
	if err != nil {
		return "", zerr.With(err, "formula", formula)
	}
	return strings.TrimSpace(out), nil
}

// Deps returns the build- and test-time dependencies of a single formula.
func (b *Brew) Deps(ctx context.Context, formula string) ([]string, error) {
	args := append(slices.Clone(depsArgs), formula)
	out, err := b.runner.Run(ctx, "brew", args...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list dependencies"), "formula", formula)
	}
	return strings.Fields(out), nil
}

// DepsUnion returns the deduplicated union of build- and test-time
// dependencies over all given formulae, querying in fixed-size chunks.
func (b *Brew) DepsUnion(ctx context.Context, formulae []string) ([]string, error) {
	seen := make(map[string]struct{})
	var union []string

	for chunk := range slices.Chunk(formulae, depsChunkSize) {
		args := append(slices.Clone(depsArgs), "--union")
		args = append(args, chunk...)

		out, err := b.runner.Run(ctx, "brew", args...)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to list dependency union")
		}

		for _, dep := range strings.Fields(out) {
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			union = append(union, dep)
		}
	}

	slices.Sort(union)
	return union, nil
}

// Livecheck queries `brew livecheck -n` for a pending upstream version.
// The trimmed stdout is returned verbatim; interpreting it is the update
// detector's job.
func (b *Brew) Livecheck(ctx context.Context, formula string) (string, error) {
	out, err := b.runner.Run(ctx, "brew", "livecheck", "-n", formula)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "update check failed"), "formula", formula)
	}
	return strings.TrimSpace(out), nil
}
