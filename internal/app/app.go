// Package app implements the application layer for tapplan.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/tapplan/internal/core/domain"
	"go.trai.ch/tapplan/internal/core/ports"
	"go.trai.ch/tapplan/internal/engine/detector"
	"go.trai.ch/tapplan/internal/engine/report"
	"go.trai.ch/tapplan/internal/engine/resolver"
	"go.trai.ch/tapplan/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	brew   ports.Homebrew
	logger ports.Logger
	logCfg ports.LogConfigurer
	out    io.Writer
}

// New creates a new App instance writing reports to stdout.
func New(brew ports.Homebrew, logger ports.Logger, logCfg ports.LogConfigurer) *App {
	return &App{
		brew:   brew,
		logger: logger,
		logCfg: logCfg,
		out:    os.Stdout,
	}
}

// WithOutput redirects the report output.
// This is primarily used for testing.
func (a *App) WithOutput(out io.Writer) *App {
	a.out = out
	return a
}

// PlanOptions configuration for the Plan method.
type PlanOptions struct {
	All         bool
	Skip        []string
	RawVersions bool
	Strict      bool
	Jobs        int
	Verbose     int
	Quiet       int
	Debug       bool
	LogFile     string
}

// Plan runs the full pipeline over the given tokens: resolve the working
// set, expand it with build- and test-time dependencies, detect updates,
// order the outdated formulae into batches, and render the report.
func (a *App) Plan(ctx context.Context, tokens []string, opts PlanOptions) error {
	if err := a.logCfg.Configure(ports.LogConfig{
		Verbose:  opts.Verbose,
		Quiet:    opts.Quiet,
		Debug:    opts.Debug,
		FilePath: opts.LogFile,
	}); err != nil {
		return zerr.Wrap(err, "failed to configure logging")
	}

	skip := domain.NewSkipList(opts.Skip)
	res := resolver.New(a.brew, a.logger)

	ws, scope, err := res.Resolve(ctx, tokens, skip, opts.All)
	if err != nil {
		return err
	}
	if ws.Len() == 0 {
		a.logger.Info("no formulae to process")
		_, err := fmt.Fprintln(a.out, "Nothing to update.")
		return err
	}

	if err := res.Expand(ctx, ws, scope, opts.All); err != nil {
		return err
	}

	set, err := detector.New(a.brew, a.logger).Check(ctx, ws, skip, detector.Options{
		RawVersions: opts.RawVersions,
		Jobs:        opts.Jobs,
	})
	if err != nil {
		return err
	}

	items := set.Outdated()

	var batches []domain.Batch
	if opts.Strict {
		batches, err = scheduler.PlanStrict(items)
		if err != nil {
			return err
		}
	} else {
		if scheduler.Blocked(items) {
			a.logger.Warn(
				"every outdated formula depends on another outdated one, the dependency graph may be cyclic",
			)
		}
		batches = scheduler.Plan(items)
	}

	return report.New(a.out, a.logger).Render(ws, items, batches)
}
