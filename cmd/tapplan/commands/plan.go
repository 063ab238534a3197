package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tapplan/internal/adapters/config"
	"go.trai.ch/tapplan/internal/app"
)

const defaultLogFile = "tap_updater.log"

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [taps or formulae...]",
		Short: "Compute update batches for the given taps or formulae",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			cfg, err := config.Load(".")
			if err != nil {
				return err
			}

			flags := cmd.Flags()

			all, _ := flags.GetBool("all")
			if !flags.Changed("all") {
				all = cfg.All
			}
			skip, _ := flags.GetStringSlice("skip")
			if !flags.Changed("skip") && len(cfg.Skip) > 0 {
				skip = cfg.Skip
			}
			rawVersions, _ := flags.GetBool("raw-versions")
			if !flags.Changed("raw-versions") {
				rawVersions = cfg.RawVersions
			}
			strict, _ := flags.GetBool("strict")
			if !flags.Changed("strict") {
				strict = cfg.Strict
			}
			jobs, _ := flags.GetInt("jobs")
			if !flags.Changed("jobs") && cfg.Jobs > 0 {
				jobs = cfg.Jobs
			}
			logFile, _ := flags.GetString("log-file")
			if !flags.Changed("log-file") && cfg.LogFile != "" {
				logFile = cfg.LogFile
			}

			verbose, _ := flags.GetCount("verbose")
			quiet, _ := flags.GetCount("quiet")
			debug, _ := flags.GetBool("debug")

			return c.app.Plan(cmd.Context(), args, app.PlanOptions{
				All:         all,
				Skip:        skip,
				RawVersions: rawVersions,
				Strict:      strict,
				Jobs:        jobs,
				Verbose:     verbose,
				Quiet:       quiet,
				Debug:       debug,
				LogFile:     logFile,
			})
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Allow formulae from any tap instead of a single tap scope")
	cmd.Flags().StringSliceP("skip", "s", nil, "Formulae to leave untouched")
	cmd.Flags().Bool("raw-versions", false, "Accept any new version string, bypassing the stability heuristic")
	cmd.Flags().Bool("strict", false, "Layer batches so dependencies always sit in strictly earlier batches")
	cmd.Flags().IntP("jobs", "j", 1, "Number of concurrent upstream version checks")
	cmd.Flags().String("log-file", defaultLogFile, "File receiving the full run log")
	cmd.Flags().CountP("verbose", "v", "Increase console log verbosity")
	cmd.Flags().CountP("quiet", "q", "Decrease console log verbosity")
	cmd.Flags().BoolP("debug", "d", false, "Enable debug logging")
	return cmd
}
