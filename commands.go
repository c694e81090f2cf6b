package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atomicstack/persona-picker/internal/app"
	"github.com/atomicstack/persona-picker/internal/config"
	"github.com/atomicstack/persona-picker/internal/logging"
	"github.com/atomicstack/persona-picker/internal/logging/events"
	"github.com/atomicstack/persona-picker/internal/persona"
)

// configError marks failures that exit with status 2.
type configError struct {
	err error
}

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

type runner func(cfg app.Config, action app.Action) error

// newRootCommand builds the command tree. run executes the chosen action;
// main passes app.Run.
func newRootCommand(args, environ []string, run runner) *cobra.Command {
	var runtimeCfg config.Config

	root := &cobra.Command{
		Use:           "persona-picker",
		Short:         "Build fictitious persona profiles from a local catalog",
		Long:          app.Info,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts := config.Bind(root.PersistentFlags(), environ)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err}
	})
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := opts.Config(args)
		if err != nil {
			return configError{err}
		}
		runtimeCfg = cfg
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		traceStartup(cfg)
		return nil
	}

	action := func(fn func(*app.App, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, cmdArgs []string) error {
			events.App.Command(cmd.Name(), cmdArgs)
			return run(runtimeCfg.App, func(a *app.App) error { return fn(a, cmdArgs) })
		}
	}
	root.RunE = action(func(a *app.App, _ []string) error { return a.Menu() })

	var level int
	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random persona and offer to save it",
		Args:  cobra.NoArgs,
		RunE: action(func(a *app.App, _ []string) error {
			detail := persona.Detail(level)
			if level != 0 && !detail.Valid() {
				return fmt.Errorf("level must be between 1 and %d (got %d)", persona.DetailFull, level)
			}
			return a.Random(detail)
		}),
	}
	randomCmd.Flags().IntVar(&level, "level", 0, "detail level 1-4 (0 asks)")

	var asJSON bool
	exportCmd := &cobra.Command{
		Use:   "export NAME",
		Short: "Export a saved persona as text, or as timestamped JSON",
		Args:  cobra.ExactArgs(1),
		RunE: action(func(a *app.App, cmdArgs []string) error {
			return a.Export(cmdArgs[0], asJSON)
		}),
	}
	exportCmd.Flags().BoolVar(&asJSON, "json", false, "write a timestamped JSON copy instead of the text report")

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved persona and its text export",
		Args:  cobra.ExactArgs(1),
		RunE: action(func(a *app.App, cmdArgs []string) error {
			return a.Delete(cmdArgs[0], yes)
		}),
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")

	root.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Create a persona step by step",
			Args:  cobra.NoArgs,
			RunE:  action(func(a *app.App, _ []string) error { return a.Create() }),
		},
		randomCmd,
		&cobra.Command{
			Use:   "list",
			Short: "List saved personas",
			Args:  cobra.NoArgs,
			RunE:  action(func(a *app.App, _ []string) error { return a.List() }),
		},
		&cobra.Command{
			Use:   "show NAME",
			Short: "Preview a saved persona",
			Args:  cobra.ExactArgs(1),
			RunE:  action(func(a *app.App, cmdArgs []string) error { return a.Show(cmdArgs[0]) }),
		},
		&cobra.Command{
			Use:   "edit NAME",
			Short: "Edit the fields of a saved persona",
			Args:  cobra.ExactArgs(1),
			RunE:  action(func(a *app.App, cmdArgs []string) error { return a.Edit(cmdArgs[0]) }),
		},
		exportCmd,
		deleteCmd,
		&cobra.Command{
			Use:   "counts",
			Short: "Rebuild the name count cache shown next to nationalities",
			Args:  cobra.NoArgs,
			RunE:  action(func(a *app.App, _ []string) error { return a.Counts() }),
		},
		&cobra.Command{
			Use:   "info",
			Short: "Show program information",
			Args:  cobra.NoArgs,
			RunE:  action(func(a *app.App, _ []string) error { return a.Info() }),
		},
	)
	return root
}

// exitCode maps an execution error to the process status.
func exitCode(err error) int {
	var cfgErr configError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &cfgErr):
		return 2
	default:
		return 1
	}
}
