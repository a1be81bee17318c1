package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucasnoah/nodediag/internal/config"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

// ExitError carries the exit code nodediag should terminate with. Err is
// printed by main when set; a nil Err means the report was already written.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// usageExitCode is returned for bad flags, arguments or configuration.
const usageExitCode = 2

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nodediag [flags] <script> [args...]",
		Short: "Run a Node.js program and diagnose its crash",
		Long: `nodediag runs a script under node, relays its output untouched and, when
the program exits non-zero, explains the crash: error kind, crime-scene
location, system error code and how to fix it.

The child's exit code is always passed through.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runScript(cmd, args)
		},
	}
	// everything after the script name belongs to the script
	root.Flags().SetInterspersed(false)

	pf := root.PersistentFlags()
	pf.String("interpreter", "", "Interpreter binary (default \"node\", env "+config.EnvInterpreter+")")
	pf.String("format", "", "Report format: text or json (env "+config.EnvFormat+")")
	pf.String("color", "", "Colorize the report: auto, always or never (env "+config.EnvColor+")")
	pf.Bool("debug", false, "Log supervisor and classifier decisions to stderr")

	root.AddCommand(newRunCmd())
	root.AddCommand(newExplainCmd())
	root.AddCommand(newPatternsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

// resolveConfig layers flags over the environment over defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, &ExitError{Code: usageExitCode, Err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("interpreter") {
		cfg.Interpreter, _ = flags.GetString("interpreter")
	}
	if flags.Changed("format") {
		f, _ := flags.GetString("format")
		cfg.Format = strings.ToLower(f)
	}
	if flags.Changed("color") {
		c, _ := flags.GetString("color")
		cfg.Color = strings.ToLower(c)
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return cfg, &ExitError{Code: usageExitCode, Err: fmt.Errorf("invalid configuration: %w", errors.Join(joined...))}
	}
	return cfg, nil
}
