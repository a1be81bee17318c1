package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lucasnoah/nodediag/internal/engine"
	"github.com/lucasnoah/nodediag/internal/logging"
	"github.com/lucasnoah/nodediag/internal/supervisor"
)

// startFailureExitCode matches the shell's "command not found".
const startFailureExitCode = 127

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script> [args...]",
		Short: "Run a script and diagnose it if it fails",
		Long: `Run a script under the interpreter. Stdout is relayed as it arrives, stderr
is held back; on a non-zero exit it is diagnosed instead of printed. The
script's exit code is passed through.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	errOut := cmd.ErrOrStderr()
	log := logging.New(errOut, cfg.Debug)
	defer func() { _ = log.Sync() }()

	eng, err := engine.Default()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	// Ctrl-C reaches the whole process group; let the child decide how to
	// exit and report its code instead of dying first.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	launcher := &supervisor.ExecLauncher{Stdin: cmd.InOrStdin(), Log: log}
	sup := supervisor.New(launcher, cmd.OutOrStdout(), log)
	outcome, err := sup.Run(cmd.Context(), supervisor.Target{
		Interpreter: cfg.Interpreter,
		Script:      args[0],
		Args:        args[1:],
	})
	if err != nil {
		return &ExitError{Code: startFailureExitCode, Err: err}
	}
	log.Debug("run finished", zap.Stringer("state", outcome.State), zap.Int("exit_code", outcome.ExitCode))

	if outcome.State == supervisor.Succeeded {
		return nil
	}

	var d *engine.Diagnosis
	if outcome.HasDetails() {
		diag := eng.Diagnose(outcome.Stderr)
		d = &diag
	}
	if err := writeDiagnosis(errOut, cfg, d, outcome.ExitCode, log); err != nil {
		log.Debug("render failed", zap.Error(err))
	}
	return &ExitError{Code: outcome.ExitCode}
}
