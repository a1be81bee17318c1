package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucasnoah/nodediag/internal/engine"
	"github.com/lucasnoah/nodediag/internal/logging"
)

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [file|-]",
		Short: "Diagnose saved stderr output without running anything",
		Long: `Read diagnostic text from a file (or stdin when the argument is "-" or
missing) and print the same report run would print for it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			exitCode, _ := cmd.Flags().GetInt("exit-code")
			log := logging.New(cmd.ErrOrStderr(), cfg.Debug)
			defer func() { _ = log.Sync() }()

			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			eng, err := engine.Default()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			var d *engine.Diagnosis
			if strings.TrimSpace(raw) != "" {
				diag := eng.Diagnose(raw)
				d = &diag
			}
			return writeDiagnosis(cmd.OutOrStdout(), cfg, d, exitCode, log)
		},
	}
	cmd.Flags().Int("exit-code", 1, "Exit code to show in the report")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
