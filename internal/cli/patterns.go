package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasnoah/nodediag/internal/catalog"
	"github.com/lucasnoah/nodediag/internal/engine"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the classification rules in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := engine.Default()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-5s %-28s %s\n", "ORDER", "PATTERN", "SUMMARY")
			for i, id := range eng.Classifier().Patterns() {
				entry := eng.Catalog().Lookup(string(id))
				fmt.Fprintf(w, "%-5d %-28s %s\n", i+1, id, entry.Summary)
			}
			fmt.Fprintf(w, "%-5s %-28s %s\n", "-", catalog.GenericID, eng.Catalog().Lookup(catalog.GenericID).Summary)
			return nil
		},
	}
}
