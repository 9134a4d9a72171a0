package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ksalhi/refview/internal/config"
	"github.com/ksalhi/refview/internal/refdoc"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch and validate the reference document",
	Long: `Fetches the configured document, normalizes it, and prints a summary.
Exits non-zero if the document cannot be fetched or parsed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger := newLogger()

		loader := refdoc.NewLoader(time.Duration(cfg.FetchTimeoutSeconds)*time.Second, logger)
		doc, err := loader.Load(cmd.Context(), cfg.Source)
		if err != nil {
			return fmt.Errorf("document check failed: %w", err)
		}

		fmt.Printf("Document OK: %d classes, %d modules, %d members\n",
			len(doc.Classes), len(doc.Modules), doc.MemberCount())

		if dups := doc.DuplicateMembers(); len(dups) > 0 {
			fmt.Printf("Warning: %d duplicate member names (first definition wins):\n", len(dups))
			for _, d := range dups {
				fmt.Printf("  %s\n", d)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
