package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ksalhi/refview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize refview configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the document source and viewer options, and writes a .refview.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
