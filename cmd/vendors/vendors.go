// Package vendors implements the supported-vendor listing command.
package vendors

import (
	"brnotif/notif-parse/cmd/root"
	"brnotif/notif-parse/internal/config"
	vendortable "brnotif/notif-parse/internal/vendors"

	"github.com/spf13/cobra"
)

var namesFile string

// Cmd is the vendors command
var Cmd = &cobra.Command{
	Use:   "vendors",
	Short: "List supported package identifiers",
	Long:  `List the package identifiers the engine has vendor-specific rules for, with their display names.`,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVar(&namesFile, "names", "", "YAML file of package-id to display-name overrides")
}

func run(cmd *cobra.Command, args []string) error {
	if root.Cfg == nil {
		root.Cfg = &config.Config{}
	}
	if namesFile != "" {
		if err := root.Cfg.LoadVendorNames(namesFile); err != nil {
			return err
		}
	}

	for _, pkg := range vendortable.Packages() {
		cmd.Printf("%-26s %s\n", pkg, root.Cfg.VendorName(pkg))
	}
	return nil
}
