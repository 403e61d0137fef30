// Package parse implements the single-notification parse command.
package parse

import (
	"encoding/json"
	"fmt"

	"brnotif/notif-parse/cmd/root"
	"brnotif/notif-parse/internal/engine"
	"brnotif/notif-parse/internal/models"

	"github.com/spf13/cobra"
)

var (
	packageID  string
	title      string
	body       string
	jsonOutput bool
)

// Cmd is the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a single notification",
	Long: `Parse one notification given its package identifier, title and body,
and print the extracted fields. Parsing is best-effort and never fails;
the confidence field reports how specific the matching rule was.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&packageID, "package", "p", "", "Package identifier of the emitting app")
	Cmd.Flags().StringVarP(&title, "title", "t", "", "Notification title")
	Cmd.Flags().StringVarP(&body, "body", "b", "", "Notification body")
	Cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	_ = Cmd.MarkFlagRequired("package")
}

func run(cmd *cobra.Command, args []string) error {
	raw := models.RawNotification{
		Package: packageID,
		Title:   title,
		Body:    body,
	}

	if !engine.IsSupportedPackage(raw.Package) {
		root.Log.WithField("package", raw.Package).Debug("Unknown package, using generic extraction")
	}

	parsed := engine.Parse(raw)

	if jsonOutput {
		out, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("Vendor:      %s\n", root.Cfg.VendorName(raw.Package))
	cmd.Printf("Amount:      %s\n", orNone(parsed.AmountString()))
	cmd.Printf("Merchant:    %s\n", orNone(parsed.Merchant))
	cmd.Printf("Card:        %s\n", orNone(parsed.CardLastFour))
	cmd.Printf("Type:        %s\n", parsed.Type)
	cmd.Printf("Confidence:  %.2f\n", parsed.Confidence)
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
