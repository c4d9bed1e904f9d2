package cmd

import (
	"fmt"

	"iban-gen/internal/engine"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the registry and list what would be generated",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}

		records, _, err := loadRecords(cfg)
		if err != nil {
			return err
		}

		sum, err := engine.Build(records, cfg.BuildOptions())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Registry %s\n", cfg.Input.Path)
		i := 0
		for e := range sum.Registry.All() {
			i++
			sepa := "-"
			if e.SEPA {
				sepa = "SEPA"
			}
			fmt.Fprintf(out, "[%02d] %s %3d %-4s %s\n", i, e.CountryCode, e.Length, sepa, e.Pattern)
		}
		fmt.Fprintln(out, "--------------------------------------------------")
		fmt.Fprintf(out, "Countries: %d (records: %d, header rows: %d, duplicates: %d)\n",
			sum.Registry.Len(), sum.Records, sum.HeaderRows, sum.Duplicates)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
