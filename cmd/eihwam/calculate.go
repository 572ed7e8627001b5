package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/joshunov/usyd-eihwam-calculator/internal/convert"
	"github.com/joshunov/usyd-eihwam-calculator/internal/pipeline"
	"github.com/joshunov/usyd-eihwam-calculator/internal/report"
	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate <transcript>",
	Short: "Parse a transcript and compute the EIHWAM, WAM, and honours class",
	Long: `Calculate runs the full pipeline over one transcript: text extraction,
unit parsing, EIHWAM inclusion rules, weighting, and the two weighted
averages. PDF input is converted with the selected backend; plain-text
input is used as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		thesis, err := thesisSet(cmd)
		if err != nil {
			return err
		}

		conv, err := newConverter(cmd)
		if err != nil {
			return err
		}

		text, err := convert.ReadTranscript(conv, args[0])
		if err != nil {
			return err
		}

		result := pipeline.Run(text, thesis)

		showExcluded, _ := cmd.Flags().GetBool("show-excluded")
		includedOnly, _ := cmd.Flags().GetBool("included-only")
		report.Write(cmd.OutOrStdout(), result, report.Options{
			ShowExcluded: showExcluded,
			IncludedOnly: includedOnly,
		})

		if out, _ := cmd.Flags().GetString("output"); out != "" {
			if err := writeResult(out, result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Result written to %s\n", out)
		}

		return nil
	},
}

func init() {
	calculateCmd.Flags().String("backend", "", "conversion backend: pdftotext or container")
	calculateCmd.Flags().Bool("show-excluded", false, "include excluded units in the table")
	calculateCmd.Flags().Bool("included-only", false, "show only units counted in the EIHWAM")
	calculateCmd.Flags().String("output", "", "write the full result to a YAML file")

	rootCmd.AddCommand(calculateCmd)
}

// writeResult marshals the result to a YAML file.
func writeResult(path string, result types.Result) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
