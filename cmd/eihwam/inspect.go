package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshunov/usyd-eihwam-calculator/internal/convert"
	"github.com/joshunov/usyd-eihwam-calculator/internal/parse"
	"github.com/joshunov/usyd-eihwam-calculator/internal/rules"
	"github.com/joshunov/usyd-eihwam-calculator/internal/weights"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <transcript>",
	Short: "Show extraction and rule diagnostics for a transcript",
	Long: `Inspect reports how each extraction strategy fares on a transcript and
what the rules decide for every unit. Use it to diagnose layout drift when
calculate finds fewer units than expected.`,
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

		w := cmd.OutOrStdout()

		strict := parse.ExtractStrict(text, thesis)
		flexible := parse.ExtractFlexible(text, thesis)
		fmt.Fprintf(w, "strict extractor:   %d units\n", len(strict))
		fmt.Fprintf(w, "flexible extractor: %d units\n", len(flexible))

		units := strict
		if len(units) == 0 {
			fmt.Fprintln(w, "strict pattern found nothing; flexible results are used")
			units = flexible
		}

		units = rules.Apply(units)
		units = weights.Assign(units)

		for _, u := range units {
			status := "included"
			if !u.Included {
				status = "excluded: " + u.ExclusionReason
			}
			fmt.Fprintf(w, "  %s  mark=%-3s grade=%-4s cp=%-3s level=%d weight=%d/%d  %s\n",
				u.Code, optStr(u.Mark), u.Grade, optStr(u.CreditPoints),
				u.Level, u.Weight, u.WAMWeight, status)
		}

		return nil
	},
}

func optStr(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}

func init() {
	inspectCmd.Flags().String("backend", "", "conversion backend: pdftotext or container")

	rootCmd.AddCommand(inspectCmd)
}
