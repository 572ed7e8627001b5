package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshunov/usyd-eihwam-calculator/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <transcript.pdf>",
	Short: "Extract the raw text of a transcript PDF",
	Long: `Convert runs only the text-extraction stage and prints the raw text the
unit parser would see. Useful for checking what a backend makes of a
transcript before calculating.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := newConverter(cmd)
		if err != nil {
			return err
		}

		text, err := convert.ReadTranscript(conv, args[0])
		if err != nil {
			return err
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Text written to %s\n", out)
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	convertCmd.Flags().String("backend", "", "conversion backend: pdftotext or container")
	convertCmd.Flags().String("out", "", "write text to a file instead of stdout")

	rootCmd.AddCommand(convertCmd)
}
