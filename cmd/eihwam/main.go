// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the eihwam CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshunov/usyd-eihwam-calculator/internal/classify"
	"github.com/joshunov/usyd-eihwam-calculator/internal/convert"
	"github.com/joshunov/usyd-eihwam-calculator/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the eihwam CLI.
var rootCmd = &cobra.Command{
	Use:   "eihwam",
	Short: "Calculate the USYD Engineering Integrated Honours WAM from a transcript",
	Long: `eihwam parses a University of Sydney academic transcript and computes the
Engineering Integrated Honours Weighted Average Mark (EIHWAM) together with
the plain WAM and the resulting honours class.

Transcripts are processed in memory only: nothing is stored, and units
excluded from the calculation are reported with their exclusion reasons
rather than silently dropped.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./eihwam.yaml or ~/.config/eihwam/config.yaml)")
	rootCmd.PersistentFlags().String("thesis-codes", "thesis_codes.yaml", "YAML file listing thesis unit codes")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("eihwam")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "eihwam"))
		}
	}

	viper.SetEnvPrefix("EIHWAM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// thesisSet loads the thesis-code artifact named by the --thesis-codes
// flag, or by the thesis_codes_file config key when the flag is untouched.
func thesisSet(cmd *cobra.Command) (classify.ThesisSet, error) {
	path, _ := cmd.Flags().GetString("thesis-codes")
	if !cmd.Flags().Changed("thesis-codes") {
		if v := viper.GetString("thesis_codes_file"); v != "" {
			path = v
		}
	}
	return classify.LoadThesisCodes(path)
}

// newConverter builds the conversion backend from the --backend flag,
// falling back to the conversion section of the config file.
func newConverter(cmd *cobra.Command) (convert.Converter, error) {
	backend, _ := cmd.Flags().GetString("backend")
	if backend == "" {
		backend = viper.GetString("conversion.backend")
	}
	return convert.New(types.ConversionConfig{
		Backend:       types.ConversionBackend(backend),
		PdftotextPath: viper.GetString("conversion.pdftotext_path"),
		Image:         viper.GetString("conversion.image"),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
