// Package cli provides the command-line interface for invfrog.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "0.1.0"

var vp = viper.New()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "invfrog",
	Short: "Extract and organize machine-generated PDF invoices",
	Long: `Invfrog extracts structured fields (invoice number, date, total, vendor)
from machine-generated PDF invoices, writes a results spreadsheet, and can
copy the files into a folder hierarchy derived from the extracted data.

Files are always COPIED, never moved; the originals stay untouched. Enable
dry-run (the default) to preview planned destinations before copying.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
}
