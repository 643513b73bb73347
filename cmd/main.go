package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

var rootFlags struct {
	configPath string
}

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Interior studio booking wizard and price estimator",
	Long: `studio serves the interior studio HTTP API: the static site catalog,
the price calculator, the five-step consultation booking wizard,
the contact form and the typewriter headline stream.

Running studio without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(rootFlags.configPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.configPath, "config", "c", defaultConfigPath, "Path to the TOML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(estimateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
