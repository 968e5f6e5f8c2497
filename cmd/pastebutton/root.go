package main

import (
	"fmt"
	"os"

	"github.com/aretw0/pastebutton/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pastebutton",
	Short: "Pastebutton is a clipboard image paste button",
	Long: `Pastebutton renders a "paste image" button, reads the image the user pastes
from the clipboard and hands it back as a decoded bitmap.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "pastebutton.yaml", "Path to the YAML or JSON config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the config file")
}

func commonOptions(cmd *cobra.Command) cli.Options {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return cli.Options{ConfigPath: configPath, LogLevel: logLevel}
}
