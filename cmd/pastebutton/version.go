package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/pastebutton"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pastebutton",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pastebutton version %s\n", strings.TrimSpace(pastebutton.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
