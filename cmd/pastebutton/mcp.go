package main

import (
	"github.com/aretw0/pastebutton/internal/cli"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the paste button as the "paste_image" MCP tool over stdio, so an agent
can ask for the image currently on the clipboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunMCP(commonOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
