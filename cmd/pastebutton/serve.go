package main

import (
	"github.com/aretw0/pastebutton/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the paste button to a browser",
	Long: `Starts the HTTP bridge. Open the printed URL, click the button and the pasted
image is decoded, recorded in the session and written to the output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		return cli.RunServe(cli.ServeOptions{
			Options: commonOptions(cmd),
			Addr:    addr,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address; overrides server.addr")
}
