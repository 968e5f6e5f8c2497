package main

import (
	"errors"
	"os"

	"github.com/aretw0/pastebutton/internal/cli"
	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/spf13/cobra"
)

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Paste the clipboard image once",
	Long: `Presses the button a single time against the local clipboard and writes the
image as PNG. Exits with status 1 when the clipboard holds no image.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		mode, _ := cmd.Flags().GetString("errors")

		err := cli.RunPaste(cli.PasteOptions{
			Options: commonOptions(cmd),
			Out:     out,
			Errors:  domain.ErrorMode(mode),
		})
		if errors.Is(err, cli.ErrNothingPasted) {
			os.Exit(1)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(pasteCmd)

	pasteCmd.Flags().StringP("out", "o", "", "Output PNG file")
	pasteCmd.Flags().String("errors", "", "Error mode: ignore or raise; overrides button.errors")
}
