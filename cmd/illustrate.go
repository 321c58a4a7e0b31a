package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/illustration"
)

var illustrateCmd = &cobra.Command{
	Use:   "illustrate <description>",
	Short: "Draw a child-friendly illustration and save it as PNG",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		d, err := newDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		media, err := d.media(cmd.Context())
		if err != nil {
			return err
		}

		uri, err := illustration.New(media, d.logger).Illustrate(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if err := writeDataURI(out, uri); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", out)
		return nil
	},
}

func init() {
	illustrateCmd.Flags().StringP("output", "o", "drawing.png", "Output file")
}

func writeDataURI(path, uri string) error {
	_, data, err := illustration.ParseDataURI(uri)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
