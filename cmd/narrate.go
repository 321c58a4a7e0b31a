package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/audio"
	"github.com/abhisek/mathcoach/internal/narration"
)

var narrateCmd = &cobra.Command{
	Use:   "narrate <text>",
	Short: "Read text aloud in the narrator voice and save it as WAV",
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

		pcm, err := narration.New(media, d.logger).NarratePCM(cmd.Context(), strings.Join(args, " "), d.lang)
		if err != nil {
			return err
		}
		dur, err := saveNarration(out, pcm)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", out, dur)
		return nil
	},
}

func init() {
	narrateCmd.Flags().StringP("output", "o", "narration.wav", "Output file")
}

// saveNarration writes pcm as a WAV file and returns its playback length.
func saveNarration(path string, pcm []byte) (string, error) {
	buf, err := audio.NewBuffer(pcm, audio.DefaultFormat)
	if err != nil {
		return "", err
	}
	if err := audio.WriteWAVFile(path, pcm, audio.DefaultFormat); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return buf.Duration().Round(100 * time.Millisecond).String(), nil
}
