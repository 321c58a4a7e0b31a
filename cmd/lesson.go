package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/mathcoach/internal/illustration"
	"github.com/abhisek/mathcoach/internal/narration"
	"github.com/abhisek/mathcoach/internal/ui/components"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson [problem text]",
	Short: "Solve, illustrate and narrate a problem into a lesson folder",
	Long: `Solve the problem, then draw the illustration and record the three
narrations concurrently. Writes solution.json, drawing.png, text.wav,
whiteboard.wav and drawing.wav into the output directory.`,
	RunE: runLesson,
}

func init() {
	addProblemFlags(lessonCmd)
	lessonCmd.Flags().StringP("output", "o", "lesson", "Output directory")
}

func runLesson(cmd *cobra.Command, args []string) error {
	problem, err := problemFromArgs(cmd, args)
	if err != nil {
		return err
	}
	outDir, _ := cmd.Flags().GetString("output")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	d, err := newDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	solver, err := newSolver(cmd, d)
	if err != nil {
		return err
	}
	media, err := d.media(cmd.Context())
	if err != nil {
		return err
	}

	sol, err := solver.Solve(cmd.Context(), problem, d.lang)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), components.Solution(sol))

	data, err := json.MarshalIndent(sol, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "solution.json"), data, 0o644); err != nil {
		return fmt.Errorf("write solution: %w", err)
	}

	illustrator := illustration.New(media, d.logger)
	narrator := narration.New(media, d.logger)

	g, ctx := errgroup.WithContext(cmd.Context())

	if sol.DrawingPrompt != "" {
		g.Go(func() error {
			uri, err := illustrator.Illustrate(ctx, sol.DrawingPrompt)
			if err != nil {
				return fmt.Errorf("illustration: %w", err)
			}
			path := filepath.Join(outDir, "drawing.png")
			if err := writeDataURI(path, uri); err != nil {
				return err
			}
			d.logger.Info("saved illustration", zap.String("path", path))
			return nil
		})
	}

	for _, n := range sol.Narrations() {
		g.Go(func() error {
			pcm, err := narrator.NarratePCM(ctx, n.Script, d.lang)
			if err != nil {
				return fmt.Errorf("%s narration: %w", n.Section, err)
			}
			path := filepath.Join(outDir, string(n.Section)+".wav")
			dur, err := saveNarration(path, pcm)
			if err != nil {
				return err
			}
			d.logger.Info("saved narration", zap.String("path", path), zap.String("duration", dur))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nLesson saved to %s\n", outDir)
	return nil
}
