package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/solution"
	"github.com/abhisek/mathcoach/internal/ui/components"
)

var solveCmd = &cobra.Command{
	Use:   "solve [problem text]",
	Short: "Solve a math problem given as text or as an image",
	Example: `  mathcoach solve --lang en "Sara has 12 apples and buys 7 more. How many now?"
  mathcoach solve --image homework.jpg`,
	RunE: runSolve,
}

func init() {
	addProblemFlags(solveCmd)
	solveCmd.Flags().Bool("json", false, "Print the raw solution as JSON")
}

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().String("image", "", "Path to an image of the problem")
	cmd.Flags().Int("max-tokens", 0, "Response token budget (0 = provider default)")
}

// problemFromArgs builds the problem from --image or the positional text.
func problemFromArgs(cmd *cobra.Command, args []string) (solution.Problem, error) {
	imagePath, _ := cmd.Flags().GetString("image")
	text := strings.TrimSpace(strings.Join(args, " "))

	switch {
	case imagePath != "" && text != "":
		return solution.Problem{}, errors.New("give either problem text or --image, not both")
	case imagePath != "":
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return solution.Problem{}, fmt.Errorf("read image: %w", err)
		}
		mt := mimetype.Detect(data)
		if !strings.HasPrefix(mt.String(), "image/") {
			return solution.Problem{}, fmt.Errorf("%s is not an image (detected %s)", imagePath, mt.String())
		}
		return solution.NewImageProblem(mt.String(), data), nil
	case text != "":
		return solution.NewTextProblem(text), nil
	default:
		return solution.Problem{}, errors.New("no problem given: pass text or --image")
	}
}

func newSolver(cmd *cobra.Command, d *deps) (*solution.Solver, error) {
	p, err := d.provider(cmd.Context())
	if err != nil {
		return nil, err
	}
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")
	return solution.New(p, solution.Config{MaxTokens: maxTokens}, d.logger), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	problem, err := problemFromArgs(cmd, args)
	if err != nil {
		return err
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

	sol, err := solver.Solve(cmd.Context(), problem, d.lang)
	if err != nil {
		var solveErr *solution.Error
		if errors.As(err, &solveErr) {
			fmt.Fprintln(cmd.ErrOrStderr(), components.Error(solveErr.Error()))
		}
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sol)
	}
	fmt.Fprint(cmd.OutOrStdout(), components.Solution(sol))
	return nil
}
