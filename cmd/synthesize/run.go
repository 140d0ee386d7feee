package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nihei9/tyrellgo/ast"
	"github.com/nihei9/tyrellgo/decide"
	"github.com/nihei9/tyrellgo/interp"
	"github.com/nihei9/tyrellgo/spec"
	"github.com/nihei9/tyrellgo/synth"
)

var runFlags = struct {
	grammar  *string
	input    *[]string
	output   *string
	examples *string
	depth    *int
	locMax   *int
	timeout  *time.Duration
	report   *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the synthesizer over a grammar file and an examples file",
		Example: `  synthesize run --grammar grammar.tyrell --in Int --in Int --out Int --examples ex.json`,
		Args:    cobra.NoArgs,
		RunE:    runRun,
	}
	runFlags.grammar = cmd.Flags().String("grammar", "", "path to a grammar-text file (required)")
	runFlags.input = cmd.Flags().StringArray("in", nil, "program input type name, repeatable, in order")
	runFlags.output = cmd.Flags().String("out", "", "program output type name (required)")
	runFlags.examples = cmd.Flags().String("examples", "", "path to a JSON examples file (required)")
	runFlags.depth = cmd.Flags().Int("depth", 4, "maximum AST depth")
	runFlags.locMax = cmd.Flags().Int("loc-max", 10, "largest loc tried before giving up")
	runFlags.timeout = cmd.Flags().Duration("timeout", 0, "wall-clock deadline for the whole run (0 = none)")
	runFlags.report = cmd.Flags().String("report", "", "directory to write a <name>-<run-id>-report.json to (default: no report)")
	cmd.MarkFlagRequired("grammar")
	cmd.MarkFlagRequired("out")
	cmd.MarkFlagRequired("examples")
	rootCmd.AddCommand(cmd)
}

// jsonExample is the on-disk shape of one entry in the --examples file: JSON
// values, later converted to interp.Value by valueFromJSON.
type jsonExample struct {
	Input  []json.RawMessage `json:"input"`
	Output json.RawMessage   `json:"output"`
}

func valueFromJSON(raw json.RawMessage) (interp.Value, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return interp.Value{}, err
	}
	switch x := v.(type) {
	case bool:
		return interp.Bool(x), nil
	case float64:
		return interp.Int(int64(x)), nil
	case string:
		return interp.Str(x), nil
	case []interface{}:
		xs := make([]int64, len(x))
		for i, e := range x {
			f, ok := e.(float64)
			if !ok {
				return interp.Value{}, fmt.Errorf("example list elements must be numbers")
			}
			xs[i] = int64(f)
		}
		return interp.Seq(xs), nil
	default:
		return interp.Value{}, fmt.Errorf("unsupported example value %v", v)
	}
}

func loadExamples(path string) ([]decide.Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []jsonExample
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, err
	}

	out := make([]decide.Example, len(raw))
	for i, r := range raw {
		input := make([]interp.Value, len(r.Input))
		for j, v := range r.Input {
			val, err := valueFromJSON(v)
			if err != nil {
				return nil, err
			}
			input[j] = val
		}
		output, err := valueFromJSON(r.Output)
		if err != nil {
			return nil, err
		}
		out[i] = decide.Example{Input: input, Output: output}
	}
	return out, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	grammarBytes, err := os.ReadFile(*runFlags.grammar)
	if err != nil {
		return err
	}

	sp, err := spec.ParseAndAssemble(string(grammarBytes), "synthesized", *runFlags.input, *runFlags.output)
	if err != nil {
		return err
	}

	examples, err := loadExamples(*runFlags.examples)
	if err != nil {
		return err
	}

	opts := synth.Options{MaxDepth: *runFlags.depth, MaxLoc: *runFlags.locMax}
	if *runFlags.timeout > 0 {
		opts.Deadline = time.Now().Add(*runFlags.timeout)
		opts.HasDeadline = true
	}

	runID := uuid.New().String()
	fmt.Fprintf(os.Stderr, "searching loc=1..%d...\n", opts.MaxLoc)

	result, err := synth.Run(sp, examples, opts)
	if err != nil {
		return err
	}

	if !result.Found {
		if result.TimedOut {
			fmt.Fprintf(os.Stderr, "not found within bounds: timed out\n")
		} else {
			fmt.Fprintf(os.Stderr, "not found within bounds: exhausted loc<=%d\n", opts.MaxLoc)
		}
		return nil
	}

	fmt.Fprintf(os.Stdout, "%s\n", ast.Sprint(result.Program))

	if *runFlags.report != "" {
		if err := writeRunReport(*runFlags.report, runID, result); err != nil {
			return fmt.Errorf("cannot write report: %w", err)
		}
	}
	return nil
}

func writeRunReport(dir, runID string, result synth.Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path := fmt.Sprintf("%s/synthesize-%s-report.json", dir, runID)
	b, err := json.Marshal(struct {
		RunID   string `json:"run_id"`
		Loc     int    `json:"loc"`
		Program string `json:"program"`
	}{RunID: runID, Loc: result.Loc, Program: result.Program.String()})
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
