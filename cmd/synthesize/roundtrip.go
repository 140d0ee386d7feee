package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nihei9/tyrellgo/ast"
	"github.com/nihei9/tyrellgo/dataset"
	"github.com/nihei9/tyrellgo/synth"
)

var roundtripFlags = struct {
	program *string
	depth   *int
	locMax  *int
	timeout *time.Duration
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "roundtrip <subdomain>",
		Short:   "Check the there-and-back-again property for a bundled ground-truth program",
		Example: `  synthesize roundtrip int2_int --program plus`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRoundtrip,
	}
	roundtripFlags.program = cmd.Flags().String("program", "", "name of the ground-truth program within the subdomain (required)")
	roundtripFlags.depth = cmd.Flags().Int("depth", 4, "maximum AST depth")
	roundtripFlags.locMax = cmd.Flags().Int("loc-max", 10, "largest loc tried before giving up")
	roundtripFlags.timeout = cmd.Flags().Duration("timeout", 0, "wall-clock deadline for the whole run (0 = none)")
	cmd.MarkFlagRequired("program")
	rootCmd.AddCommand(cmd)
}

func runRoundtrip(cmd *cobra.Command, args []string) error {
	subdomainName := args[0]
	problem := *roundtripFlags.program

	subdomain, ok := dataset.Subdomains[subdomainName]
	if !ok {
		return fmt.Errorf("unknown subdomain %q", subdomainName)
	}

	sp, err := dataset.BuildSpec(subdomainName, subdomain.Type)
	if err != nil {
		return err
	}

	prog, err := dataset.GroundTruth(sp, subdomainName, problem)
	if err != nil {
		return err
	}

	samples := dataset.SamplesForTypes(subdomain.Type.Input)

	opts := synth.Options{MaxDepth: *roundtripFlags.depth, MaxLoc: *roundtripFlags.locMax}
	if *roundtripFlags.timeout > 0 {
		opts.Deadline = time.Now().Add(*roundtripFlags.timeout)
		opts.HasDeadline = true
	}

	result, examples, err := dataset.ThereAndBackAgain(sp, prog, samples, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "ground truth: %s\n", ast.Sprint(prog))
	fmt.Fprintf(os.Stdout, "examples: %d\n", len(examples))
	if !result.Found {
		fmt.Fprintf(os.Stdout, "recovered: not found within bounds\n")
		return nil
	}
	fmt.Fprintf(os.Stdout, "recovered: %s\n", ast.Sprint(result.Program))
	return nil
}
