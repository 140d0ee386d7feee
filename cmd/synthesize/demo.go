package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/nihei9/tyrellgo/ast"
	"github.com/nihei9/tyrellgo/dataset"
	"github.com/nihei9/tyrellgo/synth"
)

var demoFlags = struct {
	depth   *int
	locMax  *int
	timeout *time.Duration
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "demo <subdomain> <problem>",
		Short:   "Run one of the bundled dataset scenarios",
		Example: `  synthesize demo int2_int plus`,
		Args:    cobra.ExactArgs(2),
		RunE:    runDemo,
	}
	demoFlags.depth = cmd.Flags().Int("depth", 4, "maximum AST depth")
	demoFlags.locMax = cmd.Flags().Int("loc-max", 10, "largest loc tried before giving up")
	demoFlags.timeout = cmd.Flags().Duration("timeout", 0, "wall-clock deadline for the whole run (0 = none)")
	rootCmd.AddCommand(cmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	subdomainName, problem := args[0], args[1]

	subdomain, ok := dataset.Subdomains[subdomainName]
	if !ok {
		return fmt.Errorf("unknown subdomain %q (known: %s)", subdomainName, knownSubdomains())
	}
	examples, ok := subdomain.Problems[problem]
	if !ok {
		return fmt.Errorf("unknown problem %q in subdomain %q", problem, subdomainName)
	}

	sp, err := dataset.BuildSpec(subdomainName, subdomain.Type)
	if err != nil {
		return err
	}

	opts := synth.Options{MaxDepth: *demoFlags.depth, MaxLoc: *demoFlags.locMax}
	if *demoFlags.timeout > 0 {
		opts.Deadline = time.Now().Add(*demoFlags.timeout)
		opts.HasDeadline = true
	}

	fmt.Fprintf(os.Stderr, "synthesizing %s/%s...\n", subdomainName, problem)
	result, err := synth.Run(sp, examples, opts)
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Fprintf(os.Stderr, "not found within bounds\n")
		return nil
	}
	fmt.Fprintf(os.Stdout, "%s\n", ast.Sprint(result.Program))
	return nil
}

func knownSubdomains() string {
	names := make([]string, 0, len(dataset.Subdomains))
	for n := range dataset.Subdomains {
		names = append(names, n)
	}
	sort.Strings(names)
	return fmt.Sprintf("%v", names)
}
