package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Synthesize a DSL program from input/output examples",
	Long: `synthesize provides three features:
- Runs the synthesizer over a grammar file and an examples file.
- Runs one of the bundled demo scenarios end to end.
- Checks the there-and-back-again roundtrip property for a known program.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
