/*
PURPOSE:
  Defines the root Cobra command for the envsnap CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/envsnap/main.go
  - Calls: Child commands (run, probe, bench, advise)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/envsnap/main.go

MAINTENANCE:
  - Update when adding new global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"

	"envsnap/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "envsnap",
		Short: "Capture and diagnose a machine's Python ML environment",
		Long: `envsnap inspects the host, probes which numerical/ML libraries are
installed, benchmarks a dense matrix multiply per backend, and writes the
results plus environment-recreation scripts to a timestamped directory.
Use 'run --help' for capture options.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				output.SetVerbose()
			}
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./envsnap.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log individual probe commands")
}
