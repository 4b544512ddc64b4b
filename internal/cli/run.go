/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full environment capture pipeline.

REQUIREMENTS:
  User-specified:
  - Run the capture.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  envsnap run --output-dir ./captures

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"envsnap/internal/config"
	"envsnap/internal/engine"
)

var (
	outputOverride string
	pythonOverride string
	matrixOverride int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Capture the environment into a timestamped snapshot directory",
	Long: `Runs the full capture pipeline:
1. Inspect: host OS, processor, memory, interpreter facts.
2. Probe: presence and version of each configured Python library.
3. Bench: one warmed-up 1000x1000 matrix multiply per numerical backend.
4. Snapshot: requirements.txt, setup/test scripts, README.
5. Report: structured results.json plus a plain-text report.txt.

Everything lands in <output-dir>/ai_env_save_<YYYYMMDD_HHMMSS>.`,
	Example: `  # Capture with defaults (uses envsnap.yaml if present)
  envsnap run

  # Capture into a fixed parent directory with a specific interpreter
  envsnap run -o ./captures --python /usr/bin/python3.12

  # Smaller benchmark matrices on slow machines
  envsnap run --matrix-size 500`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if pythonOverride != "" {
			cfg.PythonBin = pythonOverride
		}
		if matrixOverride > 0 {
			cfg.MatrixSize = matrixOverride
		}

		// 3. Execution
		return engine.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Parent directory for the snapshot")
	runCmd.Flags().StringVar(&pythonOverride, "python", "", "Python interpreter to probe (default python3)")
	runCmd.Flags().IntVar(&matrixOverride, "matrix-size", 0, "Benchmark matrix side length (default 1000)")
}
