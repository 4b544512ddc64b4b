package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"envsnap/internal/bench"
	"envsnap/internal/config"
	"envsnap/internal/model"
	"envsnap/internal/runner"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the numerical backends without writing a snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if pythonOverride != "" {
			cfg.PythonBin = pythonOverride
		}
		if matrixOverride > 0 {
			cfg.MatrixSize = matrixOverride
		}

		s := &bench.Sampler{Runner: runner.Shell{}, PythonBin: cfg.PythonBin, MatrixSize: cfg.MatrixSize}
		rec := s.Sample(context.Background())

		for _, name := range bench.Backends {
			res := rec.Backends[name]
			switch res.State {
			case model.StatePresent:
				fmt.Printf("%-12s %.4f s (device: %s, version: %s)\n",
					name, res.ElapsedSeconds, res.Device, res.Version)
			case model.StateAbsent:
				fmt.Printf("%-12s not installed\n", name)
			default:
				fmt.Printf("%-12s error: %s\n", name, res.Error)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVar(&pythonOverride, "python", "", "Python interpreter to probe (default python3)")
	benchCmd.Flags().IntVar(&matrixOverride, "matrix-size", 0, "Benchmark matrix side length (default 1000)")
}
