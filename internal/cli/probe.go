package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"envsnap/internal/config"
	"envsnap/internal/model"
	"envsnap/internal/probe"
	"envsnap/internal/runner"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe installed Python libraries without writing a snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if pythonOverride != "" {
			cfg.PythonBin = pythonOverride
		}

		p := &probe.Prober{Runner: runner.Shell{}, PythonBin: cfg.PythonBin}
		rec := p.Probe(context.Background())

		for _, lib := range probe.Libraries() {
			out := rec.Libraries[lib.Display]
			switch out.State {
			case model.StatePresent:
				fmt.Printf("%-16s %s\n", lib.Display, out.Version)
			case model.StateUnknown:
				fmt.Printf("%-16s installed (unknown version)\n", lib.Display)
			case model.StateAbsent:
				fmt.Printf("%-16s not installed\n", lib.Display)
			default:
				fmt.Printf("%-16s error: %s\n", lib.Display, out.Detail)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().StringVar(&pythonOverride, "python", "", "Python interpreter to probe (default python3)")
}
