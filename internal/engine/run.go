/*
PURPOSE:
  High-level runner that orchestrates the capture pipeline.
  Inspect -> probe -> bench -> snapshot -> report, sequentially.

REQUIREMENTS:
  User-specified:
  - Capture everything into one timestamped directory per run.
  - A failed probe or benchmark degrades the records, never the run.

  Implementation-discovered:
  - The directory name is computed once here and passed into every
    component; nothing reads ambient process state.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/sysinfo, internal/probe, internal/bench,
    internal/snapshot, internal/report

ERROR HANDLING:
  - Fatal only when the snapshot directory or a report file cannot
    be created; everything else is recorded and logged.

IMPLEMENTATION RULES:
  - Strictly sequential; no parallelism between phases or backends.

USAGE:
  err := engine.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/cli/run.go

MAINTENANCE:
  - Update phase order only together with the report renderers.
*/

package engine

import (
	"context"
	"path/filepath"
	"time"

	"envsnap/internal/bench"
	"envsnap/internal/config"
	"envsnap/internal/model"
	"envsnap/internal/output"
	"envsnap/internal/probe"
	"envsnap/internal/report"
	"envsnap/internal/runner"
	"envsnap/internal/snapshot"
	"envsnap/internal/sysinfo"
)

// Run executes the full capture pipeline with the real shell runner.
func Run(cfg *config.Config) error {
	return run(context.Background(), cfg, runner.Shell{})
}

func run(ctx context.Context, cfg *config.Config, sh runner.CommandRunner) error {
	start := time.Now()
	dir := filepath.Join(cfg.OutputDir, cfg.SnapshotDirName(start))

	output.Logger.Info("Starting environment capture", "dir", dir, "python", cfg.PythonBin)

	// 1. System facts
	inspector := &sysinfo.Inspector{Runner: sh, PythonBin: cfg.PythonBin}
	sys := inspector.Collect(ctx)
	output.Logger.Info("System inspected", "os", sys.OS, "processor", sys.Processor)

	// 2. Library probe
	prober := &probe.Prober{Runner: sh, PythonBin: cfg.PythonBin}
	libs := prober.Probe(ctx)
	installed := 0
	for _, out := range libs.Libraries {
		if out.State == model.StatePresent || out.State == model.StateUnknown {
			installed++
		}
	}
	output.Logger.Info("Libraries probed", "installed", installed, "total", len(libs.Libraries))

	// 3. Benchmarks
	sampler := &bench.Sampler{Runner: sh, PythonBin: cfg.PythonBin, MatrixSize: cfg.MatrixSize}
	perf := sampler.Sample(ctx)

	// 4. Snapshot artifacts
	writer := &snapshot.Writer{Dir: dir, Runner: sh, PythonBin: cfg.PythonBin}
	if err := writer.Write(ctx, sys); err != nil {
		return err
	}
	output.Logger.Info("Snapshot written", "dir", dir)

	// 5. Reports
	combined := model.CombinedReport{
		Timestamp:   start.UTC(),
		System:      sys,
		Libraries:   libs,
		Performance: perf,
	}
	assembler := &report.Assembler{Dir: dir}
	if err := assembler.Write(combined); err != nil {
		return err
	}
	output.Logger.Info("Reports written", "dir", dir)

	return nil
}
