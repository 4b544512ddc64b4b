/*
PURPOSE:
  Benchmarks the three numerical backends with one warmed-up dense
  matrix multiply each, recording elapsed time and device placement.

REQUIREMENTS:
  User-specified:
  - Fixed backend set: numpy, torch, tensorflow.
  - A missing or failing backend must never abort the others.
  - One untimed warm-up multiply, exactly one timed multiply.

  Implementation-discovered:
  - Timing has to happen inside the interpreter (perf_counter), next
    to the multiply; measuring around the process would include
    import and allocation cost.
  - Device selection lives in the snippet too: cuda, then mps, then
    cpu for torch; first physical GPU for tensorflow.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli (bench subcommand)
  - Uses: internal/runner, internal/assets

ERROR HANDLING:
  - Per-backend failures (runner error, malformed JSON, negative
    elapsed) become error results for that backend only.

IMPLEMENTATION RULES:
  - Matrix size is configuration, 1000 by default.
  - Backends run in fixed order, sequentially.

USAGE:
  rec := (&bench.Sampler{Runner: sh, PythonBin: "python3", MatrixSize: 1000}).Sample(ctx)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/assets/snippets/bench_*.py

MAINTENANCE:
  - Update snippets if a backend changes its device API.
*/

package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"envsnap/internal/assets"
	"envsnap/internal/model"
	"envsnap/internal/output"
	"envsnap/internal/runner"
)

// Backends is the fixed benchmark set, in run order.
var Backends = []string{"numpy", "torch", "tensorflow"}

// Sampler benchmarks numerical backends through a Python interpreter.
type Sampler struct {
	Runner     runner.CommandRunner
	PythonBin  string
	MatrixSize int
}

// benchReply mirrors the JSON printed by snippets/bench_*.py.
type benchReply struct {
	Status  string   `json:"status"`
	Version string   `json:"version"`
	Elapsed float64  `json:"elapsed"`
	Device  string   `json:"device"`
	Devices []string `json:"devices"`
	Error   string   `json:"error"`
}

// Sample benchmarks every backend. The returned map always has
// exactly one entry per backend.
func (s *Sampler) Sample(ctx context.Context) model.PerformanceRecord {
	rec := model.PerformanceRecord{
		Backends: make(map[string]model.BenchResult, len(Backends)),
	}
	for _, name := range Backends {
		res := s.sampleOne(ctx, name)
		rec.Backends[name] = res
		switch res.State {
		case model.StatePresent:
			output.Logger.Info("Benchmark complete", "backend", name,
				"elapsed_s", fmt.Sprintf("%.4f", res.ElapsedSeconds), "device", res.Device)
		case model.StateAbsent:
			output.Logger.Info("Backend not installed", "backend", name)
		default:
			output.Logger.Error("Benchmark failed", "backend", name, "error", res.Error)
		}
	}
	return rec
}

func (s *Sampler) sampleOne(ctx context.Context, name string) model.BenchResult {
	size := s.MatrixSize
	if size <= 0 {
		size = 1000
	}

	out, err := runner.RunScript(ctx, s.Runner, s.PythonBin,
		assets.Snippet("bench_"+name+".py"), strconv.Itoa(size))
	if err != nil {
		return model.BenchResult{State: model.StateError, Error: err.Error()}
	}

	var reply benchReply
	if err := json.Unmarshal([]byte(out), &reply); err != nil {
		return model.BenchResult{State: model.StateError, Error: "malformed benchmark output: " + out}
	}

	switch reply.Status {
	case "present":
		if reply.Elapsed < 0 {
			return model.BenchResult{State: model.StateError,
				Error: fmt.Sprintf("negative elapsed time %f", reply.Elapsed)}
		}
		return model.BenchResult{
			State:          model.StatePresent,
			Version:        reply.Version,
			ElapsedSeconds: reply.Elapsed,
			Device:         reply.Device,
			Devices:        reply.Devices,
		}
	case "absent":
		return model.BenchResult{State: model.StateAbsent}
	default:
		return model.BenchResult{State: model.StateError, Error: reply.Error}
	}
}
