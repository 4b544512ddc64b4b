/*
PURPOSE:
  Reads host and interpreter facts into a SystemRecord.
  Pure inspection: no side effects, and a partial read is still a
  usable record.

REQUIREMENTS:
  User-specified:
  - Capture OS, processor, memory, interpreter version/path.
  - Detect whether the interpreter runs inside a virtual environment.

  Implementation-discovered:
  - gopsutil covers host/cpu/mem cross-platform; each call can fail
    independently and the corresponding fields are simply omitted.
  - Interpreter facts must come from the interpreter itself
    (sys.prefix vs sys.base_prefix is not visible from outside).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: internal/runner, internal/assets
  - Dependencies: github.com/shirou/gopsutil/v3

ERROR HANDLING:
  - Collect never returns an error. Unavailable facts stay nil/empty.

IMPLEMENTATION RULES:
  - Optional facts are pointers so "unavailable" serializes as omitted.
  - One interpreter round-trip, one JSON object back.

USAGE:
  rec := (&sysinfo.Inspector{Runner: sh, PythonBin: "python3"}).Collect(ctx)

SELF-HEALING INSTRUCTIONS:
  - If gopsutil misreports a platform, fall back fields still come
    from the runtime package.

RELATED FILES:
  - internal/assets/snippets/interp.py

MAINTENANCE:
  - Update when new host facts are wanted in the README/report.
*/

package sysinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"envsnap/internal/assets"
	"envsnap/internal/model"
	"envsnap/internal/output"
	"envsnap/internal/runner"
)

// Inspector collects one SystemRecord per run.
type Inspector struct {
	Runner    runner.CommandRunner
	PythonBin string
}

// Collect gathers host and interpreter facts. It never fails: facts
// that cannot be read are omitted from the record.
func (in *Inspector) Collect(ctx context.Context) model.SystemRecord {
	rec := model.SystemRecord{
		Timestamp: time.Now().UTC(),
		OS:        runtime.GOOS + "/" + runtime.GOARCH,
		Processor: runtime.GOARCH,
		GoVersion: runtime.Version(),
	}

	if info, err := host.Info(); err == nil {
		rec.OS = fmt.Sprintf("%s %s (%s)", info.Platform, info.PlatformVersion, info.KernelVersion)
		rec.Hostname = info.Hostname
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		rec.Processor = infos[0].ModelName
	}

	if n, err := cpu.Counts(true); err == nil {
		rec.CPUCores = &n
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		total := vm.Total
		avail := vm.Available
		rec.RAMTotal = &total
		rec.RAMAvailable = &avail
	}

	in.collectInterpreter(ctx, &rec)
	return rec
}

// interpFacts mirrors the JSON printed by snippets/interp.py.
type interpFacts struct {
	Version    string `json:"version"`
	Executable string `json:"executable"`
	Venv       bool   `json:"venv"`
	Prefix     string `json:"prefix"`
}

func (in *Inspector) collectInterpreter(ctx context.Context, rec *model.SystemRecord) {
	out, err := runner.RunScript(ctx, in.Runner, in.PythonBin, assets.Snippet("interp.py"))
	if err != nil {
		// No interpreter is an expected absence, not a failure.
		output.Logger.Debug("interpreter probe failed", "python", in.PythonBin, "error", err)
		return
	}

	var facts interpFacts
	if err := json.Unmarshal([]byte(out), &facts); err != nil {
		output.Logger.Debug("interpreter probe returned malformed output", "output", out)
		return
	}

	rec.PythonVersion = facts.Version
	rec.PythonPath = facts.Executable
	rec.InVenv = facts.Venv
	if facts.Venv {
		rec.VenvPath = facts.Prefix
	}
}
