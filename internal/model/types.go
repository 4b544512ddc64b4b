/*
PURPOSE:
  Defines the core data structures used throughout envsnap.
  These models represent one captured environment state: host facts,
  library probe outcomes, and benchmark results.

REQUIREMENTS:
  User-specified:
  - Record OS, processor, interpreter, RAM/CPU facts.
  - Record per-library and per-backend outcomes as explicit states,
    never as missing keys.

  Implementation-discovered:
  - Need JSON tags for the structured results document.
  - Optional host facts must serialize as "omitted", not zero.

ARCHITECTURE INTEGRATION:
  - Used by: internal/sysinfo, internal/probe, internal/bench,
    internal/snapshot, internal/report
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs). Failure is data here: OutcomeState
    carries absence and error as first-class values.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Pointer fields only where "unavailable" differs from zero.

USAGE:
  rec := model.SystemRecord{...}

SELF-HEALING INSTRUCTIONS:
  - If new facts are needed, add field and update report renderers.

RELATED FILES:
  - internal/report/report.go
  - internal/snapshot/snapshot.go

MAINTENANCE:
  - Update when adding new probes to capture.
*/

package model

import (
	"time"
)

// OutcomeState tags the result of probing a library or backend.
type OutcomeState string

const (
	// StatePresent means the library loaded and reported a version.
	StatePresent OutcomeState = "present"
	// StateUnknown means the library loaded but exposes no version.
	StateUnknown OutcomeState = "unknown"
	// StateAbsent means the library is not installed.
	StateAbsent OutcomeState = "absent"
	// StateError means loading or probing failed for another reason.
	StateError OutcomeState = "error"
)

// SystemRecord holds host and interpreter facts for one run.
// Created once per run and never mutated afterwards.
type SystemRecord struct {
	Timestamp time.Time `json:"timestamp"`
	OS        string    `json:"os"`
	Processor string    `json:"processor"`
	Hostname  string    `json:"hostname,omitempty"`
	GoVersion string    `json:"go_version"`

	// Optional facts: nil when the inspection capability is unavailable.
	CPUCores     *int    `json:"cpu_cores,omitempty"`
	RAMTotal     *uint64 `json:"ram_total_bytes,omitempty"`
	RAMAvailable *uint64 `json:"ram_available_bytes,omitempty"`

	// Interpreter facts, empty when no interpreter could be reached.
	PythonVersion string `json:"python_version,omitempty"`
	PythonPath    string `json:"python_path,omitempty"`
	InVenv        bool   `json:"in_venv"`
	VenvPath      string `json:"venv_path,omitempty"`
}

// LibraryOutcome is the typed result of one library probe.
type LibraryOutcome struct {
	State   OutcomeState `json:"state"`
	Version string       `json:"version,omitempty"`
	Detail  string       `json:"detail,omitempty"`
}

// LibraryRecord maps display names to probe outcomes. The map is total
// over the configured identifier set: every probed library has exactly
// one entry regardless of outcome.
type LibraryRecord struct {
	Libraries map[string]LibraryOutcome `json:"libraries"`
	// PipList is the package manager's full listing, verbatim.
	// Present in the structured document, excluded from the text report.
	PipList string `json:"pip_list,omitempty"`
}

// BenchResult is the outcome of benchmarking one numerical backend.
type BenchResult struct {
	State          OutcomeState `json:"state"`
	Version        string       `json:"version,omitempty"`
	ElapsedSeconds float64      `json:"elapsed_seconds,omitempty"`
	Device         string       `json:"device,omitempty"`
	Devices        []string     `json:"devices,omitempty"`
	Error          string       `json:"error,omitempty"`
}

// PerformanceRecord maps backend names to results, total over the
// fixed backend set.
type PerformanceRecord struct {
	Backends map[string]BenchResult `json:"backends"`
}

// CombinedReport aggregates all records for one run. It is the shape
// of the structured results document on disk.
type CombinedReport struct {
	Timestamp   time.Time         `json:"timestamp"`
	System      SystemRecord      `json:"system"`
	Libraries   LibraryRecord     `json:"libraries"`
	Performance PerformanceRecord `json:"performance"`
}
