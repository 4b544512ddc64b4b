/*
PURPOSE:
  Probes a fixed set of Python libraries for presence and version,
  and captures the package manager's full listing verbatim.

REQUIREMENTS:
  User-specified:
  - Exactly one outcome per configured library, always.
  - Distinguish installed / installed-without-version / absent / error.

  Implementation-discovered:
  - Three import names differ from their distribution names
    (PIL, cv2, sklearn); the translation must be explicit and total.
  - pip list failure must not abort the probe; the raw listing is
    simply empty.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli (probe subcommand)
  - Uses: internal/runner, internal/assets

ERROR HANDLING:
  - Per-library failures become LibraryOutcome values, never errors.

IMPLEMENTATION RULES:
  - Fixed probe order; the outcome map key is the display name.
  - The probe snippet prints one JSON object per invocation.

USAGE:
  rec := (&probe.Prober{Runner: sh, PythonBin: "python3"}).Probe(ctx)

SELF-HEALING INSTRUCTIONS:
  - Adding a library: append to libraries; add a translation if its
    import name differs from the distribution name.

RELATED FILES:
  - internal/assets/snippets/probe_library.py

MAINTENANCE:
  - Keep the list in sync with the snapshot test script's backends.
*/

package probe

import (
	"context"
	"encoding/json"

	"envsnap/internal/assets"
	"envsnap/internal/model"
	"envsnap/internal/output"
	"envsnap/internal/runner"
)

// Library pairs an import identifier with its canonical display name.
type Library struct {
	Import  string
	Display string
}

// libraries is the fixed probe set, in probe order.
var libraries = []Library{
	{Import: "numpy", Display: "numpy"},
	{Import: "scipy", Display: "scipy"},
	{Import: "pandas", Display: "pandas"},
	{Import: "matplotlib", Display: "matplotlib"},
	{Import: "seaborn", Display: "seaborn"},
	{Import: "PIL", Display: "Pillow"},
	{Import: "cv2", Display: "opencv-python"},
	{Import: "sklearn", Display: "scikit-learn"},
	{Import: "torch", Display: "torch"},
	{Import: "tensorflow", Display: "tensorflow"},
}

// translations maps the import identifiers whose distribution name
// differs. Total over exactly these three cases.
var translations = map[string]string{
	"PIL":     "Pillow",
	"cv2":     "opencv-python",
	"sklearn": "scikit-learn",
}

// Libraries returns the fixed probe set.
func Libraries() []Library {
	out := make([]Library, len(libraries))
	copy(out, libraries)
	return out
}

// DisplayName translates an import identifier to its canonical
// display name. Identifiers without a translation map to themselves.
func DisplayName(importName string) string {
	if d, ok := translations[importName]; ok {
		return d
	}
	return importName
}

// Prober probes libraries through a Python interpreter.
type Prober struct {
	Runner    runner.CommandRunner
	PythonBin string
}

// probeReply mirrors the JSON printed by snippets/probe_library.py.
type probeReply struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Error   string `json:"error"`
}

// Probe checks every configured library and captures the raw pip
// listing. The returned map always has exactly one entry per library.
func (p *Prober) Probe(ctx context.Context) model.LibraryRecord {
	rec := model.LibraryRecord{
		Libraries: make(map[string]model.LibraryOutcome, len(libraries)),
	}

	for _, lib := range libraries {
		rec.Libraries[lib.Display] = p.probeOne(ctx, lib)
	}

	// Full listing, verbatim. Failure leaves it empty; the probe map
	// above is the authoritative result.
	listing, err := p.Runner.Run(ctx, p.PythonBin+" -m pip list")
	if err != nil {
		output.Logger.Debug("pip list failed", "error", err)
	}
	rec.PipList = listing

	return rec
}

func (p *Prober) probeOne(ctx context.Context, lib Library) model.LibraryOutcome {
	out, err := runner.RunScript(ctx, p.Runner, p.PythonBin,
		assets.Snippet("probe_library.py"), lib.Import, lib.Display)
	if err != nil {
		return model.LibraryOutcome{State: model.StateError, Detail: err.Error()}
	}

	var reply probeReply
	if err := json.Unmarshal([]byte(out), &reply); err != nil {
		return model.LibraryOutcome{State: model.StateError, Detail: "malformed probe output: " + out}
	}

	switch reply.Status {
	case "present":
		return model.LibraryOutcome{State: model.StatePresent, Version: reply.Version}
	case "unknown":
		return model.LibraryOutcome{State: model.StateUnknown}
	case "absent":
		return model.LibraryOutcome{State: model.StateAbsent}
	default:
		return model.LibraryOutcome{State: model.StateError, Detail: reply.Error}
	}
}
