/*
PURPOSE:
  Merges all collected records into one structured results document
  and a curated plain-text report, both written into the snapshot
  directory.

REQUIREMENTS:
  User-specified:
  - Structured file keeps everything: raw pip listing, error strings.
  - Text report is a curated subset: no raw listing, four-decimal
    timings.

  Implementation-discovered:
  - The structured document must round-trip: parse it back and you
    get the in-memory record.
  - Errored backends get an explicit error line in the text report;
    hiding them defeats a diagnostic tool.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: model.CombinedReport

ERROR HANDLING:
  - File creation failures are fatal and returned to the caller.

IMPLEMENTATION RULES:
  - json.MarshalIndent for the structured file (human-diffable).
  - Libraries render in fixed probe order, backends in run order.

USAGE:
  err := (&report.Assembler{Dir: dir}).Write(combined)

SELF-HEALING INSTRUCTIONS:
  - If sections change, keep RenderText and the structured document
    sourced from the same CombinedReport.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update RenderText when records gain fields worth showing.
*/

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"envsnap/internal/bench"
	"envsnap/internal/model"
	"envsnap/internal/probe"
)

const (
	structuredName = "results.json"
	textName       = "report.txt"
)

// Assembler writes both report artifacts into Dir.
type Assembler struct {
	Dir string
}

// Write serializes the combined report twice: indented JSON with full
// detail, and the curated text rendering.
func (a *Assembler) Write(rep model.CombinedReport) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize results: %w", err)
	}

	jsonPath := filepath.Join(a.Dir, structuredName)
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", jsonPath, err)
	}

	textPath := filepath.Join(a.Dir, textName)
	if err := os.WriteFile(textPath, []byte(RenderText(rep)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", textPath, err)
	}

	return nil
}

// Load parses a structured results document back into memory.
func Load(path string) (model.CombinedReport, error) {
	var rep model.CombinedReport
	data, err := os.ReadFile(path)
	if err != nil {
		return rep, err
	}
	if err := json.Unmarshal(data, &rep); err != nil {
		return rep, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rep, nil
}

// RenderText produces the human-readable report. The raw pip listing
// stays out; the structured document has it.
func RenderText(rep model.CombinedReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Environment Report - %s\n", rep.Timestamp.Format("2006-01-02 15:04:05 MST"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString("System Information\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	writeFact(&b, "OS", rep.System.OS)
	writeFact(&b, "Processor", rep.System.Processor)
	writeFact(&b, "Hostname", rep.System.Hostname)
	if rep.System.CPUCores != nil {
		writeFact(&b, "CPU cores", fmt.Sprintf("%d", *rep.System.CPUCores))
	}
	if rep.System.RAMTotal != nil {
		writeFact(&b, "RAM total", fmt.Sprintf("%.2f GB", float64(*rep.System.RAMTotal)/(1<<30)))
	}
	if rep.System.RAMAvailable != nil {
		writeFact(&b, "RAM available", fmt.Sprintf("%.2f GB", float64(*rep.System.RAMAvailable)/(1<<30)))
	}
	writeFact(&b, "Go version", rep.System.GoVersion)
	writeFact(&b, "Python version", rep.System.PythonVersion)
	writeFact(&b, "Python path", rep.System.PythonPath)
	if rep.System.InVenv {
		writeFact(&b, "Virtual environment", rep.System.VenvPath)
	}
	b.WriteString("\n")

	b.WriteString("Installed Libraries\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, lib := range probe.Libraries() {
		out, ok := rep.Libraries.Libraries[lib.Display]
		if !ok {
			continue
		}
		marker := "not installed"
		version := ""
		switch out.State {
		case model.StatePresent:
			marker = "installed"
			version = out.Version
		case model.StateUnknown:
			marker = "installed"
		case model.StateError:
			marker = "error"
		}
		fmt.Fprintf(&b, "  %-16s %-12s %s\n", lib.Display, version, marker)
	}
	b.WriteString("\n")

	b.WriteString("Performance Results\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, name := range bench.Backends {
		res, ok := rep.Performance.Backends[name]
		if !ok {
			continue
		}
		switch res.State {
		case model.StatePresent:
			fmt.Fprintf(&b, "  %-12s %.4f s (device: %s)\n", name, res.ElapsedSeconds, res.Device)
		case model.StateAbsent:
			fmt.Fprintf(&b, "  %-12s not installed\n", name)
		default:
			fmt.Fprintf(&b, "  %-12s error: %s\n", name, res.Error)
		}
	}

	return b.String()
}

func writeFact(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %-20s %s\n", key+":", value)
}
