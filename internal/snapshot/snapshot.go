/*
PURPOSE:
  Materializes one snapshot directory: requirements manifest, setup
  script, standalone test script, and a README generated from the
  SystemRecord.

REQUIREMENTS:
  User-specified:
  - Directory creation is idempotent; files overwrite cleanly.
  - Scripts are static, versioned templates, not string literals.
  - README carries the capturing machine's facts verbatim.

  Implementation-discovered:
  - pip freeze failure should degrade to a commented manifest, not
    abort the snapshot; the other artifacts are still useful.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Uses: internal/runner, internal/assets
  - Consumes: model.SystemRecord

ERROR HANDLING:
  - Only filesystem failures (mkdir, write) return errors; they are
    fatal to the run since no artifact can land anywhere else.

IMPLEMENTATION RULES:
  - Scripts get 0755, everything else 0644.
  - Plain WriteFile semantics: a second Write leaves no residue.

USAGE:
  w := &snapshot.Writer{Dir: dir, Runner: sh, PythonBin: "python3"}
  err := w.Write(ctx, sysRecord)

SELF-HEALING INSTRUCTIONS:
  - If an artifact name changes, update the README template contents.

RELATED FILES:
  - internal/assets/templates/

MAINTENANCE:
  - Update the README template when SystemRecord grows fields.
*/

package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"envsnap/internal/assets"
	"envsnap/internal/model"
	"envsnap/internal/output"
	"envsnap/internal/runner"
)

// Writer materializes snapshot artifacts into Dir.
type Writer struct {
	Dir       string
	Runner    runner.CommandRunner
	PythonBin string
}

// readmeData flattens SystemRecord for the README template. Optional
// pointer fields become plain values so the template prints them
// directly.
type readmeData struct {
	Timestamp     time.Time
	OS            string
	Processor     string
	Hostname      string
	CPUCores      int
	PythonVersion string
	PythonPath    string
	InVenv        bool
	VenvPath      string
}

// Write creates the snapshot directory and all four artifacts.
// Calling it twice against the same directory overwrites cleanly.
func (w *Writer) Write(ctx context.Context, sys model.SystemRecord) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", w.Dir, err)
	}

	if err := w.writeRequirements(ctx); err != nil {
		return err
	}

	if err := w.writeFile("setup_env.sh", assets.Template("setup_env.sh"), 0755); err != nil {
		return err
	}

	if err := w.writeFile("test_env.py", assets.Template("test_env.py"), 0755); err != nil {
		return err
	}

	return w.writeReadme(sys)
}

func (w *Writer) writeRequirements(ctx context.Context) error {
	frozen, err := w.Runner.Run(ctx, w.PythonBin+" -m pip freeze")
	if err != nil {
		// Degrade: the manifest documents its own absence.
		output.Logger.Error("pip freeze failed", "error", err)
		frozen = fmt.Sprintf("# pip freeze failed: %v", err)
	}
	return w.writeFile("requirements.txt", []byte(frozen+"\n"), 0644)
}

func (w *Writer) writeReadme(sys model.SystemRecord) error {
	tmpl, err := template.New("readme").Parse(string(assets.Template("README.md.tmpl")))
	if err != nil {
		return fmt.Errorf("failed to parse README template: %w", err)
	}

	data := readmeData{
		Timestamp:     sys.Timestamp,
		OS:            sys.OS,
		Processor:     sys.Processor,
		Hostname:      sys.Hostname,
		PythonVersion: sys.PythonVersion,
		PythonPath:    sys.PythonPath,
		InVenv:        sys.InVenv,
		VenvPath:      sys.VenvPath,
	}
	if sys.CPUCores != nil {
		data.CPUCores = *sys.CPUCores
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render README: %w", err)
	}

	return w.writeFile("README.md", buf.Bytes(), 0644)
}

func (w *Writer) writeFile(name string, content []byte, mode os.FileMode) error {
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	output.Logger.Debug("Wrote snapshot artifact", "path", path)
	return nil
}
