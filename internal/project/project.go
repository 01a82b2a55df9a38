package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/toolbox/internal/model"
)

// FileExtension is the extension used for exported project files.
const FileExtension = ".json"

// Encode writes the project as indented JSON.
func Encode(w io.Writer, p model.Project) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	return nil
}

// Decode reads a project document. Numeric fields may be JSON numbers or
// strings, and the web tool's German field names are understood. Missing
// values are filled with defaults.
func Decode(r io.Reader) (model.Project, error) {
	var p model.Project
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if strings.TrimSpace(p.ProjectName) == "" {
		p.ProjectName = model.ImportedProjectName
	}
	p.Normalize()
	return p, nil
}

// Save writes a project to path, creating parent directories.
func Save(path string, p model.Project) error {
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// Load reads a project from path.
func Load(path string) (model.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to open project file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// ExportFileName builds a file name from the project name, e.g.
// "Dach_Meier_zuschnitt.json".
func ExportFileName(projectName string) string {
	name := sanitizeFileName(projectName)
	if name == "" {
		name = "projekt"
	}
	return name + "_zuschnitt" + FileExtension
}

func sanitizeFileName(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
