package template

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/genai-stack/template-init/internal/naming"
)

// markerTemplate mirrors the docstring shipped with the stock package.
const markerTemplate = `"""
%s

Your GenAI application package.
"""

__version__ = %q

__all__ = ["__version__"]
`

// WriteMarker overwrites the package marker file with a templated
// header derived from the package name and the initial version.
// The returned error is advisory: a missing marker usually means the
// package rename failed upstream, and the caller is expected to warn
// and keep going rather than abort the run.
func WriteMarker(sourceDir, packageName, markerName, version string) error {
	path := filepath.Join(sourceDir, packageName, markerName)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s not found", path)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}

	content := fmt.Sprintf(markerTemplate, naming.Title(packageName), version)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
