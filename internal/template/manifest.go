package template

import (
	"fmt"
	"os"
	"regexp"
)

// Metadata holds the values substituted into the manifest.
type Metadata struct {
	PackageName      string
	DistributionName string
	AuthorName       string
	AuthorEmail      string
}

// The manifest is edited with targeted text substitutions rather than
// a TOML parser: only the placeholder fields shipped with the template
// change, and the rest of the file keeps its exact formatting. Each
// pattern fires at most where the placeholder is still present; an
// absent placeholder leaves that field untouched.
var (
	namePattern   = regexp.MustCompile(`name = "template-package"`)
	descPattern   = regexp.MustCompile(`(?i)description = ".*template.*"`)
	authorPattern = regexp.MustCompile(`name = "Your Name"`)
	emailPattern  = regexp.MustCompile(`email = "your\.email@example\.com"`)
)

// UpdateManifest rewrites the project name, description, and author
// fields in the manifest at path, in place.
func UpdateManifest(path string, m Metadata) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s not found", path)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	content = namePattern.ReplaceAllLiteralString(content,
		fmt.Sprintf("name = %q", m.DistributionName))
	content = descPattern.ReplaceAllLiteralString(content,
		fmt.Sprintf("description = %q", m.DistributionName+" - A GenAI application"))
	content = authorPattern.ReplaceAllLiteralString(content,
		fmt.Sprintf("name = %q", m.AuthorName))
	content = emailPattern.ReplaceAllLiteralString(content,
		fmt.Sprintf("email = %q", m.AuthorEmail))

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
