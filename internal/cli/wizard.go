package cli

import (
	"fmt"
	"io"

	"github.com/genai-stack/template-init/internal/config"
	"github.com/genai-stack/template-init/internal/naming"
	"github.com/genai-stack/template-init/internal/prompt"
)

// answers holds the values collected by the wizard. They live only
// for the duration of one run; the durable output is the template
// tree itself.
type answers struct {
	PackageName      string
	DistributionName string
	AuthorName       string
	AuthorEmail      string
}

// collectAnswers runs the interactive wizard: project name (required),
// derived package and distribution names with override prompts, and
// author details with configured fallbacks. Overrides are passed back
// through the corresponding transformer so they end up canonical too.
func collectAnswers(r *prompt.Reader, out io.Writer, settings *config.Settings) (*answers, error) {
	projectName, err := r.NonEmpty(
		"Enter your project name (e.g., 'My GenAI App'): ",
		"Project name cannot be empty!",
	)
	if err != nil {
		return nil, err
	}

	packageName := naming.Identifier(projectName)
	distributionName := naming.Slug(projectName)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Suggested package name: %s\n", packageName)
	override, err := r.Line(fmt.Sprintf("Press Enter to use '%s' or enter a different name: ", packageName))
	if err != nil {
		return nil, err
	}
	if override != "" {
		packageName = naming.Identifier(override)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Suggested project name (%s): %s\n", settings.ManifestPath, distributionName)
	override, err = r.Line(fmt.Sprintf("Press Enter to use '%s' or enter a different name: ", distributionName))
	if err != nil {
		return nil, err
	}
	if override != "" {
		distributionName = naming.Slug(override)
	}

	fmt.Fprintln(out)
	authorName, err := r.WithDefault(
		fmt.Sprintf("Enter your name (for %s): ", settings.ManifestPath),
		settings.DefaultAuthor,
	)
	if err != nil {
		return nil, err
	}
	authorEmail, err := r.WithDefault(
		fmt.Sprintf("Enter your email (for %s): ", settings.ManifestPath),
		settings.DefaultEmail,
	)
	if err != nil {
		return nil, err
	}

	return &answers{
		PackageName:      packageName,
		DistributionName: distributionName,
		AuthorName:       authorName,
		AuthorEmail:      authorEmail,
	}, nil
}

// printSummary shows the collected values before the final confirmation.
func printSummary(out io.Writer, a *answers) {
	fmt.Fprintln(out, "Configuration Summary:")
	fmt.Fprintf(out, "  Package name: %s\n", a.PackageName)
	fmt.Fprintf(out, "  Project name: %s\n", a.DistributionName)
	fmt.Fprintf(out, "  Author:       %s <%s>\n", a.AuthorName, a.AuthorEmail)
}
