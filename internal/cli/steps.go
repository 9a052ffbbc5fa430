package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"

	"github.com/genai-stack/template-init/internal/config"
	"github.com/genai-stack/template-init/internal/git"
	"github.com/genai-stack/template-init/internal/output"
	"github.com/genai-stack/template-init/internal/prompt"
	"github.com/genai-stack/template-init/internal/selfdestruct"
	"github.com/genai-stack/template-init/internal/template"
)

// runSteps executes the customization steps in order and returns the
// overall success flag. Every step runs even after an earlier failure,
// so the user sees the full picture in one pass; only the rename and
// manifest steps count toward the flag. Marker and git failures are
// warnings: the template is still usable without them.
func runSteps(ctx context.Context, r *prompt.Reader, out io.Writer, settings *config.Settings, a *answers) bool {
	ok := true

	if err := template.RenamePackage(settings.SourceDir, settings.TemplatePackage, a.PackageName); err != nil {
		output.Fail(out, "Failed to rename package: %v", err)
		ok = false
	} else {
		output.Success(out, "Renamed package: %s → %s", settings.TemplatePackage, a.PackageName)
	}

	meta := template.Metadata{
		PackageName:      a.PackageName,
		DistributionName: a.DistributionName,
		AuthorName:       a.AuthorName,
		AuthorEmail:      a.AuthorEmail,
	}
	if err := template.UpdateManifest(settings.ManifestPath, meta); err != nil {
		output.Fail(out, "Failed to update %s: %v", settings.ManifestPath, err)
		ok = false
	} else {
		output.Success(out, "Updated %s", settings.ManifestPath)
	}

	if err := template.WriteMarker(settings.SourceDir, a.PackageName, settings.MarkerName, settings.InitialVersion); err != nil {
		output.Warn(out, "Could not update %s: %v", settings.MarkerName, err)
	} else {
		output.Success(out, "Updated %s", settings.MarkerPath(a.PackageName))
	}

	resetHistory(ctx, r, out)

	return ok
}

// resetHistory optionally discards and reinitializes git history.
// Declining is a no-op; failures are warnings and never fail the run.
func resetHistory(ctx context.Context, r *prompt.Reader, out io.Writer) {
	fmt.Fprintln(out)

	question := "Reinitialize git repository? (removes old history)"
	if !git.IsRepository(".") {
		question = "Initialize a git repository?"
	}
	confirm, err := r.YesNo(question, false)
	if err != nil || !confirm {
		return
	}

	removed, err := git.RemoveHistory(".")
	if err != nil {
		output.Warn(out, "Git reinitialization failed: %v", err)
		return
	}
	if removed {
		output.Success(out, "Removed old %s directory", git.MetadataDir)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " Initializing repository..."
	s.Start()
	err = git.Init(ctx, ".")
	s.Stop()

	if err != nil {
		output.Warn(out, "Git reinitialization failed: %v", err)
		return
	}
	output.Success(out, "Initialized new git repository")
}

// printNextSteps shows the post-setup guidance.
func printNextSteps(out io.Writer) {
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Run: uv venv && uv pip install -e '.[dev]'")
	fmt.Fprintln(out, "  2. Run: uv run pre-commit install")
	fmt.Fprintln(out, "  3. Copy .env.example to .env and add your API keys")
	fmt.Fprintln(out, "  4. Start building your GenAI application!")
	fmt.Fprintln(out)
}

// removeBinary offers to delete the initializer itself. By this point
// the template is customized, so failure is only worth a warning.
func removeBinary(r *prompt.Reader, out io.Writer) {
	confirm, err := r.YesNo("Remove the template-init binary?", true)
	if err != nil || !confirm {
		return
	}

	path, err := selfdestruct.Path()
	if err != nil {
		output.Warn(out, "Could not locate the binary: %v", err)
		return
	}
	if err := selfdestruct.Remove(path); err != nil {
		output.Warn(out, "Could not remove the binary: %v", err)
		return
	}
	output.Success(out, "Removed %s", filepath.Base(path))
}
