// Package cli implements the interactive template-init command: the
// wizard that collects project metadata and the pipeline that applies
// it to the template tree.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/genai-stack/template-init/internal/build"
	"github.com/genai-stack/template-init/internal/config"
	clierrors "github.com/genai-stack/template-init/internal/errors"
	"github.com/genai-stack/template-init/internal/output"
	"github.com/genai-stack/template-init/internal/prompt"
)

// errStepsFailed marks a run whose failure summary was already
// printed; Execute maps it to a nonzero exit without reporting twice.
var errStepsFailed = stderrors.New("initialization completed with errors")

var rootCmd = &cobra.Command{
	Use:   "template-init",
	Short: "Customize the GenAI template for a new project",
	Long: `template-init customizes this template checkout for a new project.

It asks for a project name and author details, renames the template
package directory, rewrites pyproject.toml, regenerates the package
__init__.py, optionally reinitializes git history, and finally offers
to delete itself.

Run it once, from the template root. There are no flags; everything is
collected interactively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command and maps the outcome to an exit code.
// An interrupt aborts the run with its own message and a nonzero exit.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- rootCmd.ExecuteContext(ctx)
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "\n\nAborted by user.")
		return ExitFailure
	case err := <-done:
		if err == nil {
			return ExitSuccess
		}
		if stderrors.Is(err, errStepsFailed) {
			return ExitFailure
		}
		var cliErr *clierrors.CLIError
		if stderrors.As(err, &cliErr) {
			clierrors.PrintError(cliErr)
		} else {
			clierrors.PrintSimpleError(err, clierrors.Runtime)
		}
		return ExitFailure
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	settings, err := config.Load()
	if err != nil {
		output.Warn(out, "Ignoring %s: %v", config.FileName, err)
		settings = config.Fallback()
	}

	if _, err := os.Stat(settings.ManifestPath); err != nil {
		return clierrors.NewPrerequisiteError(
			fmt.Sprintf("%s not found", settings.ManifestPath),
			"Run template-init from the template root directory.",
		)
	}

	r := prompt.New(cmd.InOrStdin(), out)

	output.Banner(out, "GenAI Template Initialization")
	fmt.Fprintf(out, "%s\n\n", build.String())

	a, err := collectAnswers(r, out, settings)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Fprintln(out)
	printSummary(out, a)
	fmt.Fprintln(out)

	proceed, err := r.YesNo("Proceed with these settings?", true)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if !proceed {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Initializing template...")
	fmt.Fprintln(out)

	if !runSteps(cmd.Context(), r, out, settings, a) {
		fmt.Fprintln(out)
		output.Banner(out, "Initialization completed with errors")
		fmt.Fprintln(out, "Review the errors above and finish the remaining steps by hand.")
		return errStepsFailed
	}

	fmt.Fprintln(out)
	output.Banner(out, "Template initialized successfully!")
	fmt.Fprintln(out)
	printNextSteps(out)

	removeBinary(r, out)
	return nil
}
