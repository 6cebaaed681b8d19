package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/licensescan/pkg/report"
	"github.com/matzehuels/licensescan/pkg/resolve"
)

// checkOpts holds the output flags for the check command.
type checkOpts struct {
	json        bool // print the structured result
	plain       bool // print the undecorated text report
	interactive bool // open the report browser
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check <repository>",
		Short: "Report the licenses of a repository's Python dependencies",
		Long: `Check finds the first supported dependency manifest in a GitHub repository
(requirements.txt, pyproject.toml, Pipfile, poetry.lock, uv.lock, ...), looks
up each package on PyPI and groups the packages by license category.

The repository may be given as a URL or as owner/name.

Examples:
  licensescan check https://github.com/pallets/flask
  licensescan check pallets/flask --json
  licensescan check git@github.com:psf/requests.git --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the plain text report")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the report interactively")
	cmd.MarkFlagsMutuallyExclusive("json", "plain", "interactive")

	return cmd
}

// runCheck resolves locator and writes the report in the requested form.
func (c *CLI) runCheck(ctx context.Context, w io.Writer, locator string, opts checkOpts) error {
	runner := c.newRunner(c.loadConfig())
	prog := newProgress(c.Logger)

	decorated := !opts.json && !opts.plain
	var spinner *Spinner
	if decorated {
		spinner = newSpinnerWithContext(ctx, "Checking "+locator+"...")
		spinner.Start()
	}

	res, err := runner.Resolve(ctx, locator)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %s", res.Repository))

	switch {
	case opts.json:
		data, err := report.JSON(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case opts.plain:
		_, err := fmt.Fprint(w, report.Text(res))
		return err
	case opts.interactive && res.Outcome == resolve.OutcomeReport:
		return runInteractive(res)
	default:
		renderReport(w, res)
		return nil
	}
}
