// Package cli holds the cobra root command shared by the sparsedemo binary.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Options are the persistent flags of the root command.
type Options struct {
	ConfigPath string
}

// RootCommand wraps cobra.Command with parsed persistent options.
type RootCommand struct {
	*cobra.Command
	Options Options
}

// Init builds a root command named name with the persistent flags attached.
func Init(name string) *RootCommand {
	cmd := &RootCommand{
		Command: &cobra.Command{
			Use:           name,
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}
	cmd.initFlags()

	return cmd
}

// Execute runs the command tree with ctx.
func (c *RootCommand) Execute(ctx context.Context) error {
	return c.ExecuteContext(ctx)
}

// MustExecute runs the command tree and exits with status 1 on error.
func (c *RootCommand) MustExecute(ctx context.Context) {
	if err := c.Execute(ctx); err != nil {
		c.reportFailure(os.Stderr, err)
		os.Exit(1)
	}
}

// reportFailure writes the one-line failure message tagged with the command name.
func (c *RootCommand) reportFailure(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s failed: %v\n", c.Name(), err)
}
