package app

import (
	"context"

	"github.com/nik2704/sparse-matrix/internal/cli"
)

var rootCmd = cli.Init("sparsedemo")

// MustExecute registers the subcommands and runs the root command.
func MustExecute(ctx context.Context) {
	rootCmd.AddCommand(newRunCmd(rootCmd))
	rootCmd.MustExecute(ctx)
}
