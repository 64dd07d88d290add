package app

import (
	"github.com/go-faster/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nik2704/sparse-matrix/internal/cfg"
	"github.com/nik2704/sparse-matrix/internal/cli"
	"github.com/nik2704/sparse-matrix/internal/demo"
)

// runFlags override values loaded from the environment when set explicitly.
type runFlags struct {
	env       string
	dimension int
	from, to  int
	output    string
}

func newRunCmd(root *cli.RootCommand) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fills both diagonals and prints the matrix report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cfg.Load(root.Options.ConfigPath)
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			c = f.apply(cmd, c)
			if err = c.Validate(); err != nil {
				return err
			}

			log, err := newLogger(c.Environment)
			if err != nil {
				return errors.Wrap(err, "init logger")
			}
			defer func() { _ = log.Sync() }()

			return demo.Run(c, afero.NewOsFs(), cmd.OutOrStdout(), log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.env, "env", string(cfg.DefaultEnv), "Environment: dev or prod")
	flags.IntVarP(&f.dimension, "dim", "n", 10, "Size n of the filled n×n area")
	flags.IntVar(&f.from, "from", 1, "First row/column of the printed fragment")
	flags.IntVar(&f.to, "to", 8, "Last row/column of the printed fragment")
	flags.StringVarP(&f.output, "out", "o", "", "Write the report to this file instead of stdout")

	return cmd
}

// apply copies explicitly set flags over c.
func (f runFlags) apply(cmd *cobra.Command, c cfg.Config) cfg.Config {
	flags := cmd.Flags()
	if flags.Changed("env") {
		c.Environment = cfg.Environment(f.env)
	}
	if flags.Changed("dim") {
		c.Dimension = f.dimension
	}
	if flags.Changed("from") {
		c.FragmentFrom = f.from
	}
	if flags.Changed("to") {
		c.FragmentTo = f.to
	}
	if flags.Changed("out") {
		c.Output = f.output
	}

	return c
}

// newLogger picks the development or production zap preset.
func newLogger(env cfg.Environment) (*zap.Logger, error) {
	if env == cfg.EnvProd {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
