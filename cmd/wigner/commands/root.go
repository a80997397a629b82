package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wigner/internal/config"
	"github.com/katalvlaran/wigner/internal/logger"
	"github.com/katalvlaran/wigner/internal/render"
	"github.com/katalvlaran/wigner/racah"
)

// Execute loads the environment configuration and runs the root command.
func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	return NewRootCmd(cfg).Execute()
}

// app is the per-invocation state shared by subcommands after flag parsing.
type app struct {
	cfg  config.Config
	log  *logger.Logger
	opts []racah.Option
}

// NewRootCmd builds the command tree with cfg as flag defaults.
func NewRootCmd(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg, log: logger.Nop()}

	root := &cobra.Command{
		Use:          "wigner",
		Short:        "Evaluate Wigner 3-j and 6-j symbols",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.Options()
			if err != nil {
				return err
			}
			a.opts = opts

			l, err := logger.New(a.cfg.LogMode, a.cfg.LogLevel)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.Float64Var(&a.cfg.Epsilon, "eps", cfg.Epsilon, "integrality tolerance")
	pf.StringVar(&a.cfg.Method, "method", cfg.Method, "evaluation backend: exact | loggamma")
	pf.StringVarP(&a.cfg.Output, "output", "o", cfg.Output, "output format: "+strings.Join(render.Formats, " | "))
	pf.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(threejCmd(a), sixjCmd(a))
	return root
}
