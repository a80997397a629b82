package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wigner/internal/render"
	"github.com/katalvlaran/wigner/racah"
	"github.com/katalvlaran/wigner/sixj"
	"github.com/katalvlaran/wigner/threej"
)

func threejCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "3j j1 j2 j3 m1 m2 m3",
		Short:   "Evaluate the Wigner 3-j symbol (j1 j2 j3; m1 m2 m3)",
		Example: "  wigner 3j 5/2 3/2 1 3/2 -1/2 -1",
		Args:    cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseQuantums(args)
			if err != nil {
				return err
			}
			r := threej.Request{J1: v[0], J2: v[1], J3: v[2], M1: v[3], M2: v[4], M3: v[5]}

			log := a.log.With("symbol", "3j", "request", r.String())
			if !threej.NonZero(r, racah.Resolve(a.opts...).Epsilon()) {
				log.Debug("zero by selection rule")
			}
			val, err := r.Evaluate(a.opts...)
			if err != nil {
				return err
			}
			log.Info("evaluated", "method", a.cfg.Method, "value", val)

			return render.Write(cmd.OutOrStdout(), a.cfg.Output, render.Result{
				Symbol: "3j", Args: v, Method: a.cfg.Method, Value: val, Label: r.String(),
			})
		},
	}
	// Stop flag parsing at the first quantum number so "-1/2" stays an argument.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func sixjCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "6j j1 j2 j3 j4 j5 j6",
		Short:   "Evaluate the Wigner 6-j symbol {j1 j2 j3; j4 j5 j6}",
		Example: "  wigner 6j 1 2 3 2 1 2",
		Args:    cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseQuantums(args)
			if err != nil {
				return err
			}
			r := sixj.Request{J1: v[0], J2: v[1], J3: v[2], J4: v[3], J5: v[4], J6: v[5]}

			log := a.log.With("symbol", "6j", "request", r.String())
			if !sixj.NonZero(r, racah.Resolve(a.opts...).Epsilon()) {
				log.Debug("zero by triangle rule")
			}
			val, err := r.Evaluate(a.opts...)
			if err != nil {
				return err
			}
			log.Info("evaluated", "method", a.cfg.Method, "value", val)

			return render.Write(cmd.OutOrStdout(), a.cfg.Output, render.Result{
				Symbol: "6j", Args: v, Method: a.cfg.Method, Value: val, Label: r.String(),
			})
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}
