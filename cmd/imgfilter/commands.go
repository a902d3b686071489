package main

import (
	"fmt"
	"math/cmplx"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-raster/internal/cpu"
	"github.com/cwbudde/algo-raster/internal/imageio"
	"github.com/cwbudde/algo-raster/raster/engine"
)

// filterCommands returns one subcommand per in-place engine operation.
func filterCommands(a *app) []*cobra.Command {
	ops := lo.Filter(engine.Operations(), func(op engine.Operation, _ int) bool {
		return op != engine.OpForwardTransform && op != engine.OpInverseTransform
	})
	return lo.Map(ops, func(op engine.Operation, _ int) *cobra.Command {
		return newFilterCmd(a, op)
	})
}

func newFilterCmd(a *app, op engine.Operation) *cobra.Command {
	params := engine.DefaultParams()
	cmd := &cobra.Command{
		Use:   string(op) + " <input> <output>",
		Short: op.Summary(),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.newEngine()
			if err != nil {
				return err
			}
			return transformFile(args[0], args[1], func(f *imageio.Frame) error {
				return eng.Apply(op, f.Pix, f.Width, f.Height, params)
			})
		},
	}
	switch op.Parameter() {
	case "threshold":
		cmd.Flags().IntVar(&params.Threshold, "threshold", params.Threshold, "luma threshold in [0,255]")
	case "kernel":
		cmd.Flags().IntVarP(&params.KernelSize, "kernel", "k", params.KernelSize, "odd window size")
	}
	return cmd
}

// transformFile loads in, applies fn and saves the frame to out.
func transformFile(in, out string, fn func(*imageio.Frame) error) error {
	f, err := imageio.Load(in)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		return err
	}
	return imageio.Save(out, f)
}

func newSpectrumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spectrum <input> <output>",
		Short: "write the log-magnitude view of the 2D FFT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.newEngine()
			if err != nil {
				return err
			}
			return transformFile(args[0], args[1], func(f *imageio.Frame) error {
				spec, err := eng.ForwardTransform(f.Pix, f.Width, f.Height)
				if err != nil {
					return err
				}
				a.logger.Info("spectrum",
					"width", spec.Width(), "height", spec.Height(),
					"padded_width", spec.PaddedWidth(), "padded_height", spec.PaddedHeight(),
					"dc", cmplx.Abs(spec.Bin(0, 0)))
				return nil
			})
		},
	}
}

func newRoundTripCmd(a *app) *cobra.Command {
	var spectrumOut string
	cmd := &cobra.Command{
		Use:   "roundtrip <input> <output>",
		Short: "forward then inverse FFT; writes the reconstructed grayscale image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.newEngine()
			if err != nil {
				return err
			}
			return transformFile(args[0], args[1], func(f *imageio.Frame) error {
				if _, err := eng.ForwardTransform(f.Pix, f.Width, f.Height); err != nil {
					return err
				}
				if spectrumOut != "" {
					view := &imageio.Frame{Pix: append([]byte(nil), f.Pix...), Width: f.Width, Height: f.Height}
					if err := imageio.Save(spectrumOut, view); err != nil {
						return err
					}
				}
				return eng.InverseTransform(f.Pix, f.Width, f.Height)
			})
		},
	}
	cmd.Flags().StringVar(&spectrumOut, "spectrum", "", "also write the spectrum view to this path")
	return cmd
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "list engine operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "OPERATION\tPARAMETER\tDESCRIPTION")
			for _, op := range engine.Operations() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", op, lo.Ternary(op.Parameter() == "", "-", op.Parameter()), op.Summary())
			}
			return tw.Flush()
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "print CPU features and the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.newEngine()
			if err != nil {
				return err
			}
			cfg := eng.Config()
			w := cmd.OutOrStdout()
			features := cpu.DetectFeatures()
			fmt.Fprintf(w, "cpu:          %s\n", features.Summary())
			fmt.Fprintf(w, "simd:         %s\n", features.Best())
			fmt.Fprintf(w, "workers:      %d\n", cfg.Workers)
			fmt.Fprintf(w, "blur radius:  %d\n", cfg.BlurRadius)
			fmt.Fprintf(w, "blur sigma:   %g\n", cfg.BlurSigma)
			fmt.Fprintf(w, "fft backend:  %s\n", cfg.Backend.Name())
			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(w, "config file:  %s\n", used)
			}
			return nil
		},
	}
}
