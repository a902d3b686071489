package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-raster/raster/engine"
	"github.com/cwbudde/algo-raster/raster/fft"
	"github.com/cwbudde/algo-raster/raster/filter"
)

const envPrefix = "IMGFILTER"

// app holds the state shared by one command tree.
type app struct {
	v          *viper.Viper
	configFile string
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "imgfilter",
		Short: "Spatial and frequency-domain filters for BGRA images",
		Long: `imgfilter decodes an image into a 4-channel BGRA buffer, runs one or
more raster engine operations on it and writes the result.

Spatial filters: grayscale, blur, sobel, laplacian, binarize.
Morphology: dilate, erode, open, close, median.
Frequency domain: spectrum (log-magnitude view), roundtrip, and the fft/ifft
steps of a pipeline.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "",
		"config file (default is ./imgfilter.yaml or $HOME/.config/imgfilter/imgfilter.yaml)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.Int("workers", 0, "row-parallel workers (0 = one per CPU)")
	pf.Int("blur-radius", filter.DefaultRadius, "Gaussian blur radius")
	pf.Float64("blur-sigma", filter.DefaultSigma, "Gaussian blur sigma")
	pf.String("fft-backend", "radix2", "FFT line transform (radix2, algofft)")

	root.AddCommand(filterCommands(a)...)
	root.AddCommand(
		newSpectrumCmd(a),
		newRoundTripCmd(a),
		newPipelineCmd(a),
		newOpsCmd(),
		newInfoCmd(a),
	)
	return root
}

// initConfig reads the config file and environment, binds the parsed
// flags and installs the logger.
func (a *app) initConfig(cmd *cobra.Command) error {
	v := a.v
	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "imgfilter"))
		}
		v.SetConfigName("imgfilter")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := bindFlags(cmd, v); err != nil {
		return err
	}

	level, err := parseLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	engine.SetLogger(a.logger)
	if used := v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "path", used)
	}
	return nil
}

// bindFlags binds each cobra flag to its viper key and IMGFILTER_ variable.
// Config and environment values fill flags the user did not set.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "help" {
			return
		}
		envVar := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if err := v.BindEnv(f.Name, envVar); err != nil {
			lastErr = err
		}

		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				lastErr = fmt.Errorf("flag --%s: %w", f.Name, err)
			}
		}

		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// newEngine builds an engine from the bound configuration.
func (a *app) newEngine() (*engine.Engine, error) {
	backend, err := fft.BackendByName(a.v.GetString("fft-backend"))
	if err != nil {
		return nil, err
	}
	return engine.New(
		engine.WithWorkers(a.v.GetInt("workers")),
		engine.WithBlurRadius(a.v.GetInt("blur-radius")),
		engine.WithBlurSigma(a.v.GetFloat64("blur-sigma")),
		engine.WithFFTBackend(backend),
	), nil
}
