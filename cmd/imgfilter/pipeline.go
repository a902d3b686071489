package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-raster/internal/imageio"
	"github.com/cwbudde/algo-raster/raster/engine"
)

// Pipeline is an ordered list of steps applied to one image by one engine,
// so an fft step can be followed by an ifft step.
//
//	steps:
//	  - op: grayscale
//	  - op: median
//	    kernel: 5
//	  - op: fft
//	    save: spectrum.png
//	  - op: ifft
type Pipeline struct {
	Steps []Step `yaml:"steps"`
}

// Step is one pipeline entry. Threshold and Kernel default to the engine
// defaults when omitted. Save writes the frame after the step.
type Step struct {
	Op        string `yaml:"op"`
	Threshold *int   `yaml:"threshold,omitempty"`
	Kernel    *int   `yaml:"kernel,omitempty"`
	Save      string `yaml:"save,omitempty"`
}

var errEmptyPipeline = errors.New("pipeline: no steps")

// ParsePipeline decodes and validates a YAML step file. Unknown keys are
// rejected.
func ParsePipeline(r io.Reader) (*Pipeline, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Pipeline
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyPipeline
		}
		return nil, fmt.Errorf("failed to parse pipeline: %w", err)
	}
	if len(p.Steps) == 0 {
		return nil, errEmptyPipeline
	}
	for i, s := range p.Steps {
		if _, err := engine.ParseOperation(s.Op); err != nil {
			return nil, fmt.Errorf("pipeline step %d: %w", i+1, err)
		}
	}
	return &p, nil
}

// LoadPipeline reads a step file from disk.
func LoadPipeline(path string) (*Pipeline, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("failed to open pipeline file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ParsePipeline(f)
}

// Ops returns the step operations in order.
func (p *Pipeline) Ops() []engine.Operation {
	return lo.Map(p.Steps, func(s Step, _ int) engine.Operation {
		op, _ := engine.ParseOperation(s.Op)
		return op
	})
}

func (s Step) params() engine.Params {
	p := engine.DefaultParams()
	if s.Threshold != nil {
		p.Threshold = *s.Threshold
	}
	if s.Kernel != nil {
		p.KernelSize = *s.Kernel
	}
	return p
}

// Run applies every step to f. It stops at the first failing step; steps
// before it stay applied.
func (p *Pipeline) Run(eng *engine.Engine, f *imageio.Frame) error {
	for i, op := range p.Ops() {
		s := p.Steps[i]
		if err := eng.Apply(op, f.Pix, f.Width, f.Height, s.params()); err != nil {
			return fmt.Errorf("pipeline step %d (%s): %w", i+1, op, err)
		}
		if s.Save != "" {
			if err := imageio.Save(s.Save, f); err != nil {
				return fmt.Errorf("pipeline step %d (%s): %w", i+1, op, err)
			}
		}
	}
	return nil
}

func newPipelineCmd(a *app) *cobra.Command {
	var stepsPath string
	cmd := &cobra.Command{
		Use:   "pipeline --steps <file.yaml> <input> <output>",
		Short: "apply the steps of a YAML file in order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := LoadPipeline(stepsPath)
			if err != nil {
				return err
			}
			eng, err := a.newEngine()
			if err != nil {
				return err
			}
			a.logger.Debug("pipeline", "steps", len(p.Steps),
				"ops", fmt.Sprint(lo.Uniq(p.Ops())))
			return transformFile(args[0], args[1], func(f *imageio.Frame) error {
				return p.Run(eng, f)
			})
		},
	}
	cmd.Flags().StringVar(&stepsPath, "steps", "", "YAML step file")
	_ = cmd.MarkFlagRequired("steps")
	return cmd
}
