// Command seriesdemo drives series handlers headlessly from a JSON chart
// description and reports the labels, titles and legend they produce.
//
// Usage:
//
//	seriesdemo chart.json --format msgpack -o out.bin --png labels.png
//
// Defaults come from SERIESDEMO_* environment variables or a .env file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/container"
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/text"
	"github.com/gogpu/ggchart/widget"
)

func main() {
	if err := newRootCmd(loadConfig()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seriesdemo [input.json]",
		Short: "Run series handlers over a chart description",
		Long: `seriesdemo builds a chart from a JSON description, ticks its series
handlers for a number of frames and writes the resulting labels, titles and
legend as JSON or MessagePack. Optionally the label layout is rendered to PNG.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args[0], cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output file path (default: stdout)")
	f.StringVar(&cfg.Format, "format", cfg.Format, "Output format: json, msgpack")
	f.StringVar(&cfg.Theme, "theme", cfg.Theme, "Theme: default, dark (overrides the input file)")
	f.IntVar(&cfg.Width, "width", cfg.Width, "Chart width")
	f.IntVar(&cfg.Height, "height", cfg.Height, "Chart height")
	f.IntVar(&cfg.Frames, "frames", cfg.Frames, "Number of update frames to run")
	f.BoolVar(&cfg.Shaping, "shaping", cfg.Shaping, "Measure labels with the shaping measurer")
	f.IntVar(&cfg.Tooltip, "tooltip", cfg.Tooltip, "Data index to collect tooltip parameters for (-1: none)")
	f.StringVar(&cfg.PNG, "png", cfg.PNG, "Render the label layout to this PNG file")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	f.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Also write logs to this rotated file")
	return cmd
}

func run(stdout io.Writer, inputPath string, cfg Config) error {
	closer, err := setupLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer closer.Close()

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	themeName, ss, err := decodeInput(in)
	_ = in.Close()
	if err != nil {
		return err
	}

	c, err := buildChart(cfg, themeName)
	if err != nil {
		return err
	}
	for _, s := range ss {
		c.AddSerie(s)
	}
	frames := max(cfg.Frames, 1)
	for i := 0; i < frames; i++ {
		c.Update()
	}
	ggchart.Logger().Info("chart updated", "series", len(ss), "frames", frames)

	out := stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := writeReport(out, buildReport(c, cfg.Tooltip), cfg.Format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.PNG != "" {
		if err := writePNG(c, cfg.PNG); err != nil {
			return fmt.Errorf("render png: %w", err)
		}
	}
	return nil
}

func buildChart(cfg Config, inputTheme string) (*container.Chart, error) {
	name := inputTheme
	if cfg.Theme != "" && cfg.Theme != "default" {
		name = cfg.Theme
	}
	theme, ok := style.ThemeByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", name)
	}

	var m text.Measurer = text.NewBasicMeasurer()
	if cfg.Shaping {
		sm, err := text.NewGoRegularMeasurer()
		if err != nil {
			return nil, fmt.Errorf("load shaping measurer: %w", err)
		}
		m = sm
	}

	return container.New(
		container.WithBounds(style.Rect{W: float64(cfg.Width), H: float64(cfg.Height)}),
		container.WithTheme(theme),
		container.WithPool(widget.NewPool(m)),
	), nil
}
