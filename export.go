package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rs/zerolog"

	"dopplersim/doppler"
)

type sweepAxis uint8

const (
	sweepAngle sweepAxis = iota
	sweepSpeed
)

func parseSweepAxis(text string) (sweepAxis, error) {
	switch strings.ToLower(text) {
	case "angle", "a":
		return sweepAngle, nil
	case "speed", "s":
		return sweepSpeed, nil
	default:
		return 0, fmt.Errorf("invalid sweep axis: %q", text)
	}
}

func (a sweepAxis) String() string {
	if a == sweepSpeed {
		return "speed"
	}
	return "angle"
}

// sweepSeries evaluates the configured parameters over axis once per mode.
func sweepSeries(p doppler.Parameters, axis sweepAxis, maxSpeed, step float64) (source, receiver []doppler.Sample) {
	run := func(q doppler.Parameters) []doppler.Sample {
		if axis == sweepSpeed {
			return doppler.SweepSpeed(q, 0, maxSpeed, step)
		}
		return doppler.SweepAngle(q, 0, 360, step)
	}
	p.SourceMoving = true
	source = run(p)
	p.SourceMoving = false
	receiver = run(p)
	return source, receiver
}

// newSweepChart builds a two-series line chart of observed frequency.
func newSweepChart(p doppler.Parameters, axis sweepAxis, source, receiver []doppler.Sample) *charts.Line {
	line := charts.NewLine()

	xName := "Angle, deg"
	subtitle := fmt.Sprintf("f0 = %.1f Hz, v = %.1f m/s", p.BaseFrequency, p.Speed)
	if axis == sweepSpeed {
		xName = "Speed, m/s"
		subtitle = fmt.Sprintf("f0 = %.1f Hz, angle = %.1f deg", p.BaseFrequency, p.AngleDegrees)
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     "100%",
			Height:    "600px",
			PageTitle: "Doppler shift sweep",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Observed frequency vs " + axis.String(),
			Subtitle: subtitle,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Orient: "horizontal",
			Top:    "bottom",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: xName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Observed frequency, Hz",
			Type:  "value",
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	xs := make([]float64, len(source))
	for i, s := range source {
		xs[i] = s.X
	}
	line.SetXAxis(xs)
	line.AddSeries("Moving source", lineData(source))
	line.AddSeries("Moving receiver", lineData(receiver))
	return line
}

func lineData(samples []doppler.Sample) []opts.LineData {
	data := make([]opts.LineData, len(samples))
	for i, s := range samples {
		data[i] = opts.LineData{Value: s.Observed}
	}
	return data
}

// writeSweepChart renders the sweep described by s as HTML into w.
func writeSweepChart(w io.Writer, s *Settings) error {
	axis, err := parseSweepAxis(s.Export.Axis)
	if err != nil {
		return err
	}
	p := s.parameters()
	source, receiver := sweepSeries(p, axis, s.Export.MaxSpeed, s.Export.Step)
	if len(source) == 0 {
		return fmt.Errorf("empty %s sweep (step %v)", axis, s.Export.Step)
	}
	if err := newSweepChart(p, axis, source, receiver).Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// exportSweep writes the sweep chart to the file named by s.Export.Sweep.
func exportSweep(s *Settings, logger zerolog.Logger) error {
	path := s.Export.Sweep
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := writeSweepChart(f, s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", path, err)
	}
	logger.Info().Str("path", path).Str("axis", s.Export.Axis).Float64("step", s.Export.Step).Msg("Sweep chart written")
	return nil
}
