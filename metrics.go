package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"dopplersim/doppler"
)

// frameMetrics exports the model inputs and outputs of the latest frame.
type frameMetrics struct {
	gatherer prometheus.Gatherer

	Observed      prometheus.Gauge
	Radial        prometheus.Gauge
	BaseFrequency prometheus.Gauge
	Distance      prometheus.Gauge
	Speed         prometheus.Gauge
	Angle         prometheus.Gauge
	SourceMoving  prometheus.Gauge

	Frames       prometheus.Counter
	ClampedFrame prometheus.Counter
}

// newFrameMetrics registers the collectors against reg, defaulting to the
// global Prometheus registry when nil.
func newFrameMetrics(reg prometheus.Registerer) (*frameMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	m := &frameMetrics{gatherer: gatherer}
	gauges := []struct {
		dst  *prometheus.Gauge
		name string
		help string
	}{
		{&m.Observed, "doppler_observed_frequency_hz", "Frequency heard at the receiver in Hz."},
		{&m.Radial, "doppler_radial_speed_mps", "Velocity component along the line of sight in m/s; positive closes distance."},
		{&m.BaseFrequency, "doppler_base_frequency_hz", "Frequency emitted by the source in Hz."},
		{&m.Distance, "doppler_distance_meters", "Distance between source and receiver in meters."},
		{&m.Speed, "doppler_speed_mps", "Speed of the moving entity in m/s."},
		{&m.Angle, "doppler_angle_degrees", "Angle between the velocity and the line of sight in degrees."},
		{&m.SourceMoving, "doppler_source_moving", "1 when the source moves, 0 when the receiver moves."},
	}
	for _, g := range gauges {
		gauge, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{Name: g.name, Help: g.help}), g.name)
		if err != nil {
			return nil, err
		}
		*g.dst = gauge
	}

	var err error
	m.Frames, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "doppler_frames_total",
		Help: "Total number of evaluated frames.",
	}), "doppler_frames_total")
	if err != nil {
		return nil, err
	}
	m.ClampedFrame, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "doppler_sonic_clamp_frames_total",
		Help: "Frames where the moving-source denominator hit the sonic clamp.",
	}), "doppler_sonic_clamp_frames_total")
	if err != nil {
		return nil, err
	}
	return m, nil
}

// observe records one evaluated frame. A nil receiver is a no-op.
func (m *frameMetrics) observe(p doppler.Parameters, r doppler.Result) {
	if m == nil {
		return
	}
	m.Observed.Set(r.Observed)
	m.Radial.Set(r.Radial)
	m.BaseFrequency.Set(p.BaseFrequency)
	m.Distance.Set(p.Distance)
	m.Speed.Set(p.Speed)
	m.Angle.Set(p.AngleDegrees)
	if p.SourceMoving {
		m.SourceMoving.Set(1)
	} else {
		m.SourceMoving.Set(0)
	}
	m.Frames.Inc()
	if r.Clamped {
		m.ClampedFrame.Inc()
	}
}

// Handler exposes the registered metrics in the Prometheus text format.
func (m *frameMetrics) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if m != nil && m.gatherer != nil {
		gatherer = m.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// serveMetrics starts an HTTP server for /metrics on addr. The returned stop
// function shuts it down.
func serveMetrics(addr string, m *frameMetrics, logger zerolog.Logger) func(context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", addr).Msg("Serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", addr).Msg("Metrics server failed")
		}
	}()
	return srv.Shutdown
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
