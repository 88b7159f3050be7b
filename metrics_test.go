package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dopplersim/doppler"
)

func TestFrameMetrics_Observe(t *testing.T) {
	m, err := newFrameMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	p := startParams()
	r := doppler.Evaluate(p)
	m.observe(p, r)

	assert.Equal(t, r.Observed, testutil.ToFloat64(m.Observed))
	assert.Equal(t, 20.0, testutil.ToFloat64(m.Radial))
	assert.Equal(t, 1000.0, testutil.ToFloat64(m.BaseFrequency))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Distance))
	assert.Equal(t, 20.0, testutil.ToFloat64(m.Speed))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Angle))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SourceMoving))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Frames))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ClampedFrame))

	p.SourceMoving = false
	m.observe(p, doppler.Evaluate(p))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SourceMoving))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Frames))
}

func TestFrameMetrics_ClampedFrames(t *testing.T) {
	m, err := newFrameMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	p := startParams()
	p.Speed = doppler.SpeedOfSound
	m.observe(p, doppler.Evaluate(p))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClampedFrame))
}

func TestFrameMetrics_ReRegisterReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := newFrameMetrics(reg)
	require.NoError(t, err)
	second, err := newFrameMetrics(reg)
	require.NoError(t, err)

	p := startParams()
	first.observe(p, doppler.Evaluate(p))
	second.observe(p, doppler.Evaluate(p))
	assert.Equal(t, 2.0, testutil.ToFloat64(first.Frames))
}

func TestFrameMetrics_NilIsNoop(t *testing.T) {
	var m *frameMetrics
	p := startParams()
	assert.NotPanics(t, func() { m.observe(p, doppler.Evaluate(p)) })
}

func TestFrameMetrics_Handler(t *testing.T) {
	m, err := newFrameMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	p := startParams()
	m.observe(p, doppler.Evaluate(p))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "doppler_frames_total 1")
	assert.Contains(t, body, "doppler_source_moving 1")
	assert.Contains(t, body, "doppler_base_frequency_hz 1000")
	assert.Contains(t, body, "doppler_distance_meters 5")
}

func TestServeMetrics_Shutdown(t *testing.T) {
	m, err := newFrameMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	stop := serveMetrics("127.0.0.1:0", m, zerolog.Nop())
	assert.NoError(t, stop(context.Background()))
}
