package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"

	"github.com/rs/zerolog"
)

// profileRecording captures a CPU profile for PGO. Samples go to a temporary
// file beside path, and the profile only appears at path once Stop succeeds.
type profileRecording struct {
	path   string
	tmp    *os.File
	logger zerolog.Logger

	once sync.Once
	err  error
}

func recordProfile(path string, logger zerolog.Logger) (*profileRecording, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating profile for %q: %w", path, err)
	}
	if err := pprof.StartCPUProfile(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("starting cpu profile: %w", err)
	}
	return &profileRecording{path: path, tmp: tmp, logger: logger}, nil
}

// Stop ends the capture and moves the profile into place. Later calls return
// the result of the first.
func (r *profileRecording) Stop() error {
	r.once.Do(func() {
		pprof.StopCPUProfile()
		if err := r.tmp.Close(); err != nil {
			os.Remove(r.tmp.Name())
			r.err = fmt.Errorf("closing profile: %w", err)
			return
		}
		if err := os.Rename(r.tmp.Name(), r.path); err != nil {
			os.Remove(r.tmp.Name())
			r.err = fmt.Errorf("moving profile to %q: %w", r.path, err)
			return
		}
		r.logger.Info().Str("path", r.path).Msg("CPU profile written")
	})
	return r.err
}
