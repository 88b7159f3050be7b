package main

import "time"

// Default window, camera, and control configuration. Runtime overrides come
// from settings.go; these values seed its defaults.
const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
	defaultWindowTitle  = "Doppler Shift - 3D Simulator"
	defaultTPS          = 60
	minTPS              = 10
	maxTPS              = 240
	tpsStep             = 10

	defaultBaseFrequency = 1000.0
	defaultDistance      = 5.0
	defaultAngleDeg      = 0.0
	defaultSpeed         = 20.0

	defaultAngleRate     = 60.0 // deg/s
	defaultSpeedRate     = 20.0 // m/s per s
	defaultFrequencyRate = 50.0 // Hz/s
	defaultDistanceRate  = 5.0  // m/s

	minSpeed         = 0.0
	minBaseFrequency = 1.0
	minDistance      = 0.5

	orbitSensitivity = 0.003
	orbitRadius      = 8.0
	orbitHeight      = 3.0
	minOrbitPitch    = -0.2
	maxOrbitPitch    = 1.2
	wheelFovStep     = 2.0
	minFovY          = 20.0
	maxFovY          = 90.0
	defaultFovY      = 60.0
	cameraNear       = 0.05

	entityHeight     = 0.8
	sphereRadius     = 0.25
	arrowThickness   = 0.05
	arcRadius        = 0.8
	arcSegments      = 24
	ringCount        = 6
	ringSpacing      = 0.4
	ringSegments     = 36
	gridSlices       = 20
	gridSpacing      = 1.0
	defaultSweepStep = 1.0
	defaultSweepMax  = 340.0

	pgoRecordDuration    = 15 * time.Second
	defaultPGOPath       = "default.pgo"
	autoSweepModePeriod  = 3 * time.Second
	metricsShutdownGrace = 2 * time.Second
)
