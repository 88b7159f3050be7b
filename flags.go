package main

import "github.com/spf13/pflag"

// newFlagSet declares the command-line flags. Each flag is bound to a settings
// key in loadSettings, so a flag only wins when it was set explicitly.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.String("config", "", "path to a config file (yaml, json or toml)")

	fs.Int("width", defaultWindowWidth, "initial window width in pixels")
	fs.Int("height", defaultWindowHeight, "initial window height in pixels")
	fs.Int("tps", defaultTPS, "simulation ticks per second")

	fs.Float64("base-frequency", defaultBaseFrequency, "emitted frequency in Hz")
	fs.Float64("distance", defaultDistance, "source to receiver distance in meters")
	fs.Float64("angle", defaultAngleDeg, "angle between velocity and line of sight in degrees")
	fs.Float64("speed", defaultSpeed, "speed of the moving entity in m/s")
	fs.Bool("moving-source", true, "start with the source moving (false moves the receiver)")

	// show-help toggles the physics help box at startup.
	fs.Bool("show-help", true, "show the physics help box")

	// debug enables the FPS and tick-rate overlay plus its hotkeys.
	fs.Bool("debug", false, "show FPS and tick rate overlay")

	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("log-format", "console", "log output format (console or json)")

	fs.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")

	fs.String("export-sweep", "", "write an observed-frequency chart to this HTML file and exit")
	fs.String("sweep-axis", "angle", "sweep axis for --export-sweep (angle or speed)")
	fs.Float64("sweep-max-speed", defaultSweepMax, "upper speed bound for a speed sweep in m/s")
	fs.Float64("sweep-step", defaultSweepStep, "sweep step in degrees or m/s")

	// record-default-pgo runs the automatic demo while capturing a CPU profile.
	fs.Bool("record-default-pgo", false, "run the demo for 15s while capturing default.pgo")
	fs.String("pgo-path", defaultPGOPath, "output path for --record-default-pgo")

	return fs
}
