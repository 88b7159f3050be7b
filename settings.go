package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dopplersim/doppler"
)

// Settings is the resolved runtime configuration. Precedence, highest first:
// explicit flags, DOPPLER_* environment variables, config file, defaults.
type Settings struct {
	Window     WindowSettings     `mapstructure:"window"`
	Simulation SimulationSettings `mapstructure:"simulation"`
	Controls   ControlSettings    `mapstructure:"controls"`
	HUD        HUDSettings        `mapstructure:"hud"`
	Log        LogSettings        `mapstructure:"log"`
	Metrics    MetricsSettings    `mapstructure:"metrics"`
	Export     ExportSettings     `mapstructure:"export"`
	Profile    ProfileSettings    `mapstructure:"profile"`
}

// WindowSettings holds window and tick configuration.
type WindowSettings struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	TPS    int    `mapstructure:"tps"`
}

// SimulationSettings holds the parameters the simulator starts with.
type SimulationSettings struct {
	BaseFrequency float64 `mapstructure:"baseFrequency"`
	Distance      float64 `mapstructure:"distance"`
	AngleDeg      float64 `mapstructure:"angleDeg"`
	Speed         float64 `mapstructure:"speed"`
	MovingSource  bool    `mapstructure:"movingSource"`
}

// ControlSettings holds per-second rates for held keys.
type ControlSettings struct {
	AngleRate     float64 `mapstructure:"angleRate"`
	SpeedRate     float64 `mapstructure:"speedRate"`
	FrequencyRate float64 `mapstructure:"frequencyRate"`
	DistanceRate  float64 `mapstructure:"distanceRate"`
}

type HUDSettings struct {
	ShowHelp bool `mapstructure:"showHelp"`
	Debug    bool `mapstructure:"debug"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsSettings struct {
	Addr string `mapstructure:"addr"`
}

// ExportSettings configures the headless sweep chart export.
type ExportSettings struct {
	Sweep    string  `mapstructure:"sweep"`
	Axis     string  `mapstructure:"axis"`
	MaxSpeed float64 `mapstructure:"maxSpeed"`
	Step     float64 `mapstructure:"step"`
}

type ProfileSettings struct {
	RecordDefaultPGO bool          `mapstructure:"recordDefaultPGO"`
	Path             string        `mapstructure:"path"`
	Duration         time.Duration `mapstructure:"duration"`
}

// flagKeys maps flag names to settings keys.
var flagKeys = map[string]string{
	"width":              "window.width",
	"height":             "window.height",
	"tps":                "window.tps",
	"base-frequency":     "simulation.baseFrequency",
	"distance":           "simulation.distance",
	"angle":              "simulation.angleDeg",
	"speed":              "simulation.speed",
	"moving-source":      "simulation.movingSource",
	"show-help":          "hud.showHelp",
	"debug":              "hud.debug",
	"log-level":          "log.level",
	"log-format":         "log.format",
	"metrics-addr":       "metrics.addr",
	"export-sweep":       "export.sweep",
	"sweep-axis":         "export.axis",
	"sweep-max-speed":    "export.maxSpeed",
	"sweep-step":         "export.step",
	"record-default-pgo": "profile.recordDefaultPGO",
	"pgo-path":           "profile.path",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", defaultWindowWidth)
	v.SetDefault("window.height", defaultWindowHeight)
	v.SetDefault("window.title", defaultWindowTitle)
	v.SetDefault("window.tps", defaultTPS)

	v.SetDefault("simulation.baseFrequency", defaultBaseFrequency)
	v.SetDefault("simulation.distance", defaultDistance)
	v.SetDefault("simulation.angleDeg", defaultAngleDeg)
	v.SetDefault("simulation.speed", defaultSpeed)
	v.SetDefault("simulation.movingSource", true)

	v.SetDefault("controls.angleRate", defaultAngleRate)
	v.SetDefault("controls.speedRate", defaultSpeedRate)
	v.SetDefault("controls.frequencyRate", defaultFrequencyRate)
	v.SetDefault("controls.distanceRate", defaultDistanceRate)

	v.SetDefault("hud.showHelp", true)
	v.SetDefault("hud.debug", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("metrics.addr", "")

	v.SetDefault("export.sweep", "")
	v.SetDefault("export.axis", "angle")
	v.SetDefault("export.maxSpeed", defaultSweepMax)
	v.SetDefault("export.step", defaultSweepStep)

	v.SetDefault("profile.recordDefaultPGO", false)
	v.SetDefault("profile.path", defaultPGOPath)
	v.SetDefault("profile.duration", pgoRecordDuration)
}

// loadSettings resolves Settings from defaults, an optional config file, the
// environment and the parsed flag set.
func loadSettings(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %q: %w", name, err)
			}
		}
	}

	v.SetEnvPrefix("DOPPLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, _ := fs.GetString("config")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %q: %w", configPath, err)
		}
	} else {
		v.SetConfigName("dopplersim")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", s.Window.TPS)
	}
	sim := s.Simulation
	for name, v := range map[string]float64{
		"base frequency":  sim.BaseFrequency,
		"distance":        sim.Distance,
		"angle":           sim.AngleDeg,
		"speed":           sim.Speed,
		"sweep step":      s.Export.Step,
		"sweep max speed": s.Export.MaxSpeed,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v", name, v)
		}
	}
	if sim.BaseFrequency <= 0 {
		return fmt.Errorf("base frequency must be positive, got %v", sim.BaseFrequency)
	}
	if sim.Speed < 0 {
		return fmt.Errorf("speed must not be negative, got %v", sim.Speed)
	}
	if sim.Distance <= 0 {
		return fmt.Errorf("distance must be positive, got %v", sim.Distance)
	}
	c := s.Controls
	if c.AngleRate <= 0 || c.SpeedRate <= 0 || c.FrequencyRate <= 0 || c.DistanceRate <= 0 {
		return fmt.Errorf("control rates must be positive")
	}
	if _, err := parseLogFormat(s.Log.Format); err != nil {
		return err
	}
	if _, err := parseSweepAxis(s.Export.Axis); err != nil {
		return err
	}
	if s.Export.Step <= 0 {
		return fmt.Errorf("sweep step must be positive, got %v", s.Export.Step)
	}
	if s.Export.MaxSpeed <= 0 {
		return fmt.Errorf("sweep max speed must be positive, got %v", s.Export.MaxSpeed)
	}
	return nil
}

// parameters returns the initial simulation parameters.
func (s *Settings) parameters() doppler.Parameters {
	return doppler.Parameters{
		BaseFrequency: s.Simulation.BaseFrequency,
		Distance:      s.Simulation.Distance,
		AngleDegrees:  s.Simulation.AngleDeg,
		Speed:         s.Simulation.Speed,
		SourceMoving:  s.Simulation.MovingSource,
	}
}

func (s *Settings) rates() controlRates {
	return controlRates{
		angle:     s.Controls.AngleRate,
		speed:     s.Controls.SpeedRate,
		frequency: s.Controls.FrequencyRate,
		distance:  s.Controls.DistanceRate,
	}
}
