// Package config loads application settings from defaults, an optional
// YAML file and PTO_-prefixed environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
	"github.com/warp/pto-projector/generic"
	"github.com/warp/pto-projector/timeoff"
)

// EnvPrefix prefixes every environment override, e.g. PTO_SERVER_PORT.
const EnvPrefix = "PTO_"

type Application struct {
	Server   Server   `koanf:"server"`
	Log      Log      `koanf:"log"`
	Holidays Holidays `koanf:"holidays"`
	Policy   Policy   `koanf:"policy"`
}

type Server struct {
	Port           int      `koanf:"port"`
	AllowedOrigins []string `koanf:"allowedorigins"`
}

type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type Holidays struct {
	// Source is "company" (the fixed company list) or "us-federal".
	Source string `koanf:"source"`
	// Year selects which year a us-federal calendar lists.
	Year int `koanf:"year"`
}

type Policy struct {
	MaxPTO              float64 `koanf:"maxpto"`
	MaxSick             float64 `koanf:"maxsick"`
	PTOFloor            float64 `koanf:"ptofloor"`
	VacationHoursPerDay float64 `koanf:"vacationhoursperday"`
	HoursPerWorkday     int     `koanf:"hoursperworkday"`
	// MaxHorizonYears bounds how far ahead projections and workday counts reach.
	MaxHorizonYears int `koanf:"maxhorizonyears"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Application {
	return Application{
		Server: Server{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Holidays: Holidays{
			Source: timeoff.HolidaySourceCompany,
			Year:   timeoff.CompanyHolidayYear,
		},
		Policy: Policy{
			MaxPTO:              timeoff.DefaultMaxPTO,
			MaxSick:             timeoff.DefaultMaxSick,
			PTOFloor:            timeoff.DefaultPTOFloor,
			VacationHoursPerDay: timeoff.DefaultVacationHoursPerDay,
			HoursPerWorkday:     timeoff.DefaultHoursPerWorkday,
			MaxHorizonYears:     timeoff.DefaultMaxHorizonYears,
		},
	}
}

// Load reads configuration. A missing file at path is not an error; an
// empty path skips the file entirely.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Infof("Config file not found at %s, using defaults and environment variables", path)
			} else {
				log.Errorf("error loading config from YAML: %v", err)
				return Application{}, err
			}
		} else {
			log.Infof("Loaded configuration from file: %s", path)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), "_", ".")
			if k == "server.allowedorigins" {
				return k, strings.Split(v, ",")
			}
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return app, nil
}

// TimeoffPolicy converts the configured limits into an engine policy.
func (p Policy) TimeoffPolicy() (timeoff.Policy, error) {
	policy := timeoff.Policy{
		MaxPTO:              generic.NewHours(p.MaxPTO),
		MaxSick:             generic.NewHours(p.MaxSick),
		PTOFloor:            generic.NewHours(p.PTOFloor),
		VacationHoursPerDay: generic.NewHours(p.VacationHoursPerDay),
		HoursPerWorkday:     p.HoursPerWorkday,
		MaxHorizonYears:     p.MaxHorizonYears,
	}
	if err := policy.Validate(); err != nil {
		return timeoff.Policy{}, fmt.Errorf("invalid policy config: %w", err)
	}
	return policy, nil
}

// ConfigureLogging applies the log level and format to the standard logrus
// logger.
func (l Log) ConfigureLogging() error {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	log.SetLevel(level)

	switch l.Format {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("invalid log format %q", l.Format)
	}
	return nil
}
