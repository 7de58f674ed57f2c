package config

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/komsit37/sg/pkg/sg/filter"
	"github.com/komsit37/sg/pkg/sg/render"
	"github.com/komsit37/sg/pkg/sg/view"
)

// EnvPrefix prefixes every environment override, e.g. SG_DELAY=500ms.
const EnvPrefix = "SG"

// Config holds all application configuration.
type Config struct {
	Delay    time.Duration
	Format   string
	Color    bool
	Pretty   bool
	Data     string
	Filter   string
	LogLevel string
	LogFile  string
	Progress bool
	Width    int
}

// Defaults are applied below flags, env and config file.
var Defaults = map[string]any{
	"delay":     view.DefaultDelay.String(),
	"format":    "text",
	"color":     true,
	"pretty":    true,
	"data":      "",
	"filter":    "",
	"log-level": "info",
	"log-file":  "",
	"progress":  false,
	"width":     0,
}

// New returns a viper instance wired for env overrides and defaults.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for k, d := range Defaults {
		v.SetDefault(k, d)
	}
	return v
}

// BindFlags binds every flag in fs that names a config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if _, ok := Defaults[f.Name]; !ok || err != nil {
			return
		}
		err = v.BindPFlag(f.Name, f)
	})
	return err
}

// Load reads the optional config file and returns the validated config.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	cfg := Config{
		Delay:    v.GetDuration("delay"),
		Format:   strings.ToLower(strings.TrimSpace(v.GetString("format"))),
		Color:    v.GetBool("color"),
		Pretty:   v.GetBool("pretty"),
		Data:     v.GetString("data"),
		Filter:   v.GetString("filter"),
		LogLevel: v.GetString("log-level"),
		LogFile:  v.GetString("log-file"),
		Progress: v.GetBool("progress"),
		Width:    v.GetInt("width"),
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if _, err := render.ByFormat(c.Format); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	if _, err := filter.Parse(c.Filter); err != nil {
		return err
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	return nil
}
