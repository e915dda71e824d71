package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/alexanderramin/gardenhelper/internal/garden"
)

// Config holds application configuration.
type Config struct {
	DB     DBConfig     `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
	Timing TimingConfig `mapstructure:"timing"`
}

// DBConfig holds sqlite settings. The default ":memory:" keeps nothing
// between runs.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type UIConfig struct {
	StartScreen string `mapstructure:"start_screen"`
	AltScreen   bool   `mapstructure:"alt_screen"`
}

// TimingConfig holds the cosmetic delays of the simulated experience.
type TimingConfig struct {
	SetupDelay       time.Duration `mapstructure:"setup_delay"`
	Toast            time.Duration `mapstructure:"toast"`
	MoistureInterval time.Duration `mapstructure:"moisture_interval"`
	PHInterval       time.Duration `mapstructure:"ph_interval"`
	AdvanceDelay     time.Duration `mapstructure:"advance_delay"`
	ResultsDelay     time.Duration `mapstructure:"results_delay"`
	LessonFollowUp   time.Duration `mapstructure:"lesson_followup"`
	SensorStart      time.Duration `mapstructure:"sensor_start"`
	SensorInterval   time.Duration `mapstructure:"sensor_interval"`
	VoicePhrase      time.Duration `mapstructure:"voice_phrase"`
	VoiceListen      time.Duration `mapstructure:"voice_listen"`
	VoiceClose       time.Duration `mapstructure:"voice_close"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// GARDEN_, e.g. GARDEN_DB_PATH.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	cfgPath := os.Getenv("GARDEN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gardenhelper"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GARDEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Only a missing default file is tolerated. A broken one, or any problem
	// with an explicit GARDEN_CONFIG, is an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	t := garden.DefaultTimings()

	v.SetDefault("db.path", ":memory:")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home, ".gardenhelper", "gardenhelper.log"))
	v.SetDefault("ui.start_screen", "welcome")
	v.SetDefault("ui.alt_screen", true)

	v.SetDefault("timing.setup_delay", t.SetupDelay)
	v.SetDefault("timing.toast", t.Toast)
	v.SetDefault("timing.moisture_interval", t.MoistureInterval)
	v.SetDefault("timing.ph_interval", t.PHInterval)
	v.SetDefault("timing.advance_delay", t.AdvanceDelay)
	v.SetDefault("timing.results_delay", t.ResultsDelay)
	v.SetDefault("timing.lesson_followup", t.LessonFollowUp)
	v.SetDefault("timing.sensor_start", t.SensorStart)
	v.SetDefault("timing.sensor_interval", t.SensorInterval)
	v.SetDefault("timing.voice_phrase", t.VoicePhrase)
	v.SetDefault("timing.voice_listen", t.VoiceListen)
	v.SetDefault("timing.voice_close", t.VoiceClose)
}

// Timings converts the timing section into controller timings.
func (c Config) Timings() garden.Timings {
	t := c.Timing
	return garden.Timings{
		SetupDelay:       t.SetupDelay,
		Toast:            t.Toast,
		MoistureInterval: t.MoistureInterval,
		PHInterval:       t.PHInterval,
		AdvanceDelay:     t.AdvanceDelay,
		ResultsDelay:     t.ResultsDelay,
		LessonFollowUp:   t.LessonFollowUp,
		SensorStart:      t.SensorStart,
		SensorInterval:   t.SensorInterval,
		VoicePhrase:      t.VoicePhrase,
		VoiceListen:      t.VoiceListen,
		VoiceClose:       t.VoiceClose,
	}
}
