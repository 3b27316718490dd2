package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/KaramelBytes/statlens-cli/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Ranking and filter defaults
	MinGames int `mapstructure:"min_games" yaml:"min_games" validate:"gte=0,lte=82"`
	TopN     int `mapstructure:"top_n" yaml:"top_n" validate:"gte=5,lte=50"`
	Bins     int `mapstructure:"histogram_bins" yaml:"histogram_bins" validate:"gte=1,lte=200"`

	// Column naming
	IdentityColumn    string   `mapstructure:"identity_column" yaml:"identity_column" validate:"required"`
	TeamColumn        string   `mapstructure:"team_column" yaml:"team_column" validate:"required"`
	PositionColumn    string   `mapstructure:"position_column" yaml:"position_column" validate:"required"`
	CountColumn       string   `mapstructure:"count_column" yaml:"count_column" validate:"required"`
	CategoricalExtras []string `mapstructure:"categorical_columns" yaml:"categorical_columns"`

	// Output
	OutputDir  string `mapstructure:"output_dir" yaml:"output_dir"`
	ChartWidth int    `mapstructure:"chart_width" yaml:"chart_width" validate:"gte=10,lte=200"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" validate:"oneof=text json"`
}

var validate = newValidator()

// newValidator reports CLI request fields by their `flag` tag so messages
// name what the user typed.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("flag"); name != "" {
			return "--" + name
		}
		return f.Name
	})
	return v
}

// Validate checks ranges and enumerations declared on the struct tags.
func (c *Global) Validate() error {
	if err := Check(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Check validates any struct carrying `validate` tags and folds the field
// errors into one readable message.
func Check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// Defaults returns the configuration used when no file or environment
// overrides are present.
func Defaults() *Global {
	return &Global{
		MinGames:       20,
		TopN:           10,
		Bins:           20,
		IdentityColumn: "Player",
		TeamColumn:     "Tm",
		PositionColumn: "Pos",
		CountColumn:    "G",
		ChartWidth:     40,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".statlens"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.statlens/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("STATLENS")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("min_games", d.MinGames)
	v.SetDefault("top_n", d.TopN)
	v.SetDefault("histogram_bins", d.Bins)
	v.SetDefault("identity_column", d.IdentityColumn)
	v.SetDefault("team_column", d.TeamColumn)
	v.SetDefault("position_column", d.PositionColumn)
	v.SetDefault("count_column", d.CountColumn)
	v.SetDefault("categorical_columns", []string{})
	v.SetDefault("output_dir", "")
	v.SetDefault("chart_width", d.ChartWidth)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
