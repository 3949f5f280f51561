package config

import (
	"fmt"
	"reflect"
	"strings"

	"splitnest-cli/core/database"
	"splitnest-cli/core/envfile"
	"splitnest-cli/core/logger"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces the tool's own environment variables (SPLITNEST_LOG_LEVEL, ...).
const EnvPrefix = "SPLITNEST"

// Config holds all configuration for the CLI.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the MongoDB connection check.
	Database database.Config `mapstructure:"database"`
	// Setup holds the defaults written by the setup command.
	Setup SetupConfig `mapstructure:"setup"`

	// Dir is the working directory the configuration file was resolved in.
	Dir string `mapstructure:"-"`
	// EnvPath is the location of the configuration file.
	EnvPath string `mapstructure:"-"`
	// EnvFound reports whether the configuration file existed.
	EnvFound bool `mapstructure:"-"`
	// Env is the parsed configuration record (empty when EnvFound is false).
	Env envfile.Record `mapstructure:"-"`
}

// LoadConfig loads configuration from dir/.env.local, environment variables
// and defaults.
//
// Values from the configuration file take precedence over the process
// environment, which is only read, never modified.
func LoadConfig(dir string) (*Config, error) {
	envPath := envfile.Path(dir)

	// A missing file is fine: the process environment is used as is.
	record, found, err := envfile.Load(envPath)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SPLITNEST_LOG_LEVEL -> log.level)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The connection string keeps the name the web application uses.
	if err := v.BindEnv("database.uri", envfile.KeyMongoURI); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", envfile.KeyMongoURI, err)
	}
	if uri, ok := record.Get(envfile.KeyMongoURI); ok {
		v.Set("database.uri", uri)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Dir = dir
	config.EnvPath = envPath
	config.EnvFound = found
	config.Env = record

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip untagged and explicitly ignored fields
		if tag == "" || tag == "-" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
