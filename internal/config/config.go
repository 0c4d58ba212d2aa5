package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the declaration manifest
type Config struct {
	// Output settings
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Logging settings
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Declarations to validate and generate
	Declarations []DeclarationConfig `mapstructure:"declarations" yaml:"declarations"`
}

// OutputConfig contains generated-code output settings
type OutputConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir"`
	Package string `mapstructure:"package" yaml:"package"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	LogToFile   bool   `mapstructure:"log_to_file" yaml:"log_to_file"`
	LogFilePath string `mapstructure:"log_file_path" yaml:"log_file_path"`
}

// DeclarationConfig describes one identity declaration. Exactly one of
// ID or PDA must be set. A PDA declaration also requires Program and at
// least one seed.
type DeclarationConfig struct {
	Name    string   `mapstructure:"name" yaml:"name"`
	ID      string   `mapstructure:"id" yaml:"id"`
	PDA     string   `mapstructure:"pda" yaml:"pda"`
	Program string   `mapstructure:"program" yaml:"program"`
	Seeds   []string `mapstructure:"seeds" yaml:"seeds"`
}

// LoadConfig loads the manifest from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	setDefaults()

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		// Look for the manifest in the current directory and common
		// config directories
		viper.SetConfigName("declarations")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvPrefix("DECLAREGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvVariables()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("output.dir", "./generated")
	viper.SetDefault("output.package", "program")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "")
	viper.SetDefault("logging.log_to_file", false)
	viper.SetDefault("logging.log_file_path", "")
}

// bindEnvVariables manually binds environment variables that viper
// might miss for nested keys
func bindEnvVariables() {
	viper.BindEnv("output.dir", "DECLAREGEN_OUTPUT_DIR")
	viper.BindEnv("output.package", "DECLAREGEN_OUTPUT_PACKAGE")
	viper.BindEnv("logging.level", "DECLAREGEN_LOGGING_LEVEL")
	viper.BindEnv("logging.format", "DECLAREGEN_LOGGING_FORMAT")
	viper.BindEnv("logging.log_to_file", "DECLAREGEN_LOGGING_LOG_TO_FILE")
	viper.BindEnv("logging.log_file_path", "DECLAREGEN_LOGGING_LOG_FILE_PATH")
}

// validateConfig checks the manifest for structural problems before any
// cryptographic validation happens
func validateConfig(config *Config) error {
	if config.Output.Package == "" {
		return fmt.Errorf("output.package must not be empty")
	}
	if !isGoIdentifier(config.Output.Package) {
		return fmt.Errorf("output.package %q is not a valid Go package name", config.Output.Package)
	}
	if config.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}

	if len(config.Declarations) == 0 {
		return fmt.Errorf("manifest contains no declarations")
	}

	seen := make(map[string]bool, len(config.Declarations))
	for i, decl := range config.Declarations {
		if decl.Name == "" {
			return fmt.Errorf("declaration %d: name is required", i)
		}
		if seen[decl.Name] {
			return fmt.Errorf("declaration %q: duplicate name", decl.Name)
		}
		seen[decl.Name] = true

		hasID := decl.ID != ""
		hasPDA := decl.PDA != ""
		switch {
		case hasID && hasPDA:
			return fmt.Errorf("declaration %q: id and pda are mutually exclusive", decl.Name)
		case !hasID && !hasPDA:
			return fmt.Errorf("declaration %q: one of id or pda is required", decl.Name)
		case hasPDA && decl.Program == "":
			return fmt.Errorf("declaration %q: pda requires a program", decl.Name)
		case hasPDA && len(decl.Seeds) == 0:
			return fmt.Errorf("declaration %q: pda requires at least one seed", decl.Name)
		case hasID && (decl.Program != "" || len(decl.Seeds) > 0):
			return fmt.Errorf("declaration %q: program and seeds are only valid for pda declarations", decl.Name)
		}

		// Allow well-known aliases ("token", "pump-fun", ...) in
		// program references and rewrite them to base58 in place.
		if decl.Program != "" {
			if resolved, ok := ResolveProgramAlias(decl.Program); ok {
				config.Declarations[i].Program = resolved
			}
		}
	}

	return nil
}

// isGoIdentifier reports whether s is usable as a Go package name
func isGoIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
