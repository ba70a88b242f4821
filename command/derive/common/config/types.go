package config

import (
	"errors"
	"strings"

	"github.com/bsthun/gut"
	"github.com/go-playground/validator/v10"
	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/package/expand"
	"go.scnd.dev/open/derive/package/span"
)

const FileName = "derive.yml"

type Config struct {
	App          *AppConfig       `yaml:"app"`
	Telemetry    *TelemetryConfig `yaml:"telemetry"`
	TraitPackage *string          `yaml:"trait_package" validate:"omitempty,min=1"`
	Scans        []*ScanConfig    `yaml:"scans" validate:"dive,required"`
}

type AppConfig struct {
	Name    *string `yaml:"name"`
	Version *string `yaml:"version"`
}

type TelemetryConfig struct {
	Url          *string `yaml:"url" validate:"omitempty,hostname_port"`
	Organization *string `yaml:"organization"`
}

type ScanConfig struct {
	Dir       *string `yaml:"dir" validate:"required,min=1"`
	Recursive *bool   `yaml:"recursive"`
}

func Load(directory string, name string) (*Config, bool, error) {
	config, found, err := New[Config](directory, name)
	if err != nil {
		return nil, false, err
	}

	if err := config.Validate(); err != nil {
		// * case of `validator.ValidationErrors`
		var validatorErr validator.ValidationErrors
		if errors.As(err, &validatorErr) {
			var lists []string
			for _, err := range validatorErr {
				lists = append(lists, err.Namespace()+" ("+err.Tag()+")")
			}
			return nil, found, span.NewError(nil, "validation failed on "+strings.Join(lists, ", "), err)
		}
		return nil, found, span.NewError(nil, "invalid configuration", err)
	}

	return config, found, nil
}

func (r *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(r)
}

func (r *Config) GetTraitPackage() string {
	if r.TraitPackage == nil {
		return expand.HelloMacroPackage
	}
	return *r.TraitPackage
}

// GetScans returns the configured scans, or a recursive scan of the project
// directory when none are configured.
func (r *Config) GetScans() []*ScanConfig {
	if len(r.Scans) == 0 {
		return []*ScanConfig{
			{
				Dir:       gut.Ptr("."),
				Recursive: gut.Ptr(true),
			},
		}
	}
	return r.Scans
}

func (r *ScanConfig) IsRecursive() bool {
	return r.Recursive != nil && *r.Recursive
}

// Derive converts the app and telemetry sections into runtime config.
func (r *Config) Derive() *derive.Config {
	config := new(derive.Config)
	if r.App != nil {
		config.AppName = r.App.Name
		config.AppVersion = r.App.Version
	}
	if r.Telemetry != nil {
		config.TelemetryUrl = r.Telemetry.Url
		config.TelemetryOrganization = r.Telemetry.Organization
	}
	return config
}
