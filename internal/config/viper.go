// Package config centralizes the Viper keys and defaults shared by the
// CLI commands.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Viper keys. Flags, config file entries, and environment variables
// (BIBRESOLVE_SCHEDULES etc.) all resolve through these.
const (
	KeySchedules = "schedules"
	KeyRegistry  = "registry"
	KeyPayloads  = "payloads"
)

// SetDefaults registers the default values for all known keys.
func SetDefaults() {
	viper.SetDefault(KeySchedules, "schedules")
	viper.SetDefault(KeyRegistry, "")
	viper.SetDefault(KeyPayloads, ".")
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// SchedulesDir returns the directory holding the per-subject schedule
// files.
func SchedulesDir() string {
	return viper.GetString(KeySchedules)
}

// RegistryPath returns the source registry YAML path, or "" when the
// built-in default registry should be used.
func RegistryPath() string {
	return viper.GetString(KeyRegistry)
}

// PayloadsDir returns the directory holding per-source payload files.
func PayloadsDir() string {
	return viper.GetString(KeyPayloads)
}
