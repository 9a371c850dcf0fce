// Package config loads host settings from the environment. The protection
// core persists nothing, so no configuration file is read.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	KeyLogLevel           = "log.level"
	KeyProtectionInterval = "protection.interval"
	KeyAppID              = "protection.app_id"
)

const (
	// DefaultAppID is the reverse-domain identifier naming the per-user
	// data directory.
	DefaultAppID = "com.xivu.axom"

	DefaultLogLevel = "info"
	envPrefix       = "AXOM"
)

// Config holds the resolved host settings.
type Config struct {
	LogLevel           string
	ProtectionInterval time.Duration
	AppID              string
}

// Load resolves settings using the precedence defaults < environment.
// Environment keys are prefixed with AXOM_ and use underscores, e.g.
// AXOM_PROTECTION_INTERVAL=500ms.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	interval, err := parseInterval(v.GetString(KeyProtectionInterval))
	if err != nil {
		return Config{}, err
	}

	appID := strings.TrimSpace(v.GetString(KeyAppID))
	if appID == "" || strings.ContainsAny(appID, `/\`) || appID == "." || appID == ".." {
		return Config{}, fmt.Errorf("invalid %s %q", KeyAppID, appID)
	}

	return Config{
		LogLevel:           strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		ProtectionInterval: interval,
		AppID:              appID,
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyProtectionInterval, time.Second.String())
	v.SetDefault(KeyAppID, DefaultAppID)
}

func parseInterval(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", KeyProtectionInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", KeyProtectionInterval, d)
	}
	return d, nil
}
