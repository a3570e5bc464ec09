package app

import (
    "os"
    "strconv"
    "strings"
)

// Environment variables read by ApplyEnvToConfig.
const (
    EnvInput        = "GOREADABLE_INPUT"
    EnvOutput       = "GOREADABLE_OUTPUT"
    EnvStrategy     = "GOREADABLE_STRATEGY"
    EnvBaseURL      = "GOREADABLE_BASE_URL"
    EnvMinText      = "GOREADABLE_MIN_TEXT"
    EnvAncestors    = "GOREADABLE_ANCESTORS"
    EnvKeepUnlikely = "GOREADABLE_KEEP_UNLIKELY"
    EnvFallback     = "GOREADABLE_FALLBACK"
    EnvVerbose      = "GOREADABLE_VERBOSE"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    setString := func(dst *string, envKey, def string) {
        if *dst != "" && *dst != def { return }
        if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
            *dst = v
        }
    }
    setString(&cfg.InputPath, EnvInput, DefaultInputPath)
    setString(&cfg.OutputPath, EnvOutput, DefaultOutputPath)
    setString(&cfg.Strategy, EnvStrategy, DefaultStrategy)
    setString(&cfg.BaseURL, EnvBaseURL, "")

    setInt := func(dst *int, envKey string) {
        if *dst != 0 { return }
        if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(envKey))); err == nil && n > 0 {
            *dst = n
        }
    }
    setInt(&cfg.MinTextLength, EnvMinText)
    setInt(&cfg.AncestorLevels, EnvAncestors)

    // Booleans
    setBool := func(dst *bool, envKey string) {
        if *dst { return }
        if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
            if s == "1" || s == "true" || s == "yes" || s == "on" {
                *dst = true
            }
        }
    }
    setBool(&cfg.KeepUnlikely, EnvKeepUnlikely)
    setBool(&cfg.Fallback, EnvFallback)
    setBool(&cfg.Verbose, EnvVerbose)
}
