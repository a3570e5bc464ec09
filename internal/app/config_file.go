package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/goreadable/internal/extract"
)

// FileConfig represents the single-file configuration schema.
// Nested sections map naturally to flags/env.
type FileConfig struct {
    Input    string `yaml:"input" json:"input"`
    Output   string `yaml:"output" json:"output"`
    Strategy string `yaml:"strategy" json:"strategy"`
    BaseURL  string `yaml:"baseURL" json:"baseURL"`

    Scoring struct {
        MinText      int  `yaml:"minText" json:"minText"`
        Ancestors    int  `yaml:"ancestors" json:"ancestors"`
        KeepUnlikely bool `yaml:"keepUnlikely" json:"keepUnlikely"`
    } `yaml:"scoring" json:"scoring"`

    Fallback bool `yaml:"fallback" json:"fallback"`
    Verbose  bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag default. Flags and env should
// already have been applied; the file only supplies defaults.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if (cfg.InputPath == "" || cfg.InputPath == DefaultInputPath) && fc.Input != "" { cfg.InputPath = fc.Input }
    if (cfg.OutputPath == "" || cfg.OutputPath == DefaultOutputPath) && fc.Output != "" { cfg.OutputPath = fc.Output }
    if (cfg.Strategy == "" || cfg.Strategy == DefaultStrategy) && fc.Strategy != "" { cfg.Strategy = fc.Strategy }
    if cfg.BaseURL == "" && fc.BaseURL != "" { cfg.BaseURL = fc.BaseURL }

    if cfg.MinTextLength == 0 && fc.Scoring.MinText > 0 { cfg.MinTextLength = fc.Scoring.MinText }
    if cfg.AncestorLevels == 0 && fc.Scoring.Ancestors > 0 { cfg.AncestorLevels = fc.Scoring.Ancestors }
    if !cfg.KeepUnlikely && fc.Scoring.KeepUnlikely { cfg.KeepUnlikely = true }

    if !cfg.Fallback && fc.Fallback { cfg.Fallback = true }
    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
    if strings.TrimSpace(cfg.InputPath) == "" {
        return errors.New("config: input path is required")
    }
    if strings.TrimSpace(cfg.OutputPath) == "" {
        return errors.New("config: output path is required")
    }
    if cfg.MinTextLength < 0 || cfg.AncestorLevels < 0 {
        return errors.New("config: negative limits are not allowed")
    }
    if _, err := extract.New(cfg.Strategy, extract.Options{}); err != nil {
        return fmt.Errorf("config: %w", err)
    }
    return nil
}
