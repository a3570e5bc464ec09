package app

import (
    "os"
    "path/filepath"
    "testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
    t.Helper()
    p := filepath.Join(dir, name)
    if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
        t.Fatalf("write %s: %v", name, err)
    }
    return p
}

func TestLoadConfigFile_YAMLAndJSON(t *testing.T) {
    dir := t.TempDir()
    y := writeFile(t, dir, "cfg.yaml", "input: in.html\nstrategy: landmark\nscoring:\n  minText: 30\n  ancestors: 4\n  keepUnlikely: true\nfallback: true\n")
    j := writeFile(t, dir, "cfg.json", `{"output":"out.txt","baseURL":"https://example.com/","scoring":{"minText":50}}`)
    bare := writeFile(t, dir, "cfg", `{"strategy":"readability"}`)

    fc, err := LoadConfigFile(y)
    if err != nil { t.Fatalf("yaml: %v", err) }
    if fc.Input != "in.html" || fc.Strategy != "landmark" || fc.Scoring.MinText != 30 || fc.Scoring.Ancestors != 4 || !fc.Scoring.KeepUnlikely || !fc.Fallback {
        t.Fatalf("unexpected yaml config: %+v", fc)
    }

    fc, err = LoadConfigFile(j)
    if err != nil { t.Fatalf("json: %v", err) }
    if fc.Output != "out.txt" || fc.BaseURL != "https://example.com/" || fc.Scoring.MinText != 50 {
        t.Fatalf("unexpected json config: %+v", fc)
    }

    fc, err = LoadConfigFile(bare)
    if err != nil { t.Fatalf("no extension: %v", err) }
    if fc.Strategy != "readability" {
        t.Fatalf("Strategy=%q, want readability", fc.Strategy)
    }
}

func TestLoadConfigFile_Errors(t *testing.T) {
    dir := t.TempDir()
    if _, err := LoadConfigFile(filepath.Join(dir, "missing.yaml")); err == nil {
        t.Fatalf("expected error for missing file")
    }
    bad := writeFile(t, dir, "bad.json", "{not json")
    if _, err := LoadConfigFile(bad); err == nil {
        t.Fatalf("expected parse error")
    }
}

// File values fill only fields still at their defaults.
func TestApplyFileConfig_FillsDefaultsOnly(t *testing.T) {
    var fc FileConfig
    fc.Input = "file.html"
    fc.Output = "file.txt"
    fc.Strategy = "landmark"
    fc.Scoring.MinText = 30
    fc.Scoring.Ancestors = 2
    fc.Verbose = true

    cfg := Config{InputPath: DefaultInputPath, OutputPath: "flag.txt", Strategy: DefaultStrategy, AncestorLevels: 7}
    ApplyFileConfig(&cfg, fc)
    if cfg.InputPath != "file.html" {
        t.Fatalf("InputPath=%q, want file.html", cfg.InputPath)
    }
    if cfg.OutputPath != "flag.txt" {
        t.Fatalf("OutputPath=%q, want flag value kept", cfg.OutputPath)
    }
    if cfg.Strategy != "landmark" || cfg.MinTextLength != 30 || cfg.AncestorLevels != 7 || !cfg.Verbose {
        t.Fatalf("unexpected merge: %+v", cfg)
    }
    ApplyFileConfig(nil, fc)
}

func TestValidateConfig(t *testing.T) {
    ok := Config{InputPath: "-", OutputPath: "-", Strategy: "score"}
    if err := ValidateConfig(ok); err != nil {
        t.Fatalf("valid config rejected: %v", err)
    }
    bad := []Config{
        {InputPath: " ", OutputPath: "-"},
        {InputPath: "-", OutputPath: ""},
        {InputPath: "-", OutputPath: "-", MinTextLength: -1},
        {InputPath: "-", OutputPath: "-", Strategy: "magic"},
    }
    for i, c := range bad {
        if err := ValidateConfig(c); err == nil {
            t.Fatalf("case %d: expected validation error for %+v", i, c)
        }
    }
}
