package app

import (
    "bufio"
    "errors"
    "fmt"
    "os"
    "strings"
)

// LoadEnvFiles loads one or more dotenv files of KEY=VALUE pairs into the
// process environment. Later files override earlier ones. Blank lines and
// lines starting with '#' are ignored, as is a leading "export ". Values are
// not expanded. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
    for _, p := range paths {
        if strings.TrimSpace(p) == "" {
            continue
        }
        err := loadEnvFile(p)
        if errors.Is(err, os.ErrNotExist) {
            continue
        }
        if err != nil {
            return fmt.Errorf("load env file %s: %w", p, err)
        }
    }
    return nil
}

func loadEnvFile(path string) error {
    f, err := os.Open(path)
    if err != nil {
        return err
    }
    defer f.Close()

    scanner := bufio.NewScanner(f)
    for scanner.Scan() {
        key, val, ok := parseEnvLine(scanner.Text())
        if !ok {
            continue
        }
        if err := os.Setenv(key, val); err != nil {
            return err
        }
    }
    return scanner.Err()
}

// parseEnvLine splits a dotenv line at the first '='. Malformed lines are
// reported as not ok.
func parseEnvLine(line string) (string, string, bool) {
    line = strings.TrimSpace(line)
    if line == "" || strings.HasPrefix(line, "#") {
        return "", "", false
    }
    line = strings.TrimPrefix(line, "export ")
    key, val, found := strings.Cut(line, "=")
    key = strings.TrimSpace(key)
    if !found || key == "" {
        return "", "", false
    }
    val = strings.TrimSpace(val)
    if len(val) >= 2 {
        if (val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'') {
            val = val[1 : len(val)-1]
        }
    }
    return key, val, true
}
