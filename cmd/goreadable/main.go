package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goreadable/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath   string
		envFiles     string
		inputPath    string
		outputPath   string
		strategy     string
		baseURL      string
		minText      int
		ancestors    int
		keepUnlikely bool
		fallback     bool
		verbose      bool
		showVersion  bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("GOREADABLE_CONFIG"), "Path to YAML or JSON config file")
	flag.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load before reading the environment")
	flag.StringVar(&inputPath, "input", app.DefaultInputPath, "HTML file to read ('-' for stdin)")
	flag.StringVar(&outputPath, "output", app.DefaultOutputPath, "Where to write the extracted text ('-' for stdout)")
	flag.StringVar(&strategy, "strategy", app.DefaultStrategy, "Extraction strategy: score, landmark or readability")
	flag.StringVar(&baseURL, "base", "", "Page URL used to resolve relative links")
	flag.IntVar(&minText, "min.text", 0, "Minimum paragraph length that contributes to scoring (0 uses the default)")
	flag.IntVar(&ancestors, "ancestors", 0, "How many ancestor levels receive a paragraph's score (0 uses the default)")
	flag.BoolVar(&keepUnlikely, "keep.unlikely", false, "Keep nodes whose class or id look like page chrome")
	flag.BoolVar(&fallback, "fallback", false, "Fall back to go-readability when scoring finds no candidate")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(app.VersionString())
		return
	}

	if err := app.LoadEnvFiles(splitList(envFiles)...); err != nil {
		log.Error().Err(err).Msg("load env files")
		os.Exit(1)
	}

	cfg := app.Config{
		InputPath:      inputPath,
		OutputPath:     outputPath,
		Strategy:       strategy,
		BaseURL:        baseURL,
		MinTextLength:  minText,
		AncestorLevels: ancestors,
		KeepUnlikely:   keepUnlikely,
		Fallback:       fallback,
		Verbose:        verbose,
	}
	// A positional argument names the input file.
	if flag.NArg() > 0 && cfg.InputPath == app.DefaultInputPath {
		cfg.InputPath = flag.Arg(0)
	}

	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Debug().
		Str("input", cfg.InputPath).
		Str("output", cfg.OutputPath).
		Str("strategy", cfg.Strategy).
		Int("minText", cfg.MinTextLength).
		Msg("configuration resolved")

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(exitCode(err))
	}
}

// exitCode maps a run error to the process exit status: 0 on success, 2 when
// the page held nothing readable, 1 otherwise.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, app.ErrNoContent):
		return 2
	default:
		return 1
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			list = append(list, v)
		}
	}
	return list
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
