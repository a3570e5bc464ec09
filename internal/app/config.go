package app

// Config holds runtime configuration for the application.
type Config struct {
	// "-" reads stdin / writes stdout
	InputPath  string
	OutputPath string

	// Extraction
	Strategy       string
	BaseURL        string
	MinTextLength  int
	AncestorLevels int
	KeepUnlikely   bool
	Fallback       bool

	// Behavior
	Verbose bool
}

// Defaults applied by the CLI before file config is overlaid.
const (
	DefaultInputPath  = "-"
	DefaultOutputPath = "-"
	DefaultStrategy   = "score"
)
