package app

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jmball/cooling-block/pkg/kernel/sdfx"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ParseArgs processes command-line arguments. It returns a populated
// Config and log level, a boolean indicating the program should exit
// cleanly (help requested), or an ExitError for usage problems.
func ParseArgs(args []string, output io.Writer) (Config, slog.Level, bool, error) {
	flagSet := flag.NewFlagSet("coolingblock", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
coolingblock - generate the liquid-cooled LED array cooling block.

Writes block.stl, lid.stl, spacer.stl and assembly.3mf to the build
directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	paramsFlag := flagSet.String("params", "", "Path to an HCL parameter file. Empty uses the reference design.")
	buildFlag := flagSet.String("build-dir", "build", "Output directory, created on demand.")
	refFlag := flagSet.String("ref-dir", "ref", "Directory with purchased hardware STL models. Missing models are skipped.")
	cellsFlag := flagSet.Int("cells", sdfx.DefaultMeshCells, "Tessellation resolution (marching cubes cells).")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level: 'debug', 'info', 'warn' or 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return Config{}, 0, true, nil
		}
		// The flag package already reported the error and usage to
		// output; an empty message avoids repeating it.
		return Config{}, 0, false, &ExitError{Code: 2}
	}

	var level slog.Level
	switch strings.ToLower(*logLevelFlag) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return Config{}, 0, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn' or 'error'"}
	}

	if *cellsFlag <= 0 {
		return Config{}, 0, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid cells %d: must be positive", *cellsFlag)}
	}

	cfg := Config{
		ParamsPath: *paramsFlag,
		BuildDir:   *buildFlag,
		RefDir:     *refFlag,
		MeshCells:  *cellsFlag,
	}
	return cfg, level, false, nil
}
