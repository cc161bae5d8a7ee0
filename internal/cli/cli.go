package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/modrig/modrig/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envConfig collects the environment defaults. Flags override these, and
// for the build dir a positional argument does too.
type envConfig struct {
	BuildDir   string `env:"MODRIG_BUILD_DIR"`
	Modules    string `env:"MODRIG_MODULES"`
	ModulesDir string `env:"MODRIG_MODULES_DIR"`
	Output     string `env:"MODRIG_OUTPUT" envDefault:"summary"`
	LogFormat  string `env:"MODRIG_LOG_FORMAT" envDefault:"json"`
	LogLevel   string `env:"MODRIG_LOG_LEVEL" envDefault:"info"`
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("failed to parse environment: %v", err)}
	}

	flagSet := flag.NewFlagSet("modrig", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Modrig - Test module catalog builder for plugin test harnesses.

Usage:
  modrig [options] [BUILD_DIR]

Arguments:
  BUILD_DIR
    Path to the build tree the test module libraries were compiled into.

Options:
`)
		flagSet.PrintDefaults()
	}

	buildDirFlag := flagSet.String("build-dir", "", "Path to the build tree.")
	bFlag := flagSet.String("b", "", "Path to the build tree (shorthand).")
	modulesFlag := flagSet.String("modules", envCfg.Modules, "Inline JSON or a manifest path with extra modules.")
	modulesDirFlag := flagSet.String("modules-dir", envCfg.ModulesDir, "Path to a directory containing extra module manifests.")
	outputFlag := flagSet.String("output", envCfg.Output, "Report format. Options: 'summary' or 'json'.")
	logFormatFlag := flagSet.String("log-format", envCfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envCfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	buildDir := ""
	if *buildDirFlag != "" {
		buildDir = *buildDirFlag
	} else if *bFlag != "" {
		buildDir = *bFlag
	} else if flagSet.NArg() > 0 {
		buildDir = flagSet.Arg(0)
	} else {
		buildDir = envCfg.BuildDir
	}
	slog.Debug("Build dir determined.", "path", buildDir)

	if buildDir == "" {
		slog.Debug("No build dir provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		BuildDir:   buildDir,
		Modules:    *modulesFlag,
		ModulesDir: *modulesDirFlag,
		Output:     strings.ToLower(*outputFlag),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
