package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/tartampluch/go-ziwei/internal/chart"
	"github.com/tartampluch/go-ziwei/internal/config"
	"github.com/tartampluch/go-ziwei/internal/display"
	"github.com/tartampluch/go-ziwei/internal/server"
)

// main delegates to runMain so deferred cleanup (log file handles) runs
// before the process exits; os.Exit skips defers.
func main() {
	os.Exit(runMain())
}

// options collects the parsed CLI flags.
type options struct {
	serve     bool
	config    string
	date      string
	timeOfDay string
	gender    string
	calendar  string
	leap      bool
}

// runMain manages argument parsing, lifecycle and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)

	var opts options
	flag.BoolVar(&opts.serve, config.FlagServe, false, config.FlagDescServe)
	flag.StringVar(&opts.config, config.FlagConfig, defaultSettingsPath(), config.FlagDescConfig)
	flag.StringVar(&opts.date, config.FlagDate, "", config.FlagDescDate)
	flag.StringVar(&opts.timeOfDay, config.FlagTime, "12:00", config.FlagDescTime)
	flag.StringVar(&opts.gender, config.FlagGender, config.GenderMale, config.FlagDescGender)
	flag.StringVar(&opts.calendar, config.FlagCalendar, config.CalendarSolar, config.FlagDescCal)
	flag.BoolVar(&opts.leap, config.FlagLeap, false, config.FlagDescLeap)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the engine from settings, computes the requested chart, and
// either prints it or serves it over HTTP.
func run(ctx context.Context, opts options) error {
	settings, err := config.LoadSettings(opts.config)
	if err != nil {
		return err
	}

	input, err := buildInput(opts)
	if err != nil {
		return err
	}

	formatter := display.NewFormatter(display.NewTranslator(settings.Language))
	engine := chart.NewEngine(settings, formatter, chart.NewHTTPValidator())

	result, err := engine.Compute(ctx, input)
	if err != nil {
		return err
	}

	if !opts.serve {
		return printChart(result)
	}

	srv := server.NewChartServer(settings.ServerPort)
	if err := srv.Publish(result); err != nil {
		return err
	}
	return srv.Start(ctx)
}

// buildInput parses the date and time flags into a BirthInput. Policy
// fields stay empty so the engine fills them from settings.
func buildInput(opts options) (chart.BirthInput, error) {
	var in chart.BirthInput

	if n, err := fmt.Sscanf(opts.date, "%d-%d-%d", &in.Year, &in.Month, &in.Day); err != nil || n != 3 {
		return in, fmt.Errorf("%s: %q", config.ErrDateFlag, opts.date)
	}
	if n, err := fmt.Sscanf(opts.timeOfDay, "%d:%d", &in.Hour, &in.Minute); err != nil || n != 2 {
		return in, fmt.Errorf("%s: %q", config.ErrTimeFlag, opts.timeOfDay)
	}

	in.Gender = strings.ToLower(opts.gender)
	in.CalendarType = strings.ToLower(opts.calendar)
	in.LeapMonth = opts.leap
	return in, nil
}

// printChart writes the result as indented JSON to stdout.
func printChart(result *chart.ChartResult) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("%s: %w", config.ErrEncodeChart, err)
	}
	return nil
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// defaultSettingsPath puts the settings file next to the log file in the
// user's cache directory; a missing file falls back to defaults anyway.
func defaultSettingsPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return config.SettingsFileName
	}
	return filepath.Join(cacheDir, config.AppID, config.SettingsFileName)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	// 1. Always write to Stdout.
	writers = append(writers, os.Stdout)

	// 2. Attempt to set up a file writer in the user's cache directory.
	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
