package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"solana-declare-go/internal/config"
	"solana-declare-go/internal/declare"
	"solana-declare-go/internal/logger"
)

const Version = "1.0.0"

// CLI flags
var (
	configFile  = flag.String("config", "", "Path to the declaration manifest (default: declarations.yaml)")
	outputDir   = flag.String("output", "", "Output directory (overrides manifest)")
	packageName = flag.String("package", "", "Output package name (overrides manifest)")
	logLevel    = flag.String("log-level", "", "Log level (debug/info/warn/error)")
	checkOnly   = flag.Bool("check", false, "Validate declarations without writing files")
	skipTests   = flag.Bool("no-tests", false, "Do not emit generated self-test files")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// App wires the manifest, logger and renderer together
type App struct {
	config   *config.Config
	logger   *logger.Logger
	renderer *declare.Renderer
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("declaregen %s\n", Version)
		return
	}

	app, err := newApp()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	app.logger.LogStartup(Version, *configFile, app.config.Output.Dir)

	generated, failed, err := app.run()
	app.logger.LogShutdown(generated, failed)
	if err != nil {
		os.Exit(1)
	}
}

func newApp() (*App, error) {
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the manifest
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *packageName != "" {
		cfg.Output.Package = *packageName
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	appLogger, err := logger.NewLogger(logger.LogConfig{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		LogToFile:   cfg.Logging.LogToFile,
		LogFilePath: cfg.Logging.LogFilePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &App{
		config:   cfg,
		logger:   appLogger,
		renderer: declare.NewRenderer(cfg.Output.Package),
	}, nil
}

// run validates every declaration and, unless -check is set, writes
// one generated file (plus self-test) per declaration. It stops at the
// first invalid declaration: a bad literal is a manifest defect, never
// something to paper over.
func (a *App) run() (generated, failed int, err error) {
	decls := make([]declare.Declaration, len(a.config.Declarations))
	for i, dc := range a.config.Declarations {
		decls[i] = declare.FromConfig(dc)
	}

	// Distinct manifest names can still fold to the same generated
	// identifier or file; reject that before emitting anything.
	if err := declare.CheckCollisions(decls); err != nil {
		a.logger.WithError(err).Error("Manifest rejected")
		return 0, 1, err
	}

	if !*checkOnly {
		if err := os.MkdirAll(a.config.Output.Dir, 0755); err != nil {
			return 0, 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, decl := range decls {
		resolved, err := declare.Validate(decl)
		if err != nil {
			a.logger.LogValidationFailed(decl.Name, err)
			return generated, failed + 1, err
		}

		if resolved.Kind == declare.KindPDA {
			a.logger.LogPDAResolved(resolved.Name, resolved.Key.String(), resolved.Program, resolved.Bump)
		} else {
			a.logger.LogDeclarationValidated(resolved.Name, string(resolved.Kind), resolved.Key.String())
		}

		if *checkOnly {
			continue
		}

		if err := a.emit(resolved); err != nil {
			a.logger.LogValidationFailed(resolved.Name, err)
			return generated, failed + 1, err
		}
		generated++
	}

	return generated, failed, nil
}

func (a *App) emit(resolved declare.Resolved) error {
	src, err := a.renderer.Render(resolved)
	if err != nil {
		return err
	}

	path := filepath.Join(a.config.Output.Dir, declare.FileName(resolved.Name))
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	a.logger.LogGenerated(resolved.Name, path)

	if *skipTests {
		return nil
	}

	testSrc, err := a.renderer.RenderTest(resolved)
	if err != nil {
		return err
	}
	testPath := filepath.Join(a.config.Output.Dir, declare.TestFileName(resolved.Name))
	if err := os.WriteFile(testPath, testSrc, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", testPath, err)
	}
	a.logger.LogGenerated(resolved.Name, testPath)

	return nil
}
