package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger represents the application logger
type Logger struct {
	*logrus.Logger
	config LogConfig
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level       string
	Format      string // "json" or "text"
	LogToFile   bool
	LogFilePath string
}

// NewLogger creates a new logger instance
func NewLogger(config LogConfig) (*Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", config.Level, err)
	}
	log.SetLevel(level)

	// Always output to stdout first
	log.SetOutput(os.Stdout)

	switch strings.ToLower(config.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			ForceColors:     true,
			DisableQuote:    true,
		})
	default:
		// Default to a custom text format with clear timestamp
		log.SetFormatter(&CustomFormatter{})
	}

	// Optionally also log to file (in addition to stdout)
	if config.LogToFile && config.LogFilePath != "" {
		logDir := filepath.Dir(config.LogFilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}

		file, err := os.OpenFile(config.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", config.LogFilePath, err)
		}
		log.SetOutput(io.MultiWriter(os.Stdout, file))
	}

	return &Logger{
		Logger: log,
		config: config,
	}, nil
}

// CustomFormatter provides a clean, timestamped format for console output
type CustomFormatter struct{}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
	level := strings.ToUpper(entry.Level.String())

	var levelColor string
	switch entry.Level {
	case logrus.DebugLevel:
		levelColor = "\033[36m" // Cyan
	case logrus.InfoLevel:
		levelColor = "\033[32m" // Green
	case logrus.WarnLevel:
		levelColor = "\033[33m" // Yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = "\033[31m" // Red
	default:
		levelColor = "\033[0m" // Reset
	}

	resetColor := "\033[0m"

	msg := fmt.Sprintf("%s [%s%s%s] %s",
		timestamp,
		levelColor,
		level,
		resetColor,
		entry.Message)

	if len(entry.Data) > 0 {
		msg += " |"
		for key, value := range entry.Data {
			msg += fmt.Sprintf(" %s=%v", key, value)
		}
	}

	msg += "\n"
	return []byte(msg), nil
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.Logger.WithField(key, value)
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.Logger.WithFields(fields)
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.Logger.WithError(err)
}

// WithComponent returns a logger with component context
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.WithField("component", component)
}

// Declaration-specific logging methods

// LogDeclarationValidated logs a declaration that passed validation
func (l *Logger) LogDeclarationValidated(name, kind, address string) {
	l.WithFields(logrus.Fields{
		"event":       "declaration_validated",
		"declaration": name,
		"kind":        kind,
		"address":     address,
	}).Info("Declaration validated")
}

// LogPDAResolved logs a validated PDA together with its bump seed
func (l *Logger) LogPDAResolved(name, address, program string, bump uint8) {
	l.WithFields(logrus.Fields{
		"event":       "pda_resolved",
		"declaration": name,
		"address":     address,
		"program":     program,
		"bump":        bump,
	}).Info("PDA derivation confirmed")
}

// LogValidationFailed logs a declaration that failed validation
func (l *Logger) LogValidationFailed(name string, err error) {
	l.WithFields(logrus.Fields{
		"event":       "validation_failed",
		"declaration": name,
	}).WithError(err).Error("Declaration rejected")
}

// LogGenerated logs a successfully written output file
func (l *Logger) LogGenerated(name, path string) {
	l.WithFields(logrus.Fields{
		"event":       "file_generated",
		"declaration": name,
		"path":        path,
	}).Info("Generated declaration file")
}

// LogStartup logs tool startup information
func (l *Logger) LogStartup(version, configFile, outputDir string) {
	l.WithFields(logrus.Fields{
		"event":      "startup",
		"version":    version,
		"config":     configFile,
		"output_dir": outputDir,
	}).Info("declaregen starting")
}

// LogShutdown logs tool completion
func (l *Logger) LogShutdown(generated, failed int) {
	l.WithFields(logrus.Fields{
		"event":     "shutdown",
		"generated": generated,
		"failed":    failed,
	}).Info("declaregen finished")
}
