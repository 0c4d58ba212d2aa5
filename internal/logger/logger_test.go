package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestNewLogger_InvalidLevel(t *testing.T) {
	is := is.New(t)

	_, err := NewLogger(LogConfig{Level: "chatty"})
	is.True(err != nil)
}

// TestNewLogger_LogToFile verifies that enabling file logging actually
// writes entries to the configured path, not just to stdout
func TestNewLogger_LogToFile(t *testing.T) {
	is := is.New(t)

	path := filepath.Join(t.TempDir(), "logs", "declaregen.log")
	log, err := NewLogger(LogConfig{
		Level:       "info",
		Format:      "json",
		LogToFile:   true,
		LogFilePath: path,
	})
	is.NoErr(err)

	log.LogGenerated("system", "generated/system.go")

	data, err := os.ReadFile(path)
	is.NoErr(err)
	is.True(strings.Contains(string(data), "file_generated"))
	is.True(strings.Contains(string(data), "generated/system.go"))
}

// TestNewLogger_NoFileWithoutPath verifies file logging is a no-op when
// no path is configured
func TestNewLogger_NoFileWithoutPath(t *testing.T) {
	is := is.New(t)

	log, err := NewLogger(LogConfig{Level: "info", LogToFile: true})
	is.NoErr(err)
	is.True(log != nil)
}
