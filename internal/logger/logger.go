// Package logger is the process-wide structured log. Records go to a rotated
// file under the config directory and, with --debug, to stderr as well.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/momentum/internal/constants"
)

// Logger is nil until Init succeeds; every helper is a no-op before that.
var Logger *log.Logger

var filePath string

// Config controls where records go and how verbose they are
type Config struct {
	Debug     bool
	ConfigDir string
	// Mirror receives a copy of every record in debug mode. Defaults to stderr.
	Mirror io.Writer
}

// Init opens the log file and replaces the global Logger
func Init(cfg Config) error {
	dir := filepath.Join(cfg.ConfigDir, "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	filePath = filepath.Join(dir, constants.AppName+".log")

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(sink(cfg, rotated(filePath)), log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
		CallerOffset:    1, // skip emit
	})
	return nil
}

// Path is the active log file, or empty before Init
func Path() string {
	return filePath
}

func rotated(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

func sink(cfg Config, file io.Writer) io.Writer {
	if !cfg.Debug {
		return file
	}
	mirror := cfg.Mirror
	if mirror == nil {
		mirror = os.Stderr
	}
	return io.MultiWriter(mirror, file)
}

func emit(level log.Level, msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Log(level, msg, keyvals...)
	}
}

func Debug(msg string, keyvals ...interface{}) { emit(log.DebugLevel, msg, keyvals...) }
func Info(msg string, keyvals ...interface{}) { emit(log.InfoLevel, msg, keyvals...) }
func Warn(msg string, keyvals ...interface{}) { emit(log.WarnLevel, msg, keyvals...) }
func Error(msg string, keyvals ...interface{}) { emit(log.ErrorLevel, msg, keyvals...) }

// Fallback records that the stored collection under key was replaced by its
// default. A nil cause means the key was absent, which is routine on first run.
func Fallback(key string, cause error) {
	if cause == nil {
		emit(log.DebugLevel, "Storage key absent, using default", "key", key)
		return
	}
	emit(log.WarnLevel, "Stored value unusable, using default", "key", key, "error", cause)
}

// Committed records a successful write of the listed storage keys
func Committed(keys []string) {
	emit(log.DebugLevel, "State committed", "keys", strings.Join(keys, ","))
}
