package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Config captures logging configuration options.
type Config struct {
	Level    string `yaml:"log_level"`
	Dir      string `yaml:"log_dir"`
	Filename string `yaml:"log_file"`
}

const logRetentionDays = 7

var (
	colorReset = "\x1b[0m"
	colorTime  = "\x1b[90m"
	colorDebug = "\x1b[36m"
	colorInfo  = "\x1b[32m"
	colorWarn  = "\x1b[33m"
	colorError = "\x1b[31m"
)

// moduleColors maps message tags to console colors so the handler can
// highlight per-subsystem log lines.
var moduleColors = map[string]string{
	"[BOOT]":    "\x1b[96m",
	"[HTTP]":    "\x1b[95m",
	"[AI]":      "\x1b[34m",
	"[VISION]":  "\x1b[35m",
	"[WEATHER]": "\x1b[94m",
	"[MARKET]":  "\x1b[92m",
	"[SCHEMES]": "\x1b[93m",
	"[SYSTEM]":  "\x1b[90m",
}

// consoleHandler renders colored single-line log output for terminals.
type consoleHandler struct {
	writer io.Writer
	level  slog.Level
	mu     sync.Mutex
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	timeStr := r.Time.Format("2006-01-02 15:04:05.000")

	var levelStr, levelColor string
	switch r.Level {
	case slog.LevelDebug:
		levelStr, levelColor = "DEBUG", colorDebug
	case slog.LevelWarn:
		levelStr, levelColor = "WARN", colorWarn
	case slog.LevelError:
		levelStr, levelColor = "ERROR", colorError
	default:
		levelStr, levelColor = "INFO", colorInfo
	}

	msg := r.Message
	var output string
	if moduleColor, ok := tagColor(msg); ok {
		output = fmt.Sprintf("%s[%s]%s %s%s%s",
			colorTime, timeStr, colorReset,
			moduleColor, msg, colorReset)
	} else {
		output = fmt.Sprintf("%s[%s]%s %s[%s]%s %s",
			colorTime, timeStr, colorReset,
			levelColor, levelStr, colorReset,
			msg)
	}

	if r.NumAttrs() > 0 {
		output += " {"
		r.Attrs(func(a slog.Attr) bool {
			output += fmt.Sprintf(" %s=%v", a.Key, a.Value)
			return true
		})
		output += " }"
	}
	output += "\n"

	_, err := h.writer.Write([]byte(output))
	return err
}

func (h *consoleHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *consoleHandler) WithGroup(string) slog.Handler      { return h }

func tagColor(msg string) (string, bool) {
	for tag, color := range moduleColors {
		if strings.HasPrefix(msg, tag) {
			return color, true
		}
	}
	return "", false
}

// Logger writes colored text to the console and JSON lines to a daily
// rotated file when a log directory is configured.
type Logger struct {
	config      Config
	textLogger  *slog.Logger
	jsonLogger  *slog.Logger
	logFile     *os.File
	currentDate string
	mu          sync.RWMutex
	ticker      *time.Ticker
	stopCh      chan struct{}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger. File output is enabled only when cfg.Dir is set.
func New(cfg Config) (*Logger, error) {
	level := parseLevel(cfg.Level)

	logger := &Logger{
		config:      cfg,
		currentDate: time.Now().Format("2006-01-02"),
		stopCh:      make(chan struct{}),
	}
	logger.textLogger = slog.New(&consoleHandler{writer: os.Stdout, level: level})

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		filename := cfg.Filename
		if filename == "" {
			filename = "server.log"
		}
		logger.config.Filename = filename

		logPath := filepath.Join(cfg.Dir, filename)
		file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logger.logFile = file
		logger.jsonLogger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
		logger.startRotationChecker()
	}

	return logger, nil
}

func (l *Logger) startRotationChecker() {
	l.ticker = time.NewTicker(1 * time.Minute)
	go func() {
		for {
			select {
			case <-l.ticker.C:
				today := time.Now().Format("2006-01-02")
				if today != l.currentDate {
					l.rotateLogFile(today)
					l.cleanOldLogs()
				}
			case <-l.stopCh:
				return
			}
		}
	}()
}

func (l *Logger) rotateLogFile(newDate string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		l.logFile.Close()
	}

	currentLogPath := filepath.Join(l.config.Dir, l.config.Filename)
	baseName := strings.TrimSuffix(l.config.Filename, filepath.Ext(l.config.Filename))
	ext := filepath.Ext(l.config.Filename)
	archivedLogPath := filepath.Join(l.config.Dir, fmt.Sprintf("%s-%s%s", baseName, l.currentDate, ext))

	if _, err := os.Stat(currentLogPath); err == nil {
		if err := os.Rename(currentLogPath, archivedLogPath); err != nil {
			l.textLogger.Error("rotate log file", slog.String("error", err.Error()))
		}
	}

	file, err := os.OpenFile(currentLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.textLogger.Error("reopen log file", slog.String("error", err.Error()))
		return
	}

	l.logFile = file
	l.jsonLogger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: parseLevel(l.config.Level)}))
	l.currentDate = newDate
}

func (l *Logger) cleanOldLogs() {
	cutoff := time.Now().AddDate(0, 0, -logRetentionDays)
	entries, err := os.ReadDir(l.config.Dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) && strings.HasSuffix(entry.Name(), filepath.Ext(l.config.Filename)) {
			os.Remove(filepath.Join(l.config.Dir, entry.Name()))
		}
	}
}

// Close stops rotation and releases the log file.
func (l *Logger) Close() error {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	select {
	case <-l.stopCh:
	default:
		close(l.stopCh)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		err := l.logFile.Close()
		l.logFile = nil
		return err
	}
	return nil
}

func (l *Logger) log(level slog.Level, msg string, args ...interface{}) {
	if len(args) > 0 && strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, args...)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	ctx := context.Background()
	l.textLogger.LogAttrs(ctx, level, msg)
	if l.jsonLogger != nil {
		l.jsonLogger.LogAttrs(ctx, level, msg)
	}
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log(slog.LevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log(slog.LevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log(slog.LevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log(slog.LevelError, msg, args...) }

// FormatLog builds a tagged log message, e.g. FormatLog("BOOT", "started")
// -> "[BOOT] started". Messages that already carry a tag pass through.
func FormatLog(tag, message string) string {
	tag = strings.TrimSpace(tag)
	message = strings.TrimSpace(message)
	if tag == "" {
		return message
	}
	if strings.HasPrefix(message, "[") {
		return message
	}
	return fmt.Sprintf("[%s] %s", tag, message)
}

func (l *Logger) DebugTag(tag, msg string, args ...interface{}) {
	l.Debug(FormatLog(tag, msg), args...)
}

func (l *Logger) InfoTag(tag, msg string, args ...interface{}) {
	l.Info(FormatLog(tag, msg), args...)
}

func (l *Logger) WarnTag(tag, msg string, args ...interface{}) {
	l.Warn(FormatLog(tag, msg), args...)
}

func (l *Logger) ErrorTag(tag, msg string, args ...interface{}) {
	l.Error(FormatLog(tag, msg), args...)
}

// Slog exposes the console logger for integrations that expect *slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.textLogger
}
