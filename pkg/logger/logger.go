package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LogLevel string

const (
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

const (
	EventServiceStartup    = "SERVICE_STARTUP"
	EventDBConnection      = "DB_CONNECTION"
	EventDBError           = "DB_ERROR"
	EventValidationFailure = "VALIDATION_FAILURE"
	EventAccessDenied      = "ACCESS_DENIED"
	EventGeneral           = "GENERAL"
)

type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     LogLevel               `json:"level"`
	Service   string                 `json:"service"`
	EventType string                 `json:"event_type"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

type Config struct {
	ServiceName string
	LogFilePath string
	MaxSizeMB   int
	MaxBackups  int
	MaxAgeDays  int
}

type Logger struct {
	config Config
	writer io.Writer
	mu     sync.Mutex
}

var instance *Logger

func Init(cfg Config) {
	instance = NewLogger(cfg)
}

func GetLogger() *Logger {
	if instance == nil {
		instance = &Logger{
			config: Config{ServiceName: "bookwise"},
			writer: os.Stdout,
		}
	}
	return instance
}

func NewLogger(cfg Config) *Logger {
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 100
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 5
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 30
	}

	writers := []io.Writer{os.Stdout}

	if cfg.LogFilePath != "" {
		logDir := filepath.Dir(cfg.LogFilePath)
		if err := os.MkdirAll(logDir, 0700); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Cannot create log directory %s: %v, using stdout only\n", logDir, err)
		} else {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.LogFilePath,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   true,
			})
		}
	}

	return &Logger{
		config: cfg,
		writer: io.MultiWriter(writers...),
	}
}

func (l *Logger) log(level LogLevel, eventType, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Service:   l.config.ServiceName,
		EventType: eventType,
		Message:   message,
		Details:   details,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal log entry: %v\n", err)
		return
	}

	l.writer.Write(append(data, '\n'))
}

func (l *Logger) Info(eventType, message string, details map[string]interface{}) {
	l.log(LevelInfo, eventType, message, details)
}

func (l *Logger) Warn(eventType, message string, details map[string]interface{}) {
	l.log(LevelWarn, eventType, message, details)
}

func (l *Logger) Error(eventType, message string, details map[string]interface{}) {
	l.log(LevelError, eventType, message, details)
}

func (l *Logger) Fatal(eventType, message string, details map[string]interface{}) {
	l.log(LevelError, eventType, message, details)
	os.Exit(1)
}

func Info(eventType, message string, details map[string]interface{}) {
	GetLogger().Info(eventType, message, details)
}

func Warn(eventType, message string, details map[string]interface{}) {
	GetLogger().Warn(eventType, message, details)
}

func Error(eventType, message string, details map[string]interface{}) {
	GetLogger().Error(eventType, message, details)
}

func Fatal(eventType, message string, details map[string]interface{}) {
	GetLogger().Fatal(eventType, message, details)
}

func Fields(kv ...interface{}) map[string]interface{} {
	details := make(map[string]interface{})
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		details[key] = kv[i+1]
	}
	return details
}
