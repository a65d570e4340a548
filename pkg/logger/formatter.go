package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type CustomJSONFormatter struct {
	TimestampFormat string
	PrettyPrint     bool
	AppName         string
	Version         string
}

type CustomTextFormatter struct {
	TimestampFormat string
	ForceColors     bool
	DisableColors   bool
	AppName         string
}

// entryBuffer reuses the buffer logrus hands to formatters when it has one.
func entryBuffer(entry *logrus.Entry) *bytes.Buffer {
	if entry.Buffer != nil {
		return entry.Buffer
	}
	return &bytes.Buffer{}
}

func layoutOr(layout, fallback string) string {
	if layout == "" {
		return fallback
	}
	return layout
}

func (f *CustomJSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	record := make(map[string]interface{}, len(entry.Data)+6)
	for key, value := range entry.Data {
		if err, isErr := value.(error); isErr {
			value = err.Error()
		}
		record[key] = value
	}

	record["timestamp"] = entry.Time.Format(layoutOr(f.TimestampFormat, time.RFC3339))
	record["level"] = entry.Level.String()
	record["message"] = entry.Message
	if f.AppName != "" {
		record["app"] = f.AppName
	}
	if f.Version != "" {
		record["version"] = f.Version
	}
	if entry.HasCaller() {
		record["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
		record["function"] = entry.Caller.Function
	}

	out := entryBuffer(entry)
	enc := json.NewEncoder(out)
	if f.PrettyPrint {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(record); err != nil {
		return nil, fmt.Errorf("encode log entry: %w", err)
	}
	return out.Bytes(), nil
}

func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	out := entryBuffer(entry)

	var levelColor, reset string
	if !f.DisableColors && (f.ForceColors || isTerminal()) {
		reset = "\033[0m"
		switch entry.Level {
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			levelColor = "\033[31m" // Red
		case logrus.WarnLevel:
			levelColor = "\033[33m" // Yellow
		case logrus.InfoLevel:
			levelColor = "\033[36m" // Cyan
		case logrus.DebugLevel:
			levelColor = "\033[37m" // White
		default:
			levelColor = reset
		}
	}

	stamp := entry.Time.Format(layoutOr(f.TimestampFormat, "2006-01-02 15:04:05"))
	fmt.Fprintf(out, "%s [%s%s%s] ", stamp, levelColor, strings.ToUpper(entry.Level.String()), reset)
	if f.AppName != "" {
		fmt.Fprintf(out, "[%s] ", f.AppName)
	}
	if entry.HasCaller() {
		fmt.Fprintf(out, "[%s:%d] ", entry.Caller.File, entry.Caller.Line)
	}
	out.WriteString(entry.Message)

	// Sorted so that identical entries render identically.
	pairs := make([]string, 0, len(entry.Data))
	for key, value := range entry.Data {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, value))
	}
	sort.Strings(pairs)
	for _, pair := range pairs {
		out.WriteByte(' ')
		out.WriteString(pair)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// isTerminal reports whether stdout is a character device.
func isTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Audit logger for compliance and security
type AuditLogger struct {
	logger *Logger
}

func NewAuditLogger(config *Config) (*AuditLogger, error) {
	// Force JSON format for audit logs
	auditConfig := *config
	auditConfig.Format = "json"

	logger, err := NewLogger(&auditConfig)
	if err != nil {
		return nil, err
	}

	return &AuditLogger{
		logger: logger,
	}, nil
}

// NewAuditLoggerFrom wraps an existing logger.
func NewAuditLoggerFrom(logger *Logger) *AuditLogger {
	return &AuditLogger{logger: logger}
}

func (a *AuditLogger) LogAction(operator, action, resource, resourceID string, at time.Time, details map[string]interface{}) {
	fields := map[string]interface{}{
		"operator_id": operator,
		"action":      action,
		"resource":    resource,
		"resource_id": resourceID,
		"timestamp":   at.UTC().Format(time.RFC3339),
		"type":        "audit",
	}

	for k, v := range details {
		fields[k] = v
	}

	a.logger.WithFields(fields).Info("Audit log entry")
}
