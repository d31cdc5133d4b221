package logger

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"
)

type Fields map[string]any

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel adjusts the global level, e.g. "debug" during development.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return
	}
	log.SetLevel(parsed)
}

var sensitiveKeys = map[string]struct{}{
	"password":     {},
	"passwordhash": {},
	"token":        {},
	"accesstoken":  {},
	"jwtsecret":    {},
}

func Info(message string, fields Fields) {
	log.WithFields(logrus.Fields(sanitizeFields(fields))).Info(message)
}

func Warn(message string, fields Fields) {
	log.WithFields(logrus.Fields(sanitizeFields(fields))).Warn(message)
}

func Error(message string, err error, fields Fields) {
	entry := log.WithFields(logrus.Fields(sanitizeFields(fields)))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(message)
}

func Fatal(message string, err error) {
	entry := logrus.NewEntry(log)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Fatal(message)
}

// SanitizePayload round-trips a payload through JSON and masks credential
// fields so request bodies can be logged safely.
func SanitizePayload(payload any) any {
	if payload == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func sanitizeFields(fields Fields) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		if isSensitiveKey(key) {
			out[key] = "******"
			continue
		}
		out[key] = sanitizeValue(value)
	}
	return out
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(key), "-", ""), "_", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
