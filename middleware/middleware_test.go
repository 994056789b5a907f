package middleware

import (
	"context"

	"github.com/xraph/frankie/logger"
)

// mockLogger records messages and the fields of the last record for
// assertions.
type mockLogger struct {
	messages   []string
	lastFields []logger.Field
}

func (m *mockLogger) record(msg string, fields []logger.Field) {
	m.messages = append(m.messages, msg)
	m.lastFields = fields
}

// field returns the value of a field on the last record, or nil.
func (m *mockLogger) field(key string) interface{} {
	for _, f := range m.lastFields {
		if f.Key() == key {
			return f.Value()
		}
	}
	return nil
}

func (m *mockLogger) Debug(msg string, fields ...logger.Field) { m.record(msg, fields) }
func (m *mockLogger) Info(msg string, fields ...logger.Field)  { m.record(msg, fields) }
func (m *mockLogger) Warn(msg string, fields ...logger.Field)  { m.record(msg, fields) }
func (m *mockLogger) Error(msg string, fields ...logger.Field) { m.record(msg, fields) }
func (m *mockLogger) Fatal(msg string, fields ...logger.Field) { m.record(msg, fields) }

func (m *mockLogger) Debugf(template string, args ...interface{}) {}
func (m *mockLogger) Infof(template string, args ...interface{})  {}
func (m *mockLogger) Warnf(template string, args ...interface{})  {}
func (m *mockLogger) Errorf(template string, args ...interface{}) {}
func (m *mockLogger) Fatalf(template string, args ...interface{}) {}

func (m *mockLogger) With(fields ...logger.Field) logger.Logger     { return m }
func (m *mockLogger) WithContext(ctx context.Context) logger.Logger { return m }
func (m *mockLogger) Named(name string) logger.Logger               { return m }
func (m *mockLogger) Sync() error                                   { return nil }
