package logger

import (
	"time"

	"go.uber.org/zap"
)

// zapField wraps a zap.Field and implements the Field interface.
type zapField struct {
	field zap.Field
}

func (f zapField) Key() string { return f.field.Key }

func (f zapField) Value() interface{} {
	if f.field.Interface != nil {
		return f.field.Interface
	}
	if f.field.String != "" {
		return f.field.String
	}
	return f.field.Integer
}

func (f zapField) ZapField() zap.Field { return f.field }

func wrap(f zap.Field) Field { return zapField{field: f} }

// Field constructors.

// String creates a string field.
func String(key, value string) Field { return wrap(zap.String(key, value)) }

// Int creates an int field.
func Int(key string, value int) Field { return wrap(zap.Int(key, value)) }

// Int64 creates an int64 field.
func Int64(key string, value int64) Field { return wrap(zap.Int64(key, value)) }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return wrap(zap.Float64(key, value)) }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return wrap(zap.Bool(key, value)) }

// Time creates a time field.
func Time(key string, value time.Time) Field { return wrap(zap.Time(key, value)) }

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field { return wrap(zap.Duration(key, value)) }

// Error creates an error field.
func Error(err error) Field { return wrap(zap.Error(err)) }

// Any creates a field with an arbitrary value.
func Any(key string, value interface{}) Field { return wrap(zap.Any(key, value)) }

// Stack creates a stack trace field.
func Stack(key string) Field { return wrap(zap.Stack(key)) }

// Strings creates a string slice field.
func Strings(key string, values []string) Field { return wrap(zap.Strings(key, values)) }

// fieldsToZap converts Field interfaces to zap.Field.
func fieldsToZap(fields []Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, field := range fields {
		zapFields[i] = field.ZapField()
	}
	return zapFields
}
