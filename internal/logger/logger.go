package logger

import "bignum/internal/bignum"

// Field represents a structured key:value log field.
type Field struct {
	Key string
	Val any
}

// Logger is the minimal interface required by internal/factortable and the
// cmd/ entry points.
type Logger interface {
	Named(name string) Logger
	With(fields ...Field) Logger
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// F is a concise helper for building a Field.
func F(key string, val any) Field { return Field{Key: key, Val: val} }

// FNumber serializes a BigUint into a structured field carrying both its
// base-10 and pipe-delimited digit representations.
func FNumber(key string, n bignum.BigUint) Field {
	return Field{
		Key: key,
		Val: map[string]any{
			"base10": n.ToBase10String(),
			"digits": n.ToString(),
		},
	}
}

// NopLogger is a Logger implementation that discards everything.
type NopLogger struct{}

func (l *NopLogger) Named(name string) Logger          { return l }
func (l *NopLogger) With(fields ...Field) Logger       { return l }
func (l *NopLogger) Debug(msg string, fields ...Field) {}
func (l *NopLogger) Info(msg string, fields ...Field)  {}
func (l *NopLogger) Warn(msg string, fields ...Field)  {}
func (l *NopLogger) Error(msg string, fields ...Field) {}
