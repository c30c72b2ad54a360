package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field lets callers build log fields without importing zap
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// Mode tags a log line with a transport mode
func Mode(mode string) Field {
	return zap.String("mode", mode)
}

// Geohash tags a log line with a location cell instead of raw coordinates
func Geohash(key, hash string) Field {
	return zap.String(key, hash)
}
