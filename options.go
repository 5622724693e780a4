package abieos

import (
	"go.uber.org/zap"

	"github.com/wippyai/abieos/transcoder"
)

// Options configures a Context.
type Options struct {
	// Logger receives registration and failure logs. Nil selects Logger().
	Logger *zap.Logger
	// MaxDepth bounds alias chains and value nesting.
	MaxDepth int
	// StrictBool rejects bool bytes other than 0 and 1 when decoding.
	StrictBool bool
}

// DefaultOptions returns default context configuration.
func DefaultOptions() Options {
	return Options{
		MaxDepth: transcoder.DefaultMaxDepth,
	}
}

func (o Options) transcoder() transcoder.Options {
	return transcoder.Options{
		MaxDepth:   o.MaxDepth,
		StrictBool: o.StrictBool,
	}
}
