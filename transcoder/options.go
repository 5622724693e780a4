package transcoder

// DefaultMaxDepth bounds alias chains and value nesting.
const DefaultMaxDepth = 32

// Options controls type resolution and transcoding limits.
type Options struct {
	// MaxDepth bounds alias chain length and the nesting depth of encoded
	// and decoded values. Zero selects DefaultMaxDepth.
	MaxDepth int
	// StrictBool rejects bool and optional flag bytes other than 0 and 1.
	StrictBool bool
}

// DefaultOptions returns the default transcoding options.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

func (o Options) normalized() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
