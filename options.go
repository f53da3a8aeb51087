package lz77

import "fmt"

// Options configures decompression. Negative sizes are rejected with ErrNegativeOption.
type Options struct {
	// MaxOutputSize limits decoded output in bytes (0 = no limit).
	// Exceeding it returns ErrOutputTooLarge.
	MaxOutputSize int
	// SizeHint is the initial capacity of the decoded buffer (0 = grow on demand).
	// Set it to the expected decompressed size to avoid reallocations.
	SizeHint int
}

// DefaultOptions returns options for default behavior: no output limit, no size hint.
func DefaultOptions() *Options {
	return &Options{}
}

// normalized returns opts, or DefaultOptions when opts is nil.
// Negative sizes are rejected with ErrNegativeOption.
func (opts *Options) normalized() (Options, error) {
	if opts == nil {
		return *DefaultOptions(), nil
	}

	if opts.MaxOutputSize < 0 || opts.SizeHint < 0 {
		return Options{}, fmt.Errorf("%w: MaxOutputSize=%d SizeHint=%d", ErrNegativeOption, opts.MaxOutputSize, opts.SizeHint)
	}

	o := *opts
	if o.MaxOutputSize > 0 && o.SizeHint > o.MaxOutputSize {
		o.SizeHint = o.MaxOutputSize
	}

	return o, nil
}
