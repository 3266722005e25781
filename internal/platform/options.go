package platform

import (
	"log/slog"
)

// options holds the internal configuration for the silt platform.
type options struct {
	logger        *slog.Logger
	defaultBranch string
}

// Option defines a functional option for configuring silt.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:        nil,
		defaultBranch: "",
	}
}

// WithLogger sets the logger used during initialization. A nil logger
// keeps the library silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDefaultBranch sets the branch a freshly created HEAD points to.
// Empty means the built-in default (main). Re-initialization never
// rewrites an existing HEAD, so this only affects brand new repositories.
func WithDefaultBranch(name string) Option {
	return func(o *options) {
		o.defaultBranch = name
	}
}
