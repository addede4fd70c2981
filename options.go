package dynp

import "github.com/rs/zerolog"

// Option configures a Collection.
type Option func(*Collection)

// WithLogger sets the logger used for debug-level operation tracing.
// Assignments, subscriptions and deletions are logged; reads are not.
// By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Collection) {
		c.logger = logger
	}
}
