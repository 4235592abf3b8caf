// Package linearscan defines configuration options and sentinel errors for
// the ordered linear-scan engine.
package linearscan

import "errors"

// Sentinel errors for option validation.
var (
	// ErrBadOptions indicates an invalid Options combination.
	ErrBadOptions = errors.New("linearscan: invalid options")
)

// Options configures a Map before creation.
//
// Fields:
//
//	InitialCapacity - entry slots to pre-allocate; 0 means allocate lazily.
type Options struct {
	InitialCapacity int
}

// DefaultOptions returns an Options struct pre-populated with safe defaults.
//
//	InitialCapacity: 0 // grow on demand
func DefaultOptions() Options {
	return Options{InitialCapacity: 0}
}

// Validate checks that Options fields hold a valid combination.
// It returns ErrBadOptions if InitialCapacity < 0.
func (o *Options) Validate() error {
	if o.InitialCapacity < 0 {
		return ErrBadOptions
	}
	return nil
}
