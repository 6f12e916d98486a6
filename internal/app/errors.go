package app

import "errors"

// Error classes surfaced by Run. Every error Run returns wraps exactly one.
var (
	ErrConfig   = errors.New("configuration error")
	ErrResource = errors.New("resource error")
	ErrInput    = errors.New("input error")
)

type classified struct {
	class error
	err   error
}

func (c *classified) Error() string   { return c.class.Error() + ": " + c.err.Error() }
func (c *classified) Unwrap() []error { return []error{c.class, c.err} }

func classify(class, err error) error {
	if err == nil {
		return nil
	}
	return &classified{class: class, err: err}
}

// ExitCode maps an error returned by Run to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConfig):
		return 2
	default:
		return 1
	}
}
