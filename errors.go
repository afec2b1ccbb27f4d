package numrand

import "github.com/pkg/errors"

// ErrInvalidArgument is wrapped by every error this package returns. All such errors are
// detected at the call that introduces the bad input (construction, seed expansion or a
// range draw with max < min); drawing raw words never fails.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
