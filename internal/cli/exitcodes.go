package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/mdtree/internal/configloader"
	"github.com/yaklabco/mdtree/pkg/fsutil"
)

// Exit codes for mdtree.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates that inputs failed to parse or diverged from the reference.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrDivergence is returned by check when the block structure disagrees
	// with the reference parser.
	ErrDivergence = errors.New("divergences from reference parser")

	// ErrParseFailures is returned when one or more inputs could not be read.
	ErrParseFailures = errors.New("some inputs could not be parsed")

	// ErrInvalidUsage marks command-line mistakes.
	ErrInvalidUsage = errors.New("invalid usage")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrDivergence), errors.Is(err, ErrParseFailures):
		return ExitFailure
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission),
		errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fsutil.ErrPermissionDenied):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsSignal reports whether err only signals an exit status and has already
// been reported to the user.
func IsSignal(err error) bool {
	return errors.Is(err, ErrDivergence) || errors.Is(err, ErrParseFailures)
}
