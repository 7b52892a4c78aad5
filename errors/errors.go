package errors

import (
	"fmt"
	"strings"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Pre-flight failures of a split or a settings change. Nothing has been
	// touched when one of these is returned.
	ErrUnauthorized            = fmt.Errorf("captain or administrator only")
	ErrIncompleteConfiguration = fmt.Errorf("incomplete configuration")
	ErrInsufficientMembers     = fmt.Errorf("not enough members to build two teams")
	ErrSplitInProgress         = fmt.Errorf("a split is already running")

	// Settings store failures
	ErrCorruptConfig   = fmt.Errorf("corrupt configuration file")
	ErrPersistence     = fmt.Errorf("configuration could not be persisted")
	ErrInvalidSetting  = fmt.Errorf("invalid setting value")
	ErrUnknownSetting  = fmt.Errorf("unknown setting")
	ErrChannelNotFound = fmt.Errorf("voice channel not found")

	// Relocation outcomes reported by the member mover.
	// ErrForbidden is global: no member can be moved.
	ErrForbidden    = fmt.Errorf("missing permission to move members")
	ErrNotConnected = fmt.Errorf("member is not connected to voice")
)

// IncompleteConfigurationError lists every setting a split needs but could
// not resolve. It matches ErrIncompleteConfiguration.
type IncompleteConfigurationError struct {
	Missing []string
}

func (e *IncompleteConfigurationError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrIncompleteConfiguration, strings.Join(e.Missing, ", "))
}

func (e *IncompleteConfigurationError) Is(target error) bool {
	return target == ErrIncompleteConfiguration
}
