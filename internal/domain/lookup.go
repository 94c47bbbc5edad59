package domain

import (
	"errors"
	"fmt"
)

type LookupStatus int

const (
	LookupIdle LookupStatus = iota
	LookupLoading
	LookupSuccess
	LookupError
)

func (s LookupStatus) String() string {
	switch s {
	case LookupIdle:
		return "idle"
	case LookupLoading:
		return "loading"
	case LookupSuccess:
		return "success"
	case LookupError:
		return "error"
	default:
		return fmt.Sprintf("LookupStatus(%d)", int(s))
	}
}

var ErrInvalidTransition = errors.New("invalid lookup transition")

// Lookup tracks one user-facing resolution: idle -> loading -> (success | error).
// A finished lookup may be started again, which clears the previous outcome.
type Lookup struct {
	Status LookupStatus
	Result *ResolutionResult
	Error  string
}

func (l *Lookup) Start() error {
	if l.Status == LookupLoading {
		return fmt.Errorf("%w: already loading", ErrInvalidTransition)
	}
	l.Status = LookupLoading
	l.Result = nil
	l.Error = ""
	return nil
}

func (l *Lookup) Succeed(result *ResolutionResult) error {
	if l.Status != LookupLoading {
		return fmt.Errorf("%w: %s -> success", ErrInvalidTransition, l.Status)
	}
	l.Status = LookupSuccess
	l.Result = result
	return nil
}

func (l *Lookup) Fail(message string) error {
	if l.Status != LookupLoading {
		return fmt.Errorf("%w: %s -> error", ErrInvalidTransition, l.Status)
	}
	l.Status = LookupError
	l.Error = message
	return nil
}
