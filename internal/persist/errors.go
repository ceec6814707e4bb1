package persist

import (
	"errors"
	"fmt"
)

// Kind classifies a persistence failure.
type Kind uint8

const (
	// KindIO covers filesystem failures.
	KindIO Kind = iota + 1
	// KindCodec covers malformed or incompatible save data.
	KindCodec
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindCodec:
		return "codec"
	}
	return "unknown"
}

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrIO    = errors.New("persist: io failure")
	ErrCodec = errors.New("persist: codec failure")
)

// Error reports which operation failed on which file.
type Error struct {
	Op   string
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("persist %s (%s): %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("persist %s %s (%s): %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrCodec:
		return e.Kind == KindCodec
	}
	return false
}
