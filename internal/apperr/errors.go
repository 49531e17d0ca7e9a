// Package apperr defines the closed error taxonomy returned by service
// operations. Errors carry the entity kind and id as structured fields so
// callers and tests can match on them with errors.Is instead of parsing
// message text.
package apperr

import "fmt"

type Kind int

const (
	// KindNotFound: the referenced entity id does not exist in its repository.
	KindNotFound Kind = iota + 1
	// KindNotCreator: the caller principal does not match the course creator.
	KindNotCreator
	// KindInvalidInput: payload validation failed.
	KindInvalidInput
	// KindPartialWrite: a multi-write operation failed after its first write
	// already went through. Distinct from KindNotFound so callers can tell
	// "nothing happened" from "partially happened".
	KindPartialWrite
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindNotCreator:
		return "not creator"
	case KindInvalidInput:
		return "invalid input"
	case KindPartialWrite:
		return "partial write"
	}
	return "unknown"
}

// Error is the only error type service operations return. Entity and ID are
// zero for errors that do not concern a specific record.
type Error struct {
	Kind   Kind
	Entity string
	ID     uint64
	Msg    string
	cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindPartialWrite && e.cause != nil:
		return fmt.Sprintf("partial write involving %s with id=%d: %v", e.Entity, e.ID, e.cause)
	case e.Kind == KindNotFound:
		return fmt.Sprintf("a %s with id=%d not found", e.Entity, e.ID)
	case e.Kind == KindNotCreator:
		return fmt.Sprintf("caller is not the creator of %s with id=%d", e.Entity, e.ID)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target matches e. A target with zero Entity/ID matches
// any error of the same kind, so the package sentinels act as kind matchers.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	if t.Entity != "" && t.Entity != e.Entity {
		return false
	}
	if t.ID != 0 && t.ID != e.ID {
		return false
	}
	return true
}

// Kind matchers for errors.Is.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrNotCreator   = &Error{Kind: KindNotCreator}
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrPartialWrite = &Error{Kind: KindPartialWrite}
)

// NotFound reports a missing entity record.
func NotFound(entity string, id uint64) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

// NotCreator reports a creator-authorization failure for the given course.
func NotCreator(entity string, id uint64) *Error {
	return &Error{Kind: KindNotCreator, Entity: entity, ID: id}
}

// InvalidInput reports a payload validation failure.
func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Msg: msg}
}

// PartialWrite reports that a later step of a multi-write operation failed
// after an earlier write already took effect. cause may be nil.
func PartialWrite(entity string, id uint64, cause error) *Error {
	return &Error{Kind: KindPartialWrite, Entity: entity, ID: id, cause: cause}
}
