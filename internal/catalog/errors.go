package catalog

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// FIELD_NOT_FOUND means no label row matched the field's keyword.
	FIELD_NOT_FOUND ErrorKind = iota
	// SHAPE_MISMATCH means a row was found but its value could not be read.
	SHAPE_MISMATCH
	// MISSING_TABLE means the detail page has no table at all.
	MISSING_TABLE
)

var (
	ErrFieldNotFound = errors.New("field not found")
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrMissingTable  = errors.New("missing table")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case FIELD_NOT_FOUND:
		return ErrFieldNotFound
	case SHAPE_MISMATCH:
		return ErrShapeMismatch
	case MISSING_TABLE:
		return ErrMissingTable
	}
	return nil
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// FieldError describes why a single field of a record resolved to absent.
// It never escapes the builder as a failure, it is only reported.
type FieldError struct {
	Field string
	Kind  ErrorKind
	// Raw is the offending text, if any.
	Raw string
	Err error
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Field, e.Kind)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Raw != "" {
		msg = fmt.Sprintf("%s (raw: %q)", msg, e.Raw)
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrShapeMismatch) and friends work on a FieldError.
func (e *FieldError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func notFound(field, keyword string) error {
	return &FieldError{
		Field: field,
		Kind:  FIELD_NOT_FOUND,
		Err:   fmt.Errorf("no label row contains %q", keyword),
	}
}

func mismatch(field, raw string, err error) error {
	return &FieldError{
		Field: field,
		Kind:  SHAPE_MISMATCH,
		Raw:   raw,
		Err:   err,
	}
}
