package nodeid

import (
	"errors"
	"fmt"
)

// ParseErrorKind classifies why a canonical NodeID string was rejected.
type ParseErrorKind uint8

const (
	MalformedNamespace ParseErrorKind = iota + 1
	UnknownTypeTag
	InvalidPayload
)

func (k ParseErrorKind) String() string {
	switch k {
	case MalformedNamespace:
		return "malformed namespace"
	case UnknownTypeTag:
		return "unknown type tag"
	case InvalidPayload:
		return "invalid payload"
	}
	return fmt.Sprintf("ParseErrorKind(%d)", uint8(k))
}

var (
	ErrMalformedNamespace = errors.New("malformed namespace index")
	ErrUnknownTypeTag     = errors.New("unknown identifier type tag")
	ErrInvalidPayload     = errors.New("identifier payload does not match its type")
)

func (k ParseErrorKind) sentinel() error {
	switch k {
	case MalformedNamespace:
		return ErrMalformedNamespace
	case UnknownTypeTag:
		return ErrUnknownTypeTag
	case InvalidPayload:
		return ErrInvalidPayload
	}
	return nil
}

// ParseError is returned by Parse. It matches the sentinel of its kind with
// errors.Is, and unwraps to the lower level cause if there is one.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nodeid: parse %q: %s: %v", e.Input, e.Kind, e.Err)
	}
	return fmt.Sprintf("nodeid: parse %q: %s", e.Input, e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

var (
	ErrTruncated       = errors.New("truncated input")
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrInvalidLength   = errors.New("invalid length")
	ErrMalformed       = errors.New("malformed input")
)

// DecodeError is returned by the binary, JSON and protobuf decoders.
type DecodeError struct {
	// Format names the codec that failed: "binary", "json" or "proto".
	Format string
	// Offset is the byte offset at which decoding failed, -1 if unknown.
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("nodeid: %s decode at offset %d: %v", e.Format, e.Offset, e.Err)
	}
	return fmt.Sprintf("nodeid: %s decode: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(format string, offset int, err error) error {
	return &DecodeError{Format: format, Offset: offset, Err: err}
}
