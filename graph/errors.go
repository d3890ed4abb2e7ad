package graph

import (
	"errors"
	"fmt"
)

var (
	ErrLabelNotFound            = errors.New("label not found")
	ErrRelationshipTypeNotFound = errors.New("relationship type not found")
	ErrPropertyKeyNotFound      = errors.New("property key not found")
	ErrInvalidUTF8              = errors.New("invalid utf-8 sequence")
)

// IdentifierKind names one of the three identifier namespaces the server refers to by integer id in compact replies.
type IdentifierKind int

const (
	IdentifierLabel IdentifierKind = iota
	IdentifierRelationshipType
	IdentifierPropertyKey
)

func (s IdentifierKind) String() string {
	switch s {
	case IdentifierLabel:
		return "label"
	case IdentifierRelationshipType:
		return "relationship type"
	case IdentifierPropertyKey:
		return "property key"
	default:
		return "unknown identifier"
	}
}

// NotFoundError returns the sentinel error that errors.Is matches for a miss of this identifier kind.
func (s IdentifierKind) NotFoundError() error {
	switch s {
	case IdentifierLabel:
		return ErrLabelNotFound
	case IdentifierRelationshipType:
		return ErrRelationshipTypeNotFound
	case IdentifierPropertyKey:
		return ErrPropertyKeyNotFound
	default:
		return nil
	}
}

// IdentifierNotFoundError is returned when an id found in a reply can not be resolved through the session's
// identifier cache. It is the only decode error that the session recovers from.
type IdentifierNotFoundError struct {
	Kind IdentifierKind
	ID   int64
}

func NewIdentifierNotFoundError(kind IdentifierKind, id int64) error {
	return &IdentifierNotFoundError{
		Kind: kind,
		ID:   id,
	}
}

func (s *IdentifierNotFoundError) Error() string {
	return fmt.Sprintf("%s not found for id %d", s.Kind, s.ID)
}

func (s *IdentifierNotFoundError) Is(target error) bool {
	return target != nil && target == s.Kind.NotFoundError()
}

// ServerTypeError describes a reply that does not match the shape or tag expected at some decode step.
type ServerTypeError struct {
	Message string
}

func NewServerTypeError(format string, args ...any) error {
	return &ServerTypeError{
		Message: fmt.Sprintf(format, args...),
	}
}

func (s *ServerTypeError) Error() string {
	return "server type error: " + s.Message
}

// ClientTypeError describes a projection that the decoded result set can not satisfy.
type ClientTypeError struct {
	Message string
}

func NewClientTypeError(format string, args ...any) error {
	return &ClientTypeError{
		Message: fmt.Sprintf(format, args...),
	}
}

func (s *ClientTypeError) Error() string {
	return "client type error: " + s.Message
}

// TransportError wraps a failure of the underlying connection or of the request itself.
type TransportError struct {
	Err error
}

func NewTransportError(err error) error {
	if err == nil {
		return nil
	}

	return &TransportError{
		Err: err,
	}
}

func (s *TransportError) Error() string {
	return "transport error: " + s.Err.Error()
}

func (s *TransportError) Unwrap() error {
	return s.Err
}

// IsIdentifierMiss returns the identifier kind of a resolvable miss contained in err.
func IsIdentifierMiss(err error) (IdentifierKind, bool) {
	var notFoundErr *IdentifierNotFoundError

	if errors.As(err, &notFoundErr) {
		return notFoundErr.Kind, true
	}

	return 0, false
}
