package validate

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by the typed validation errors below.
var (
	ErrInvalidUUID             = errors.New("invalid UUID")
	ErrInvalidRegID            = errors.New("invalid regid")
	ErrInvalidNetID            = errors.New("invalid net id")
	ErrInvalidEndpointProtocol = errors.New("invalid endpoint protocol")
	ErrInvalidSurrogateID      = errors.New("invalid surrogate id")
)

// InvalidUUIDError reports a value that is not a canonical UUID.
type InvalidUUIDError struct {
	Value string
}

func (e *InvalidUUIDError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidUUID, e.Value)
}

func (e *InvalidUUIDError) Unwrap() error { return ErrInvalidUUID }

// InvalidRegIDError reports a value that is not a 32 character regid.
type InvalidRegIDError struct {
	Value string
}

func (e *InvalidRegIDError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidRegID, e.Value)
}

func (e *InvalidRegIDError) Unwrap() error { return ErrInvalidRegID }

// InvalidNetIDError reports a malformed subscriber (net) id.
type InvalidNetIDError struct {
	Value string
}

func (e *InvalidNetIDError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidNetID, e.Value)
}

func (e *InvalidNetIDError) Unwrap() error { return ErrInvalidNetID }

// InvalidEndpointProtocolError reports a protocol other than Email or SMS.
type InvalidEndpointProtocolError struct {
	Value string
}

func (e *InvalidEndpointProtocolError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidEndpointProtocol, e.Value)
}

func (e *InvalidEndpointProtocolError) Unwrap() error { return ErrInvalidEndpointProtocol }

// InvalidSurrogateIDError reports a malformed message type surrogate id.
type InvalidSurrogateIDError struct {
	Value string
}

func (e *InvalidSurrogateIDError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidSurrogateID, e.Value)
}

func (e *InvalidSurrogateIDError) Unwrap() error { return ErrInvalidSurrogateID }
