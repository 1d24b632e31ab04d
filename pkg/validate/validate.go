// Package validate checks notification service identifiers before they are
// placed in a request URL or body.
//
// Every check is a fully anchored, case-insensitive pattern. The empty string
// stands in for a missing value and never passes.
package validate

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	uuidPattern         = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	regIDPattern        = regexp.MustCompile(`(?i)^[A-F0-9]{32}$`)
	subscriberIDPattern = regexp.MustCompile(`(?i)^([a-z]adm_)?[a-z][a-z0-9]{0,7}(@washington\.edu)?$`)
	protocolPattern     = regexp.MustCompile(`(?i)^(Email|SMS)$`)
	surrogatePattern    = regexp.MustCompile(`(?i)^uw_[a-z0-9_]{1,37}$`)
)

// check reports whether value is present and matches pattern.
func check(value string, pattern *regexp.Regexp) bool {
	return validation.Validate(value,
		validation.Required,
		validation.Match(pattern),
	) == nil
}

// UUID validates a canonical 8-4-4-4-12 hex identifier.
func UUID(value string) error {
	if !check(value, uuidPattern) {
		return &InvalidUUIDError{Value: value}
	}
	return nil
}

// RegID validates a 32 character hex registry id.
func RegID(value string) error {
	if !check(value, regIDPattern) {
		return &InvalidRegIDError{Value: value}
	}
	return nil
}

// SubscriberID validates a UW net id, optionally carrying an admin prefix
// ("xadm_") or the "@washington.edu" suffix.
func SubscriberID(value string) error {
	if !check(value, subscriberIDPattern) {
		return &InvalidNetIDError{Value: value}
	}
	return nil
}

// EndpointProtocol validates an endpoint protocol (Email or SMS).
func EndpointProtocol(value string) error {
	if !check(value, protocolPattern) {
		return &InvalidEndpointProtocolError{Value: value}
	}
	return nil
}

// MessageTypeSurrogate validates a message type surrogate id such as
// "uw_student_courseavailable".
func MessageTypeSurrogate(value string) error {
	if !check(value, surrogatePattern) {
		return &InvalidSurrogateIDError{Value: value}
	}
	return nil
}
