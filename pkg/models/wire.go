// Package models maps notification service records to and from their JSON
// wire form.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/araddon/dateparse"
)

// ErrMissingKey is wrapped by MissingKeyError.
var ErrMissingKey = errors.New("missing required key")

// MissingKeyError reports a required wire key that was absent from a JSON
// object.
type MissingKeyError struct {
	Entity string
	Key    string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Entity, ErrMissingKey, e.Key)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// TimestampLayout is used when rendering timestamps onto the wire.
const TimestampLayout = time.RFC3339Nano

// isoDatePrefix matches the calendar date every wire timestamp starts with.
var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// ParseTimestamp parses an ISO-8601 timestamp as emitted by the service.
// Values without an offset are taken to be UTC. The result is always in UTC.
// Other date forms, such as 5/10/2013 or a unix epoch, are rejected.
func ParseTimestamp(value string) (time.Time, error) {
	if !isoDatePrefix.MatchString(value) {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: not ISO-8601", value)
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return t.UTC(), nil
}

// FormatTimestamp renders t in the wire format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// requireKeys fails with a MissingKeyError for the first key not present in
// data. A key holding null counts as present.
func requireKeys(entity string, data []byte, keys ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", entity, err)
	}
	if raw == nil {
		return fmt.Errorf("%s: expected a JSON object", entity)
	}
	for _, key := range keys {
		if _, ok := raw[key]; !ok {
			return &MissingKeyError{Entity: entity, Key: key}
		}
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func nullTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := FormatTimestamp(t)
	return &s
}

// parseTimestampField parses an optional date key; nil leaves the zero time.
func parseTimestampField(entity, key string, p *string) (time.Time, error) {
	if p == nil || *p == "" {
		return time.Time{}, nil
	}
	t, err := ParseTimestamp(*p)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s.%s: %w", entity, key, err)
	}
	return t, nil
}

// Audit holds the service-maintained bookkeeping fields common to every
// record.
type Audit struct {
	Created      time.Time
	LastModified time.Time
	ModifiedBy   string
}

type auditWire struct {
	Created      *string `json:"Created"`
	LastModified *string `json:"LastModified"`
	ModifiedBy   *string `json:"ModifiedBy"`
}

func (a Audit) wire() auditWire {
	return auditWire{
		Created:      nullTimestamp(a.Created),
		LastModified: nullTimestamp(a.LastModified),
		ModifiedBy:   nullString(a.ModifiedBy),
	}
}

func (w auditWire) audit(entity string) (Audit, error) {
	created, err := parseTimestampField(entity, "Created", w.Created)
	if err != nil {
		return Audit{}, err
	}
	modified, err := parseTimestampField(entity, "LastModified", w.LastModified)
	if err != nil {
		return Audit{}, err
	}
	return Audit{
		Created:      created,
		LastModified: modified,
		ModifiedBy:   derefString(w.ModifiedBy),
	}, nil
}

// DecodeEnvelope decodes the record stored under key in a response body such
// as {"Endpoint": {...}}.
func DecodeEnvelope[T any](body []byte, key string) (*T, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	raw, ok := env[key]
	if !ok || string(raw) == "null" {
		return nil, &MissingKeyError{Entity: "response", Key: key}
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeList decodes the record list stored under key, e.g.
// {"Endpoints": [...]}. An absent or null list yields an empty slice.
func DecodeList[T any](body []byte, key string) ([]*T, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	items := []*T{}
	raw, ok := env[key]
	if !ok || string(raw) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
