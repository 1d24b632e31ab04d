package models

import (
	"encoding/json"
	"strings"
)

// Endpoint protocols understood by the service.
const (
	ProtocolEmail = "Email"
	ProtocolSMS   = "SMS"
)

// StatusVerified is the endpoint status of a confirmed address.
const StatusVerified = "verified"

// Endpoint is a deliverable address (phone number or email) owned by a
// subscriber.
type Endpoint struct {
	EndpointID      string
	EndpointURI     string
	EndpointAddress string
	Carrier         string
	Protocol        string
	SubscriberID    string
	Owner           string
	Status          string
	Active          *bool
	Default         *bool

	Audit
}

// IsVerified reports whether the endpoint status is "verified", ignoring case.
func (e *Endpoint) IsVerified() bool {
	return strings.EqualFold(e.Status, StatusVerified)
}

// IsActive reports the Active flag, treating null as false.
func (e *Endpoint) IsActive() bool {
	return e.Active != nil && *e.Active
}

// IsDefault reports the Default flag, treating null as false.
func (e *Endpoint) IsDefault() bool {
	return e.Default != nil && *e.Default
}

// JSONData returns the request body for writing the endpoint.
func (e *Endpoint) JSONData() map[string]any {
	return map[string]any{"Endpoint": e}
}

type endpointWire struct {
	EndpointID      *string `json:"EndpointID"`
	EndpointURI     *string `json:"EndpointURI"`
	EndpointAddress *string `json:"EndpointAddress"`
	Carrier         *string `json:"Carrier"`
	Protocol        *string `json:"Protocol"`
	SubscriberID    *string `json:"SubscriberID"`
	OwnerID         *string `json:"OwnerID"`
	Status          *string `json:"Status"`
	Active          *bool   `json:"Active"`
	Default         *bool   `json:"Default"`
	auditWire
}

// MarshalJSON emits the full endpoint key set.
func (e Endpoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(endpointWire{
		EndpointID:      nullString(e.EndpointID),
		EndpointURI:     nullString(e.EndpointURI),
		EndpointAddress: nullString(e.EndpointAddress),
		Carrier:         nullString(e.Carrier),
		Protocol:        nullString(e.Protocol),
		SubscriberID:    nullString(e.SubscriberID),
		OwnerID:         nullString(e.Owner),
		Status:          nullString(e.Status),
		Active:          e.Active,
		Default:         e.Default,
		auditWire:       e.Audit.wire(),
	})
}

// UnmarshalJSON decodes an endpoint object.
func (e *Endpoint) UnmarshalJSON(data []byte) error {
	if err := requireKeys("Endpoint", data, "EndpointAddress", "Protocol", "SubscriberID"); err != nil {
		return err
	}
	var w endpointWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	audit, err := w.audit("Endpoint")
	if err != nil {
		return err
	}
	*e = Endpoint{
		EndpointID:      derefString(w.EndpointID),
		EndpointURI:     derefString(w.EndpointURI),
		EndpointAddress: derefString(w.EndpointAddress),
		Carrier:         derefString(w.Carrier),
		Protocol:        derefString(w.Protocol),
		SubscriberID:    derefString(w.SubscriberID),
		Owner:           derefString(w.OwnerID),
		Status:          derefString(w.Status),
		Active:          w.Active,
		Default:         w.Default,
		Audit:           audit,
	}
	return nil
}
