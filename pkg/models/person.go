package models

import (
	"encoding/json"
	"strings"
)

// ManagedAttributes are counters maintained by the service. They are
// rejected on update and so are left out of update bodies.
var ManagedAttributes = []string{
	"DispatchedEmailCount",
	"DispatchedTextMessageCount",
	"SentTextMessageCount",
	"SubscriptionCount",
}

// Person is a notification subscriber with their endpoints.
type Person struct {
	PersonID    string
	PersonURI   string
	SurrogateID string
	Attributes  map[string]any
	Endpoints   []*Endpoint

	Audit
}

// NewPerson returns a person with initialised attribute and endpoint
// containers.
func NewPerson() *Person {
	return &Person{
		Attributes: map[string]any{},
		Endpoints:  []*Endpoint{},
	}
}

// DefaultEndpoint returns the first endpoint flagged as default, or nil.
func (p *Person) DefaultEndpoint() *Endpoint {
	for _, e := range p.Endpoints {
		if e != nil && e.IsDefault() {
			return e
		}
	}
	return nil
}

// EndpointByProtocol returns the first endpoint with the given protocol,
// compared without case, or nil.
func (p *Person) EndpointByProtocol(protocol string) *Endpoint {
	for _, e := range p.Endpoints {
		if e != nil && strings.EqualFold(e.Protocol, protocol) {
			return e
		}
	}
	return nil
}

// VerifiedEndpoints returns the verified endpoints keyed by lower-cased
// protocol ("email", "sms").
func (p *Person) VerifiedEndpoints() map[string]*Endpoint {
	verified := map[string]*Endpoint{}
	for _, e := range p.Endpoints {
		if e == nil || !e.IsVerified() {
			continue
		}
		protocol := strings.ToLower(e.Protocol)
		if _, ok := verified[protocol]; !ok {
			verified[protocol] = e
		}
	}
	return verified
}

// HasValidEndpoints reports whether the person has a verified email or SMS
// endpoint.
func (p *Person) HasValidEndpoints() bool {
	verified := p.VerifiedEndpoints()
	_, email := verified["email"]
	_, sms := verified["sms"]
	return email || sms
}

// JSONData returns the request body for creating the person.
func (p *Person) JSONData() map[string]any {
	return map[string]any{"Person": p}
}

// UpdateJSONData returns the request body for updating the person. Managed
// attributes are dropped from a copy; p is left untouched.
func (p *Person) UpdateJSONData() map[string]any {
	update := *p
	update.Attributes = make(map[string]any, len(p.Attributes))
	for k, v := range p.Attributes {
		update.Attributes[k] = v
	}
	for _, attr := range ManagedAttributes {
		delete(update.Attributes, attr)
	}
	return map[string]any{"Person": &update}
}

type personWire struct {
	PersonID    *string        `json:"PersonID"`
	PersonURI   *string        `json:"PersonURI"`
	SurrogateID *string        `json:"SurrogateID"`
	Attributes  map[string]any `json:"Attributes"`
	Endpoints   []*Endpoint    `json:"Endpoints"`
	auditWire
}

// MarshalJSON emits the full person key set.
func (p Person) MarshalJSON() ([]byte, error) {
	attributes := p.Attributes
	if attributes == nil {
		attributes = map[string]any{}
	}
	endpoints := p.Endpoints
	if endpoints == nil {
		endpoints = []*Endpoint{}
	}
	return json.Marshal(personWire{
		PersonID:    nullString(p.PersonID),
		PersonURI:   nullString(p.PersonURI),
		SurrogateID: nullString(p.SurrogateID),
		Attributes:  attributes,
		Endpoints:   endpoints,
		auditWire:   p.Audit.wire(),
	})
}

// UnmarshalJSON decodes a person object and its endpoints, in order.
func (p *Person) UnmarshalJSON(data []byte) error {
	if err := requireKeys("Person", data, "PersonID", "SurrogateID"); err != nil {
		return err
	}
	var w personWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	audit, err := w.audit("Person")
	if err != nil {
		return err
	}
	attributes := w.Attributes
	if attributes == nil {
		attributes = map[string]any{}
	}
	endpoints := w.Endpoints
	if endpoints == nil {
		endpoints = []*Endpoint{}
	}
	*p = Person{
		PersonID:    derefString(w.PersonID),
		PersonURI:   derefString(w.PersonURI),
		SurrogateID: derefString(w.SurrogateID),
		Attributes:  attributes,
		Endpoints:   endpoints,
		Audit:       audit,
	}
	return nil
}
