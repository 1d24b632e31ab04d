package models

import "encoding/json"

// MessageType describes a kind of dispatch, identified by UUID and by a
// surrogate id such as "uw_student_courseavailable".
type MessageType struct {
	MessageTypeID      string
	MessageTypeURI     string
	SurrogateID        string
	ContentType        string
	DestinationType    string
	DestinationAddress string
	// TTL is the dispatch time-to-live in seconds; nil when unset.
	TTL *int

	Audit
}

// JSONData returns the request body for writing the message type.
func (m *MessageType) JSONData() map[string]any {
	return map[string]any{"MessageType": m}
}

type messageTypeWire struct {
	MessageTypeID      *string `json:"MessageTypeID"`
	MessageTypeURI     *string `json:"MessageTypeURI"`
	SurrogateID        *string `json:"SurrogateID"`
	ContentType        *string `json:"ContentType"`
	DestinationType    *string `json:"DestinationType"`
	DestinationAddress *string `json:"DestinationAddress"`
	TTL                *int    `json:"TTL"`
	auditWire
}

// MarshalJSON emits the full message type key set.
func (m MessageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageTypeWire{
		MessageTypeID:      nullString(m.MessageTypeID),
		MessageTypeURI:     nullString(m.MessageTypeURI),
		SurrogateID:        nullString(m.SurrogateID),
		ContentType:        nullString(m.ContentType),
		DestinationType:    nullString(m.DestinationType),
		DestinationAddress: nullString(m.DestinationAddress),
		TTL:                m.TTL,
		auditWire:          m.Audit.wire(),
	})
}

// UnmarshalJSON decodes a message type object.
func (m *MessageType) UnmarshalJSON(data []byte) error {
	if err := requireKeys("MessageType", data, "MessageTypeID", "SurrogateID"); err != nil {
		return err
	}
	var w messageTypeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	audit, err := w.audit("MessageType")
	if err != nil {
		return err
	}
	*m = MessageType{
		MessageTypeID:      derefString(w.MessageTypeID),
		MessageTypeURI:     derefString(w.MessageTypeURI),
		SurrogateID:        derefString(w.SurrogateID),
		ContentType:        derefString(w.ContentType),
		DestinationType:    derefString(w.DestinationType),
		DestinationAddress: derefString(w.DestinationAddress),
		TTL:                w.TTL,
		Audit:              audit,
	}
	return nil
}
