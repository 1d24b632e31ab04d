package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Dispatch is a single outbound message instance of a message type. The
// service only accepts dispatches; it never returns them.
type Dispatch struct {
	DispatchID  string
	MessageType string
	Directive   map[string]any
	Content     map[string]any
	LockID      string
	LockedBy    string
	LockExpires time.Time

	Audit
}

// NewDispatch returns a dispatch of messageType with a fresh random id.
func NewDispatch(messageType string) *Dispatch {
	return &Dispatch{
		DispatchID:  uuid.NewString(),
		MessageType: messageType,
		Directive:   map[string]any{},
		Content:     map[string]any{},
	}
}

// JSONData returns the request body for creating the dispatch.
func (d *Dispatch) JSONData() map[string]any {
	return map[string]any{"Dispatch": d}
}

type dispatchWire struct {
	DispatchID  *string        `json:"DispatchID"`
	MessageType *string        `json:"MessageType"`
	Directive   map[string]any `json:"Directive"`
	Content     map[string]any `json:"Content"`
	LockID      *string        `json:"LockID"`
	LockedBy    *string        `json:"LockedBy"`
	LockExpires *string        `json:"LockExpires"`
	auditWire
}

// MarshalJSON emits the full dispatch key set.
func (d Dispatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(dispatchWire{
		DispatchID:  nullString(d.DispatchID),
		MessageType: nullString(d.MessageType),
		Directive:   d.Directive,
		Content:     d.Content,
		LockID:      nullString(d.LockID),
		LockedBy:    nullString(d.LockedBy),
		LockExpires: nullTimestamp(d.LockExpires),
		auditWire:   d.Audit.wire(),
	})
}

// UnmarshalJSON decodes a dispatch object.
func (d *Dispatch) UnmarshalJSON(data []byte) error {
	if err := requireKeys("Dispatch", data, "DispatchID"); err != nil {
		return err
	}
	var w dispatchWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	lockExpires, err := parseTimestampField("Dispatch", "LockExpires", w.LockExpires)
	if err != nil {
		return err
	}
	audit, err := w.audit("Dispatch")
	if err != nil {
		return err
	}
	if w.Directive == nil {
		w.Directive = map[string]any{}
	}
	if w.Content == nil {
		w.Content = map[string]any{}
	}
	*d = Dispatch{
		DispatchID:  derefString(w.DispatchID),
		MessageType: derefString(w.MessageType),
		Directive:   w.Directive,
		Content:     w.Content,
		LockID:      derefString(w.LockID),
		LockedBy:    derefString(w.LockedBy),
		LockExpires: lockExpires,
		Audit:       audit,
	}
	return nil
}
