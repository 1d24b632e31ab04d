package models

import (
	"encoding/json"
	"time"
)

// Channel is a named notification topic that subscriptions attach to. Course
// channels carry their term and SLN in Tags.
type Channel struct {
	ChannelID   string
	ChannelURI  string
	SurrogateID string
	Type        string
	Name        string
	Description string
	Tags        map[string]string
	Expires     time.Time

	Audit
}

// NewChannel returns a channel with an initialised tag map.
func NewChannel() *Channel {
	return &Channel{Tags: map[string]string{}}
}

// IsActive reports whether the channel has not expired at now. A channel
// without an expiry never expires.
func (c *Channel) IsActive(now time.Time) bool {
	return c.Expires.IsZero() || c.Expires.After(now)
}

// JSONData returns the request body for writing the channel.
func (c *Channel) JSONData() map[string]any {
	return map[string]any{"Channel": c}
}

type channelWire struct {
	ChannelID   *string           `json:"ChannelID"`
	ChannelURI  *string           `json:"ChannelURI"`
	SurrogateID *string           `json:"SurrogateID"`
	Type        *string           `json:"Type"`
	Name        *string           `json:"Name"`
	Description *string           `json:"Description"`
	Tags        map[string]string `json:"Tags"`
	Expires     *string           `json:"Expires"`
	auditWire
}

// MarshalJSON emits the full channel key set.
func (c Channel) MarshalJSON() ([]byte, error) {
	tags := c.Tags
	if tags == nil {
		tags = map[string]string{}
	}
	return json.Marshal(channelWire{
		ChannelID:   nullString(c.ChannelID),
		ChannelURI:  nullString(c.ChannelURI),
		SurrogateID: nullString(c.SurrogateID),
		Type:        nullString(c.Type),
		Name:        nullString(c.Name),
		Description: nullString(c.Description),
		Tags:        tags,
		Expires:     nullTimestamp(c.Expires),
		auditWire:   c.Audit.wire(),
	})
}

// UnmarshalJSON decodes a channel object.
func (c *Channel) UnmarshalJSON(data []byte) error {
	if err := requireKeys("Channel", data, "ChannelID", "SurrogateID", "Type", "Name"); err != nil {
		return err
	}
	var w channelWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	expires, err := parseTimestampField("Channel", "Expires", w.Expires)
	if err != nil {
		return err
	}
	audit, err := w.audit("Channel")
	if err != nil {
		return err
	}
	tags := w.Tags
	if tags == nil {
		tags = map[string]string{}
	}
	*c = Channel{
		ChannelID:   derefString(w.ChannelID),
		ChannelURI:  derefString(w.ChannelURI),
		SurrogateID: derefString(w.SurrogateID),
		Type:        derefString(w.Type),
		Name:        derefString(w.Name),
		Description: derefString(w.Description),
		Tags:        tags,
		Expires:     expires,
		Audit:       audit,
	}
	return nil
}
