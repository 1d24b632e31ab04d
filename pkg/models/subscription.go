package models

import "encoding/json"

// Subscription binds one endpoint to one channel. It owns its own snapshot
// of both; either may be nil.
type Subscription struct {
	SubscriptionID  string
	SubscriptionURI string
	Channel         *Channel
	Endpoint        *Endpoint

	Audit
}

// JSONData returns the request body for writing the subscription.
func (s *Subscription) JSONData() map[string]any {
	return map[string]any{"Subscription": s}
}

type subscriptionWire struct {
	SubscriptionID  *string   `json:"SubscriptionID"`
	SubscriptionURI *string   `json:"SubscriptionURI"`
	Channel         *Channel  `json:"Channel"`
	Endpoint        *Endpoint `json:"Endpoint"`
	auditWire
}

// MarshalJSON emits the full subscription key set. Absent channel or
// endpoint render as null.
func (s Subscription) MarshalJSON() ([]byte, error) {
	return json.Marshal(subscriptionWire{
		SubscriptionID:  nullString(s.SubscriptionID),
		SubscriptionURI: nullString(s.SubscriptionURI),
		Channel:         s.Channel,
		Endpoint:        s.Endpoint,
		auditWire:       s.Audit.wire(),
	})
}

// UnmarshalJSON decodes a subscription object.
func (s *Subscription) UnmarshalJSON(data []byte) error {
	if err := requireKeys("Subscription", data, "SubscriptionID"); err != nil {
		return err
	}
	var w subscriptionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	audit, err := w.audit("Subscription")
	if err != nil {
		return err
	}
	*s = Subscription{
		SubscriptionID:  derefString(w.SubscriptionID),
		SubscriptionURI: derefString(w.SubscriptionURI),
		Channel:         w.Channel,
		Endpoint:        w.Endpoint,
		Audit:           audit,
	}
	return nil
}
