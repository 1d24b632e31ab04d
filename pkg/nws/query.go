package nws

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// SubscriptionQuery holds subscription search parameters. Zero fields are
// not sent.
type SubscriptionQuery struct {
	ChannelID    string `mapstructure:"channel_id"`
	EndpointID   string `mapstructure:"endpoint_id"`
	SubscriberID string `mapstructure:"subscriber_id"`
	PersonID     string `mapstructure:"person_id"`
	FirstResult  int    `mapstructure:"first_result"`
	MaxResults   int    `mapstructure:"max_results"`
}

// ChannelQuery holds channel search parameters. Zero fields are not sent.
type ChannelQuery struct {
	Type        string `mapstructure:"type"`
	SurrogateID string `mapstructure:"surrogate_id"`
	TagSLN      string `mapstructure:"tag_sln"`
	TagYear     int    `mapstructure:"tag_year"`
	TagQuarter  string `mapstructure:"tag_quarter"`
	// ExpiresAfter is an ISO-8601 timestamp.
	ExpiresAfter string `mapstructure:"expires_after"`
	FirstResult  int    `mapstructure:"first_result"`
	MaxResults   int    `mapstructure:"max_results"`
}

// queryValues flattens a query struct into URL parameters, dropping zero
// values.
func queryValues(query any) (url.Values, error) {
	fields := map[string]any{}
	if err := mapstructure.Decode(query, &fields); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	values := url.Values{}
	for key, value := range fields {
		if value == nil || reflect.ValueOf(value).IsZero() {
			continue
		}
		values.Set(key, fmt.Sprint(value))
	}
	return values, nil
}
