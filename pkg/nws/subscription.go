package nws

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uw-it-aca/restclients-nws/pkg/models"
	"github.com/uw-it-aca/restclients-nws/pkg/validate"
)

// SearchSubscriptions lists the subscriptions matching query. An empty
// result is not an error.
func (c *Client) SearchSubscriptions(ctx context.Context, query SubscriptionQuery) ([]*models.Subscription, error) {
	values, err := queryValues(query)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, requestURI("/subscription", values))
	if err != nil {
		return nil, err
	}

	subscriptions, err := models.DecodeList[models.Subscription](body, "Subscriptions")
	if err != nil {
		return nil, fmt.Errorf("failed to decode subscriptions: %w", err)
	}
	return subscriptions, nil
}

// GetSubscriptionsByChannelID lists the subscriptions on a channel.
func (c *Client) GetSubscriptionsByChannelID(ctx context.Context, channelID string) ([]*models.Subscription, error) {
	if err := validate.UUID(channelID); err != nil {
		return nil, err
	}
	return c.SearchSubscriptions(ctx, SubscriptionQuery{ChannelID: channelID})
}

// GetSubscriptionsBySubscriberID lists up to maxResults subscriptions of a
// subscriber. maxResults of zero leaves the limit to the service.
func (c *Client) GetSubscriptionsBySubscriberID(ctx context.Context, subscriberID string, maxResults int) ([]*models.Subscription, error) {
	if err := validate.SubscriberID(subscriberID); err != nil {
		return nil, err
	}
	return c.SearchSubscriptions(ctx, SubscriptionQuery{SubscriberID: subscriberID, MaxResults: maxResults})
}

// GetSubscriptionsByChannelIDAndSubscriberID lists a subscriber's
// subscriptions on one channel.
func (c *Client) GetSubscriptionsByChannelIDAndSubscriberID(ctx context.Context, channelID, subscriberID string) ([]*models.Subscription, error) {
	if err := validate.UUID(channelID); err != nil {
		return nil, err
	}
	if err := validate.SubscriberID(subscriberID); err != nil {
		return nil, err
	}
	return c.SearchSubscriptions(ctx, SubscriptionQuery{ChannelID: channelID, SubscriberID: subscriberID})
}

// GetSubscriptionsByChannelIDAndPersonID lists a person's subscriptions on
// one channel.
func (c *Client) GetSubscriptionsByChannelIDAndPersonID(ctx context.Context, channelID, personID string) ([]*models.Subscription, error) {
	if err := validate.UUID(channelID); err != nil {
		return nil, err
	}
	return c.SearchSubscriptions(ctx, SubscriptionQuery{ChannelID: channelID, PersonID: personID})
}

// GetSubscriptionByChannelIDAndEndpointID returns the subscription binding an
// endpoint to a channel. No match yields a 404 DataFailureError.
func (c *Client) GetSubscriptionByChannelIDAndEndpointID(ctx context.Context, channelID, endpointID string) (*models.Subscription, error) {
	if err := validate.UUID(channelID); err != nil {
		return nil, err
	}
	if err := validate.UUID(endpointID); err != nil {
		return nil, err
	}

	query := SubscriptionQuery{ChannelID: channelID, EndpointID: endpointID}
	subscriptions, err := c.SearchSubscriptions(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(subscriptions) == 0 {
		values, _ := queryValues(query)
		return nil, notFound(requestURI("/subscription", values), "No subscription found")
	}
	return subscriptions[0], nil
}

// CreateSubscription creates a new subscription. Identifiers present on the
// subscription and its endpoint are validated; a channel, when present, must
// carry a valid id.
func (c *Client) CreateSubscription(ctx context.Context, subscription *models.Subscription) error {
	if subscription.SubscriptionID != "" {
		if err := validate.UUID(subscription.SubscriptionID); err != nil {
			return err
		}
	}

	if e := subscription.Endpoint; e != nil {
		if e.SubscriberID != "" {
			if err := validate.SubscriberID(e.SubscriberID); err != nil {
				return err
			}
		}
		if e.EndpointID != "" {
			if err := validate.UUID(e.EndpointID); err != nil {
				return err
			}
		}
	}

	if subscription.Channel != nil {
		if err := validate.UUID(subscription.Channel.ChannelID); err != nil {
			return err
		}
	}

	_, err := c.doRequest(ctx, http.MethodPost, requestURI("/subscription", nil), subscription.JSONData(), http.StatusCreated)
	return err
}

// CreateNewSubscription is an alias for CreateSubscription.
func (c *Client) CreateNewSubscription(ctx context.Context, subscription *models.Subscription) error {
	return c.CreateSubscription(ctx, subscription)
}

// DeleteSubscription deletes a subscription.
func (c *Client) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	if err := validate.UUID(subscriptionID); err != nil {
		return err
	}

	_, err := c.doRequest(ctx, http.MethodDelete, requestURI("/subscription/"+subscriptionID, nil), nil, http.StatusNoContent)
	return err
}
