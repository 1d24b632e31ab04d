package nws

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/uw-it-aca/restclients-nws/pkg/models"
	"github.com/uw-it-aca/restclients-nws/pkg/validate"
)

// GetEndpointByID retrieves an endpoint by its UUID.
func (c *Client) GetEndpointByID(ctx context.Context, endpointID string) (*models.Endpoint, error) {
	if err := validate.UUID(endpointID); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, requestURI("/endpoint/"+endpointID, nil))
	if err != nil {
		return nil, err
	}

	endpoint, err := models.DecodeEnvelope[models.Endpoint](body, "Endpoint")
	if err != nil {
		return nil, fmt.Errorf("failed to decode endpoint: %w", err)
	}
	return endpoint, nil
}

// GetEndpointBySubscriberIDAndProtocol retrieves the first endpoint of the
// given protocol owned by a subscriber.
func (c *Client) GetEndpointBySubscriberIDAndProtocol(ctx context.Context, subscriberID, protocol string) (*models.Endpoint, error) {
	if err := validate.SubscriberID(subscriberID); err != nil {
		return nil, err
	}
	if err := validate.EndpointProtocol(protocol); err != nil {
		return nil, err
	}

	uri := requestURI("/endpoint", url.Values{
		"subscriber_id": {subscriberID},
		"protocol":      {protocol},
	})
	return c.firstEndpoint(ctx, uri)
}

// GetEndpointByAddress retrieves the endpoint with the given address.
func (c *Client) GetEndpointByAddress(ctx context.Context, address string) (*models.Endpoint, error) {
	uri := requestURI("/endpoint", url.Values{"endpoint_address": {address}})
	return c.firstEndpoint(ctx, uri)
}

// GetEndpointsBySubscriberID lists every endpoint owned by a subscriber. An
// empty result is not an error.
func (c *Client) GetEndpointsBySubscriberID(ctx context.Context, subscriberID string) ([]*models.Endpoint, error) {
	if err := validate.SubscriberID(subscriberID); err != nil {
		return nil, err
	}

	return c.searchEndpoints(ctx, requestURI("/endpoint", url.Values{"subscriber_id": {subscriberID}}))
}

func (c *Client) searchEndpoints(ctx context.Context, uri string) ([]*models.Endpoint, error) {
	body, err := c.get(ctx, uri)
	if err != nil {
		return nil, err
	}

	endpoints, err := models.DecodeList[models.Endpoint](body, "Endpoints")
	if err != nil {
		return nil, fmt.Errorf("failed to decode endpoints: %w", err)
	}
	return endpoints, nil
}

func (c *Client) firstEndpoint(ctx context.Context, uri string) (*models.Endpoint, error) {
	endpoints, err := c.searchEndpoints(ctx, uri)
	if err != nil {
		return nil, err
	}
	if len(endpoints) == 0 {
		return nil, notFound(uri, "No endpoint found")
	}
	return endpoints[0], nil
}

// ResendSMSEndpointVerification asks the service to resend the verification
// message to an endpoint's phone number.
func (c *Client) ResendSMSEndpointVerification(ctx context.Context, endpointID string) error {
	if err := validate.UUID(endpointID); err != nil {
		return err
	}

	uri := requestURI("/endpoint/"+endpointID+"/verification", nil)
	_, err := c.doRequest(ctx, http.MethodPost, uri, nil, http.StatusAccepted)
	return err
}

// CreateEndpoint creates a new endpoint.
func (c *Client) CreateEndpoint(ctx context.Context, endpoint *models.Endpoint) error {
	if err := validate.SubscriberID(endpoint.SubscriberID); err != nil {
		return err
	}

	_, err := c.doRequest(ctx, http.MethodPost, requestURI("/endpoint", nil), endpoint.JSONData(), http.StatusCreated)
	return err
}

// CreateNewEndpoint is an alias for CreateEndpoint.
func (c *Client) CreateNewEndpoint(ctx context.Context, endpoint *models.Endpoint) error {
	return c.CreateEndpoint(ctx, endpoint)
}

// UpdateEndpoint replaces an existing endpoint.
func (c *Client) UpdateEndpoint(ctx context.Context, endpoint *models.Endpoint) error {
	if err := validate.UUID(endpoint.EndpointID); err != nil {
		return err
	}
	if err := validate.SubscriberID(endpoint.SubscriberID); err != nil {
		return err
	}

	uri := requestURI("/endpoint/"+endpoint.EndpointID, nil)
	_, err := c.doRequest(ctx, http.MethodPut, uri, endpoint.JSONData(), http.StatusNoContent)
	return err
}

// DeleteEndpoint deletes an endpoint.
func (c *Client) DeleteEndpoint(ctx context.Context, endpointID string) error {
	if err := validate.UUID(endpointID); err != nil {
		return err
	}

	_, err := c.doRequest(ctx, http.MethodDelete, requestURI("/endpoint/"+endpointID, nil), nil, http.StatusNoContent)
	return err
}
