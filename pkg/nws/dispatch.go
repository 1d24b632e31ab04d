package nws

import (
	"context"
	"net/http"

	"github.com/uw-it-aca/restclients-nws/pkg/models"
	"github.com/uw-it-aca/restclients-nws/pkg/validate"
)

// CreateDispatch submits a new dispatch. The service answers 200, not 201.
func (c *Client) CreateDispatch(ctx context.Context, dispatch *models.Dispatch) error {
	if err := validate.UUID(dispatch.DispatchID); err != nil {
		return err
	}

	_, err := c.doRequest(ctx, http.MethodPost, requestURI("/dispatch", nil), dispatch.JSONData(), http.StatusOK)
	return err
}

// CreateNewDispatch is an alias for CreateDispatch.
func (c *Client) CreateNewDispatch(ctx context.Context, dispatch *models.Dispatch) error {
	return c.CreateDispatch(ctx, dispatch)
}

// DeleteDispatch deletes a dispatch.
func (c *Client) DeleteDispatch(ctx context.Context, dispatchID string) error {
	if err := validate.UUID(dispatchID); err != nil {
		return err
	}

	_, err := c.doRequest(ctx, http.MethodDelete, requestURI("/dispatch/"+dispatchID, nil), nil, http.StatusNoContent)
	return err
}
