package nws

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uw-it-aca/restclients-nws/pkg/models"
	"github.com/uw-it-aca/restclients-nws/pkg/validate"
)

// GetMessageTypeByID retrieves a message type by its UUID.
func (c *Client) GetMessageTypeByID(ctx context.Context, messageTypeID string) (*models.MessageType, error) {
	if err := validate.UUID(messageTypeID); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, requestURI("/message-type/"+messageTypeID, nil))
	if err != nil {
		return nil, err
	}

	messageType, err := models.DecodeEnvelope[models.MessageType](body, "MessageType")
	if err != nil {
		return nil, fmt.Errorf("failed to decode message type: %w", err)
	}
	return messageType, nil
}

// UpdateMessageType replaces an existing message type.
func (c *Client) UpdateMessageType(ctx context.Context, messageType *models.MessageType) error {
	if err := validate.UUID(messageType.MessageTypeID); err != nil {
		return err
	}
	if err := validate.MessageTypeSurrogate(messageType.SurrogateID); err != nil {
		return err
	}

	uri := requestURI("/message-type/"+messageType.MessageTypeID, nil)
	_, err := c.doRequest(ctx, http.MethodPut, uri, messageType.JSONData(), http.StatusNoContent)
	return err
}

// DeleteMessageType deletes a message type.
func (c *Client) DeleteMessageType(ctx context.Context, messageTypeID string) error {
	if err := validate.UUID(messageTypeID); err != nil {
		return err
	}

	_, err := c.doRequest(ctx, http.MethodDelete, requestURI("/message-type/"+messageTypeID, nil), nil, http.StatusNoContent)
	return err
}
