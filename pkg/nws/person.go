package nws

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uw-it-aca/restclients-nws/pkg/models"
	"github.com/uw-it-aca/restclients-nws/pkg/validate"
)

// GetPersonBySurrogateID retrieves a person by net id.
func (c *Client) GetPersonBySurrogateID(ctx context.Context, surrogateID string) (*models.Person, error) {
	if err := validate.SubscriberID(surrogateID); err != nil {
		return nil, err
	}
	return c.getPerson(ctx, surrogateID)
}

// GetPersonByRegID retrieves a person by UW regid.
func (c *Client) GetPersonByRegID(ctx context.Context, regID string) (*models.Person, error) {
	if err := validate.RegID(regID); err != nil {
		return nil, err
	}
	return c.getPerson(ctx, regID)
}

func (c *Client) getPerson(ctx context.Context, id string) (*models.Person, error) {
	body, err := c.get(ctx, requestURI("/person/"+id, nil))
	if err != nil {
		return nil, err
	}

	person, err := models.DecodeEnvelope[models.Person](body, "Person")
	if err != nil {
		return nil, fmt.Errorf("failed to decode person: %w", err)
	}
	return person, nil
}

// CreatePerson creates a new person.
func (c *Client) CreatePerson(ctx context.Context, person *models.Person) error {
	if err := validate.SubscriberID(person.SurrogateID); err != nil {
		return err
	}

	_, err := c.doRequest(ctx, http.MethodPost, requestURI("/person", nil), person.JSONData(), http.StatusCreated)
	return err
}

// CreateNewPerson is an alias for CreatePerson.
func (c *Client) CreateNewPerson(ctx context.Context, person *models.Person) error {
	return c.CreatePerson(ctx, person)
}

// UpdatePerson replaces an existing person. Service managed attributes are
// left out of the request body.
func (c *Client) UpdatePerson(ctx context.Context, person *models.Person) error {
	if err := validate.RegID(person.PersonID); err != nil {
		return err
	}
	if err := validate.SubscriberID(person.SurrogateID); err != nil {
		return err
	}

	uri := requestURI("/person/"+person.PersonID, nil)
	_, err := c.doRequest(ctx, http.MethodPut, uri, person.UpdateJSONData(), http.StatusNoContent)
	return err
}
