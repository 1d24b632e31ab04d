package nws

import (
	"context"
	"fmt"
	"time"

	"github.com/uw-it-aca/restclients-nws/pkg/models"
	"github.com/uw-it-aca/restclients-nws/pkg/validate"
)

// now is replaced in tests.
var now = time.Now

// GetChannelByID retrieves a channel by its UUID.
func (c *Client) GetChannelByID(ctx context.Context, channelID string) (*models.Channel, error) {
	if err := validate.UUID(channelID); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, requestURI("/channel/"+channelID, nil))
	if err != nil {
		return nil, err
	}

	channel, err := models.DecodeEnvelope[models.Channel](body, "Channel")
	if err != nil {
		return nil, fmt.Errorf("failed to decode channel: %w", err)
	}
	return channel, nil
}

// IsChannelActive reports whether a channel exists and has not expired.
// Any failure to fetch the channel, including 404, is returned as an error.
func (c *Client) IsChannelActive(ctx context.Context, channelID string) (bool, error) {
	channel, err := c.GetChannelByID(ctx, channelID)
	if err != nil {
		return false, err
	}
	return channel.IsActive(now()), nil
}

// SearchChannels lists the channels matching query. An empty result is not
// an error.
func (c *Client) SearchChannels(ctx context.Context, query ChannelQuery) ([]*models.Channel, error) {
	values, err := queryValues(query)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, requestURI("/channel", values))
	if err != nil {
		return nil, err
	}

	channels, err := models.DecodeList[models.Channel](body, "Channels")
	if err != nil {
		return nil, fmt.Errorf("failed to decode channels: %w", err)
	}
	return channels, nil
}

// GetChannelsBySLN lists the channels of a type tagged with a section SLN.
func (c *Client) GetChannelsBySLN(ctx context.Context, channelType, sln string) ([]*models.Channel, error) {
	return c.SearchChannels(ctx, ChannelQuery{Type: channelType, TagSLN: sln})
}

// GetChannelsBySLNYearQuarter lists the channels of a type tagged with a
// section SLN in one term.
func (c *Client) GetChannelsBySLNYearQuarter(ctx context.Context, channelType, sln string, year int, quarter string) ([]*models.Channel, error) {
	return c.SearchChannels(ctx, ChannelQuery{
		Type:       channelType,
		TagSLN:     sln,
		TagYear:    year,
		TagQuarter: quarter,
	})
}

// GetActiveChannelsByYearQuarter lists the channels of a type in one term
// that expire after expiresAfter. A zero expiresAfter means midnight UTC of
// the current day.
func (c *Client) GetActiveChannelsByYearQuarter(ctx context.Context, channelType string, year int, quarter string, expiresAfter time.Time) ([]*models.Channel, error) {
	if expiresAfter.IsZero() {
		expiresAfter = now().UTC().Truncate(24 * time.Hour)
	}

	return c.SearchChannels(ctx, ChannelQuery{
		Type:         channelType,
		TagYear:      year,
		TagQuarter:   quarter,
		ExpiresAfter: models.FormatTimestamp(expiresAfter),
	})
}
