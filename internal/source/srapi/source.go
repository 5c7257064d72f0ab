// Package srapi is the client for the Sveriges Radio open API. It
// fetches channel lists and scheduled episodes as XML and decodes them
// into raw records; it does no caching and no retrying.
package srapi

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	SourceID   = "sr"
	SourceName = "Sveriges Radio"

	// TimeLayout is the timestamp format used by starttimeutc and
	// endtimeutc.
	TimeLayout = "2006-01-02T15:04:05Z"

	dateLayout = "2006-01-02"
)

// Config holds source client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client performs the network fetch and XML decode for the schedule
// source.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a new source client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger.With("source", SourceID),
	}
}

// FetchChannels retrieves the full channel catalog.
func (c *Client) FetchChannels(ctx context.Context) ([]Channel, error) {
	url := fmt.Sprintf("%s/channels?pagination=false", c.baseURL)

	var doc channelsDocument
	if err := c.getXML(ctx, url, &doc); err != nil {
		return nil, err
	}

	channels := make([]Channel, 0, len(doc.Channels))
	for _, w := range doc.Channels {
		if w.ID == 0 || w.Name == "" {
			return nil, &ParseError{URL: url, Err: errors.New("channel entry missing id or name")}
		}
		channels = append(channels, Channel{
			ID:       w.ID,
			Name:     w.Name,
			Type:     w.Type,
			ImageURL: w.Image,
			About:    w.Tagline,
		})
	}

	c.logger.Debug("fetched channel list", "channels", len(channels))
	return channels, nil
}

// FetchEpisodes retrieves the scheduled episodes for one channel on
// one calendar date. The server-side date filter is coarse; callers
// filter the result by exact time window.
func (c *Client) FetchEpisodes(ctx context.Context, channelID int, date time.Time) ([]Episode, error) {
	url := fmt.Sprintf("%s/scheduledepisodes?channelid=%d&date=%s&pagination=false",
		c.baseURL, channelID, date.Format(dateLayout))
	return c.fetchSchedule(ctx, url)
}

// FetchFullSchedule retrieves the channel's entire schedule feed with
// no date filter. Used only to lazily resolve episode images.
func (c *Client) FetchFullSchedule(ctx context.Context, channelID int) ([]Episode, error) {
	url := fmt.Sprintf("%s/scheduledepisodes?channelid=%d&pagination=false", c.baseURL, channelID)
	return c.fetchSchedule(ctx, url)
}

func (c *Client) fetchSchedule(ctx context.Context, url string) ([]Episode, error) {
	var doc scheduleDocument
	if err := c.getXML(ctx, url, &doc); err != nil {
		return nil, err
	}

	episodes := make([]Episode, 0, len(doc.Episodes))
	for _, w := range doc.Episodes {
		if w.Title == "" || w.Start == "" || w.End == "" {
			return nil, &ParseError{URL: url, Err: errors.New("episode entry missing title or time range")}
		}
		episodes = append(episodes, Episode{
			Title:       w.Title,
			Subtitle:    w.Subtitle,
			Description: w.Description,
			StartTime:   w.Start,
			EndTime:     w.End,
			ImageURL:    w.ImageURL,
			ChannelID:   w.Channel.ID,
		})
	}

	c.logger.Debug("fetched schedule", "url", url, "episodes", len(episodes))
	return episodes, nil
}

func (c *Client) getXML(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", "RadioPlan/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &NetworkError{URL: url, Err: fmt.Errorf("unexpected status: %d", resp.StatusCode)}
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ParseError{URL: url, Err: err}
	}

	return nil
}
