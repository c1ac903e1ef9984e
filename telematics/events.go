package telematics

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/azolika/LogbookTestApp/utils"
)

// EventsClient calls the auxiliary events API. Unlike the fleet API it
// authenticates with an x-user-id header instead of an API key parameter.
type EventsClient struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

// NewEventsClient creates an events API client. A non-positive timeout falls
// back to the default.
func NewEventsClient(baseURL, userID string, timeout time.Duration) *EventsClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &EventsClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userID:     userID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RequestURL returns the exact URL a Fetch call issues, for operator-facing
// previews and logs. It carries no credentials; the user id travels in a
// header.
func (c *EventsClient) RequestURL(vehicleID string, from, to time.Time, stationaryUnder int) string {
	params := url.Values{}
	params.Set("vehicle_id", vehicleID)
	params.Set("from", utils.IsoZ(from))
	params.Set("to", utils.IsoZ(to))
	params.Set("stationary_under", strconv.Itoa(stationaryUnder))
	return c.baseURL + "/events?" + params.Encode()
}

// Fetch lists one vehicle's events inside a UTC window. stationaryUnder is an
// API-side threshold in minutes excluding short stops; it is passed through
// opaquely.
func (c *EventsClient) Fetch(ctx context.Context, vehicleID string, from, to time.Time, stationaryUnder int) ([]Event, error) {
	header := http.Header{}
	header.Set("x-user-id", c.userID)
	var out []Event
	reqURL := c.RequestURL(vehicleID, from, to, stationaryUnder)
	if err := fetchJSON(ctx, c.httpClient, "events", "events", reqURL, header, &out); err != nil {
		return nil, err
	}
	return out, nil
}
