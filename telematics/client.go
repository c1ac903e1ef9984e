// Package telematics holds the wire types and HTTP clients for the two
// upstream APIs: the fleet provider (vehicles, geozones, trips) and the
// auxiliary events API.
package telematics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/azolika/LogbookTestApp/internal"
	"github.com/azolika/LogbookTestApp/utils"
)

const (
	apiVersion   = "1"
	pageLimit    = "1000"
	maxErrorBody = 300

	defaultTimeout = 10 * time.Second
)

// APIError is a non-200 upstream reply. The pipelines treat it as "no data"
// rather than as a fatal failure; Body is truncated to maxErrorBody bytes.
type APIError struct {
	Source     string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Source, e.StatusCode, e.Body)
}

// DecodeError is a 200 reply whose body is not the expected JSON. Like
// APIError it means "no data" to the pipelines.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding response: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNoData reports whether err is an upstream reply that should yield an
// empty result instead of aborting the run (transport failures abort).
func IsNoData(err error) bool {
	var apiErr *APIError
	var decErr *DecodeError
	return errors.As(err, &apiErr) || errors.As(err, &decErr)
}

// Client calls the fleet provider's REST API. Every request carries the
// version and api_key query parameters.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a fleet API client. A non-positive timeout falls back to
// the default.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Vehicles lists the account's vehicles.
func (c *Client) Vehicles(ctx context.Context) ([]Vehicle, error) {
	var out []Vehicle
	if err := c.getJSON(ctx, "objects", "/objects", url.Values{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Geozones lists the account's geozones. The endpoint is served both as a
// bare list and as an {items: [...]} envelope depending on provider version;
// both shapes are accepted.
func (c *Client) Geozones(ctx context.Context) ([]Geozone, error) {
	params := url.Values{}
	params.Set("limit", pageLimit)
	var raw json.RawMessage
	if err := c.getJSON(ctx, "geozones", "/geozones", params, &raw); err != nil {
		return nil, err
	}
	zones, err := decodeGeozones(raw)
	if err != nil {
		return nil, &DecodeError{Source: "geozones", Err: err}
	}
	return zones, nil
}

func decodeGeozones(raw json.RawMessage) ([]Geozone, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out []Geozone
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	var envelope struct {
		Items []Geozone `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// Trips lists one vehicle's trips inside a UTC window.
func (c *Client) Trips(ctx context.Context, vehicleID string, from, to time.Time) ([]Trip, error) {
	params := url.Values{}
	params.Set("from_datetime", utils.IsoZ(from))
	params.Set("to_datetime", utils.IsoZ(to))
	params.Set("limit", pageLimit)
	var envelope struct {
		Trips []Trip `json:"trips"`
	}
	path := "/objects/" + url.PathEscape(vehicleID) + "/trips"
	if err := c.getJSON(ctx, "trips", path, params, &envelope); err != nil {
		return nil, err
	}
	return envelope.Trips, nil
}

func (c *Client) getJSON(ctx context.Context, source, path string, params url.Values, out any) error {
	params.Set("version", apiVersion)
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()
	return fetchJSON(ctx, c.httpClient, "fleet", source, reqURL, nil, out)
}

// fetchJSON issues one GET and decodes the body, recording the upstream
// metrics for the attempt. No retries.
func fetchJSON(ctx context.Context, hc *http.Client, api, source, reqURL string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		internal.TrackUpstream(api, source, internal.UpstreamTransportError, time.Since(start))
		return fmt.Errorf("failed to fetch %s: %w", source, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		internal.TrackUpstream(api, source, internal.UpstreamTransportError, time.Since(start))
		return fmt.Errorf("failed to read %s response: %w", source, err)
	}
	if resp.StatusCode != http.StatusOK {
		internal.TrackUpstream(api, source, internal.UpstreamHTTPError, time.Since(start))
		return &APIError{Source: source, StatusCode: resp.StatusCode, Body: truncateBody(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		internal.TrackUpstream(api, source, internal.UpstreamDecodeError, time.Since(start))
		return &DecodeError{Source: source, Err: err}
	}
	internal.TrackUpstream(api, source, internal.UpstreamSuccess, time.Since(start))
	return nil
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return string(body)
}
