package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stellarlog/launchdeck/common/config"
	"github.com/stellarlog/launchdeck/common/models"
	"github.com/tidwall/gjson"
)

// ErrRemoteFetch marks any failure against the upstream launch API:
// network errors and non-2xx statuses are treated uniformly.
var ErrRemoteFetch = errors.New("remote fetch failed")

// SpaceXClient reads launches, crew and rockets from the SpaceX v4 API.
// It is read-only and stateless; every call hits the network.
type SpaceXClient struct {
	baseURL string
	http    *HTTPClient
	log     Logger
}

// NewSpaceXClient creates a client against the configured API base URL
func NewSpaceXClient(cfg *config.Config, log Logger) *SpaceXClient {
	return &SpaceXClient{
		baseURL: strings.TrimRight(cfg.SpaceX.BaseURL, "/"),
		http:    NewHTTPClient(&http.Client{Timeout: cfg.SpaceX.Timeout}, log),
		log:     log,
	}
}

// Launches fetches the entire launch collection
func (c *SpaceXClient) Launches(ctx context.Context) ([]models.Launch, error) {
	body, err := c.getJSON(ctx, "/launches")
	if err != nil {
		return nil, err
	}

	records := gjson.ParseBytes(body).Array()
	launches := make([]models.Launch, 0, len(records))
	for _, record := range records {
		launches = append(launches, launchFromJSON(record))
	}

	return launches, nil
}

// Launch fetches a single launch by ID
func (c *SpaceXClient) Launch(ctx context.Context, id string) (*models.Launch, error) {
	body, err := c.getJSON(ctx, "/launches/"+id)
	if err != nil {
		return nil, err
	}

	launch := launchFromJSON(gjson.ParseBytes(body))
	return &launch, nil
}

// CrewMember fetches a single crew record by ID
func (c *SpaceXClient) CrewMember(ctx context.Context, id string) (*models.CrewMember, error) {
	body, err := c.getJSON(ctx, "/crew/"+id)
	if err != nil {
		return nil, err
	}

	var member models.CrewMember
	if err := json.Unmarshal(body, &member); err != nil {
		return nil, fmt.Errorf("decode crew member %s: %w", id, err)
	}

	return &member, nil
}

// Rockets fetches the entire rocket collection
func (c *SpaceXClient) Rockets(ctx context.Context) ([]models.RocketPayload, error) {
	body, err := c.getJSON(ctx, "/rockets")
	if err != nil {
		return nil, err
	}

	var rockets []models.RocketPayload
	if err := json.Unmarshal(body, &rockets); err != nil {
		return nil, fmt.Errorf("decode rockets: %w", err)
	}

	return rockets, nil
}

func (c *SpaceXClient) getJSON(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.http.DoRequest(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrRemoteFetch, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrRemoteFetch, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: read body: %v", ErrRemoteFetch, path, err)
	}

	return body, nil
}

// launchFromJSON lifts the browse fields out of an opaque launch payload.
// The payload itself is kept verbatim on Raw; everything the presentation
// layer might want beyond the extracted fields stays available there.
func launchFromJSON(record gjson.Result) models.Launch {
	launch := models.Launch{
		ID:         record.Get("id").String(),
		Name:       record.Get("name").String(),
		Rocket:     record.Get("rocket").String(),
		PatchSmall: record.Get("links.patch.small").String(),
		Crew:       []string{},
		Raw:        json.RawMessage(record.Raw),
	}

	if t, err := time.Parse(time.RFC3339, record.Get("date_utc").String()); err == nil {
		launch.DateUTC = t
	}

	if success := record.Get("success"); success.Exists() {
		ok := success.Bool()
		launch.Success = &ok
	}

	// v4 lists crew either as plain IDs or as {crew, role} objects
	for _, entry := range record.Get("crew").Array() {
		if entry.IsObject() {
			launch.Crew = append(launch.Crew, entry.Get("crew").String())
		} else {
			launch.Crew = append(launch.Crew, entry.String())
		}
	}

	return launch
}
