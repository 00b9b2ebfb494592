package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"temperature-map/pkg/observe"
)

const (
	OpenMeteoName    = "open-meteo"
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"
)

type OpenMeteoRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewOpenMeteoRepository(baseURL string, l *observe.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	if baseURL == "" {
		baseURL = OpenMeteoBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenMeteoRepository{
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return OpenMeteoName
}

// OpenMeteoCurrent is the "current" block of a forecast response.
// Temperature2m is a pointer so that a missing field is an error, not 0 °C.
type OpenMeteoCurrent struct {
	Temperature2m *float64 `json:"temperature_2m"`
}

type OpenMeteoResponse struct {
	Current *OpenMeteoCurrent `json:"current"`
}

func (o *OpenMeteoRepository) requestURL(lat, lon float64) string {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", "temperature_2m")

	return o.baseURL + "?" + params.Encode()
}

func (o *OpenMeteoRepository) FetchCurrentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	reqURL := o.requestURL(lat, lon)

	o.l.Debug("making openmeteo API request", map[string]any{
		"lat": lat,
		"lon": lon,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Debug("received openmeteo API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response OpenMeteoResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return 0, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if response.Current == nil || response.Current.Temperature2m == nil {
		return 0, fmt.Errorf("response has no current.temperature_2m")
	}

	return *response.Current.Temperature2m, nil
}
