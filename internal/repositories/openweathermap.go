package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"temperature-map/pkg/observe"
)

const (
	OpenWeatherMapName    = "openweathermap"
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5/weather"
)

type OpenWeatherMapRepository struct {
	baseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewOpenWeatherMapRepository(baseURL, apiKey string, l *observe.Logger, httpClient HTTPClient) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if baseURL == "" || baseURL == OpenMeteoBaseURL {
		baseURL = OpenWeatherMapBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenWeatherMapRepository{
		baseURL:    baseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (w *OpenWeatherMapRepository) Name() string {
	return OpenWeatherMapName
}

type OpenWeatherMapResponse struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

func (w *OpenWeatherMapRepository) FetchCurrentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("units", "metric")
	params.Set("appid", w.APIKey)

	w.l.Debug("making openweathermap API request", map[string]any{
		"lat": lat,
		"lon": lon,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	w.l.Debug("received openweathermap API response", map[string]any{
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

	var response OpenWeatherMapResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return 0, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if response.Main == nil || response.Main.Temp == nil {
		return 0, fmt.Errorf("response has no main.temp")
	}

	return *response.Main.Temp, nil
}
