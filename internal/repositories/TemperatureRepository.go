package repositories

import (
	"context"
	"fmt"
	"net/http"

	"temperature-map/config"
	"temperature-map/pkg/observe"
)

// HTTPClient is the part of *http.Client the repositories use.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TemperatureRepository reads the current air temperature (°C, 2 m above ground) at a coordinate.
type TemperatureRepository interface {
	Name() string
	FetchCurrentTemperature(ctx context.Context, lat, lon float64) (float64, error)
}

// InitTemperatureRepository builds the provider named in the config.
// The HTTP client keeps library defaults: no timeout, no retries.
func InitTemperatureRepository(cfg *config.Config, l *observe.Logger) (TemperatureRepository, error) {
	httpClient := &http.Client{}

	switch cfg.Weather.Provider {
	case "", OpenMeteoName:
		return NewOpenMeteoRepository(cfg.Weather.BaseURL, l, httpClient), nil
	case OpenWeatherMapName:
		return NewOpenWeatherMapRepository(cfg.Weather.BaseURL, cfg.Weather.APIKey, l, httpClient)
		// Add more cases for new providers to extend the app
	}

	return nil, fmt.Errorf("unknown weather provider %q", cfg.Weather.Provider)
}
