package repositories

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"temperature-map/config"
	"temperature-map/pkg/observe"
)

func TestNewOpenWeatherMapRepository_EmptyAPIKey(t *testing.T) {
	repo, err := NewOpenWeatherMapRepository("", "  ", observe.NewZapLogger("test-app"), nil)

	assert.Nil(t, repo)
	assert.EqualError(t, err, "API key cannot be empty")
}

func TestOpenWeatherMapRepository_FetchCurrentTemperature(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"main":{"temp":21.4,"humidity":60}}`, func(r *http.Request) {
		assert.Equal(t, "35.6895", r.URL.Query().Get("lat"))
		assert.Equal(t, "139.6917", r.URL.Query().Get("lon"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
	})

	repo, err := NewOpenWeatherMapRepository(srv.URL, "test-key", observe.NewZapLogger("test-app"), srv.Client())
	require.NoError(t, err)
	assert.Equal(t, "openweathermap", repo.Name())

	temp, err := repo.FetchCurrentTemperature(context.Background(), 35.6895, 139.6917)
	require.NoError(t, err)
	assert.Equal(t, 21.4, temp)
}

func TestOpenWeatherMapRepository_FetchCurrentTemperature_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"cod":401}`, wantErr: "HTTP error (status 401)"},
		{name: "invalid json", status: http.StatusOK, body: "{", wantErr: "failed to parse JSON response"},
		{name: "missing temp", status: http.StatusOK, body: `{"main":{}}`, wantErr: "no main.temp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil)
			repo, err := NewOpenWeatherMapRepository(srv.URL, "test-key", observe.NewZapLogger("test-app"), srv.Client())
			require.NoError(t, err)

			_, err = repo.FetchCurrentTemperature(context.Background(), 35.6895, 139.6917)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInitTemperatureRepository(t *testing.T) {
	l := observe.NewZapLogger("test-app")

	repo, err := InitTemperatureRepository(&config.Config{}, l)
	require.NoError(t, err)
	assert.Equal(t, "open-meteo", repo.Name())

	cfg := &config.Config{Weather: config.WeatherConfig{Provider: "openweathermap", APIKey: "test-key"}}
	repo, err = InitTemperatureRepository(cfg, l)
	require.NoError(t, err)
	assert.Equal(t, "openweathermap", repo.Name())

	cfg = &config.Config{Weather: config.WeatherConfig{Provider: "openweathermap"}}
	_, err = InitTemperatureRepository(cfg, l)
	assert.Error(t, err)

	cfg = &config.Config{Weather: config.WeatherConfig{Provider: "nope"}}
	_, err = InitTemperatureRepository(cfg, l)
	assert.EqualError(t, err, `unknown weather provider "nope"`)
}
