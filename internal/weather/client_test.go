package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dermaglow/internal/weather"
)

const sampleResponse = `{
	"location": {"name": "Gujrat", "country": "Pakistan"},
	"current": {
		"temp_c": 31.6,
		"feelslike_c": 35.4,
		"humidity": 62,
		"uv": 7.5,
		"wind_kph": 10.8,
		"condition": {"text": "Partly cloudy"}
	}
}`

func TestByCityNormalizesResponse(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key not forwarded, got %q", r.URL.Query().Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := weather.NewClient(server.URL, "test-key")
	current, err := client.ByCity(context.Background(), "Gujrat")
	if err != nil {
		t.Fatalf("ByCity: %v", err)
	}

	if gotQuery != "Gujrat" {
		t.Fatalf("expected q=Gujrat, got %q", gotQuery)
	}
	if current.Temperature != 32 {
		t.Errorf("temp_c 31.6 should round to 32, got %d", current.Temperature)
	}
	if current.FeelsLike != 35 {
		t.Errorf("feelslike_c 35.4 should round to 35, got %d", current.FeelsLike)
	}
	if current.WindSpeed != 3.0 {
		t.Errorf("10.8 kph should convert to 3.0 m/s, got %g", current.WindSpeed)
	}
	if current.Humidity != 62 || current.UVIndex != 7.5 {
		t.Errorf("humidity/uv passthrough broken: %d / %g", current.Humidity, current.UVIndex)
	}
	if current.Condition != "Partly cloudy" {
		t.Errorf("unexpected condition %q", current.Condition)
	}
	if current.City != "Gujrat" || current.Country != "Pakistan" {
		t.Errorf("location not mapped: %s, %s", current.City, current.Country)
	}
}

func TestByCoordinatesQueryFormat(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := weather.NewClient(server.URL, "test-key")
	if _, err := client.ByCoordinates(context.Background(), 32.57, 74.07); err != nil {
		t.Fatalf("ByCoordinates: %v", err)
	}
	if gotQuery != "32.57,74.07" {
		t.Fatalf("expected q=32.57,74.07, got %q", gotQuery)
	}
}

func TestFetchRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	}))
	defer server.Close()

	client := weather.NewClient(server.URL, "test-key")
	if _, err := client.ByCity(context.Background(), "nowhere-at-all"); err == nil {
		t.Fatalf("expected error for 400 response")
	}
}

func TestByCityRejectsEmptyQuery(t *testing.T) {
	client := weather.NewClient("http://unused", "test-key")
	if _, err := client.ByCity(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for blank city")
	}
}

func TestFetchRequiresAPIKey(t *testing.T) {
	client := weather.NewClient("http://unused", "")
	if _, err := client.ByCity(context.Background(), "Gujrat"); err == nil {
		t.Fatalf("expected error when api key missing")
	}
}

func TestFallbackConditionWhenMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"location":{"name":"X","country":"Y"},"current":{"temp_c":20}}`))
	}))
	defer server.Close()

	client := weather.NewClient(server.URL, "test-key")
	current, err := client.ByCity(context.Background(), "X")
	if err != nil {
		t.Fatalf("ByCity: %v", err)
	}
	if current.Condition != "Unknown" {
		t.Fatalf("expected Unknown condition fallback, got %q", current.Condition)
	}
}
