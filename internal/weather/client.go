package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Current is the normalized view of one WeatherAPI current-conditions
// response. Temperatures are whole degrees Celsius, wind is m/s.
type Current struct {
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	UVIndex     float64 `json:"uvIndex"`
	Condition   string  `json:"condition"`
	WindSpeed   float64 `json:"windSpeed"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ByCity fetches conditions for a place name, e.g. "Gujrat" or "auto:ip".
func (c *Client) ByCity(ctx context.Context, city string) (*Current, error) {
	if strings.TrimSpace(city) == "" {
		return nil, fmt.Errorf("empty city query")
	}
	return c.fetch(ctx, city)
}

// ByCoordinates fetches conditions for a lat/lng pair.
func (c *Client) ByCoordinates(ctx context.Context, lat, lng float64) (*Current, error) {
	return c.fetch(ctx, fmt.Sprintf("%g,%g", lat, lng))
}

func (c *Client) fetch(ctx context.Context, query string) (*Current, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather api key not configured")
	}

	endpoint := fmt.Sprintf("%s/current.json?key=%s&q=%s&aqi=yes",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read weather response failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("weather response status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed struct {
		Location struct {
			Name    string `json:"name"`
			Country string `json:"country"`
		} `json:"location"`
		Current struct {
			TempC     float64 `json:"temp_c"`
			FeelsC    float64 `json:"feelslike_c"`
			Humidity  int     `json:"humidity"`
			UV        float64 `json:"uv"`
			WindKph   float64 `json:"wind_kph"`
			Condition struct {
				Text string `json:"text"`
			} `json:"condition"`
		} `json:"current"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse weather json failed: %w", err)
	}

	condition := parsed.Current.Condition.Text
	if condition == "" {
		condition = "Unknown"
	}

	return &Current{
		Temperature: int(math.Round(parsed.Current.TempC)),
		FeelsLike:   int(math.Round(parsed.Current.FeelsC)),
		Humidity:    parsed.Current.Humidity,
		UVIndex:     parsed.Current.UV,
		Condition:   condition,
		WindSpeed:   math.Round(parsed.Current.WindKph/3.6*10) / 10,
		City:        parsed.Location.Name,
		Country:     parsed.Location.Country,
	}, nil
}
