package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"dermaglow/internal/ai"
	"dermaglow/internal/cache"
	"dermaglow/internal/prompt"
	"dermaglow/internal/weather"
)

// RecommendationService turns current weather conditions into general
// skincare advice via one model call. Finished recommendations are cached
// per location; the weather adapter itself stays cache-free.
type RecommendationService struct {
	weather   WeatherClient
	llm       LLMClient
	cache     *cache.WeatherCache
	llmConfig ai.ChatConfig
}

type WeatherRecommendation struct {
	Weather        *weather.Current `json:"weather"`
	Recommendation string           `json:"recommendation"`
}

func NewRecommendationService(weatherClient WeatherClient, llm LLMClient, weatherCache *cache.WeatherCache, llmConfig ai.ChatConfig) *RecommendationService {
	return &RecommendationService{
		weather:   weatherClient,
		llm:       llm,
		cache:     weatherCache,
		llmConfig: llmConfig,
	}
}

// ByCity produces a recommendation for a place name.
func (s *RecommendationService) ByCity(ctx context.Context, city string) (*WeatherRecommendation, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrInvalidInput
	}
	return s.recommend(ctx, city, func(ctx context.Context) (*weather.Current, error) {
		return s.weather.ByCity(ctx, city)
	})
}

// ByCoordinates produces a recommendation for a lat/lng pair.
func (s *RecommendationService) ByCoordinates(ctx context.Context, lat, lng float64) (*WeatherRecommendation, error) {
	key := fmt.Sprintf("%.2f,%.2f", lat, lng)
	return s.recommend(ctx, key, func(ctx context.Context) (*weather.Current, error) {
		return s.weather.ByCoordinates(ctx, lat, lng)
	})
}

func (s *RecommendationService) recommend(ctx context.Context, cacheKey string, fetch func(context.Context) (*weather.Current, error)) (*WeatherRecommendation, error) {
	if s.cache != nil {
		if cached, hit, err := s.cache.Get(ctx, cacheKey); err == nil && hit {
			var current weather.Current
			if json.Unmarshal(cached.Weather, &current) == nil {
				return &WeatherRecommendation{
					Weather:        &current,
					Recommendation: cached.Recommendation,
				}, nil
			}
		}
	}

	current, err := fetch(ctx)
	if err != nil {
		return nil, upstreamErr(err)
	}

	recommendation, err := s.llm.Complete(ctx, s.llmConfig, prompt.BuildWeather(*current))
	if err != nil {
		return nil, upstreamErr(err)
	}

	if s.cache != nil {
		weatherJSON, marshalErr := json.Marshal(current)
		if marshalErr == nil {
			if err := s.cache.Set(ctx, cacheKey, cache.CachedRecommendation{
				Weather:        weatherJSON,
				Recommendation: recommendation,
			}); err != nil {
				log.Printf("cache weather recommendation failed: %v", err)
			}
		}
	}

	return &WeatherRecommendation{Weather: current, Recommendation: recommendation}, nil
}
